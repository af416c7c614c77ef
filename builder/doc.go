// Package builder generates interconnect topologies: it distributes endpoint
// controllers over a fixed router set and emits the directed, weighted
// router-to-router links of a Ring or a 3-D Torus (XYZ).
//
// The package offers the following key components:
//
//   - Node Partitioner:
//     – Partition:        N nodes over R routers → uniform subset (multiple of
//     R nodes) and remainder subset (< R nodes), order preserved.
//   - External Link Builder:
//     – uniform node i → router i mod R;
//     – remainder nodes → router 0, DMA controllers only.
//   - Families (Router Lattice Builder + Internal Link Generator):
//     – Ring():           R routers, 2R links (Right/Left).
//     – TorusXYZ(xs, ys): xs×ys×(R/(xs·ys)) routers, 6R links
//     (Front/Back, Left/Right, Up/Down).
//   - Topology Descriptor Emitter:
//     – Build / BuildRing / BuildTorusXYZ with one link-ID counter per call.
//   - Options:
//     – WithLinkLatency, WithRouterLatency, WithLogger.
//
// Guarantees:
//
//   - Deterministic: identical inputs give identical graphs, IDs restart at 0.
//   - Fail-fast: invalid configuration returns a sentinel error and no graph.
//   - No panics at run time; only option constructors panic on bad values.
//
// Dimension-order contract: the torus links are emitted X, then Y, then Z,
// and deadlock freedom relies on the consumer routing in that same order.
// The generator cannot check this; see package routing for a conforming
// outport computation.
package builder
