// Package nocgen generates the interconnect of a simulated multicore system:
// a set of routers, the external links that attach cache, directory and DMA
// controllers to them, and the internal links that join the routers into a
// bidirectional ring or a 3-D torus built for X→Y→Z dimension-order routing.
//
// What is inside?
//
//	lattice/     3-D coordinates, shape derivation and ordered lattice walks
//	topology/    arena-style records: Router, ExternalLink, InternalLink, Graph
//	builder/     endpoint partitioning, attachment and the Ring / Torus_XYZ wiring
//	bfs/         breadth-first traversal over internal links
//	verify/      structural invariant checks of a finished Graph
//	routing/     the consumer-side outport contract and route tracing
//	stats/       hop metrics (diameter, mean hops, strong connectivity)
//	descriptor/  YAML / JSON descriptor files
//	fsconfig/    per-node memory registration
//	config/      layered parameters: defaults, file, NOCGEN_* env, flags
//	cmd/nocgen   the command-line front end
//
// Quick example, a ring of four routers:
//
//	0 ─── 1
//	│     │
//	3 ─── 2
//
// Each line stands for two links: Right (i → i+1) and Left (i+1 → i).
//
//	go install github.com/katalvlaran/nocgen/cmd/nocgen@latest
package nocgen
