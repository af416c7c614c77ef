// Package builder defines shared constants used by the topology generators,
// ensuring consistent defaults and error prefixes across all families.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the stage name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodPartition is the canonical name for the node partitioner.
	MethodPartition = "Partition"
	// MethodAttach is the canonical name for the external link builder.
	MethodAttach = "Attach"
	// MethodRing is the canonical name for the Ring family.
	MethodRing = "Ring"
	// MethodTorusXYZ is the canonical name for the TorusXYZ family.
	MethodTorusXYZ = "TorusXYZ"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultLinkLatency is the latency given to every link when WithLinkLatency
// is not supplied.
const DefaultLinkLatency = 1

// DefaultRouterLatency is the latency given to every router when
// WithRouterLatency is not supplied.
const DefaultRouterLatency = 1

// DefaultLinkWeight is the routing weight of every internal link. All links
// share it; directionality, not differential weight, carries the
// dimension-order discipline.
const DefaultLinkWeight = 1

// RemainderRouterID is the router every remainder node is attached to.
const RemainderRouterID = 0

// RemainderNodeType is the only capability tag accepted for remainder nodes.
const RemainderNodeType = "DMA_Controller"
