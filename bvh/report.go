package bvh

import (
	"time"

	"github.com/polaris-render/bvhtrace/types"
)

// BuildReport summarizes a single build invocation for reporting
// purposes (CLI tables, structured log lines). It does not change the
// builders' core contract, which still returns a bare *Bvh; this is a
// thin wrapper computed after the fact.
type BuildReport struct {
	Algorithm string
	PrimCount int
	NodeCount int
	LeafCount int
	MaxDepth  int
	BuildTime time.Duration
}

func newReport(algorithm string, primCount int, b *Bvh, elapsed time.Duration) BuildReport {
	depth := 0
	if !b.Empty() {
		depth = b.Depth(0)
	}
	return BuildReport{
		Algorithm: algorithm,
		PrimCount: primCount,
		NodeCount: len(b.Nodes),
		LeafCount: b.LeafCount(),
		MaxDepth:  depth,
		BuildTime: elapsed,
	}
}

// BuildSAHWithReport runs BuildSAH and returns a BuildReport alongside
// the resulting tree.
func BuildSAHWithReport(bboxes []types.BBox, centers []types.Vec3, cfg SAHConfig) (*Bvh, BuildReport) {
	start := time.Now()
	b := BuildSAH(bboxes, centers, cfg)
	return b, newReport("sah", len(bboxes), b, time.Since(start))
}

// BuildPLOCWithReport runs BuildPLOC and returns a BuildReport alongside
// the resulting tree.
func BuildPLOCWithReport(bboxes []types.BBox, centers []types.Vec3, cfg PLOCConfig) (*Bvh, BuildReport) {
	start := time.Now()
	b := BuildPLOC(bboxes, centers, cfg)
	return b, newReport("ploc", len(bboxes), b, time.Since(start))
}
