package render

import (
	"runtime"
	"sync"

	"github.com/polaris-render/bvhtrace/bvh"
	"github.com/polaris-render/bvhtrace/camera"
)

const (
	// ImageWidth and ImageHeight fix the rendered frame to the reference
	// resolution.
	ImageWidth  = 1024
	ImageHeight = 1024
)

// Trace renders the scene (tree + primitive table) through cam into an
// RGB pixel buffer (bottom-up: row 0 is the world-bottom row; left-to-right
// within a row; WritePPM reverses row order on output). Work is split into horizontal bands across a fixed-size
// worker pool; every worker holds its own Ray/Hit scratch state and
// writes only into its own disjoint slice of pix, so no locking is
// needed. tree and prims are read-only for the duration of the trace.
func Trace(tree *bvh.Bvh, prims []bvh.Intersector, cam camera.Camera) []byte {
	pix := make([]byte, ImageWidth*ImageHeight*3)

	workers := runtime.GOMAXPROCS(0)
	if workers > ImageHeight {
		workers = ImageHeight
	}
	if workers < 1 {
		workers = 1
	}

	rowsPerWorker := (ImageHeight + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		rowStart := w * rowsPerWorker
		rowEnd := rowStart + rowsPerWorker
		if rowEnd > ImageHeight {
			rowEnd = ImageHeight
		}
		if rowStart >= rowEnd {
			continue
		}

		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			traceBand(tree, prims, cam, pix, rowStart, rowEnd)
		}(rowStart, rowEnd)
	}
	wg.Wait()

	return pix
}

func traceBand(tree *bvh.Bvh, prims []bvh.Intersector, cam camera.Camera, pix []byte, rowStart, rowEnd int) {
	for row := rowStart; row < rowEnd; row++ {
		// row 0 must map to the world-bottom of the frame: WritePPM
		// emits buffer rows in reverse (last row first), so row 0
		// ends up as the last line written to the file, matching a
		// standard top-down raster PPM.
		v := -1 + 2*(float32(row)+0.5)/float32(ImageHeight)
		for col := 0; col < ImageWidth; col++ {
			u := 2*(float32(col)+0.5)/float32(ImageWidth) - 1

			ray := cam.RayThrough(u, v)
			hit := tree.Traverse(&ray, prims)

			offset := (row*ImageWidth + col) * 3
			if !hit.Found() {
				continue // pix is zero-initialized; misses stay black.
			}

			idx := hit.PrimIndex
			pix[offset+0] = byte(idx * 37)
			pix[offset+1] = byte(idx * 91)
			pix[offset+2] = byte(idx * 51)
		}
	}
}
