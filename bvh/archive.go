package bvh

import (
	"archive/zip"
	"encoding/gob"
	"fmt"
	"os"
)

const (
	trianglesEntry = "triangles.bin"
	bvhEntry       = "bvh.bin"
)

// gobBvh is the on-disk shape of a Bvh: gob cannot encode the Bvh type's
// unexported internals directly (it has none, but keeping an explicit
// mirror type insulates the archive format from internal field renames).
type gobBvh struct {
	Nodes       []Node
	PrimIndices []uint32
}

// Save writes tris and b to a zip archive at path as two gob-encoded
// entries, mirroring the teacher's scene archive layout (one named entry
// per logical section).
func Save(path string, tris []Triangle, b *Bvh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bvh: create archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	tw, err := zw.Create(trianglesEntry)
	if err != nil {
		return fmt.Errorf("bvh: create %s entry: %w", trianglesEntry, err)
	}
	if err := gob.NewEncoder(tw).Encode(tris); err != nil {
		return fmt.Errorf("bvh: encode triangles: %w", err)
	}

	bw, err := zw.Create(bvhEntry)
	if err != nil {
		return fmt.Errorf("bvh: create %s entry: %w", bvhEntry, err)
	}
	if err := gob.NewEncoder(bw).Encode(gobBvh{Nodes: b.Nodes, PrimIndices: b.PrimIndices}); err != nil {
		return fmt.Errorf("bvh: encode nodes: %w", err)
	}

	return nil
}

// Load reads back an archive written by Save.
func Load(path string) ([]Triangle, *Bvh, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("bvh: open archive: %w", err)
	}
	defer zr.Close()

	var tris []Triangle
	var gb gobBvh
	var sawTriangles, sawBvh bool

	for _, entry := range zr.File {
		rc, err := entry.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("bvh: open %s: %w", entry.Name, err)
		}

		switch entry.Name {
		case trianglesEntry:
			err = gob.NewDecoder(rc).Decode(&tris)
			sawTriangles = true
		case bvhEntry:
			err = gob.NewDecoder(rc).Decode(&gb)
			sawBvh = true
		}
		rc.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("bvh: decode %s: %w", entry.Name, err)
		}
	}

	if !sawTriangles || !sawBvh {
		return nil, nil, fmt.Errorf("bvh: archive %s is missing required entries", path)
	}

	return tris, &Bvh{Nodes: gb.Nodes, PrimIndices: gb.PrimIndices}, nil
}
