package bvh

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tris := quadPrimitives()
	bboxes, centers := TriangleInput(tris)
	b := BuildSAH(bboxes, centers, DefaultSAHConfig())

	path := filepath.Join(t.TempDir(), "scene.zip")
	if err := Save(path, tris, b); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	gotTris, gotBvh, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(gotTris) != len(tris) {
		t.Fatalf("expected %d triangles back; got %d", len(tris), len(gotTris))
	}
	for i := range tris {
		if gotTris[i] != tris[i] {
			t.Fatalf("triangle %d round-tripped incorrectly: got %+v want %+v", i, gotTris[i], tris[i])
		}
	}

	if len(gotBvh.Nodes) != len(b.Nodes) {
		t.Fatalf("expected %d nodes back; got %d", len(b.Nodes), len(gotBvh.Nodes))
	}
	for i := range b.Nodes {
		if gotBvh.Nodes[i] != b.Nodes[i] {
			t.Fatalf("node %d round-tripped incorrectly", i)
		}
	}
	for i := range b.PrimIndices {
		if gotBvh.PrimIndices[i] != b.PrimIndices[i] {
			t.Fatalf("prim_indices[%d] round-tripped incorrectly", i)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.zip")); err == nil {
		t.Fatalf("expected an error loading a nonexistent archive")
	}
}

func TestLoadRejectsMalformedArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-zip.zip")
	if err := os.WriteFile(path, []byte("not a zip file"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected an error loading a malformed archive")
	}
}
