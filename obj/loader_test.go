package obj

import (
	"strings"
	"testing"
)

func TestLoadTriangleFace(t *testing.T) {
	src := `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle; got %d", len(tris))
	}
	if tris[0].P0[0] != 0 || tris[0].P1[0] != 1 || tris[0].P2[1] != 1 {
		t.Fatalf("unexpected vertex data: %+v", tris[0])
	}
}

func TestLoadFanTriangulatesQuad(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected a quad to fan into 2 triangles; got %d", len(tris))
	}
}

func TestLoadFaceWithUVAndNormalIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle; got %d", len(tris))
	}
}

func TestLoadNegativeFaceIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle; got %d", len(tris))
	}
	if tris[0].P1[0] != 1 {
		t.Fatalf("negative index did not resolve to the expected vertex: %+v", tris[0])
	}
}

func TestLoadFaceIndexOutOfRange(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 9
`
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatalf("expected an out-of-range vertex index to error")
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	src := "\n# comment\n\nv 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1 2 3\n"
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle; got %d", len(tris))
	}
}
