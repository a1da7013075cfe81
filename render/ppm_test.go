package render

import (
	"bytes"
	"testing"
)

func TestWritePPMHeader(t *testing.T) {
	var buf bytes.Buffer
	pix := make([]byte, 2*2*3)
	if err := WritePPM(&buf, 2, 2, pix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "P6\n2 2\n255\n"
	if got := buf.String()[:len(want)]; got != want {
		t.Fatalf("header mismatch: got %q want %q", got, want)
	}
}

func TestWritePPMRowsAreBottomUp(t *testing.T) {
	var buf bytes.Buffer
	// Top row (row 0) red, bottom row (row 1) green.
	pix := []byte{
		255, 0, 0, 255, 0, 0,
		0, 255, 0, 0, 255, 0,
	}
	if err := WritePPM(&buf, 2, 2, pix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := buf.Bytes()[len("P6\n2 2\n255\n"):]
	if body[0] != 0 || body[1] != 255 || body[2] != 0 {
		t.Fatalf("expected the bottom (green) row to be emitted first; got %v", body[:3])
	}
	if body[6] != 255 || body[7] != 0 || body[8] != 0 {
		t.Fatalf("expected the top (red) row to be emitted second; got %v", body[6:9])
	}
}

func TestWritePPMRejectsMismatchedBufferSize(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, 4, 4, make([]byte, 3)); err == nil {
		t.Fatalf("expected an error for a pixel buffer of the wrong size")
	}
}
