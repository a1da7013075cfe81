// Package render drives ray tracing across an image plane and encodes the
// result as a PPM image.
package render

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM encodes pix (width*height RGB triples, row by row, left-to-right
// within a row) as a binary (P6) PPM image. Rows are emitted in reverse,
// last buffer row first; Trace puts the world-bottom row at buffer row 0,
// so the file lists rows top to bottom, as PPM readers expect.
func WritePPM(w io.Writer, width, height int, pix []byte) error {
	if len(pix) != width*height*3 {
		return fmt.Errorf("render: pixel buffer has %d bytes; want %d for %dx%d RGB", len(pix), width*height*3, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("render: write header: %w", err)
	}

	rowBytes := width * 3
	for row := height - 1; row >= 0; row-- {
		start := row * rowBytes
		if _, err := bw.Write(pix[start : start+rowBytes]); err != nil {
			return fmt.Errorf("render: write row %d: %w", row, err)
		}
	}

	return bw.Flush()
}
