package simpio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/homology2/complex"
)

// WriteComplex writes c's simplices back out in the same space-separated
// vertex-id line format ReadComplex parses, one simplex per line, in
// insertion order. It is the inverse of ReadComplex and exists mainly so
// round-tripping a complex through the text format can be tested without
// a second, hand-rolled parser.
func WriteComplex(w io.Writer, c *complex.Filtered) error {
	for _, s := range c.All() {
		for i, v := range s.Vertices() {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d", v); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
