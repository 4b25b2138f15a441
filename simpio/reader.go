package simpio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/homology2/complex"
	"github.com/katalvlaran/homology2/simplicial"
)

// ReadComplex parses one block of the simplex text format from r: lines
// of space-separated unsigned vertex ids, terminated by a blank line or
// EOF. Each line is pushed, in order, into a fresh self-basis
// complex.Filtered — the push enforces the face-closure invariant, so a
// line listing a simplex whose faces haven't appeared yet surfaces as
// complex.ErrComplexIsNotFiltered.
func ReadComplex(r io.Reader) (*complex.Filtered, error) {
	c := complex.NewFiltered(0)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		fields := strings.Fields(line)
		vertices := make([]uint64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, errMalformedLine(lineNo, line)
			}
			vertices[i] = v
		}

		if _, err := c.Push(simplicial.New(vertices)); err != nil {
			return nil, fmt.Errorf("simpio: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("simpio: %w", err)
	}

	return c, nil
}
