package simpio

import "fmt"

func errMalformedLine(lineNo int, text string) error {
	return fmt.Errorf("simpio: line %d is not a space-separated list of unsigned integers: %q", lineNo, text)
}
