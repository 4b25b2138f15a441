// Package complex: sentinel error set.
//
// Both sentinels are surfaced either at push time (strict construction)
// or at boundary-stream time (lazy streaming) per spec.md §7. Neither is
// wrapped at the definition site; callers needing context should wrap
// with fmt.Errorf("...: %w", err) and check with errors.Is.
package complex

import "errors"

var (
	// ErrComplexIsNotFiltered is returned when a simplex is pushed, or a
	// boundary column is requested, whose boundary includes a face not
	// present at an earlier index in the target basis.
	ErrComplexIsNotFiltered = errors.New("complex: not a filtered complex: missing face")

	// ErrElementAlreadyExists is returned by the strict constructor when
	// a pushed simplex equals (by inner product) an existing basis
	// element.
	ErrElementAlreadyExists = errors.New("complex: element already exists")
)
