package reduce

import "fmt"

// errPivotNotUnique and errMemoMismatch back CheckInvariants; the
// reducer's own Push never returns them, since Push either maintains the
// invariant or panics (reduce.go's Push doc comment).
func errPivotNotUnique(pivot, first, second uint64) error {
	return fmt.Errorf("reduce: pivot %d held by both column %d and column %d", pivot, first, second)
}

func errMemoMismatch() error {
	return fmt.Errorf("reduce: pivot memo does not match the set of stored non-cycle columns")
}
