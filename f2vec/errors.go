package f2vec

import "errors"

// ErrDuplicateIndex is returned by NewFromIndices when the caller asks for
// duplicate-rejecting validation and the input contains a repeated index.
var ErrDuplicateIndex = errors.New("f2vec: duplicate index in column")
