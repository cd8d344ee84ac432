package matrix

import "github.com/pkg/errors"

// ErrShape is the root of every dimension mismatch reported by this package
// and by the layers built on top of it.
var ErrShape = errors.New("shape mismatch")

// shapePanic aborts with an error wrapping ErrShape. Operand shape
// violations are caller bugs, so the math routines panic instead of
// returning them.
func shapePanic(format string, args ...any) {
	panic(errors.Wrapf(ErrShape, format, args...))
}
