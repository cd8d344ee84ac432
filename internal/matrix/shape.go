package matrix

import (
	"fmt"

	"github.com/pkg/errors"
)

// Shape holds the row and column counts of a 2-D matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns Rows*Cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Equal reports whether both dimensions match.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// IsEmpty reports whether the shape holds no elements (0×N or N×0).
func (s Shape) IsEmpty() bool {
	return s.Rows == 0 || s.Cols == 0
}

// Validate rejects negative dimensions. Zero is allowed.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return errors.Wrapf(ErrShape, "invalid dimensions %dx%d (must be >= 0)", s.Rows, s.Cols)
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
