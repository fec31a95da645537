package si

import "github.com/pkg/errors"

// ErrWidthMismatch is the error checkWidth wraps when two operands' widths
// differ. No exported operation returns it: Concat accepts operands of any
// widths, the other binary arithmetic and bitwise ops widen the narrower
// operand via AgnosticExtend, and Union, Intersection and Widen panic on
// mismatched widths.
var ErrWidthMismatch = errors.New("si: operand width mismatch")

// ErrInvalidWidth is returned (wrapped) when a requested bit width is not a
// positive integer.
var ErrInvalidWidth = errors.New("si: bit width must be >= 1")

// ErrParse is returned (wrapped) when Parse is given text that doesn't
// match the "<bits>stride[0xlb, 0xub]R?" (or "<bits>[EmptySI]") textual
// form.
var ErrParse = errors.New("si: malformed SI literal")

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
