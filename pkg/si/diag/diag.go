// Package diag carries precision-warning diagnostics out of the pure
// pkg/si value library. The engine never logs; callers that want the
// information the original Python backend logged via logger.warning collect
// Warning values from an operation's result and report them however they
// see fit (the CLI in cmd/sitool uses the standard log package).
package diag

import "fmt"

// Kind classifies a precision warning.
type Kind int

const (
	// Overflow marks an arithmetic result whose true value exceeded the
	// width: a singleton product that wrapped, or a product that collapsed
	// to TOP.
	Overflow Kind = iota
	// NarrowCast names a cast_low whose target width is smaller than the
	// operand's stride. CastLow takes no Sink, so no pkg/si operation emits
	// this kind.
	NarrowCast
	// LossyReverse marks a reverse() materialization on a non-singleton SI,
	// which cannot preserve byte-order precision in general.
	LossyReverse
)

func (k Kind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case NarrowCast:
		return "narrow-cast"
	case LossyReverse:
		return "lossy-reverse"
	default:
		return "unknown"
	}
}

// Warning is a single precision-loss diagnostic attached to an operation's
// result, never raised as an error.
type Warning struct {
	Kind    Kind
	Op      string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Op, w.Kind, w.Message)
}

// Sink collects warnings for the duration of a single operation tree. The
// zero value is ready to use and safe to pass as nil (all methods on a nil
// *Sink are no-ops), so callers that don't care about diagnostics can omit
// it entirely.
type Sink struct {
	warnings []Warning
}

// Warn records a warning. No-op on a nil Sink.
func (s *Sink) Warn(op string, kind Kind, format string, args ...interface{}) {
	if s == nil {
		return
	}
	s.warnings = append(s.warnings, Warning{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the accumulated warnings in emission order.
func (s *Sink) Warnings() []Warning {
	if s == nil {
		return nil
	}
	return s.warnings
}
