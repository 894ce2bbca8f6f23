package interp

import "fmt"

// ErrorKind classifies fatal evaluation errors.
type ErrorKind int

const (
	// ArityError is a wrong argument count for a special form, builtin,
	// or user-defined callable.
	ArityError ErrorKind = iota
	// TypeError is a builtin applied to the wrong form variant.
	TypeError
	// UnboundError is a word reference with no binding in scope.
	UnboundError
	// NumericError is a non-decimal word where a number is required, or
	// an integer conversion overflow.
	NumericError
	// IndexError is an out-of-range index.
	IndexError
	// StructuralError is a malformed special form: non-word list head,
	// bad binding or parameter list, loop continuation arity mismatch.
	StructuralError
	// UnknownError is a list head that names no special form, user
	// definition, or builtin.
	UnknownError
	// AbortError is raised by the abort builtin.
	AbortError
)

func (k ErrorKind) String() string {
	switch k {
	case ArityError:
		return "arity error"
	case TypeError:
		return "type error"
	case UnboundError:
		return "unbound word"
	case NumericError:
		return "numeric error"
	case IndexError:
		return "index error"
	case StructuralError:
		return "structural error"
	case UnknownError:
		return "unknown function"
	case AbortError:
		return "abort"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a fatal evaluation error. All evaluation errors terminate the
// run; there is no recovery mechanism in the language.
type Error struct {
	Message string
	Kind    ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
