package unsign

import (
	"fmt"

	xerrors "golang.org/x/xerrors"
)

// Kind discriminates the ways Decrypt can fail.
type Kind int

const (
	// InputTooLarge means the signature is longer than the engine capacity.
	InputTooLarge Kind = iota + 1
	// ModulusInvalid means the modulus text is not hex or is too long.
	ModulusInvalid
	// SignatureNotReduced means the signature is not less than the modulus,
	// so it is corrupt or belongs to another key.
	SignatureNotReduced
	// OutputOverflow means the result does not fit the signature buffer.
	OutputOverflow
)

func (k Kind) String() string {
	switch k {
	case InputTooLarge:
		return "input too large"
	case ModulusInvalid:
		return "modulus invalid"
	case SignatureNotReduced:
		return "signature not reduced"
	case OutputOverflow:
		return "output overflow"
	}
	return fmt.Sprintf("unknown kind %d", int(k))
}

// Error is returned by Decrypt. Err carries the underlying cause when there is
// one.
type Error struct {
	Kind Kind
	Err  error
}

var (
	ErrInputTooLarge       = &Error{Kind: InputTooLarge}
	ErrModulusInvalid      = &Error{Kind: ModulusInvalid}
	ErrSignatureNotReduced = &Error{Kind: SignatureNotReduced}
	ErrOutputOverflow      = &Error{Kind: OutputOverflow}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can compare against the
// ErrXxx values regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Kind
	}
	return 0
}
