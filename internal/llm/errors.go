package llm

import "errors"

// ErrorKind classifies a failed external inference call. Callers branch
// on the kind only, never on raw error text.
type ErrorKind string

const (
	ErrUnreachable       ErrorKind = "unreachable"
	ErrInvalidCredential ErrorKind = "invalid_credential"
	ErrMalformedResponse ErrorKind = "malformed_response"
	ErrTimeout           ErrorKind = "timeout"
)

// CallError wraps a provider-level failure with its kind
type CallError struct {
	Kind ErrorKind
	Err  error
}

func (e *CallError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind, defaulting to unreachable for errors
// that did not come through a call wrapper
func KindOf(err error) ErrorKind {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ErrUnreachable
}
