package apod

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against classified failures.
var (
	ErrNotFound  = errors.New("apod: no result for date")
	ErrMalformed = errors.New("apod: malformed response")
	ErrTransport = errors.New("apod: transport failure")
)

// Kind distinguishes provider-side failures.
type Kind int

const (
	// KindNotFound means the provider answered with code 400 or 404.
	KindNotFound Kind = iota + 1
	// KindMalformed means a response arrived but could not be understood.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ProviderError is returned when the provider answered but no record could be
// produced. Msg holds the provider's own wording when it sent one.
type ProviderError struct {
	Kind   Kind
	Status int // HTTP status code
	Code   int // code field from the error body, if numeric
	Msg    string
	Err    error
}

func (e *ProviderError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		return fmt.Sprintf("apod: %s (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("apod: %s (status %d): %s", e.Kind, e.Status, msg)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Is matches ErrNotFound or ErrMalformed by kind.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrMalformed:
		return e.Kind == KindMalformed
	}
	return false
}

// TransportError is returned when no response could be obtained.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is matches ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
