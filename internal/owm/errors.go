package owm

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies provider failures.
type Kind int

// Provider failure kinds.
const (
	KindUpstream Kind = iota
	KindNotFound
	KindInvalidKey
	KindMalformedResponse
)

// Errors matched by *Error through errors.Is.
var (
	ErrUpstream          = errors.New("weather provider error")
	ErrNotFound          = errors.New("city not found")
	ErrInvalidKey        = errors.New("invalid api key")
	ErrMalformedResponse = errors.New("malformed provider response")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidKey:
		return ErrInvalidKey
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return ErrUpstream
	}
}

// Error is a normalized provider failure. Message is the provider's own
// message when it sent one.
type Error struct {
	Kind     Kind
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %v (status %d): %s", e.Endpoint, e.Kind.sentinel(), e.Status, msg)
	}
	return fmt.Sprintf("%s: %v: %s", e.Endpoint, e.Kind.sentinel(), msg)
}

// Is reports whether target is the sentinel of the error kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func classify(endpoint string, status int, env envelope) *Error {
	code := status
	if status == http.StatusOK {
		if c, ok := env.code(); ok {
			code = c
		}
	}

	kind := KindUpstream
	switch code {
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindInvalidKey
	}

	return &Error{Kind: kind, Endpoint: endpoint, Status: code, Message: env.Message}
}
