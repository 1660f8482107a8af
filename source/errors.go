package source

import (
	"errors"
	"fmt"
)

// Kinds of failure. Match them with errors.Is.
var (
	// ErrTransport means the platform could not be reached or the body could not be read.
	ErrTransport = errors.New("transport failure")
	// ErrInvalidURL means no source recognizes the URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrNeedsAuthentication means the operation requires a credential the source does not hold.
	ErrNeedsAuthentication = errors.New("needs authentication")
	// ErrRequest means the platform rejected the request.
	ErrRequest = errors.New("request error")
	// ErrNoSuchResource means the platform has nothing at the requested location or quality.
	ErrNoSuchResource = errors.New("no such resource")
)

// Error is a failure of some kind with the context it happened in.
type Error struct {
	// Kind is one of the Err* values of this package.
	Kind error
	// Context is the platform message or the URL involved.
	Context string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Context != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Context, e.Err)
	case e.Context != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Context)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Transport wraps a connection or read failure.
func Transport(err error) error {
	return &Error{Kind: ErrTransport, Err: err}
}

// InvalidURL reports an unrecognized URL.
func InvalidURL(u string) error {
	return &Error{Kind: ErrInvalidURL, Context: u}
}

// NeedsAuthentication reports a missing or rejected credential.
func NeedsAuthentication(context string) error {
	return &Error{Kind: ErrNeedsAuthentication, Context: context}
}

// RequestError reports a request the platform rejected, with its message.
func RequestError(message string) error {
	return &Error{Kind: ErrRequest, Context: message}
}

// NoSuchResource reports a missing resource at context.
func NoSuchResource(context string) error {
	return &Error{Kind: ErrNoSuchResource, Context: context}
}

// Retryable reports whether repeating the operation can succeed once the
// caller changes something, which is only the case for a missing credential.
func Retryable(err error) bool {
	return errors.Is(err, ErrNeedsAuthentication)
}
