package apperror

import (
	"errors"
	"fmt"
)

// MaxExcerptLength bounds the upstream body excerpt carried by UpstreamError.
const MaxExcerptLength = 200

var (
	// ErrInvalidArgument is returned when neither a handle nor a channel id is supplied.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when the upstream has no matching entity.
	ErrNotFound = errors.New("not found")
)

// UpstreamError reports a failed call to the video platform API.
// Status is 0 when the request never produced an HTTP response.
type UpstreamError struct {
	Operation string
	Status    int
	Excerpt   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("YouTube API error: %s", e.Excerpt)
}

// NewUpstreamError builds an UpstreamError with the body truncated to MaxExcerptLength characters.
func NewUpstreamError(operation string, status int, body string) *UpstreamError {
	return &UpstreamError{Operation: operation, Status: status, Excerpt: Truncate(body, MaxExcerptLength)}
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// IsUpstream reports whether err wraps an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NotFound returns an error matching ErrNotFound with msg as its text.
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// InvalidArgument returns an error matching ErrInvalidArgument with msg as its text.
func InvalidArgument(msg string) error {
	return &kindError{kind: ErrInvalidArgument, msg: msg}
}
