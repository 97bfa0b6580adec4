package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewTVShowNotFoundError creates a specific error for a TV show the media database does not know about.
func NewTVShowNotFoundError(id string) *ErrNotFound {
	return &ErrNotFound{
		Resource: "tv show",
		ID:       id,
	}
}

// ErrUpstream is returned when a call to the media database fails before a usable
// response is available (transport failure, unreadable or malformed body).
type ErrUpstream struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *ErrUpstream) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("upstream %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ErrUpstream) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstream) Is(target error) bool {
	_, ok := target.(*ErrUpstream)
	return ok
}

// NewUpstreamError creates a new ErrUpstream.
func NewUpstreamError(op, url string, err error) *ErrUpstream {
	return &ErrUpstream{
		Op:  op,
		URL: url,
		Err: err,
	}
}
