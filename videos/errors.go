package videos

import "fmt"

// DecodeUnavailableError indicates that no decode/rasterize backend could be
// obtained for extraction.
type DecodeUnavailableError struct {
	Backend string
}

func (e *DecodeUnavailableError) Error() string {
	if e.Backend == "" {
		return "no media decode backend available"
	}
	return fmt.Sprintf("media decode backend %s is not available", e.Backend)
}

// LoadFailureError indicates that a media source could not be loaded or
// decoded.
type LoadFailureError struct {
	Ref   string
	Cause error
}

func (e *LoadFailureError) Error() string {
	return fmt.Sprintf("failed to load media source %s: %v", e.Ref, e.Cause)
}

func (e *LoadFailureError) Unwrap() error {
	return e.Cause
}

// EncodeFailureError indicates that a captured frame could not be serialized
// to an image.
type EncodeFailureError struct {
	Ref   string
	Cause error
}

func (e *EncodeFailureError) Error() string {
	return fmt.Sprintf("failed to encode thumbnail for %s: %v", e.Ref, e.Cause)
}

func (e *EncodeFailureError) Unwrap() error {
	return e.Cause
}

// helper functions for error handling
func IsDecodeUnavailableError(err error) bool {
	_, ok := err.(*DecodeUnavailableError)
	return ok
}

func IsLoadFailureError(err error) bool {
	_, ok := err.(*LoadFailureError)
	return ok
}

func IsEncodeFailureError(err error) bool {
	_, ok := err.(*EncodeFailureError)
	return ok
}

// factory functions for extraction errors
func NewDecodeUnavailableError(backend string) error {
	return &DecodeUnavailableError{Backend: backend}
}

func NewLoadFailureError(ref string, cause error) error {
	return &LoadFailureError{Ref: ref, Cause: cause}
}

func NewEncodeFailureError(ref string, cause error) error {
	return &EncodeFailureError{Ref: ref, Cause: cause}
}
