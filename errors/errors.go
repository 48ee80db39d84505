// Package errors provides error types and handling for Google Cloud Storage operations.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Error represents a storage operation error with context about the operation
// that failed. It wraps the underlying API error with additional context for
// better debugging.
type Error struct {
	// Op is the operation that failed (e.g., "upload", "download", "delete")
	Op string

	// Bucket is the bucket name (if applicable)
	Bucket string

	// Object is the object name (if applicable)
	Object string

	// Err is the underlying error from the Google API client or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Object != "" {
		return fmt.Sprintf("gcs.%s %s/%s: %v", e.Op, e.Bucket, e.Object, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("gcs.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Object != "" {
		return fmt.Sprintf("gcs.%s object %s: %v", e.Op, e.Object, e.Err)
	}
	return fmt.Sprintf("gcs.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithObject adds object name context to an existing error.
func (e *Error) WithObject(object string) *Error {
	e.Object = object
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewObjectError creates a new Error with bucket and object context.
func NewObjectError(op, bucket, object string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Object: object,
		Err:    err,
	}
}

// Sentinel errors for common storage operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrAuth indicates that the authorized transport could not be obtained
	ErrAuth = errors.New("gcs: authentication failed")

	// ErrObjectNotFound indicates that the requested object does not exist
	ErrObjectNotFound = errors.New("gcs: object not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("gcs: invalid input")

	// ErrInvalidBucketName indicates that the bucket name is invalid
	ErrInvalidBucketName = errors.New("gcs: invalid bucket name")

	// ErrInvalidObjectName indicates that the object name is invalid
	ErrInvalidObjectName = errors.New("gcs: invalid object name")

	// ErrMaxPagesExceeded indicates that a listing hit the configured page cap
	ErrMaxPagesExceeded = errors.New("gcs: max pages exceeded")
)

// StatusCode extracts the HTTP status code carried by an error chain.
// Returns 0 if the chain contains no *googleapi.Error.
func StatusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

// IsNotFound reports whether an error indicates that an object was not found.
// It recognizes both the ErrObjectNotFound sentinel and a 404 status carried
// by a *googleapi.Error anywhere in the chain.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrObjectNotFound) {
		return true
	}
	return StatusCode(err) == http.StatusNotFound
}

// IsAuth checks if an error indicates that credential or transport
// acquisition failed.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// IsInvalidInput checks if an error indicates invalid input.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidBucketName) ||
		errors.Is(err, ErrInvalidObjectName)
}
