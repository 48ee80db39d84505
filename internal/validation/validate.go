// Package validation provides centralized input validation logic.
// This includes bucket name validation and object name validation.
//
// All user inputs are validated before being sent to the storage service to
// fail fast on requests the service would reject anyway.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/micgeronimo/gcs-client/errors"
)

// ValidateBucketName validates that a bucket name complies with Cloud Storage
// naming rules. Returns ErrInvalidBucketName if the bucket name is invalid.
func ValidateBucketName(bucket string) error {
	if bucket == "" {
		return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	// Names containing dots may be up to 222 characters; each dot-separated
	// component is limited to 63.
	maxLen := 63
	if strings.Contains(bucket, ".") {
		maxLen = 222
	}
	if len(bucket) < 3 || len(bucket) > maxLen {
		return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage("bucket name length is out of range")
	}
	for _, component := range strings.Split(bucket, ".") {
		if component == "" || len(component) > 63 {
			return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
				WithBucket(bucket).
				WithMessage("bucket name component length is out of range")
		}
	}

	for _, char := range bucket {
		if !isValidBucketChar(char) {
			return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
				WithBucket(bucket).
				WithMessage("bucket name can only contain lowercase letters, numbers, dashes, underscores, and dots")
		}
	}

	if !isLowerAlnum(rune(bucket[0])) || !isLowerAlnum(rune(bucket[len(bucket)-1])) {
		return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage("bucket name must start and end with a letter or number")
	}

	if strings.HasPrefix(bucket, "goog") {
		return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage("bucket name cannot begin with the goog prefix")
	}

	if isIPAddress(bucket) {
		return errors.NewError("validateBucketName", errors.ErrInvalidBucketName).
			WithBucket(bucket).
			WithMessage("bucket name cannot be formatted as an IP address")
	}

	return nil
}

// ValidateObjectName validates that an object name is valid according to
// Cloud Storage rules. Object names can contain any UTF-8 characters except
// control characters, are limited to 1024 bytes, and cannot be "." or "..".
func ValidateObjectName(object string) error {
	if object == "" {
		return errors.NewError("validateObjectName", errors.ErrInvalidObjectName).
			WithObject(object).
			WithMessage("object name cannot be empty")
	}

	if len(object) > 1024 {
		return errors.NewError("validateObjectName", errors.ErrInvalidObjectName).
			WithObject(object).
			WithMessage("object name cannot exceed 1024 bytes")
	}

	if !utf8.ValidString(object) {
		return errors.NewError("validateObjectName", errors.ErrInvalidObjectName).
			WithObject(object).
			WithMessage("object name must be valid UTF-8")
	}

	if object == "." || object == ".." {
		return errors.NewError("validateObjectName", errors.ErrInvalidObjectName).
			WithObject(object).
			WithMessage("object name cannot be . or ..")
	}

	if hasControlCharacters(object) {
		return errors.NewError("validateObjectName", errors.ErrInvalidObjectName).
			WithObject(object).
			WithMessage("object name cannot contain control characters")
	}

	return nil
}

// isValidBucketChar checks if a character is valid in a bucket name
func isValidBucketChar(char rune) bool {
	return isLowerAlnum(char) || char == '.' || char == '-' || char == '_'
}

// isLowerAlnum checks if a character is a lowercase letter or digit
func isLowerAlnum(char rune) bool {
	return (char >= '0' && char <= '9') || (char >= 'a' && char <= 'z')
}

// isIPAddress checks if a string is formatted as an IPv4 address
func isIPAddress(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}

	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 {
			return false
		}
		num := 0
		for _, char := range part {
			if char < '0' || char > '9' {
				return false
			}
			num = num*10 + int(char-'0')
		}
		if num > 255 {
			return false
		}
	}

	return true
}

// hasControlCharacters checks for control characters in the name
func hasControlCharacters(name string) bool {
	for _, char := range name {
		if unicode.IsControl(char) {
			return true
		}
	}
	return false
}
