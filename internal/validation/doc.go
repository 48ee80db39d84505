// Package validation provides centralized input validation logic.
// This includes bucket name validation and object name validation.
//
// All user inputs are validated before being sent to the storage service to
// fail fast on requests the service would reject anyway.
package validation
