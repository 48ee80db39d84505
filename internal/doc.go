// Package internal contains private implementation details for the GCS client module.
// These packages are not intended for external use and may change without notice.
//
// The internal packages are organized as follows:
//   - gcsapi: The narrow storage service call surface and its storage/v1 binding
//   - validation: Input validation logic
//   - testutil: Mocks and helpers for tests
package internal
