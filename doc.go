// Package gcs provides a thin Go client for Google Cloud Storage objects.
// It wraps the storage/v1 JSON API to expose upload, download, existence and
// freshness checks, deletion, and paginated listing against named buckets,
// authenticating once per configured credential identity and reusing that
// authorized channel for all calls.
//
// The client deliberately stays a pass-through: no retries, no caching, no
// multipart or resumable uploads, and no internal concurrency. Every
// operation issues one or more request/response cycles and blocks until each
// completes. Failures propagate unchanged except for the three status-aware
// operations (Exists, IsUpdatedAfter, Delete), which absorb a 404 into a
// definitive boolean and surface everything else.
//
// Key behaviors:
//   - Lazy creation of the authorized service handle on first use
//   - Typed errors with bucket/object context and status code extraction
//   - Cursor-following listing that terminates on absent or empty page tokens
//   - Input validation of bucket and object names before any remote call
//   - Pluggable filesystem and logger for testing and observability
//
// A client is safe for sequential reuse by one owner. Safety under
// concurrent use by multiple callers is not part of this contract.
//
// Example usage:
//
//	client, err := gcs.New(gcs.WithCredentialsFile("/etc/gcs/key.json"))
//	if err != nil {
//	    return err
//	}
//
//	// Upload a file
//	err = client.Upload(ctx, "my-bucket", "path/file.txt", "/local/file.txt")
//	if err != nil {
//	    return err
//	}
package gcs
