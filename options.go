// Package gcs provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package gcs

import (
	"net/http"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/micgeronimo/gcs-client/gcstypes"
)

// WithCredentialsJSON sets the service account key used to build the
// authorized transport. Takes precedence over WithCredentialsFile.
func WithCredentialsJSON(key []byte) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.CredentialsJSON = key
	}
}

// WithCredentialsFile sets the path to a service account key file used to
// build the authorized transport.
func WithCredentialsFile(path string) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.CredentialsFile = path
	}
}

// WithScopes sets the OAuth2 scopes requested for the transport.
// Defaults to full control over storage objects.
func WithScopes(scopes ...string) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		if len(scopes) > 0 {
			c.Scopes = scopes
		}
	}
}

// WithHTTPClient provides a caller-owned authorized HTTP client, bypassing
// credential resolution entirely. Use this when the host environment already
// manages the authorized transport.
func WithHTTPClient(client *http.Client) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithEndpoint sets a custom storage service base URL.
// This is useful for local testing against a storage fake.
func WithEndpoint(endpoint string) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithoutAuthentication disables authentication entirely.
// Only use this together with WithEndpoint against a local fake.
func WithoutAuthentication() gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.WithoutAuth = true
	}
}

// WithUserAgent sets the user agent sent with every request.
func WithUserAgent(ua string) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.UserAgent = ua
	}
}

// WithMaxPages caps the number of page requests a single List call may issue.
// Default is 0 (unbounded): listings terminate when the service stops
// returning a page token, which the service guarantees. A non-zero cap makes
// List return the accumulated names together with ErrMaxPagesExceeded once
// the cap is reached.
func WithMaxPages(maxPages int) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		if maxPages > 0 {
			c.MaxPages = maxPages
		}
	}
}

// WithLogger sets the logger that receives informational events.
// Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.Logger = logger
	}
}

// WithFilesystem sets a custom filesystem implementation for local file
// operations. This allows using in-memory filesystems for testing.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem billy.Filesystem) gcstypes.Option {
	return func(c *gcstypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithContentType sets the MIME type for upload operations.
// Defaults to application/octet-stream.
func WithContentType(contentType string) gcstypes.UploadOption {
	return func(c *gcstypes.UploadOptionConfig) {
		c.ContentType = contentType
	}
}

// WithGeneration scopes a delete to one historical version of the object.
// In a versioning-enabled bucket this permanently deletes that exact version
// rather than the live object.
func WithGeneration(generation int64) gcstypes.DeleteOption {
	return func(c *gcstypes.DeleteOptionConfig) {
		c.Generation = generation
	}
}

// WithPrefix filters a listing to objects whose name begins with the prefix.
func WithPrefix(prefix string) gcstypes.ListOption {
	return func(c *gcstypes.ListOptionConfig) {
		c.Prefix = prefix
	}
}

// WithVersions lists all versions of each object instead of only the live one.
func WithVersions(versions bool) gcstypes.ListOption {
	return func(c *gcstypes.ListOptionConfig) {
		c.Versions = versions
	}
}

// WithMaxResults sets the page size requested from the service.
// Zero lets the service choose; the service may return fewer items per page
// regardless.
func WithMaxResults(maxResults int64) gcstypes.ListOption {
	return func(c *gcstypes.ListOptionConfig) {
		if maxResults > 0 {
			c.MaxResults = maxResults
		}
	}
}
