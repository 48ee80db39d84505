// Package gcstypes provides shared type definitions for the GCS client module.
package gcstypes

import (
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
)

// ObjectMetadata contains the metadata fields of a storage object consumed by
// this module. It is only ever constructed by parsing a service response.
type ObjectMetadata struct {
	// Name is the object name within its bucket
	Name string

	// Bucket is the bucket containing the object
	Bucket string

	// ContentType is the MIME type of the object
	ContentType string

	// Size is the object size in bytes
	Size uint64

	// Updated is the object's last modification time. Zero when the service
	// response carried no updated field.
	Updated time.Time

	// Generation identifies the content version of the object in a
	// versioning-enabled bucket
	Generation int64

	// Etag is the entity tag for the object
	Etag string
}

// Option is a functional option for configuring the client.
type Option func(*ClientConfig)

// ClientConfig holds configuration for creating a client.
type ClientConfig struct {
	// CredentialsJSON is the service account key used to build the
	// authorized transport. Takes precedence over CredentialsFile.
	CredentialsJSON []byte

	// CredentialsFile is a path to a service account key file
	CredentialsFile string

	// Scopes are the OAuth2 scopes requested for the transport.
	// Defaults to full control over storage objects.
	Scopes []string

	// HTTPClient overrides credential resolution with a caller-owned
	// authorized HTTP client
	HTTPClient *http.Client

	// Endpoint overrides the storage service base URL. Used for testing
	// against local fakes.
	Endpoint string

	// WithoutAuth disables authentication entirely. Only meaningful
	// together with Endpoint.
	WithoutAuth bool

	// UserAgent is sent with every request when set
	UserAgent string

	// MaxPages caps the number of page requests a single List call may
	// issue. Zero means unbounded; the service guarantees eventual cursor
	// exhaustion.
	MaxPages int

	// Logger receives informational events. Defaults to a no-op logger.
	Logger zerolog.Logger

	// Filesystem is the filesystem used for local reads and writes.
	// Defaults to the OS filesystem.
	Filesystem billy.Filesystem
}

// UploadOption is a functional option for upload operations.
type UploadOption func(*UploadOptionConfig)

// UploadOptionConfig holds per-upload configuration.
type UploadOptionConfig struct {
	// ContentType is the MIME type set on the inserted object
	ContentType string
}

// DeleteOption is a functional option for delete operations.
type DeleteOption func(*DeleteOptionConfig)

// DeleteOptionConfig holds per-delete configuration.
type DeleteOptionConfig struct {
	// Generation scopes the delete to one historical version of the
	// object. Zero means the live object.
	Generation int64
}

// ListOption is a functional option for list operations.
type ListOption func(*ListOptionConfig)

// ListOptionConfig holds per-list configuration.
type ListOptionConfig struct {
	// Prefix filters objects whose name begins with this prefix
	Prefix string

	// Versions lists all versions of each object when true
	Versions bool

	// MaxResults is the page size requested from the service. Zero lets
	// the service choose.
	MaxResults int64
}
