// Package gcs provides client initialization and configuration.
//
// The Client provides a high-level interface for interacting with Google
// Cloud Storage, supporting object upload, download, existence and freshness
// checks, deletion, and paginated listing over an authorized transport.
package gcs

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"

	gcserrors "github.com/micgeronimo/gcs-client/errors"
	"github.com/micgeronimo/gcs-client/gcstypes"
	"github.com/micgeronimo/gcs-client/internal/gcsapi"
)

// Client represents a Cloud Storage client bound to one credential identity.
// The authorized service handle is created lazily on first use and reused for
// all subsequent calls. The client holds no other state across operations.
type Client struct {
	// cfg holds the resolved client configuration
	cfg gcstypes.ClientConfig

	// api is the lazily created storage service call surface
	api gcsapi.API

	// mu guards lazy creation of api
	mu sync.Mutex

	// log receives informational events
	log zerolog.Logger

	// fs is the filesystem abstraction for local reads and writes
	fs billy.Filesystem
}

// New creates a new Cloud Storage client with the provided options.
// Credentials are resolved from the options; when none are given, application
// default credentials are used. The service handle itself is not built until
// the first operation needs it.
//
// Example:
//
//	client, err := gcs.New(
//	    gcs.WithCredentialsFile("/etc/gcs/key.json"),
//	    gcs.WithLogger(logger),
//	)
func New(opts ...gcstypes.Option) (*Client, error) {
	cfg := gcstypes.ClientConfig{
		Scopes: []string{storage.DevstorageFullControlScope},
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	filesystem := cfg.Filesystem
	if filesystem == nil {
		filesystem = osfs.New("/")
	}

	return &Client{
		cfg: cfg,
		log: cfg.Logger,
		fs:  filesystem,
	}, nil
}

// NewWithAPI creates a client around a custom API implementation.
// This is primarily used for testing with mocked call surfaces.
func NewWithAPI(api gcsapi.API, opts ...gcstypes.Option) *Client {
	client, _ := New(opts...)
	client.api = api
	return client
}

// conn returns the authorized service call surface, creating it on first use.
// Acquisition failures surface as ErrAuth and are never interpreted locally.
func (c *Client) conn(ctx context.Context) (gcsapi.API, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api != nil {
		return c.api, nil
	}

	svc, err := c.newService(ctx)
	if err != nil {
		return nil, err
	}
	c.api = gcsapi.NewService(svc)
	return c.api, nil
}

// newService builds the storage/v1 service handle from the configured
// credential identity.
func (c *Client) newService(ctx context.Context) (*storage.Service, error) {
	clientOpts, err := c.transportOptions(ctx)
	if err != nil {
		return nil, err
	}

	if c.cfg.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(c.cfg.Endpoint))
	}
	if c.cfg.UserAgent != "" {
		clientOpts = append(clientOpts, option.WithUserAgent(c.cfg.UserAgent))
	}

	svc, err := storage.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, gcserrors.NewError("connect", gcserrors.ErrAuth).WithMessage(err.Error())
	}
	return svc, nil
}

// transportOptions resolves the authorized transport from the configured
// credentials, in precedence order: caller-owned HTTP client, no
// authentication, service account key (inline or file), application default
// credentials.
func (c *Client) transportOptions(ctx context.Context) ([]option.ClientOption, error) {
	if c.cfg.HTTPClient != nil {
		return []option.ClientOption{option.WithHTTPClient(c.cfg.HTTPClient)}, nil
	}
	if c.cfg.WithoutAuth {
		return []option.ClientOption{option.WithoutAuthentication()}, nil
	}

	keyJSON := c.cfg.CredentialsJSON
	if keyJSON == nil && c.cfg.CredentialsFile != "" {
		data, err := os.ReadFile(c.cfg.CredentialsFile)
		if err != nil {
			return nil, gcserrors.NewError("connect", gcserrors.ErrAuth).WithMessage(err.Error())
		}
		keyJSON = data
	}

	var httpClient *http.Client
	if keyJSON != nil {
		jwtCfg, err := google.JWTConfigFromJSON(keyJSON, c.cfg.Scopes...)
		if err != nil {
			return nil, gcserrors.NewError("connect", gcserrors.ErrAuth).WithMessage(err.Error())
		}
		httpClient = jwtCfg.Client(ctx)
	} else {
		var err error
		httpClient, err = google.DefaultClient(ctx, c.cfg.Scopes...)
		if err != nil {
			return nil, gcserrors.NewError("connect", gcserrors.ErrAuth).WithMessage(err.Error())
		}
	}

	return []option.ClientOption{option.WithHTTPClient(httpClient)}, nil
}

// SetFilesystem sets the filesystem implementation for the client.
// This is useful for testing or when the filesystem needs to be changed after creation.
func (c *Client) SetFilesystem(filesystem billy.Filesystem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fs = filesystem
}
