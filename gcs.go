// Package gcs provides the main Cloud Storage client and core operations.
package gcs

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5/util"

	gcserrors "github.com/micgeronimo/gcs-client/errors"
	"github.com/micgeronimo/gcs-client/gcstypes"
	"github.com/micgeronimo/gcs-client/internal/gcsapi"
	"github.com/micgeronimo/gcs-client/internal/validation"
)

const (
	// DefaultContentType is the MIME type used for uploads when none is specified
	DefaultContentType = "application/octet-stream"
)

// Download fetches the full content of an object and returns it as a byte
// slice. A missing object is a hard error here: unlike Exists and Delete,
// download has no "absence is fine" semantics.
//
// Returns:
//   - []byte: The object's full content
//   - error: Returns an error if the download fails, including 404
//
// Errors:
//   - ErrInvalidBucketName / ErrInvalidObjectName: If the names are invalid
//   - ErrAuth: If the authorized transport could not be obtained
//   - Service errors wrapped in Error type, status available via StatusCode
func (c *Client) Download(ctx context.Context, bucket, object string) ([]byte, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return nil, err
	}
	if err := validation.ValidateObjectName(object); err != nil {
		return nil, err
	}

	api, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}

	body, err := api.GetMedia(ctx, bucket, object)
	if err != nil {
		return nil, gcserrors.NewObjectError("download", bucket, object, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, gcserrors.NewObjectError("download", bucket, object, err)
	}
	return data, nil
}

// DownloadFile fetches the full content of an object, writes it to a local
// file, and returns the content as well. The file is created if it doesn't
// exist and truncated if it does; it is closed on every exit path. Local
// filesystem errors are surfaced directly, not reinterpreted.
//
// Example:
//
//	data, err := client.DownloadFile(ctx, "my-bucket", "report.csv", "/tmp/report.csv")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("wrote %d bytes\n", len(data))
func (c *Client) DownloadFile(ctx context.Context, bucket, object, path string) ([]byte, error) {
	if path == "" {
		return nil, gcserrors.NewObjectError("downloadFile", bucket, object, gcserrors.ErrInvalidInput).
			WithMessage("destination path cannot be empty")
	}

	data, err := c.Download(ctx, bucket, object)
	if err != nil {
		return nil, err
	}

	file, err := c.fs.Create(path)
	if err != nil {
		return nil, err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, err
	}
	return data, nil
}

// Upload reads a local file fully and issues a single insert call that
// replaces any existing object of the same name. No chunked or resumable
// upload is attempted. The MIME type defaults to application/octet-stream
// and can be overridden with WithContentType.
//
// Errors:
//   - ErrInvalidBucketName / ErrInvalidObjectName: If the names are invalid
//   - ErrAuth: If the authorized transport could not be obtained
//   - Local filesystem errors if sourcePath cannot be read, surfaced directly
//   - Service errors wrapped in Error type, including 404
//
// Example:
//
//	err := client.Upload(ctx, "my-bucket", "docs/report.pdf", "/path/to/report.pdf",
//	    gcs.WithContentType("application/pdf"),
//	)
func (c *Client) Upload(
	ctx context.Context,
	bucket, object, sourcePath string,
	opts ...gcstypes.UploadOption,
) error {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return err
	}
	if err := validation.ValidateObjectName(object); err != nil {
		return err
	}
	if sourcePath == "" {
		return gcserrors.NewObjectError("upload", bucket, object, gcserrors.ErrInvalidInput).
			WithMessage("source path cannot be empty")
	}

	data, err := util.ReadFile(c.fs, sourcePath)
	if err != nil {
		return err
	}

	return c.insert(ctx, "upload", bucket, object, data, opts)
}

// Put uploads byte data to an object. This is a convenience method for
// content that is already in memory; it shares Upload's single-insert,
// overwrite-on-conflict semantics.
func (c *Client) Put(
	ctx context.Context,
	bucket, object string,
	data []byte,
	opts ...gcstypes.UploadOption,
) error {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return err
	}
	if err := validation.ValidateObjectName(object); err != nil {
		return err
	}

	return c.insert(ctx, "put", bucket, object, data, opts)
}

// insert issues the object insert call shared by Upload and Put.
func (c *Client) insert(
	ctx context.Context,
	op, bucket, object string,
	data []byte,
	opts []gcstypes.UploadOption,
) error {
	cfg := gcstypes.UploadOptionConfig{
		ContentType: DefaultContentType,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	api, err := c.conn(ctx)
	if err != nil {
		return err
	}

	if _, err := api.Insert(ctx, bucket, object, cfg.ContentType, bytes.NewReader(data)); err != nil {
		return gcserrors.NewObjectError(op, bucket, object, err)
	}
	return nil
}

// Exists checks whether an object exists using a metadata-only GET.
// It returns false only when the service reports 404; any other failure is
// returned as an error, never absorbed into a boolean. Callers rely on
// Exists never failing for "object absent" and always failing for
// transient, auth, or permission problems.
//
// Example:
//
//	exists, err := client.Exists(ctx, "my-bucket", "data.txt")
//	if err != nil {
//	    return fmt.Errorf("failed to check existence: %w", err)
//	}
func (c *Client) Exists(ctx context.Context, bucket, object string) (bool, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return false, err
	}
	if err := validation.ValidateObjectName(object); err != nil {
		return false, err
	}

	api, err := c.conn(ctx)
	if err != nil {
		return false, err
	}

	if _, err := api.GetMetadata(ctx, bucket, object); err != nil {
		if gcserrors.StatusCode(err) == http.StatusNotFound {
			return false, nil
		}
		return false, gcserrors.NewObjectError("exists", bucket, object, err)
	}
	return true, nil
}

// IsUpdatedAfter reports whether an object was updated strictly after the
// given threshold. A missing object (404) and an object whose metadata
// carries no updated field both return false without error; equal
// timestamps return false. Any other service failure is returned as an
// error.
//
// The threshold is normalized to UTC before the comparison. Callers
// constructing thresholds from timestamp strings without zone information
// must parse them as UTC; that assumption is a deliberate policy of this
// client, not an implementation accident.
func (c *Client) IsUpdatedAfter(ctx context.Context, bucket, object string, ts time.Time) (bool, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return false, err
	}
	if err := validation.ValidateObjectName(object); err != nil {
		return false, err
	}

	api, err := c.conn(ctx)
	if err != nil {
		return false, err
	}

	obj, err := api.GetMetadata(ctx, bucket, object)
	if err != nil {
		if gcserrors.StatusCode(err) == http.StatusNotFound {
			return false, nil
		}
		return false, gcserrors.NewObjectError("isUpdatedAfter", bucket, object, err)
	}

	if obj.Updated == "" {
		return false, nil
	}
	updated, err := time.Parse(time.RFC3339, obj.Updated)
	if err != nil {
		return false, gcserrors.NewObjectError("isUpdatedAfter", bucket, object, err).
			WithMessage("malformed updated timestamp in service response")
	}

	ts = ts.UTC()
	c.log.Info().
		Str("bucket", bucket).
		Str("object", object).
		Time("updated", updated).
		Time("threshold", ts).
		Msg("comparing object update time against threshold")

	return updated.After(ts), nil
}

// Delete deletes an object, optionally scoped to a specific generation via
// WithGeneration (for versioned buckets, that exact historical version is
// deleted rather than the live object). It returns true on success and
// false without error when the object was already absent (404); any other
// failure is returned as an error.
func (c *Client) Delete(
	ctx context.Context,
	bucket, object string,
	opts ...gcstypes.DeleteOption,
) (bool, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return false, err
	}
	if err := validation.ValidateObjectName(object); err != nil {
		return false, err
	}

	cfg := gcstypes.DeleteOptionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	api, err := c.conn(ctx)
	if err != nil {
		return false, err
	}

	if err := api.Delete(ctx, bucket, object, cfg.Generation); err != nil {
		if gcserrors.StatusCode(err) == http.StatusNotFound {
			return false, nil
		}
		return false, gcserrors.NewObjectError("delete", bucket, object, err)
	}
	return true, nil
}

// List returns the names of all objects in a bucket matching the given
// filters, following the service's page cursor until exhaustion. Pages are
// fetched strictly sequentially because each page's request depends on the
// prior page's cursor. Server-returned order is preserved; entries without
// a name are skipped.
//
// A page without items terminates the listing and returns everything
// accumulated so far; this also covers the "prefix matches nothing" case.
// An absent or empty next page token likewise terminates. There is no
// client-side bound on the number of pages unless WithMaxPages was set on
// the client: cursor exhaustion is a guarantee of the service, treated as a
// trust boundary rather than defended against.
//
// Example:
//
//	names, err := client.List(ctx, "my-bucket", gcs.WithPrefix("logs/"))
//	if err != nil {
//	    return err
//	}
//	for _, name := range names {
//	    fmt.Println(name)
//	}
func (c *Client) List(ctx context.Context, bucket string, opts ...gcstypes.ListOption) ([]string, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return nil, err
	}

	cfg := gcstypes.ListOptionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	api, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	pageToken := ""
	pages := 0

	for {
		page, err := api.ListPage(ctx, gcsapi.ListPageQuery{
			Bucket:     bucket,
			Prefix:     cfg.Prefix,
			Versions:   cfg.Versions,
			MaxResults: cfg.MaxResults,
			PageToken:  pageToken,
		})
		if err != nil {
			return nil, gcserrors.NewError("list", err).WithBucket(bucket)
		}
		pages++

		if len(page.Items) == 0 {
			c.log.Info().
				Str("bucket", bucket).
				Str("prefix", cfg.Prefix).
				Msg("no objects matched prefix")
			return names, nil
		}

		for _, item := range page.Items {
			if item == nil || item.Name == "" {
				continue
			}
			names = append(names, item.Name)
		}

		// Both an absent and an empty token mean no further pages; never
		// issue a request with an empty cursor.
		if page.NextPageToken == "" {
			return names, nil
		}
		if c.cfg.MaxPages > 0 && pages >= c.cfg.MaxPages {
			return names, gcserrors.NewError("list", gcserrors.ErrMaxPagesExceeded).WithBucket(bucket)
		}

		c.log.Debug().
			Str("bucket", bucket).
			Int("pages", pages).
			Int("accumulated", len(names)).
			Msg("following listing cursor")
		pageToken = page.NextPageToken
	}
}

// GetMetadata retrieves metadata for an object without downloading the
// content. Unlike Exists, a missing object is an error here, carrying
// ErrObjectNotFound in the chain.
//
// Example:
//
//	meta, err := client.GetMetadata(ctx, "my-bucket", "document.pdf")
//	if err != nil {
//	    return fmt.Errorf("failed to get metadata: %w", err)
//	}
//	fmt.Printf("updated: %v\n", meta.Updated)
func (c *Client) GetMetadata(ctx context.Context, bucket, object string) (*gcstypes.ObjectMetadata, error) {
	if err := validation.ValidateBucketName(bucket); err != nil {
		return nil, err
	}
	if err := validation.ValidateObjectName(object); err != nil {
		return nil, err
	}

	api, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}

	obj, err := api.GetMetadata(ctx, bucket, object)
	if err != nil {
		if gcserrors.StatusCode(err) == http.StatusNotFound {
			return nil, gcserrors.NewObjectError("getMetadata", bucket, object, gcserrors.ErrObjectNotFound)
		}
		return nil, gcserrors.NewObjectError("getMetadata", bucket, object, err)
	}

	meta := &gcstypes.ObjectMetadata{
		Name:        obj.Name,
		Bucket:      obj.Bucket,
		ContentType: obj.ContentType,
		Size:        obj.Size,
		Generation:  obj.Generation,
		Etag:        obj.Etag,
	}
	if obj.Updated != "" {
		updated, err := time.Parse(time.RFC3339, obj.Updated)
		if err != nil {
			return nil, gcserrors.NewObjectError("getMetadata", bucket, object, err).
				WithMessage("malformed updated timestamp in service response")
		}
		meta.Updated = updated
	}
	return meta, nil
}
