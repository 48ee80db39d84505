// Package gcsapi defines the narrow storage service call surface used by this
// module, to enable testing and mocking.
package gcsapi

import (
	"context"
	"io"

	"google.golang.org/api/googleapi"
	storage "google.golang.org/api/storage/v1"
)

// ListPageQuery describes a single page request of a listing.
type ListPageQuery struct {
	// Bucket is the bucket to list
	Bucket string

	// Prefix filters objects whose name begins with this prefix
	Prefix string

	// Versions lists all versions of each object when true
	Versions bool

	// MaxResults is the requested page size; zero lets the service choose
	MaxResults int64

	// PageToken is the cursor returned by the previous page, echoed
	// verbatim. Empty on the first page.
	PageToken string
}

// API defines the storage service operations used by this module.
// Failures carry their HTTP status as a *googleapi.Error in the chain.
type API interface {
	// GetMetadata retrieves object metadata without retrieving the content
	GetMetadata(ctx context.Context, bucket, object string) (*storage.Object, error)

	// GetMedia retrieves the full content of an object
	GetMedia(ctx context.Context, bucket, object string) (io.ReadCloser, error)

	// Insert uploads an object, replacing any existing object of the same name
	Insert(ctx context.Context, bucket, object, contentType string, media io.Reader) (*storage.Object, error)

	// Delete deletes an object, optionally scoped to one generation
	// (zero means the live object)
	Delete(ctx context.Context, bucket, object string, generation int64) error

	// ListPage fetches one page of a listing
	ListPage(ctx context.Context, q ListPageQuery) (*storage.Objects, error)
}

// service implements API against the storage/v1 JSON API.
type service struct {
	svc *storage.Service
}

// NewService wraps a storage service handle in the API interface.
func NewService(svc *storage.Service) API {
	return &service{svc: svc}
}

func (s *service) GetMetadata(ctx context.Context, bucket, object string) (*storage.Object, error) {
	return s.svc.Objects.Get(bucket, object).Context(ctx).Do()
}

func (s *service) GetMedia(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	resp, err := s.svc.Objects.Get(bucket, object).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (s *service) Insert(
	ctx context.Context,
	bucket, object, contentType string,
	media io.Reader,
) (*storage.Object, error) {
	return s.svc.Objects.
		Insert(bucket, &storage.Object{Name: object}).
		Media(media, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
}

func (s *service) Delete(ctx context.Context, bucket, object string, generation int64) error {
	call := s.svc.Objects.Delete(bucket, object)
	if generation != 0 {
		call = call.Generation(generation)
	}
	return call.Context(ctx).Do()
}

func (s *service) ListPage(ctx context.Context, q ListPageQuery) (*storage.Objects, error) {
	call := s.svc.Objects.List(q.Bucket)
	if q.Prefix != "" {
		call = call.Prefix(q.Prefix)
	}
	if q.Versions {
		call = call.Versions(true)
	}
	if q.MaxResults > 0 {
		call = call.MaxResults(q.MaxResults)
	}
	if q.PageToken != "" {
		call = call.PageToken(q.PageToken)
	}
	return call.Context(ctx).Do()
}
