// Package testutil provides test utilities and mocks for storage operations.
// This package is internal and should only be used for testing within this module.
package testutil

import (
	"bytes"
	"context"
	"io"

	storage "google.golang.org/api/storage/v1"

	"github.com/micgeronimo/gcs-client/internal/gcsapi"
)

// MockAPI is a mock implementation of the gcsapi.API interface for testing.
// It allows customization of each storage operation through function fields
// and records how many times each operation was invoked.
type MockAPI struct {
	GetMetadataFunc func(ctx context.Context, bucket, object string) (*storage.Object, error)
	GetMediaFunc    func(ctx context.Context, bucket, object string) (io.ReadCloser, error)
	InsertFunc      func(ctx context.Context, bucket, object, contentType string, media io.Reader) (*storage.Object, error)
	DeleteFunc      func(ctx context.Context, bucket, object string, generation int64) error
	ListPageFunc    func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error)

	GetMetadataCalls int
	GetMediaCalls    int
	InsertCalls      int
	DeleteCalls      int
	ListPageCalls    int
}

// GetMetadata mocks the object metadata GET.
func (m *MockAPI) GetMetadata(ctx context.Context, bucket, object string) (*storage.Object, error) {
	m.GetMetadataCalls++
	if m.GetMetadataFunc != nil {
		return m.GetMetadataFunc(ctx, bucket, object)
	}
	return &storage.Object{Name: object, Bucket: bucket}, nil
}

// GetMedia mocks the object media GET.
func (m *MockAPI) GetMedia(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	m.GetMediaCalls++
	if m.GetMediaFunc != nil {
		return m.GetMediaFunc(ctx, bucket, object)
	}
	return io.NopCloser(bytes.NewReader(nil)), nil
}

// Insert mocks the object insert.
func (m *MockAPI) Insert(
	ctx context.Context,
	bucket, object, contentType string,
	media io.Reader,
) (*storage.Object, error) {
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, bucket, object, contentType, media)
	}
	return &storage.Object{Name: object, Bucket: bucket}, nil
}

// Delete mocks the object delete.
func (m *MockAPI) Delete(ctx context.Context, bucket, object string, generation int64) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, bucket, object, generation)
	}
	return nil
}

// ListPage mocks one page of a listing.
func (m *MockAPI) ListPage(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
	m.ListPageCalls++
	if m.ListPageFunc != nil {
		return m.ListPageFunc(ctx, q)
	}
	return &storage.Objects{}, nil
}
