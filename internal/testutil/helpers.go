// Package testutil provides test helper functions.
package testutil

import (
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	storage "google.golang.org/api/storage/v1"
)

// ObjectsPage builds one page of a listing response with the given object
// names and next page token. An empty token means this is the last page.
func ObjectsPage(names []string, nextPageToken string) *storage.Objects {
	page := &storage.Objects{NextPageToken: nextPageToken}
	for _, name := range names {
		page.Items = append(page.Items, &storage.Object{Name: name})
	}
	return page
}

// MetadataObject builds an object metadata response with an RFC3339 updated
// field. Pass the zero time to omit the updated field.
func MetadataObject(bucket, name string, updated time.Time) *storage.Object {
	obj := &storage.Object{Name: name, Bucket: bucket}
	if !updated.IsZero() {
		obj.Updated = updated.Format(time.RFC3339Nano)
	}
	return obj
}

// APIError builds a *googleapi.Error with the given status code, the failure
// shape produced by the storage service bindings.
func APIError(code int) *googleapi.Error {
	return &googleapi.Error{
		Code:    code,
		Message: http.StatusText(code),
	}
}

// NotFoundError returns a 404 API error.
func NotFoundError() *googleapi.Error {
	return APIError(http.StatusNotFound)
}
