// Package gcsapi tests the storage/v1-backed implementation of the call
// surface against a local fake service.
package gcsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

func newFakeService(t *testing.T, handler http.Handler) (API, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := storage.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(server.URL),
	)
	require.NoError(t, err)
	return NewService(svc), server
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":{"code":404,"message":"Not Found"}}`))
}

func TestService_GetMetadata(t *testing.T) {
	api, _ := newFakeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path != "/b/test-bucket/o/data.txt" {
			writeNotFound(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&storage.Object{
			Name:    "data.txt",
			Bucket:  "test-bucket",
			Updated: "2024-02-01T08:30:00Z",
		})
	}))

	obj, err := api.GetMetadata(context.Background(), "test-bucket", "data.txt")
	require.NoError(t, err)
	assert.Equal(t, "data.txt", obj.Name)
	assert.Equal(t, "2024-02-01T08:30:00Z", obj.Updated)
}

func TestService_GetMetadata_NotFoundCarriesStatus(t *testing.T) {
	api, _ := newFakeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeNotFound(w)
	}))

	_, err := api.GetMetadata(context.Background(), "test-bucket", "missing.txt")
	require.Error(t, err)

	var apiErr *googleapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestService_GetMedia(t *testing.T) {
	api, _ := newFakeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("alt") != "media" {
			writeNotFound(w)
			return
		}
		w.Write([]byte("media payload"))
	}))

	body, err := api.GetMedia(context.Background(), "test-bucket", "data.txt")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, []byte("media payload"), data)
}

func TestService_Delete(t *testing.T) {
	var gotGeneration string
	api, _ := newFakeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/b/test-bucket/o/data.txt", r.URL.Path)
		gotGeneration = r.URL.Query().Get("generation")
		w.WriteHeader(http.StatusNoContent)
	}))

	err := api.Delete(context.Background(), "test-bucket", "data.txt", 0)
	require.NoError(t, err)
	assert.Empty(t, gotGeneration)

	err = api.Delete(context.Background(), "test-bucket", "data.txt", 987)
	require.NoError(t, err)
	assert.Equal(t, "987", gotGeneration)
}

func TestService_ListPage_QueryParameters(t *testing.T) {
	api, _ := newFakeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/b/test-bucket/o", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "logs/", q.Get("prefix"))
		assert.Equal(t, "token-1", q.Get("pageToken"))
		assert.Equal(t, "50", q.Get("maxResults"))
		assert.Equal(t, "true", q.Get("versions"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&storage.Objects{
			Items:         []*storage.Object{{Name: "logs/a.log"}},
			NextPageToken: "token-2",
		})
	}))

	page, err := api.ListPage(context.Background(), ListPageQuery{
		Bucket:     "test-bucket",
		Prefix:     "logs/",
		Versions:   true,
		MaxResults: 50,
		PageToken:  "token-1",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "logs/a.log", page.Items[0].Name)
	assert.Equal(t, "token-2", page.NextPageToken)
}

func TestService_ListPage_OmitsUnsetParameters(t *testing.T) {
	api, _ := newFakeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("prefix"))
		assert.False(t, q.Has("pageToken"))
		assert.False(t, q.Has("maxResults"))
		assert.False(t, q.Has("versions"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&storage.Objects{})
	}))

	page, err := api.ListPage(context.Background(), ListPageQuery{Bucket: "test-bucket"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextPageToken)
}
