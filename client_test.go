// Package gcs provides tests for client construction and transport resolution.
package gcs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage "google.golang.org/api/storage/v1"

	gcserrors "github.com/micgeronimo/gcs-client/errors"
	"github.com/micgeronimo/gcs-client/internal/testutil"
)

func TestNew_Defaults(t *testing.T) {
	client, err := New()
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.Equal(t, []string{storage.DevstorageFullControlScope}, client.cfg.Scopes)
	assert.Zero(t, client.cfg.MaxPages)
	assert.NotNil(t, client.fs)
	// The service handle is lazy; construction alone must not build it.
	assert.Nil(t, client.api)
}

func TestNew_OptionsApplied(t *testing.T) {
	client, err := New(
		WithScopes(storage.DevstorageReadOnlyScope),
		WithUserAgent("gcsctl/1.0"),
		WithMaxPages(10),
		WithEndpoint("http://localhost:9000"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{storage.DevstorageReadOnlyScope}, client.cfg.Scopes)
	assert.Equal(t, "gcsctl/1.0", client.cfg.UserAgent)
	assert.Equal(t, 10, client.cfg.MaxPages)
	assert.Equal(t, "http://localhost:9000", client.cfg.Endpoint)
}

func TestClient_AuthFailure_BadCredentialsJSON(t *testing.T) {
	client, err := New(WithCredentialsJSON([]byte("{not json")))
	require.NoError(t, err)

	// Transport acquisition happens lazily, so the failure surfaces on the
	// first operation and is never interpreted.
	_, err = client.Exists(context.Background(), "test-bucket", "data.txt")
	require.Error(t, err)
	assert.True(t, gcserrors.IsAuth(err))
}

func TestClient_AuthFailure_MissingCredentialsFile(t *testing.T) {
	client, err := New(WithCredentialsFile("/no/such/key.json"))
	require.NoError(t, err)

	_, err = client.Exists(context.Background(), "test-bucket", "data.txt")
	require.Error(t, err)
	assert.True(t, gcserrors.IsAuth(err))
}

func TestClient_ConnReusedAcrossCalls(t *testing.T) {
	mock := &testutil.MockAPI{}
	client := NewWithAPI(mock)

	for range 3 {
		_, err := client.Exists(context.Background(), "test-bucket", "data.txt")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, mock.GetMetadataCalls)
}

// TestClient_AgainstFakeService exercises the full stack, including the real
// storage/v1 bindings, against a local fake.
func TestClient_AgainstFakeService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/b/test-bucket/o/data.txt":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(&storage.Object{
				Name:    "data.txt",
				Bucket:  "test-bucket",
				Updated: "2024-02-01T08:30:00Z",
			})
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":404,"message":"Not Found"}}`))
		}
	}))
	defer server.Close()

	client, err := New(
		WithEndpoint(server.URL),
		WithoutAuthentication(),
	)
	require.NoError(t, err)

	exists, err := client.Exists(context.Background(), "test-bucket", "data.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.Exists(context.Background(), "test-bucket", "missing.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}
