// Package gcs provides tests for the cursor-following listing protocol.
package gcs

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage "google.golang.org/api/storage/v1"

	gcserrors "github.com/micgeronimo/gcs-client/errors"
	"github.com/micgeronimo/gcs-client/internal/gcsapi"
	"github.com/micgeronimo/gcs-client/internal/testutil"
)

func TestClient_List_FollowsCursorAcrossPages(t *testing.T) {
	pages := []*storage.Objects{
		testutil.ObjectsPage([]string{"a.txt", "b.txt"}, "token-1"),
		testutil.ObjectsPage([]string{"c.txt"}, "token-2"),
		testutil.ObjectsPage([]string{"d.txt", "e.txt"}, ""),
	}
	var gotTokens []string
	mock := &testutil.MockAPI{
		ListPageFunc: func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
			gotTokens = append(gotTokens, q.PageToken)
			return pages[len(gotTokens)-1], nil
		},
	}
	client := NewWithAPI(mock)

	names, err := client.List(context.Background(), "test-bucket")
	require.NoError(t, err)

	// All three pages' names in server order, exactly three requests, and
	// each non-empty token echoed verbatim on the following request.
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}, names)
	assert.Equal(t, 3, mock.ListPageCalls)
	assert.Equal(t, []string{"", "token-1", "token-2"}, gotTokens)
}

func TestClient_List_NoItemsTerminatesAfterOneRequest(t *testing.T) {
	mock := &testutil.MockAPI{
		ListPageFunc: func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
			return &storage.Objects{}, nil
		},
	}
	client := NewWithAPI(mock)

	names, err := client.List(context.Background(), "test-bucket", WithPrefix("no/such/prefix"))
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.Equal(t, 1, mock.ListPageCalls)
}

func TestClient_List_EmptyTokenTerminates(t *testing.T) {
	// A present-but-empty nextPageToken means no more pages; the client must
	// not loop or issue a request with an empty cursor.
	mock := &testutil.MockAPI{
		ListPageFunc: func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
			return testutil.ObjectsPage([]string{"a.txt"}, ""), nil
		},
	}
	client := NewWithAPI(mock)

	names, err := client.List(context.Background(), "test-bucket")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names)
	assert.Equal(t, 1, mock.ListPageCalls)
}

func TestClient_List_SkipsUnnamedEntries(t *testing.T) {
	mock := &testutil.MockAPI{
		ListPageFunc: func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
			return &storage.Objects{
				Items: []*storage.Object{
					{Name: "a.txt"},
					{},
					nil,
					{Name: "b.txt"},
				},
			}, nil
		},
	}
	client := NewWithAPI(mock)

	names, err := client.List(context.Background(), "test-bucket")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestClient_List_PassesFilters(t *testing.T) {
	var got gcsapi.ListPageQuery
	mock := &testutil.MockAPI{
		ListPageFunc: func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
			got = q
			return testutil.ObjectsPage([]string{"logs/a.log"}, ""), nil
		},
	}
	client := NewWithAPI(mock)

	_, err := client.List(context.Background(), "test-bucket",
		WithPrefix("logs/"),
		WithVersions(true),
		WithMaxResults(100),
	)
	require.NoError(t, err)
	assert.Equal(t, "test-bucket", got.Bucket)
	assert.Equal(t, "logs/", got.Prefix)
	assert.True(t, got.Versions)
	assert.Equal(t, int64(100), got.MaxResults)
}

func TestClient_List_PageFailurePropagates(t *testing.T) {
	mock := &testutil.MockAPI{
		ListPageFunc: func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
			return nil, testutil.APIError(http.StatusForbidden)
		},
	}
	client := NewWithAPI(mock)

	_, err := client.List(context.Background(), "test-bucket")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, gcserrors.StatusCode(err))
}

func TestClient_List_MaxPagesCap(t *testing.T) {
	// Every page claims more results; the configured cap must stop the loop
	// and return what was accumulated alongside the sentinel.
	mock := &testutil.MockAPI{
		ListPageFunc: func(ctx context.Context, q gcsapi.ListPageQuery) (*storage.Objects, error) {
			return testutil.ObjectsPage([]string{"x.txt"}, "more"), nil
		},
	}
	client := NewWithAPI(mock, WithMaxPages(3))

	names, err := client.List(context.Background(), "test-bucket")
	require.Error(t, err)
	assert.ErrorIs(t, err, gcserrors.ErrMaxPagesExceeded)
	assert.Equal(t, []string{"x.txt", "x.txt", "x.txt"}, names)
	assert.Equal(t, 3, mock.ListPageCalls)
}
