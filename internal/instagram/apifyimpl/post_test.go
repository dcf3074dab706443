package apifyimpl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ApifyImpl, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Instagram.ApifyBaseURL = srv.URL
	cfg.Instagram.ApifyActor = "apify~instagram-scraper"
	cfg.Instagram.ApifyToken = "test-token"

	return New(Opts{
		Config:     cfg,
		Logger:     logger.New(logger.Opts{Env: "test", Writer: io.Discard}),
		HTTPClient: srv.Client(),
	}), &calls
}

func TestGetLatestPost(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/acts/apify~instagram-scraper/run-sync-get-dataset-items", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var input runInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, []string{"https://www.instagram.com/testuser/"}, input.DirectURLs)
		assert.Equal(t, "posts", input.ResultsType)
		assert.Equal(t, 1, input.ResultsLimit)
		assert.False(t, input.AddParentData)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{
			"caption": "Test Instagram caption",
			"displayUrl": "https://example.com/test.jpg",
			"timestamp": "2023-04-01T12:00:00.000Z",
			"likesCount": 1000,
			"commentsCount": 50,
			"url": "https://www.instagram.com/p/test123/"
		}]`))
	})

	post, err := client.GetLatestPost(context.Background(), "@testuser")
	require.NoError(t, err)

	assert.Equal(t, "testuser", post.Username)
	assert.Equal(t, "Test Instagram caption", post.Caption)
	assert.Equal(t, "https://example.com/test.jpg", post.ImageURL)
	assert.Equal(t, "2023-04-01T12:00:00.000Z", post.Timestamp)
	assert.Equal(t, 1000, post.Likes)
	assert.Equal(t, 50, post.Comments)
	assert.Equal(t, "https://www.instagram.com/p/test123/", post.PostURL)
}

func TestGetLatestPostNoPosts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	post, err := client.GetLatestPost(context.Background(), "testuser")
	require.Error(t, err)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, instagram.ErrNoPosts)
	assert.True(t, errors.IsUpstreamFetch(err))
	assert.Contains(t, err.Error(), "no posts found")
}

func TestGetLatestPostFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "provider error status",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"type":"token-not-valid","message":"Authentication token is not valid."}}`,
			wantErr: "Authentication token is not valid.",
		},
		{
			name:    "bare error status",
			status:  http.StatusBadGateway,
			body:    `upstream down`,
			wantErr: "status 502",
		},
		{
			name:    "malformed payload",
			status:  http.StatusOK,
			body:    `{"not":"a list"}`,
			wantErr: "could not decode dataset items",
		},
		{
			name:    "item without url",
			status:  http.StatusOK,
			body:    `[{"caption":"orphan"}]`,
			wantErr: "no post url",
		},
		{
			name:    "scraper reported error",
			status:  http.StatusOK,
			body:    `[{"error":"not_found","errorDescription":"Page not found"}]`,
			wantErr: "Page not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetLatestPost(context.Background(), "testuser")
			require.Error(t, err)
			assert.True(t, errors.IsUpstreamFetch(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetLatestPostEmptyUsername(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called")
	})

	_, err := client.GetLatestPost(context.Background(), "  @ ")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestToPostHiddenLikes(t *testing.T) {
	url := "https://www.instagram.com/p/x/"
	likes := -1
	post, err := toPost("u", datasetItem{URL: &url, LikesCount: &likes})
	require.NoError(t, err)
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, "", post.Caption)
}
