package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	mock_pipeline "github.com/orgball2608/insta-tweet-relay/internal/pipeline/mocks"
	"github.com/orgball2608/insta-tweet-relay/internal/repositories/publication"
	mock_publication "github.com/orgball2608/insta-tweet-relay/internal/repositories/publication/mocks"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mock_pipeline.MockClient, *mock_publication.MockRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	p := mock_pipeline.NewMockClient(ctrl)
	repo := mock_publication.NewMockRepository(ctrl)
	log := logger.New(logger.Opts{Env: "test", Writer: io.Discard})

	return NewRouter(NewHandler(p, repo, "bbcnews", log), log), p, repo
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testPost() *domain.InstagramPost {
	return &domain.InstagramPost{
		Username:  "bbcnews",
		Caption:   "Test Instagram caption",
		ImageURL:  "https://example.com/test.jpg",
		Timestamp: "2023-04-01T12:00:00.000Z",
		Likes:     1000,
		Comments:  50,
		PostURL:   "https://www.instagram.com/p/test123/",
	}
}

func TestRoot(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, RootMessage, decode(t, w)["message"])
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGetPost(t *testing.T) {
	r, p, _ := newTestRouter(t)

	p.EXPECT().GetPost(gomock.Any(), "testuser").Return(pipeline.PostResult{
		Success:  true,
		Post:     testPost(),
		Analysis: "Generated tweet text",
	})

	w := do(r, http.MethodGet, "/instagram/testuser", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Test Instagram caption", body["caption"])
	assert.Equal(t, "https://example.com/test.jpg", body["image_url"])
	assert.Equal(t, "2023-04-01T12:00:00.000Z", body["timestamp"])
	assert.Equal(t, float64(1000), body["likes"])
	assert.Equal(t, float64(50), body["comments"])
	assert.Equal(t, "https://www.instagram.com/p/test123/", body["post_url"])
	assert.Equal(t, "Generated tweet text", body["analysis"])
}

func TestGetPostDefaultUsername(t *testing.T) {
	r, p, _ := newTestRouter(t)

	p.EXPECT().GetPost(gomock.Any(), "bbcnews").Return(pipeline.PostResult{
		Success:  true,
		Post:     testPost(),
		Analysis: "Generated tweet text",
	})

	w := do(r, http.MethodGet, "/instagram/", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPostFailureStatus(t *testing.T) {
	noPosts := errors.WrapWithCode(instagram.ErrNoPosts, errors.CodeUpstreamFetch, "failed to fetch instagram post")

	tests := []struct {
		name       string
		result     pipeline.PostResult
		wantStatus int
		wantStage  string
	}{
		{
			name:       "no posts",
			result:     pipeline.PostResult{Stage: pipeline.StageFetch, Error: noPosts.Error(), Cause: noPosts},
			wantStatus: http.StatusNotFound,
			wantStage:  "fetch",
		},
		{
			name:       "provider down",
			result:     pipeline.PostResult{Stage: pipeline.StageFetch, Error: "apify returned status 502", Cause: fmt.Errorf("x")},
			wantStatus: http.StatusBadGateway,
			wantStage:  "fetch",
		},
		{
			name:       "llm failure",
			result:     pipeline.PostResult{Stage: pipeline.StageSummarize, Error: "failed to generate tweet"},
			wantStatus: http.StatusBadGateway,
			wantStage:  "summarize",
		},
		{
			name:       "bad username",
			result:     pipeline.PostResult{Stage: pipeline.StageValidation, Error: "instagram username must not be empty"},
			wantStatus: http.StatusBadRequest,
			wantStage:  "validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, p, _ := newTestRouter(t)
			p.EXPECT().GetPost(gomock.Any(), "someone").Return(tt.result)

			w := do(r, http.MethodGet, "/instagram/someone", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantStage, body["stage"])
			assert.Equal(t, tt.result.Error, body["error"])
		})
	}
}

func TestPostTweet(t *testing.T) {
	r, p, _ := newTestRouter(t)

	p.EXPECT().PostTweet(gomock.Any(), domain.PublishRequest{
		Content:  "Test tweet content",
		ImageURL: "https://example.com/test.jpg",
	}).Return(domain.PublishResult{
		Success:  true,
		TweetID:  "1234567890",
		TweetURL: "https://twitter.com/user/status/1234567890",
	})

	w := do(r, http.MethodPost, "/post-tweet", `{"content":"Test tweet content","image_url":"https://example.com/test.jpg"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1234567890", body["tweet_id"])
	assert.Equal(t, "https://twitter.com/user/status/1234567890", body["tweet_url"])
}

func TestPostTweetTooLong(t *testing.T) {
	r, p, _ := newTestRouter(t)
	content := strings.Repeat("A", 300)

	p.EXPECT().PostTweet(gomock.Any(), domain.PublishRequest{Content: content}).Return(domain.PublishResult{
		Error:     "tweet content exceeds 280 characters (got 300)",
		ErrorCode: errors.CodeValidation,
	})

	w := do(r, http.MethodPost, "/post-tweet", `{"content":"`+content+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "validation", body["stage"])
	assert.Contains(t, body["error"], "280")
}

func TestPostTweetPublishFailure(t *testing.T) {
	r, p, _ := newTestRouter(t)

	p.EXPECT().PostTweet(gomock.Any(), gomock.Any()).Return(domain.PublishResult{
		Error:     "failed to upload media: media upload returned status 400",
		ErrorCode: errors.CodePublish,
	})

	w := do(r, http.MethodPost, "/post-tweet", `{"content":"hi","image_url":"https://example.com/x.jpg"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "publish", decode(t, w)["stage"])
}

func TestPostTweetMalformedBody(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/post-tweet", `{"content":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "validation", body["stage"])
}

func TestAutoPost(t *testing.T) {
	r, p, _ := newTestRouter(t)

	p.EXPECT().AutoPost(gomock.Any(), "bbcnews").Return(pipeline.AutoPostResult{
		Success:        true,
		Username:       "bbcnews",
		Post:           testPost(),
		GeneratedTweet: "Generated tweet text",
		Twitter: &domain.PublishResult{
			Success:  true,
			TweetID:  "1234567890",
			TweetURL: "https://twitter.com/user/status/1234567890",
		},
	})

	w := do(r, http.MethodPost, "/auto-post/", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body AutoPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Instagram)
	assert.Equal(t, "bbcnews", body.Instagram.Username)
	assert.Equal(t, "Test Instagram caption", body.Instagram.Caption)
	assert.Equal(t, "https://example.com/test.jpg", body.Instagram.ImageURL)
	require.NotNil(t, body.Twitter)
	assert.True(t, body.Twitter.Success)
	assert.Equal(t, "1234567890", body.Twitter.TweetID)
	assert.Equal(t, "Generated tweet text", body.GeneratedTweet)
}

func TestAutoPostPublishFailureKeepsContext(t *testing.T) {
	r, p, _ := newTestRouter(t)

	p.EXPECT().AutoPost(gomock.Any(), "testuser").Return(pipeline.AutoPostResult{
		Username:       "testuser",
		Post:           testPost(),
		GeneratedTweet: "Generated tweet text",
		Twitter:        &domain.PublishResult{Error: "tweet creation returned status 403"},
		Stage:          pipeline.StagePublish,
		Error:          "tweet creation returned status 403",
	})

	w := do(r, http.MethodPost, "/auto-post/testuser", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body AutoPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "publish", body.Stage)
	assert.Equal(t, "Generated tweet text", body.GeneratedTweet)
	require.NotNil(t, body.Instagram)
	require.NotNil(t, body.Twitter)
	assert.False(t, body.Twitter.Success)
}

func TestAutoPostNoPosts(t *testing.T) {
	r, p, _ := newTestRouter(t)
	noPosts := errors.WrapWithCode(instagram.ErrNoPosts, errors.CodeUpstreamFetch, "failed to fetch instagram post")

	p.EXPECT().AutoPost(gomock.Any(), "emptyuser").Return(pipeline.AutoPostResult{
		Username: "emptyuser",
		Stage:    pipeline.StageFetch,
		Error:    noPosts.Error(),
		Cause:    noPosts,
	})

	w := do(r, http.MethodPost, "/auto-post/emptyuser", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "fetch", body["stage"])
	assert.NotContains(t, body, "twitter")
}

func TestHistory(t *testing.T) {
	r, _, repo := newTestRouter(t)
	createdAt := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().GetLatestByUsername(gomock.Any(), "bbcnews", 5).Return([]*domain.Publication{
		{ID: 2, Username: "bbcnews", TweetID: "2", Success: true, CreatedAt: createdAt},
		{ID: 1, Username: "bbcnews", Stage: "publish", Error: "boom", CreatedAt: createdAt},
	}, nil)

	w := do(r, http.MethodGet, "/history/@bbcnews?limit=5", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Publications, 2)
	assert.Equal(t, int64(2), body.Publications[0].ID)
	assert.Equal(t, "2023-04-01T12:00:00Z", body.Publications[0].CreatedAt)
	assert.Equal(t, "publish", body.Publications[1].Stage)
}

func TestHistoryDisabled(t *testing.T) {
	r, _, repo := newTestRouter(t)

	repo.EXPECT().GetLatestByUsername(gomock.Any(), "bbcnews", 20).Return(nil, publication.ErrDisabled)

	w := do(r, http.MethodGet, "/history/bbcnews", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsExposed(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestCORS(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
