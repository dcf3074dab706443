package apifyimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
)

const maxResponseSize = 10 << 20

type runInput struct {
	DirectURLs    []string `json:"directUrls"`
	ResultsType   string   `json:"resultsType"`
	ResultsLimit  int      `json:"resultsLimit"`
	AddParentData bool     `json:"addParentData"`
}

// datasetItem holds the fields we read from an instagram-scraper result.
// Pointers distinguish absent fields from zero values.
type datasetItem struct {
	Caption          *string `json:"caption"`
	DisplayURL       *string `json:"displayUrl"`
	Timestamp        *string `json:"timestamp"`
	LikesCount       *int    `json:"likesCount"`
	CommentsCount    *int    `json:"commentsCount"`
	URL              *string `json:"url"`
	Error            string  `json:"error"`
	ErrorDescription string  `json:"errorDescription"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GetLatestPost runs the scraper for a single profile and maps the newest item.
func (a *ApifyImpl) GetLatestPost(ctx context.Context, username string) (*domain.InstagramPost, error) {
	username = instagram.NormalizeUsername(username)
	if username == "" {
		return nil, errors.NewWithCode(errors.CodeValidation, "instagram username must not be empty")
	}

	a.logger.Info("Fetching latest Instagram post", "username", username)

	start := time.Now()
	items, err := a.runActor(ctx, username)
	metrics.ObserveUpstream("apify", start)
	if err != nil {
		a.logger.Error("Error fetching Instagram post", "username", username, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUpstreamFetch, "failed to fetch instagram post")
	}

	if len(items) == 0 {
		a.logger.Warn("No posts found", "username", username)
		return nil, errors.WrapWithCode(instagram.ErrNoPosts, errors.CodeUpstreamFetch, "failed to fetch instagram post")
	}

	post, err := toPost(username, items[0])
	if err != nil {
		a.logger.Error("Malformed scraper item", "username", username, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUpstreamFetch, "failed to fetch instagram post")
	}

	a.logger.Info("Retrieved latest post", "username", username, "post_url", post.PostURL)
	return post, nil
}

func (a *ApifyImpl) runActor(ctx context.Context, username string) ([]datasetItem, error) {
	body, err := json.Marshal(runInput{
		DirectURLs:    []string{fmt.Sprintf("https://www.instagram.com/%s/", username)},
		ResultsType:   "posts",
		ResultsLimit:  1,
		AddParentData: false,
	})
	if err != nil {
		return nil, fmt.Errorf("could not encode actor input: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items", a.baseURL, url.PathEscape(a.actor))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apify request failed: %w", err)
	}
	defer safeClose(resp.Body, a.logger)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("could not read apify response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("apify returned status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("apify returned status %d", resp.StatusCode)
	}

	var items []datasetItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("could not decode dataset items: %w", err)
	}

	return items, nil
}

func toPost(username string, item datasetItem) (*domain.InstagramPost, error) {
	if item.Error != "" {
		if item.ErrorDescription != "" {
			return nil, fmt.Errorf("scraper error %s: %s", item.Error, item.ErrorDescription)
		}
		return nil, fmt.Errorf("scraper error %s", item.Error)
	}

	if item.URL == nil || *item.URL == "" {
		return nil, fmt.Errorf("scraper item has no post url")
	}

	post := &domain.InstagramPost{
		Username: username,
		PostURL:  *item.URL,
	}
	if item.Caption != nil {
		post.Caption = *item.Caption
	}
	if item.DisplayURL != nil {
		post.ImageURL = *item.DisplayURL
	}
	if item.Timestamp != nil {
		post.Timestamp = *item.Timestamp
	}
	// Hidden like counts come back as -1.
	if item.LikesCount != nil && *item.LikesCount > 0 {
		post.Likes = *item.LikesCount
	}
	if item.CommentsCount != nil && *item.CommentsCount > 0 {
		post.Comments = *item.CommentsCount
	}

	return post, nil
}
