package twitterimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
)

type createTweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type createTweetRequest struct {
	Text  string            `json:"text"`
	Media *createTweetMedia `json:"media,omitempty"`
}

type createTweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// errorResponse covers both the v2 problem shape and the v1.1 errors list.
type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (t *TwitterImpl) createTweet(ctx context.Context, client *http.Client, text string, mediaIDs []string) (string, error) {
	payload := createTweetRequest{Text: text}
	if len(mediaIDs) > 0 {
		payload.Media = &createTweetMedia{MediaIDs: mediaIDs}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodePublish, "failed to encode tweet")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiBaseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodePublish, "failed to create tweet")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	metrics.ObserveUpstream("twitter", start)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodePublish, "failed to create tweet")
	}
	defer safeClose(resp.Body)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodePublish, "failed to read tweet response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.WrapWithCode(apiError("tweet creation", resp.StatusCode, raw), errors.CodePublish, "failed to create tweet")
	}

	var out createTweetResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.WrapWithCode(err, errors.CodePublish, "could not decode tweet response")
	}
	if out.Data.ID == "" {
		return "", errors.NewWithCode(errors.CodePublish, "tweet response has no id")
	}

	return out.Data.ID, nil
}

func apiError(op string, status int, body []byte) error {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		var msgs []string
		if e.Detail != "" {
			msgs = append(msgs, e.Detail)
		} else if e.Title != "" {
			msgs = append(msgs, e.Title)
		}
		for _, item := range e.Errors {
			if item.Message != "" {
				msgs = append(msgs, item.Message)
			}
		}
		if len(msgs) > 0 {
			return fmt.Errorf("%s returned status %d: %s", op, status, strings.Join(msgs, "; "))
		}
	}
	return fmt.Errorf("%s returned status %d", op, status)
}
