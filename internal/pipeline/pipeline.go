package pipeline

import (
	"context"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
)

// Stages reported in failure envelopes.
const (
	StageValidation = "validation"
	StageFetch      = "fetch"
	StageSummarize  = "summarize"
	StagePublish    = "publish"
)

// PostResult is the outcome of GetPost. On success Post and Analysis are set;
// on failure Stage and Error say where and why it stopped.
type PostResult struct {
	Success  bool
	Post     *domain.InstagramPost
	Analysis string
	Stage    string
	Error    string
	Cause    error
}

// AutoPostResult is the outcome of AutoPost. Post and GeneratedTweet are kept
// when a later stage fails.
type AutoPostResult struct {
	Success        bool
	Username       string
	Post           *domain.InstagramPost
	GeneratedTweet string
	Twitter        *domain.PublishResult
	Stage          string
	Error          string
	Cause          error
}

//go:generate go run go.uber.org/mock/mockgen -source=pipeline.go -destination=mocks/mock.go
type Client interface {
	// GetPost fetches the latest post and summarizes its caption.
	GetPost(ctx context.Context, username string) PostResult

	// PostTweet validates the content length and publishes it as is.
	PostTweet(ctx context.Context, req domain.PublishRequest) domain.PublishResult

	// AutoPost fetches, summarizes and publishes. Every call publishes anew.
	AutoPost(ctx context.Context, username string) AutoPostResult
}

// StageOf maps an error kind to the stage it belongs to, falling back to
// the stage the error was raised in.
func StageOf(err error, fallback string) string {
	switch errors.GetCode(err) {
	case errors.CodeValidation:
		return StageValidation
	case errors.CodeUpstreamFetch:
		return StageFetch
	case errors.CodeSummarization:
		return StageSummarize
	case errors.CodePublish:
		return StagePublish
	default:
		return fallback
	}
}

// StageOfCode is StageOf for a bare error code.
func StageOfCode(code, fallback string) string {
	return StageOf(errors.NewWithCode(code, ""), fallback)
}
