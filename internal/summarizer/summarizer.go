package summarizer

import (
	"context"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=summarizer.go -destination=mocks/mock.go
type Client interface {
	// Summarize rewrites the post caption into a tweet of at most 280 characters.
	Summarize(ctx context.Context, post domain.InstagramPost) (domain.TweetDraft, error)
}
