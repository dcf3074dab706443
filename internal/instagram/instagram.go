package instagram

import (
	"context"
	"errors"
	"strings"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
)

var (
	ErrNoPosts        = errors.New("no posts found")
	ErrPrivateAccount = errors.New("account is private and cannot be accessed")
)

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go
type Client interface {
	// GetLatestPost returns the most recent post of a public account.
	GetLatestPost(ctx context.Context, username string) (*domain.InstagramPost, error)
}

// NormalizeUsername trims whitespace and a leading "@" from a handle.
func NormalizeUsername(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
