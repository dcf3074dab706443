package publication

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
)

var ErrDisabled = errors.New("publication history is disabled")

//go:generate go run go.uber.org/mock/mockgen -source=publication.go -destination=mocks/mock.go
type Repository interface {
	// Create records an auto-post outcome and returns its id
	Create(ctx context.Context, pub domain.Publication) (int64, error)

	// GetLatestByUsername returns the most recent outcomes for a username, newest first
	GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.Publication, error)

	// CleanupOldRecords deletes records older than the given age
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
