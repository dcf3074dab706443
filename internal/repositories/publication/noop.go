package publication

import (
	"context"
	"time"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
)

// Noop is used when no database is configured. Writes are dropped and reads
// report ErrDisabled.
type Noop struct{}

var _ Repository = Noop{}

func (Noop) Create(context.Context, domain.Publication) (int64, error) {
	return 0, nil
}

func (Noop) GetLatestByUsername(context.Context, string, int) ([]*domain.Publication, error) {
	return nil, ErrDisabled
}

func (Noop) CleanupOldRecords(context.Context, time.Duration) (int64, error) {
	return 0, nil
}
