package telegram

import (
	"context"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// NotifyPublication reports an auto-post outcome to the operator chat.
	NotifyPublication(ctx context.Context, pub domain.Publication) error
}

// Noop drops notifications when no bot token is configured.
type Noop struct{}

func (Noop) NotifyPublication(context.Context, domain.Publication) error {
	return nil
}

var _ Client = Noop{}
