package goinstaimpl

import (
	"context"
	"sync"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// GoinstaImpl reads posts through the Instagram private API with a logged in
// account. The goinsta client is not safe for concurrent use, so calls are
// serialized.
type GoinstaImpl struct {
	mu     sync.Mutex
	Client *goinsta.Instagram
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) *GoinstaImpl {
	ig := &GoinstaImpl{
		Logger: opts.Logger.WithComponent("GoinstaClient"),
		Config: opts.Config,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ig.mu.Lock()
			defer ig.mu.Unlock()
			if err := ig.Login(); err != nil {
				ig.Logger.Error("Instagram login error, will retry on first request", "error", err)
			}
			return nil
		},
	})

	return ig
}

var _ instagram.Client = (*GoinstaImpl)(nil)
