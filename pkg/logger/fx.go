package logger

import (
	"context"
	"time"

	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(lc fx.Lifecycle, cfg *config.Config) *Impl {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				Flush(2 * time.Second)
				return nil
			},
		})

		return New(
			Opts{
				Env:       cfg.App.Env,
				SentryDSN: cfg.App.SentryUrl,
			},
		)
	},
	fx.As(new(Logger)),
)
