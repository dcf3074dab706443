package pipelineimpl

import (
	"context"
	"time"

	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	"github.com/orgball2608/insta-tweet-relay/internal/repositories/publication"
	"github.com/orgball2608/insta-tweet-relay/internal/summarizer"
	"github.com/orgball2608/insta-tweet-relay/internal/telegram"
	"github.com/orgball2608/insta-tweet-relay/internal/twitter"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"go.uber.org/fx"
)

const recordTimeout = 5 * time.Second

type Opts struct {
	fx.In

	Instagram       instagram.Client
	Summarizer      summarizer.Client
	Twitter         twitter.Client
	Telegram        telegram.Client
	PublicationRepo publication.Repository
	Logger          logger.Logger
	Config          *config.Config
}

type PipelineImpl struct {
	Instagram       instagram.Client
	Summarizer      summarizer.Client
	Twitter         twitter.Client
	Telegram        telegram.Client
	PublicationRepo publication.Repository
	Logger          logger.Logger
	Config          *config.Config
}

func New(opts Opts) *PipelineImpl {
	return &PipelineImpl{
		Instagram:       opts.Instagram,
		Summarizer:      opts.Summarizer,
		Twitter:         opts.Twitter,
		Telegram:        opts.Telegram,
		PublicationRepo: opts.PublicationRepo,
		Logger:          opts.Logger.WithComponent("Pipeline"),
		Config:          opts.Config,
	}
}

var _ pipeline.Client = (*PipelineImpl)(nil)

// withTimeout bounds a single upstream call.
func (p *PipelineImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := p.Config.App.UpstreamTimeout
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
