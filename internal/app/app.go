package app

import (
	"fmt"

	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram/apifyimpl"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram/goinstaimpl"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline/pipelineimpl"
	"github.com/orgball2608/insta-tweet-relay/internal/repositories/publication"
	"github.com/orgball2608/insta-tweet-relay/internal/server"
	"github.com/orgball2608/insta-tweet-relay/internal/summarizer"
	"github.com/orgball2608/insta-tweet-relay/internal/summarizer/anthropicimpl"
	"github.com/orgball2608/insta-tweet-relay/internal/summarizer/openaiimpl"
	"github.com/orgball2608/insta-tweet-relay/internal/telegram"
	"github.com/orgball2608/insta-tweet-relay/internal/telegram/telegramimpl"
	"github.com/orgball2608/insta-tweet-relay/internal/twitter"
	"github.com/orgball2608/insta-tweet-relay/internal/twitter/twitterimpl"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		newInstagramClient,
		newSummarizerClient,
		newTelegramClient,
		fx.Annotate(
			twitterimpl.New,
			fx.As(new(twitter.Client)),
		),
		fx.Annotate(
			pipelineimpl.New,
			fx.As(new(pipeline.Client)),
		),
		server.New,
	),
	publication.Module,
	fx.Invoke(func(*server.Server) {}),
)

type providerOpts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

func newInstagramClient(opts providerOpts) (instagram.Client, error) {
	switch opts.Config.Instagram.Provider {
	case config.InstagramProviderApify:
		return apifyimpl.New(apifyimpl.Opts{Config: opts.Config, Logger: opts.Logger}), nil
	case config.InstagramProviderGoinsta:
		return goinstaimpl.New(goinstaimpl.Opts{LC: opts.LC, Config: opts.Config, Logger: opts.Logger}), nil
	default:
		return nil, fmt.Errorf("unknown instagram provider %q", opts.Config.Instagram.Provider)
	}
}

func newSummarizerClient(opts providerOpts) (summarizer.Client, error) {
	switch opts.Config.LLM.Provider {
	case config.LLMProviderGroq, config.LLMProviderOpenAI:
		return openaiimpl.New(openaiimpl.Opts{Config: opts.Config, Logger: opts.Logger}), nil
	case config.LLMProviderAnthropic:
		return anthropicimpl.New(anthropicimpl.Opts{Config: opts.Config, Logger: opts.Logger}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Config.LLM.Provider)
	}
}

func newTelegramClient(opts providerOpts) (telegram.Client, error) {
	if !opts.Config.TelegramEnabled() {
		return telegram.Noop{}, nil
	}
	return telegramimpl.New(telegramimpl.Opts{Config: opts.Config, Logger: opts.Logger})
}
