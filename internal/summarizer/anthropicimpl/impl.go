package anthropicimpl

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/summarizer"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
	"go.uber.org/fx"
)

const DefaultModel = "claude-3-5-haiku-latest"

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

type AnthropicImpl struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
	logger    logger.Logger
}

func New(opts Opts) *AnthropicImpl {
	cfg := opts.Config.LLM

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 512
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	client := anthropic.NewClient(reqOpts...)
	return &AnthropicImpl{
		client:    &client,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
		logger:    opts.Logger.WithComponent("AnthropicSummarizer"),
	}
}

func (s *AnthropicImpl) Summarize(ctx context.Context, post domain.InstagramPost) (domain.TweetDraft, error) {
	prompt, err := summarizer.BuildPrompt(post)
	if err != nil {
		return domain.TweetDraft{}, err
	}

	s.logger.Debug("Requesting tweet summary", "model", s.model, "post_url", post.PostURL)

	start := time.Now()
	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: summarizer.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	metrics.ObserveUpstream(config.LLMProviderAnthropic, start)
	if err != nil {
		s.logger.Error("Message request failed", "model", s.model, "error", err)
		return domain.TweetDraft{}, errors.WrapWithCode(err, errors.CodeSummarization, "failed to generate tweet")
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return summarizer.Finalize(sb.String())
}

var _ summarizer.Client = (*AnthropicImpl)(nil)
