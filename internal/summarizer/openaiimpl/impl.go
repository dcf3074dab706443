package openaiimpl

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/summarizer"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
	"go.uber.org/fx"
)

const (
	GroqBaseURL      = "https://api.groq.com/openai/v1/"
	DefaultGroqModel = "llama-3.3-70b-versatile"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

// OpenAIImpl summarizes posts through an OpenAI compatible chat completions
// API. Groq is the default backend.
type OpenAIImpl struct {
	client    *openai.Client
	model     openai.ChatModel
	maxTokens int64
	provider  string
	logger    logger.Logger
}

func New(opts Opts) *OpenAIImpl {
	cfg := opts.Config.LLM

	baseURL := cfg.BaseURL
	model := cfg.Model
	if cfg.Provider == config.LLMProviderGroq {
		if baseURL == "" {
			baseURL = GroqBaseURL
		}
		if model == "" {
			model = DefaultGroqModel
		}
	}
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	client := openai.NewClient(reqOpts...)
	return &OpenAIImpl{
		client:    &client,
		model:     openai.ChatModel(model),
		maxTokens: int64(cfg.MaxTokens),
		provider:  cfg.Provider,
		logger:    opts.Logger.WithComponent("OpenAISummarizer"),
	}
}

func (s *OpenAIImpl) Summarize(ctx context.Context, post domain.InstagramPost) (domain.TweetDraft, error) {
	prompt, err := summarizer.BuildPrompt(post)
	if err != nil {
		return domain.TweetDraft{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarizer.SystemPrompt),
			openai.UserMessage(prompt),
		},
	}
	if s.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(s.maxTokens)
	}

	s.logger.Debug("Requesting tweet summary", "model", s.model, "post_url", post.PostURL)

	start := time.Now()
	resp, err := s.client.Chat.Completions.New(ctx, params)
	metrics.ObserveUpstream(s.provider, start)
	if err != nil {
		s.logger.Error("Chat completion failed", "model", s.model, "error", err)
		return domain.TweetDraft{}, errors.WrapWithCode(err, errors.CodeSummarization, "failed to generate tweet")
	}

	if len(resp.Choices) == 0 {
		return domain.TweetDraft{}, errors.NewWithCode(errors.CodeSummarization, "no response from llm")
	}

	draft, err := summarizer.Finalize(resp.Choices[0].Message.Content)
	if err != nil {
		return domain.TweetDraft{}, err
	}

	if raw := strings.TrimSpace(resp.Choices[0].Message.Content); raw != draft.Content {
		s.logger.Info("Generated tweet truncated", "original_length", len([]rune(raw)))
	}

	return draft, nil
}

var _ summarizer.Client = (*OpenAIImpl)(nil)
