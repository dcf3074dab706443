package twitterimpl

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/twitter"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

// TwitterImpl posts tweets in the user context of the configured access token.
// Images are fetched with a plain client and every API call is OAuth1 signed.
type TwitterImpl struct {
	apiBaseURL    string
	uploadBaseURL string
	oauthConfig   *oauth1.Config
	token         *oauth1.Token
	httpClient    *http.Client
	logger        logger.Logger
}

func New(opts Opts) *TwitterImpl {
	cfg := opts.Config.Twitter

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Config.App.UpstreamTimeout}
	}

	return &TwitterImpl{
		apiBaseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		uploadBaseURL: strings.TrimRight(cfg.UploadBaseURL, "/"),
		oauthConfig:   oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret),
		token:         oauth1.NewToken(cfg.AccessToken, cfg.AccessTokenSecret),
		httpClient:    httpClient,
		logger:        opts.Logger.WithComponent("TwitterClient"),
	}
}

// signedClient returns a client that signs requests and sends them through
// the base client's transport.
func (t *TwitterImpl) signedClient(ctx context.Context) *http.Client {
	ctx = context.WithValue(ctx, oauth1.HTTPClient, t.httpClient)
	return t.oauthConfig.Client(ctx, t.token)
}

// Publish validates the content, uploads the image when one is given and
// creates the tweet. A failed image step aborts the whole publish.
func (t *TwitterImpl) Publish(ctx context.Context, req domain.PublishRequest) domain.PublishResult {
	if err := twitter.ValidateContent(req.Content); err != nil {
		t.logger.Warn("Rejected tweet content", "error", err)
		return twitter.Failure(err)
	}

	client := t.signedClient(ctx)

	var mediaIDs []string
	if req.ImageURL != "" {
		mediaID, err := t.uploadImage(ctx, client, req.ImageURL)
		if err != nil {
			t.logger.Error("Failed to attach image", "image_url", req.ImageURL, "error", err)
			return twitter.Failure(err)
		}
		mediaIDs = append(mediaIDs, mediaID)
	}

	start := time.Now()
	id, err := t.createTweet(ctx, client, req.Content, mediaIDs)
	if err != nil {
		t.logger.Error("Failed to create tweet", "error", err, "elapsed", time.Since(start))
		return twitter.Failure(err)
	}

	t.logger.Info("Tweet published", "tweet_id", id, "with_media", len(mediaIDs) > 0)
	return domain.PublishResult{
		Success:  true,
		TweetID:  id,
		TweetURL: twitter.StatusURL(id),
	}
}

func safeClose(c io.Closer) {
	_ = c.Close()
}

var _ twitter.Client = (*TwitterImpl)(nil)
