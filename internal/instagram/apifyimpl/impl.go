package apifyimpl

import (
	"io"
	"net/http"
	"strings"

	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
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

// ApifyImpl fetches posts by running the Instagram scraper actor
// synchronously and reading its dataset items in the same call.
type ApifyImpl struct {
	baseURL    string
	actor      string
	token      string
	httpClient *http.Client
	logger     logger.Logger
}

func New(opts Opts) *ApifyImpl {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &ApifyImpl{
		baseURL:    strings.TrimRight(opts.Config.Instagram.ApifyBaseURL, "/"),
		actor:      opts.Config.Instagram.ApifyActor,
		token:      opts.Config.Instagram.ApifyToken,
		httpClient: httpClient,
		logger:     opts.Logger.WithComponent("ApifyClient"),
	}
}

var _ instagram.Client = (*ApifyImpl)(nil)

// safeClose closes a response body and logs any errors
func safeClose(closer io.ReadCloser, log logger.Logger) {
	if err := closer.Close(); err != nil {
		log.Error("Error closing response body", "error", err)
	}
}
