package telegramimpl

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-tweet-relay/internal/telegram"
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

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	ChatID int64
	Logger logger.Logger
}

func New(opts Opts) (*TelegramImpl, error) {
	return newWithEndpoint(opts, tgbotapi.APIEndpoint)
}

func newWithEndpoint(opts Opts, endpoint string) (*TelegramImpl, error) {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Config.App.UpstreamTimeout}
	}

	tgBot, err := tgbotapi.NewBotAPIWithClient(opts.Config.Telegram.Token, endpoint, client)
	if err != nil {
		opts.Logger.Error("Error creating bot", "error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		ChatID: opts.Config.Telegram.ChatID,
		Logger: opts.Logger.WithComponent("TelegramNotifier"),
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)
