package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	InstagramProviderApify   = "apify"
	InstagramProviderGoinsta = "goinsta"

	LLMProviderGroq      = "groq"
	LLMProviderOpenAI    = "openai"
	LLMProviderAnthropic = "anthropic"
)

type Config struct {
	App struct {
		Env             string        `env:"APP_ENV" env-default:"development"`
		Port            int           `env:"APP_PORT" env-default:"8000"`
		SentryUrl       string        `env:"SENTRY_URL"`
		UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"30s" env-description:"per-call timeout for scrape, summarize and publish"`
		DefaultUsername string        `env:"DEFAULT_INSTAGRAM_USERNAME" env-default:"bbcnews"`
	}
	Instagram struct {
		Provider     string `env:"INSTAGRAM_PROVIDER" env-default:"apify" env-description:"apify or goinsta"`
		ApifyToken   string `env:"APIFY_API_KEY"`
		ApifyActor   string `env:"APIFY_ACTOR" env-default:"apify~instagram-scraper"`
		ApifyBaseURL string `env:"APIFY_BASE_URL" env-default:"https://api.apify.com"`
		User         string `env:"INSTAGRAM_USER"`
		Pass         string `env:"INSTAGRAM_PASS"`
		SessionPath  string `env:"INSTAGRAM_SESSION_PATH" env-default:"./goinsta-session"`
	}
	LLM struct {
		Provider        string `env:"LLM_PROVIDER" env-default:"groq" env-description:"groq, openai or anthropic"`
		APIKey          string `env:"GROQ_API_KEY" env-description:"API key for groq or openai"`
		AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
		BaseURL         string `env:"LLM_BASE_URL"`
		Model           string `env:"LLM_MODEL"`
		MaxTokens       int    `env:"LLM_MAX_TOKENS" env-default:"512"`
	}
	Twitter struct {
		ConsumerKey       string `env:"TWITTER_API_KEY" env-required:"true"`
		ConsumerSecret    string `env:"TWITTER_API_SECRET" env-required:"true"`
		AccessToken       string `env:"TWITTER_ACCESS_TOKEN" env-required:"true"`
		AccessTokenSecret string `env:"TWITTER_ACCESS_TOKEN_SECRET" env-required:"true"`
		APIBaseURL        string `env:"TWITTER_API_BASE_URL" env-default:"https://api.twitter.com"`
		UploadBaseURL     string `env:"TWITTER_UPLOAD_BASE_URL" env-default:"https://upload.twitter.com"`
	}
	Postgres struct {
		Port          int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host          string `env:"POSTGRES_HOST" env-description:"leave empty to disable publication history"`
		User          string `env:"POSTGRES_USER"`
		Pass          string `env:"POSTGRES_PASS"`
		Name          string `env:"POSTGRES_NAME"`
		SslMode       string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
		RetentionDays int    `env:"HISTORY_RETENTION_DAYS" env-default:"30"`
	}
	Telegram struct {
		Token  string `env:"TELEGRAM_TOKEN" env-description:"leave empty to disable notifications"`
		ChatID int64  `env:"TELEGRAM_CHAT_ID"`
	}
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// New loads the process configuration once. A .env file in the working
// directory is honored when present.
func New() (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load()
		cfg, cfgErr = Load()
	})
	return cfg, cfgErr
}

// Load reads and validates the configuration from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the provider specific settings cleanenv cannot express.
func (c *Config) Validate() error {
	var missing []string

	// cleanenv accepts variables that are set but empty
	for _, cred := range []struct{ name, value string }{
		{"TWITTER_API_KEY", c.Twitter.ConsumerKey},
		{"TWITTER_API_SECRET", c.Twitter.ConsumerSecret},
		{"TWITTER_ACCESS_TOKEN", c.Twitter.AccessToken},
		{"TWITTER_ACCESS_TOKEN_SECRET", c.Twitter.AccessTokenSecret},
	} {
		if cred.value == "" {
			missing = append(missing, cred.name)
		}
	}

	switch c.Instagram.Provider {
	case InstagramProviderApify:
		if c.Instagram.ApifyToken == "" {
			missing = append(missing, "APIFY_API_KEY")
		}
	case InstagramProviderGoinsta:
		if c.Instagram.User == "" {
			missing = append(missing, "INSTAGRAM_USER")
		}
		if c.Instagram.Pass == "" {
			missing = append(missing, "INSTAGRAM_PASS")
		}
	default:
		return fmt.Errorf("unknown INSTAGRAM_PROVIDER %q", c.Instagram.Provider)
	}

	switch c.LLM.Provider {
	case LLMProviderGroq, LLMProviderOpenAI:
		if c.LLM.APIKey == "" {
			missing = append(missing, "GROQ_API_KEY")
		}
	case LLMProviderAnthropic:
		if c.LLM.AnthropicAPIKey == "" {
			missing = append(missing, "ANTHROPIC_API_KEY")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.Telegram.Token != "" && c.Telegram.ChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}

	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

// HistoryEnabled reports whether a Postgres host was configured.
func (c *Config) HistoryEnabled() bool {
	return c.Postgres.Host != ""
}

// TelegramEnabled reports whether operator notifications should be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != ""
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
