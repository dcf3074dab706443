package publication

import (
	"context"
	"time"

	"github.com/orgball2608/insta-tweet-relay/internal/migrations"
	"github.com/orgball2608/insta-tweet-relay/internal/pgx"
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

// New returns the Postgres backed repository when history is configured and
// a Noop otherwise. The enabled path migrates the schema and schedules the
// retention job on start.
func New(opts Opts) (Repository, error) {
	if !opts.Config.HistoryEnabled() {
		opts.Logger.Info("Publication history disabled, POSTGRES_HOST is not set")
		return Noop{}, nil
	}

	pool, err := pgx.New(pgx.Opts{LC: opts.LC, Logger: opts.Logger, Config: opts.Config})
	if err != nil {
		return nil, err
	}

	repo := NewPgx(pool, opts.Logger)
	retention := time.Duration(opts.Config.Postgres.RetentionDays) * 24 * time.Hour
	job := NewCleanupJob(repo, retention, opts.Logger)

	runCtx, cancel := context.WithCancel(context.Background())
	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := migrations.Up(ctx, opts.Config.GetDSN()); err != nil {
				return err
			}
			if retention <= 0 {
				return nil
			}
			return job.Start(runCtx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return job.Stop()
		},
	})

	return repo, nil
}

var Module = fx.Module("publication_repository",
	fx.Provide(New),
)
