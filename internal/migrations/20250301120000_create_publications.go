package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePublications, downCreatePublications)
}

func upCreatePublications(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS publications (
		id              BIGSERIAL PRIMARY KEY,
		username        VARCHAR(64)  NOT NULL,
		post_url        TEXT         NOT NULL DEFAULT '',
		caption         TEXT         NOT NULL DEFAULT '',
		generated_tweet TEXT         NOT NULL DEFAULT '',
		tweet_id        VARCHAR(32)  NOT NULL DEFAULT '',
		tweet_url       TEXT         NOT NULL DEFAULT '',
		success         BOOLEAN      NOT NULL DEFAULT FALSE,
		stage           VARCHAR(16)  NOT NULL DEFAULT '',
		error           TEXT         NOT NULL DEFAULT '',
		created_at      TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_publications_username_created_at
		ON publications (username, created_at DESC);
	`)
	return err
}

func downCreatePublications(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS publications;`)
	return err
}
