package publication

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/repositories"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
)

const table = "publications"

var columns = []string{
	"id", "username", "post_url", "caption", "generated_tweet",
	"tweet_id", "tweet_url", "success", "stage", "error", "created_at",
}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PublicationRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, pub domain.Publication) (int64, error) {
	createdAt := pub.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns(columns[1:]...).
		Values(pub.Username, pub.PostURL, pub.Caption, pub.GeneratedTweet,
			pub.TweetID, pub.TweetURL, pub.Success, pub.Stage, pub.Error, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var id int64
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (p *Pgx) GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.Publication, error) {
	if count <= 0 {
		count = 20
	}

	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pubs []*domain.Publication
	for rows.Next() {
		var pub domain.Publication
		if err := rows.Scan(&pub.ID, &pub.Username, &pub.PostURL, &pub.Caption, &pub.GeneratedTweet,
			&pub.TweetID, &pub.TweetURL, &pub.Success, &pub.Stage, &pub.Error, &pub.CreatedAt); err != nil {
			return nil, err
		}
		pubs = append(pubs, &pub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pubs, nil
}

func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"created_at": cutoffTime}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
