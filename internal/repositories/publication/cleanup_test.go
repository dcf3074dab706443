package publication_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/repositories/publication"
	mock_publication "github.com/orgball2608/insta-tweet-relay/internal/repositories/publication/mocks"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCleanupJobRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_publication.NewMockRepository(ctrl)
	log := logger.New(logger.Opts{Env: "test", Writer: io.Discard})

	retention := 30 * 24 * time.Hour
	repo.EXPECT().CleanupOldRecords(gomock.Any(), retention).Return(int64(3), nil)

	publication.NewCleanupJob(repo, retention, log).Run(context.Background())
}

func TestCleanupJobRunError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_publication.NewMockRepository(ctrl)
	log := logger.New(logger.Opts{Env: "test", Writer: io.Discard})

	repo.EXPECT().CleanupOldRecords(gomock.Any(), time.Hour).Return(int64(0), fmt.Errorf("connection refused"))

	publication.NewCleanupJob(repo, time.Hour, log).Run(context.Background())
}

func TestCleanupJobStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_publication.NewMockRepository(ctrl)
	log := logger.New(logger.Opts{Env: "test", Writer: io.Discard})

	job := publication.NewCleanupJob(repo, time.Hour, log)
	require.NoError(t, job.Start(context.Background()))
	assert.NoError(t, job.Stop())
}

func TestNoop(t *testing.T) {
	var repo publication.Repository = publication.Noop{}

	id, err := repo.Create(context.Background(), publicationFixture())
	assert.NoError(t, err)
	assert.Zero(t, id)

	_, err = repo.GetLatestByUsername(context.Background(), "bbcnews", 10)
	assert.ErrorIs(t, err, publication.ErrDisabled)
}

func publicationFixture() domain.Publication {
	return domain.Publication{
		Username:       "bbcnews",
		PostURL:        "https://www.instagram.com/p/test123/",
		GeneratedTweet: "Generated tweet text",
		Success:        true,
	}
}
