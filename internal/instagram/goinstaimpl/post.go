package goinstaimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
)

// GetLatestPost reads the first page of the user's feed and maps its newest item.
func (ig *GoinstaImpl) GetLatestPost(ctx context.Context, username string) (*domain.InstagramPost, error) {
	username = instagram.NormalizeUsername(username)
	if username == "" {
		return nil, errors.NewWithCode(errors.CodeValidation, "instagram username must not be empty")
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUpstreamFetch, "failed to fetch instagram post")
	}

	ig.mu.Lock()
	defer ig.mu.Unlock()

	if ig.Client == nil {
		if err := ig.Login(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUpstreamFetch, "failed to fetch instagram post")
		}
	}

	ig.Logger.Info("Fetching latest Instagram post", "username", username)

	start := time.Now()
	item, err := ig.latestItem(username)
	metrics.ObserveUpstream("goinsta", start)
	if err != nil {
		ig.Logger.Error("Error fetching Instagram post", "username", username, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUpstreamFetch, "failed to fetch instagram post")
	}

	post := itemToPost(username, item)
	ig.Logger.Info("Retrieved latest post", "username", username, "post_url", post.PostURL)
	return post, nil
}

func (ig *GoinstaImpl) latestItem(username string) (*goinsta.Item, error) {
	user, err := ig.Client.Profiles.ByName(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", username, err)
	}

	if user.IsPrivate {
		return nil, instagram.ErrPrivateAccount
	}

	feed := user.Feed()
	var feedErr error
	if !feed.Next() {
		feedErr = feed.Error()
	}

	return firstItem(feed.Items, feedErr)
}

// firstItem picks the newest feed item. Paging errors other than the end of
// the feed are returned as is so they are not mistaken for an empty account.
func firstItem(items []*goinsta.Item, feedErr error) (*goinsta.Item, error) {
	if feedErr != nil && !errors.Is(feedErr, goinsta.ErrNoMore) {
		return nil, fmt.Errorf("failed to read feed: %w", feedErr)
	}

	if len(items) == 0 {
		return nil, instagram.ErrNoPosts
	}

	return items[0], nil
}

func itemToPost(username string, item *goinsta.Item) *domain.InstagramPost {
	post := &domain.InstagramPost{
		Username: username,
		Caption:  item.Caption.Text,
		Likes:    item.Likes,
		Comments: item.CommentCount,
		PostURL:  fmt.Sprintf("https://www.instagram.com/p/%s/", item.Code),
	}

	if item.TakenAt > 0 {
		post.Timestamp = time.Unix(item.TakenAt, 0).UTC().Format(time.RFC3339)
	}

	post.ImageURL = item.Images.GetBest()
	if post.ImageURL == "" && len(item.CarouselMedia) > 0 {
		post.ImageURL = item.CarouselMedia[0].Images.GetBest()
	}

	return post
}
