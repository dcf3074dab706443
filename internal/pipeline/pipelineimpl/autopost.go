package pipelineimpl

import (
	"context"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
)

func (p *PipelineImpl) AutoPost(ctx context.Context, username string) pipeline.AutoPostResult {
	res := p.autoPost(ctx, username)
	p.record(ctx, res)
	return res
}

func (p *PipelineImpl) autoPost(ctx context.Context, username string) pipeline.AutoPostResult {
	res := pipeline.AutoPostResult{Username: instagram.NormalizeUsername(username)}

	p.Logger.Info("Starting auto-post", "username", res.Username)

	post, err := p.fetch(ctx, res.Username)
	if err != nil {
		return fail(res, err, pipeline.StageFetch)
	}
	res.Post = post

	draft, err := p.summarize(ctx, *post)
	if err != nil {
		return fail(res, err, pipeline.StageSummarize)
	}
	res.GeneratedTweet = draft.Content

	published := p.publish(ctx, domain.PublishRequest{
		Content:  draft.Content,
		ImageURL: post.ImageURL,
	})
	res.Twitter = &published
	if !published.Success {
		err := errors.NewWithCode(published.ErrorCode, published.Error)
		return fail(res, err, pipeline.StagePublish)
	}

	res.Success = true
	p.Logger.Info("Auto-post completed",
		"username", res.Username,
		"post_url", post.PostURL,
		"tweet_id", published.TweetID)
	return res
}

func fail(res pipeline.AutoPostResult, err error, stage string) pipeline.AutoPostResult {
	res.Success = false
	res.Stage = pipeline.StageOf(err, stage)
	res.Error = err.Error()
	res.Cause = err
	return res
}

// record stores the outcome and notifies the operator. Neither may change the
// result, and both outlive a cancelled request.
func (p *PipelineImpl) record(ctx context.Context, res pipeline.AutoPostResult) {
	if res.Stage == pipeline.StageValidation {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	pub := toPublication(res)

	if _, err := p.PublicationRepo.Create(ctx, pub); err != nil {
		p.Logger.Warn("Failed to record publication", "username", res.Username, "error", err)
	}

	if err := p.Telegram.NotifyPublication(ctx, pub); err != nil {
		p.Logger.Warn("Failed to notify publication", "username", res.Username, "error", err)
	}
}

func toPublication(res pipeline.AutoPostResult) domain.Publication {
	pub := domain.Publication{
		Username:       res.Username,
		GeneratedTweet: res.GeneratedTweet,
		Success:        res.Success,
		Stage:          res.Stage,
		Error:          res.Error,
	}
	if res.Post != nil {
		pub.PostURL = res.Post.PostURL
		pub.Caption = res.Post.Caption
	}
	if res.Twitter != nil {
		pub.TweetID = res.Twitter.TweetID
		pub.TweetURL = res.Twitter.TweetURL
	}
	return pub
}
