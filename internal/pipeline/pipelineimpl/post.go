package pipelineimpl

import (
	"context"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
)

func (p *PipelineImpl) GetPost(ctx context.Context, username string) pipeline.PostResult {
	post, err := p.fetch(ctx, username)
	if err != nil {
		return pipeline.PostResult{
			Stage: pipeline.StageOf(err, pipeline.StageFetch),
			Error: err.Error(),
			Cause: err,
		}
	}

	draft, err := p.summarize(ctx, *post)
	if err != nil {
		return pipeline.PostResult{
			Post:  post,
			Stage: pipeline.StageOf(err, pipeline.StageSummarize),
			Error: err.Error(),
			Cause: err,
		}
	}

	return pipeline.PostResult{
		Success:  true,
		Post:     post,
		Analysis: draft.Content,
	}
}

func (p *PipelineImpl) fetch(ctx context.Context, username string) (*domain.InstagramPost, error) {
	fetchCtx, cancel := p.withTimeout(ctx)
	defer cancel()

	post, err := p.Instagram.GetLatestPost(fetchCtx, username)
	if err == nil && post == nil {
		err = errors.NewWithCode(errors.CodeUpstreamFetch, "ingest provider returned no post")
	}
	metrics.ObserveStage(pipeline.StageFetch, err)
	if err != nil {
		p.Logger.Error("Fetch stage failed", "username", username, "error", err)
		return nil, err
	}

	return post, nil
}

func (p *PipelineImpl) summarize(ctx context.Context, post domain.InstagramPost) (domain.TweetDraft, error) {
	sumCtx, cancel := p.withTimeout(ctx)
	defer cancel()

	draft, err := p.Summarizer.Summarize(sumCtx, post)
	metrics.ObserveStage(pipeline.StageSummarize, err)
	if err != nil {
		p.Logger.Error("Summarize stage failed", "post_url", post.PostURL, "error", err)
		return domain.TweetDraft{}, err
	}

	return draft, nil
}
