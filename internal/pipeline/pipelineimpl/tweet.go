package pipelineimpl

import (
	"context"

	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	"github.com/orgball2608/insta-tweet-relay/internal/twitter"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
)

func (p *PipelineImpl) PostTweet(ctx context.Context, req domain.PublishRequest) domain.PublishResult {
	if err := twitter.ValidateContent(req.Content); err != nil {
		metrics.ObserveStage(pipeline.StageValidation, err)
		p.Logger.Warn("Rejected tweet before publishing", "error", err)
		return twitter.Failure(err)
	}

	return p.publish(ctx, req)
}

func (p *PipelineImpl) publish(ctx context.Context, req domain.PublishRequest) domain.PublishResult {
	pubCtx, cancel := p.withTimeout(ctx)
	defer cancel()

	res := p.Twitter.Publish(pubCtx, req)
	if res.Success {
		metrics.ObserveStage(pipeline.StagePublish, nil)
		return res
	}

	if res.ErrorCode == "" {
		res.ErrorCode = errors.CodePublish
	}
	metrics.ObserveStage(pipeline.StagePublish, errors.NewWithCode(res.ErrorCode, res.Error))
	p.Logger.Error("Publish stage failed", "error", res.Error, "code", res.ErrorCode)
	return res
}
