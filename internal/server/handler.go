package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/internal/instagram"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	"github.com/orgball2608/insta-tweet-relay/internal/repositories/publication"
	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
)

const RootMessage = "Instagram Data Fetching API is running"

type Handler struct {
	pipeline        pipeline.Client
	publicationRepo publication.Repository
	defaultUsername string
	logger          logger.Logger
}

func NewHandler(p pipeline.Client, repo publication.Repository, defaultUsername string, log logger.Logger) *Handler {
	return &Handler{
		pipeline:        p,
		publicationRepo: repo,
		defaultUsername: defaultUsername,
		logger:          log,
	}
}

// statusFor maps a failed stage to an HTTP status.
func statusFor(stage string, cause error) int {
	switch stage {
	case pipeline.StageValidation:
		return http.StatusBadRequest
	case pipeline.StageFetch:
		if errors.Is(cause, instagram.ErrNoPosts) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) username(c *gin.Context) string {
	if u := c.Param("username"); u != "" {
		return u
	}
	return h.defaultUsername
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) GetPost(c *gin.Context) {
	res := h.pipeline.GetPost(c.Request.Context(), h.username(c))
	if !res.Success {
		c.JSON(statusFor(res.Stage, res.Cause), ErrorResponse{
			Success: false,
			Stage:   res.Stage,
			Error:   res.Error,
		})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(res.Post, res.Analysis))
}

func (h *Handler) PostTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Stage:   pipeline.StageValidation,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	res := h.pipeline.PostTweet(c.Request.Context(), domain.PublishRequest{
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})

	out := toTweetResponse(res)
	if !res.Success {
		out.Stage = pipeline.StageOfCode(res.ErrorCode, pipeline.StagePublish)
		c.JSON(statusFor(out.Stage, nil), out)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) AutoPost(c *gin.Context) {
	res := h.pipeline.AutoPost(c.Request.Context(), h.username(c))

	out := AutoPostResponse{
		Success:        res.Success,
		GeneratedTweet: res.GeneratedTweet,
		Stage:          res.Stage,
		Error:          res.Error,
	}
	if res.Post != nil {
		out.Instagram = &InstagramSummary{
			Username: res.Username,
			Caption:  res.Post.Caption,
			ImageURL: res.Post.ImageURL,
		}
	}
	if res.Twitter != nil {
		tw := toTweetResponse(*res.Twitter)
		out.Twitter = &tw
	}

	if !res.Success {
		c.JSON(statusFor(res.Stage, res.Cause), out)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	pubs, err := h.publicationRepo.GetLatestByUsername(c.Request.Context(), instagram.NormalizeUsername(c.Param("username")), limit)
	if err != nil {
		if errors.Is(err, publication.ErrDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": err.Error()})
			return
		}
		h.logger.Error("Failed to load publication history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database error"})
		return
	}

	out := HistoryResponse{Success: true, Publications: make([]PublicationResponse, 0, len(pubs))}
	for _, p := range pubs {
		out.Publications = append(out.Publications, toPublicationResponse(p))
	}

	c.JSON(http.StatusOK, out)
}
