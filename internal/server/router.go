package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/", h.Root)
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/instagram/", h.GetPost)
	r.GET("/instagram/:username", h.GetPost)
	r.POST("/post-tweet", h.PostTweet)
	r.POST("/auto-post/", h.AutoPost)
	r.POST("/auto-post/:username", h.AutoPost)
	r.GET("/history/:username", h.History)

	return r
}
