package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-tweet-relay/internal/pipeline"
	"github.com/orgball2608/insta-tweet-relay/internal/repositories/publication"
	"github.com/orgball2608/insta-tweet-relay/pkg/config"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC              fx.Lifecycle
	Config          *config.Config
	Logger          logger.Logger
	Pipeline        pipeline.Client
	PublicationRepo publication.Repository
}

type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func New(opts Opts) *Server {
	if opts.Config.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	log := opts.Logger.WithComponent("HTTPServer")
	h := NewHandler(opts.Pipeline, opts.PublicationRepo, opts.Config.App.DefaultUsername, log)

	s := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
			Handler:           NewRouter(h, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}

	opts.LC.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})

	return s
}

// Start binds the listener synchronously so a busy port fails startup.
func (s *Server) Start(context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	s.logger.Info("Starting server", "addr", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped unexpectedly", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
