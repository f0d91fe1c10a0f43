package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"diff-search/internal/changes"
	"diff-search/internal/config"
	"diff-search/internal/git"
	"diff-search/internal/observability"
	"diff-search/internal/ratelimit"
	"diff-search/internal/untracked"
)

type Server struct {
	cfg     *config.Config
	logger  *observability.Logger
	agg     *changes.Aggregator
	limiter *ratelimit.Limiter
	http    *http.Server
}

func NewServer(cfg *config.Config, logger *observability.Logger) *Server {

	provider := git.NewBreaker(git.NewClient(cfg, logger))
	files := untracked.NewFiles(cfg.RepoRoot, cfg.MaxFileBytes, logger)

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		agg:     changes.New(provider, files, logger),
		limiter: ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	return s
}

func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.http.Shutdown(context.Background())
	}()

	s.logger.Info("starting server",
		"port", s.cfg.Port,
		"env", s.cfg.Env,
		"repo", s.cfg.RepoRoot,
	)

	if err := s.http.ListenAndServe(); err != nil &&
		err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
