package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	exporttoml "github.com/shloksachdev/PaperLens/internal/adapters/export/toml"
	"github.com/shloksachdev/PaperLens/internal/adapters/files"
	"github.com/shloksachdev/PaperLens/internal/adapters/remote"
	sessionrender "github.com/shloksachdev/PaperLens/internal/adapters/render/session"
	"github.com/shloksachdev/PaperLens/internal/application"
	"github.com/shloksachdev/PaperLens/internal/config"
	"github.com/shloksachdev/PaperLens/internal/logging"
	"github.com/shloksachdev/PaperLens/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	closeLog func() error
	client   *remote.Client
	service  ports.RemoteService
	loader   files.Loader
	writer   ports.TranscriptWriter
	renderer func(application.Snapshot, sessionrender.RenderOptions) string
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	client, err := remote.NewClient(cfg.Server.BaseURL, http.DefaultClient)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("wire document service client: %w", err)
	}

	var service ports.RemoteService = client
	if cfg.Breaker.Enabled {
		service = remote.NewBreaker(client, remote.BreakerSettings{
			MinRequests:  cfg.Breaker.MinRequests,
			FailureRatio: cfg.Breaker.FailureRatio,
			OpenTimeout:  cfg.Breaker.OpenTimeout,
			Logger:       logger,
		})
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		client:   client,
		service:  service,
		loader:   files.NewLoader(),
		writer:   exporttoml.NewWriter(),
		renderer: sessionrender.View,
	}, nil
}

// startSession runs a fresh session loop until the returned stop function is
// called.
func (a *app) startSession(ctx context.Context) (*application.Controller, func(), error) {
	loop := application.NewLoop()
	ctrl, err := application.NewController(loop, a.service, application.Options{
		Logger:               a.logger,
		DiscardStaleAnalysis: a.cfg.Analysis.DiscardStale,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("start session: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = loop.Run(loopCtx)
	}()

	a.logger.Debug("session started", zap.String("session_id", ctrl.SessionID()))

	return ctrl, func() {
		cancel()
		<-stopped
	}, nil
}

func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}
