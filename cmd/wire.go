package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/nx-sentinel/internal/adapters/content/gemini"
	"github.com/bnema/nx-sentinel/internal/adapters/platform/discord"
	"github.com/bnema/nx-sentinel/internal/adapters/render/dashboard"
	tomlrepo "github.com/bnema/nx-sentinel/internal/adapters/repo/toml"
	filestore "github.com/bnema/nx-sentinel/internal/adapters/secrets/file"
	"github.com/bnema/nx-sentinel/internal/application"
	"github.com/bnema/nx-sentinel/internal/config"
	"github.com/bnema/nx-sentinel/internal/logging"
	"github.com/bnema/nx-sentinel/internal/ports"
	"go.uber.org/zap"
)

const platformRequestTimeout = 15 * time.Second

// runLiveDashboard owns the terminal for the dashboard command.
var runLiveDashboard = dashboard.Run

type app struct {
	config   config.Config
	logger   *zap.Logger
	settings *application.SettingsService
	platform ports.GuildPlatform
	content  gemini.Config
	renderer func(application.Snapshot, dashboard.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	v, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}
	secretStore := filestore.NewStore(filestore.DefaultRoot(repo.Path()))

	return &app{
		config:   cfg,
		logger:   logger,
		settings: application.NewSettingsService(repo, secretStore, ports.SystemClock{}),
		platform: discord.NewClient(cfg.PlatformBaseURL, &http.Client{Timeout: platformRequestTimeout}),
		content: gemini.Config{
			APIKey:   cfg.ContentAPIKey,
			Model:    cfg.ContentModel,
			Language: cfg.ContentLanguage,
			BaseURL:  cfg.ContentBaseURL,
		},
		renderer: dashboard.Render,
	}, nil
}

// newController builds a fresh engine logging to logger. Successful connects
// persist the credentials used.
func (a *app) newController(logger *zap.Logger) *application.Controller {
	return application.NewController(application.SessionDeps{
		Platform:    a.platform,
		Content:     gemini.NewProvider(a.content, logger),
		Logger:      logger,
		OnConnected: a.settings.Save,
	}, application.EngineConfig{
		SamplerInterval: a.config.SamplerInterval,
		StepDelay:       a.config.StepDelay,
	})
}

// screenLogger is the logger for commands that take over the terminal.
// Without a log file the stream would be drawn over the screen, so it is
// dropped.
func (a *app) screenLogger() *zap.Logger {
	if a.config.LogFile == "" {
		return zap.NewNop()
	}
	return a.logger
}
