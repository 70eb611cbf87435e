package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"promptvault/internal/config"
	"promptvault/internal/services"
	"promptvault/internal/store"
	"promptvault/internal/store/sqlite"
	"promptvault/pkg/annotate"
)

type App struct {
	Config      *config.Config
	PromptStore store.PromptStore
	Annotator   *annotate.Annotator

	modelClient annotate.ModelClient
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initPromptStore(); err != nil {
		return nil, err
	}
	if err := app.initAnnotator(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}

	log.Debug("Application initialization complete.")
	return app, nil
}

func (a *App) initPromptStore() error {
	s, err := sqlite.New(a.Config.Database.DSN)
	if err != nil {
		return fmt.Errorf("init prompt store: %w", err)
	}
	a.PromptStore = s
	return nil
}

func (a *App) initAnnotator() error {
	cfg := a.Config

	var client annotate.ModelClient
	switch cfg.Annotation.Provider {
	case "gemini":
		geminiClient, err := services.NewGeminiClient(cfg.Annotation.GoogleApiKey)
		if err != nil {
			return fmt.Errorf("init gemini client: %w", err)
		}
		client = geminiClient
	case "openai":
		client = services.NewOpenAIClient(cfg.Annotation.OpenaiApiKey)
	default:
		return fmt.Errorf("unknown annotation provider configured: %q", cfg.Annotation.Provider)
	}

	a.modelClient = client
	a.Annotator = annotate.New(client, cfg.Annotation.Model, cfg.Timeout())
	return nil
}

func (a *App) Close() {
	if closer, ok := a.modelClient.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			log.Warnf("Error closing model client: %v", err)
		}
	}
	if a.PromptStore != nil {
		if err := a.PromptStore.Close(); err != nil {
			log.Warnf("Error closing prompt store: %v", err)
		}
	}
}

func (a *App) cleanupPartialInit() {
	if a.PromptStore != nil {
		a.PromptStore.Close()
	}
}
