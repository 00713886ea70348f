package setup

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"

	"github.com/medinsure-ai/medinsure/internal/account"
	"github.com/medinsure-ai/medinsure/internal/content"
	"github.com/medinsure-ai/medinsure/internal/handler"
	"github.com/medinsure-ai/medinsure/internal/middleware"
	"github.com/medinsure-ai/medinsure/internal/service"
	"github.com/medinsure-ai/medinsure/internal/storage/pg"
	"github.com/medinsure-ai/medinsure/shared/config"
	"github.com/medinsure-ai/medinsure/shared/kvstore/file"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

const baseTemplate = "base.html"

// Dependencies holds everything the router needs, fully wired.
type Dependencies struct {
	Handler *handler.Handler
	Gate    *middleware.Gate
	Storage *pg.Storage // nil when quote persistence is disabled
	Public  config.Public
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	store, err := file.New(cfg.Public.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	directory := account.New(store)
	session := service.NewSession(store, directory)
	auth := service.NewAuth(directory, session)

	// Quote persistence is optional. Without postgres the site still
	// estimates, it just forgets.
	var storage *pg.Storage
	var quoteStore service.QuoteStorage
	var pinger handler.Pinger
	if cfg.Private.Pg.Enabled() {
		storage, err = pg.New(cfg.Private.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		quoteStore = storage
		pinger = storage
	} else {
		logger.Log.Info("quote persistence disabled, no postgres configured")
	}
	quotes := service.NewQuotes(quoteStore, cfg.Public.QuoteHistory)

	templates, err := loadTemplates(cfg.Public.TemplatesPath)
	if err != nil {
		return nil, err
	}

	pages, err := content.NewRenderer().LoadDir(cfg.Public.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	h := handler.New(auth, session, quotes, pinger, templates, pages, cfg.Public)
	gate := middleware.NewGate(session, cfg.Public.SecureCookies)

	return &Dependencies{
		Handler: h,
		Gate:    gate,
		Storage: storage,
		Public:  cfg.Public,
	}, nil
}

// Cleanup releases held resources, currently just the database pool.
func (d *Dependencies) Cleanup() {
	if d.Storage != nil {
		if err := d.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}
}

// loadTemplates parses every page template against the shared base layout.
func loadTemplates(tmplPath string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates dir: %w", err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) != ".html" || f.Name() == baseTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).ParseFiles(
			path.Join(tmplPath, baseTemplate),
			path.Join(tmplPath, f.Name()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", f.Name(), err)
		}
		templates[f.Name()] = tmpl
	}
	return templates, nil
}
