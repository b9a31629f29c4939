package providers

import (
	"github.com/samber/do/v2"

	"github.com/mikelind28/chapter-champ/internal/config"
	"github.com/mikelind28/chapter-champ/internal/logger"
	"github.com/mikelind28/chapter-champ/internal/metadata/googlebooks"
)

// CatalogClientHandle wraps the Google Books client with Shutdownable.
type CatalogClientHandle struct {
	*googlebooks.Client
}

// Shutdown implements do.Shutdownable.
func (h *CatalogClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideCatalogClient provides the Google Books catalog client.
func ProvideCatalogClient(i do.Injector) (*CatalogClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := googlebooks.NewClient(cfg.Books.GoogleAPIKey, log.Logger)

	if cfg.Books.GoogleAPIKey == "" {
		log.Warn("No Google Books API key configured, catalog requests are subject to stricter quotas")
	}

	return &CatalogClientHandle{Client: client}, nil
}
