package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwayworks/cartwright/internal/logger"
	"github.com/fairwayworks/cartwright/pkg/catalog"
)

// CatalogSource loads the current catalog snapshot.
type CatalogSource interface {
	LoadCatalog() (*catalog.Catalog, error)
}

type CatalogHandler struct {
	log   *logger.Logger
	store CatalogSource
}

func NewCatalogHandler(log *logger.Logger, store CatalogSource) *CatalogHandler {
	return &CatalogHandler{
		log:   log.With("handler", "CatalogHandler"),
		store: store,
	}
}

// GET /api/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	cat, err := h.store.LoadCatalog()
	if err != nil {
		h.log.Error("GetCatalog failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_catalog_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"platforms": cat.Platforms(),
		"options":   cat.Options(),
		"materials": cat.Materials(),
		"relations": cat.Relations(),
	})
}

// GET /api/catalog/validate
func (h *CatalogHandler) ValidateCatalog(c *gin.Context) {
	cat, err := h.store.LoadCatalog()
	if err != nil {
		h.log.Error("ValidateCatalog failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_catalog_failed", err)
		return
	}
	issues := cat.Validate()
	RespondOK(c, gin.H{
		"valid":  len(issues) == 0,
		"issues": issues,
	})
}
