package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwayworks/cartwright/internal/logger"
	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/rules"
	"github.com/fairwayworks/cartwright/pkg/types"
)

// configurationRequest is the request body shared by the configuration
// endpoints: a configuration in its serialized form.
type configurationRequest struct {
	PlatformID         string                    `json:"platform_id"`
	SelectedOptions    []string                  `json:"selected_options"`
	MaterialSelections []types.MaterialSelection `json:"material_selections"`
}

func (r configurationRequest) configuration() types.Configuration {
	return types.Configuration{
		PlatformID:         r.PlatformID,
		SelectedOptions:    r.SelectedOptions,
		MaterialSelections: r.MaterialSelections,
	}
}

type ConfigurationHandler struct {
	log   *logger.Logger
	store CatalogSource
	rates pricing.Rates
}

func NewConfigurationHandler(log *logger.Logger, store CatalogSource, rates pricing.Rates) *ConfigurationHandler {
	return &ConfigurationHandler{
		log:   log.With("handler", "ConfigurationHandler"),
		store: store,
		rates: rates,
	}
}

// POST /api/configurations/validate
func (h *ConfigurationHandler) Validate(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	cat, err := h.store.LoadCatalog()
	if err != nil {
		h.log.Error("Validate failed (load catalog)", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_catalog_failed", err)
		return
	}

	RespondOK(c, rules.ValidateConfiguration(req.configuration(), cat))
}

// POST /api/configurations/price
func (h *ConfigurationHandler) Price(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	cat, err := h.store.LoadCatalog()
	if err != nil {
		h.log.Error("Price failed (load catalog)", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_catalog_failed", err)
		return
	}

	cfg := req.configuration()
	result := rules.ValidateConfiguration(cfg, cat)
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      APIError{Message: "configuration is not valid", Code: "invalid_configuration"},
			"violations": result.Errors,
		})
		return
	}

	breakdown, err := pricing.Price(cfg, cat, h.rates)
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "price_failed", err)
		return
	}
	RespondOK(c, breakdown)
}

// POST /api/configurations/options
func (h *ConfigurationHandler) Options(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	cat, err := h.store.LoadCatalog()
	if err != nil {
		h.log.Error("Options failed (load catalog)", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_catalog_failed", err)
		return
	}

	available := rules.AvailableOptions(req.configuration(), cat)
	if available == nil {
		available = []types.Option{}
	}
	RespondOK(c, gin.H{"options": available})
}
