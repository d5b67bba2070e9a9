package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwayworks/cartwright/internal/logger"
	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/rules"
	"github.com/fairwayworks/cartwright/pkg/types"
)

// QuoteStore is the persistence surface the quote endpoints need.
type QuoteStore interface {
	CatalogSource
	SaveQuote(q types.Quote) (string, error)
	GetQuote(quoteID string) (types.Quote, error)
	ListQuotes(status string) ([]types.Quote, error)
	DeleteQuote(quoteID string) error
}

type quoteRequest struct {
	Configuration configurationRequest `json:"configuration"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
}

type QuoteHandler struct {
	log   *logger.Logger
	store QuoteStore
	rates pricing.Rates
}

func NewQuoteHandler(log *logger.Logger, store QuoteStore, rates pricing.Rates) *QuoteHandler {
	return &QuoteHandler{
		log:   log.With("handler", "QuoteHandler"),
		store: store,
		rates: rates,
	}
}

// POST /api/quotes
//
// Validates and prices the configuration against the live catalog, then
// persists the quote with the computed total. Invalid configurations never
// become quotes.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	cat, err := h.store.LoadCatalog()
	if err != nil {
		h.log.Error("CreateQuote failed (load catalog)", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_catalog_failed", err)
		return
	}

	cfg := req.Configuration.configuration()
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

	quoteID, err := h.store.SaveQuote(types.Quote{
		Configuration: cfg,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Total:         breakdown.Total,
		Status:        types.QuoteStatusSubmitted,
	})
	if err != nil {
		h.log.Error("CreateQuote failed (save)", "error", err)
		RespondError(c, http.StatusInternalServerError, "save_quote_failed", err)
		return
	}

	quote, err := h.store.GetQuote(quoteID)
	if err != nil {
		h.log.Error("CreateQuote failed (reload)", "error", err, "quote_id", quoteID)
		RespondError(c, http.StatusInternalServerError, "load_quote_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quote": quote, "breakdown": breakdown})
}

// GET /api/quotes?status=
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	status := c.Query("status")
	quotes, err := h.store.ListQuotes(status)
	if err != nil {
		if errors.Is(err, types.ErrInvalidStatus) {
			RespondError(c, http.StatusBadRequest, "invalid_status", err)
			return
		}
		h.log.Error("ListQuotes failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_quotes_failed", err)
		return
	}
	if quotes == nil {
		quotes = []types.Quote{}
	}
	RespondOK(c, gin.H{"quotes": quotes})
}

// GET /api/quotes/:id
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.store.GetQuote(c.Param("id"))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
			RespondError(c, http.StatusNotFound, "quote_not_found", err)
			return
		}
		h.log.Error("GetQuote failed", "error", err, "quote_id", c.Param("id"))
		RespondError(c, http.StatusInternalServerError, "load_quote_failed", err)
		return
	}
	RespondOK(c, gin.H{"quote": quote})
}

// DELETE /api/quotes/:id
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.store.DeleteQuote(c.Param("id")); err != nil {
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
			RespondError(c, http.StatusNotFound, "quote_not_found", err)
			return
		}
		h.log.Error("DeleteQuote failed", "error", err, "quote_id", c.Param("id"))
		RespondError(c, http.StatusInternalServerError, "delete_quote_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
