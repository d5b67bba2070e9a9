// Tests for the HTTP API endpoints against a real store in a temp dir.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwayworks/cartwright/internal/handlers"
	"github.com/fairwayworks/cartwright/internal/logger"
	"github.com/fairwayworks/cartwright/internal/server"
	"github.com/fairwayworks/cartwright/internal/sqlite"
	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/types"
)

var testRates = pricing.Rates{
	LaborRate: 85,
	ZoneBaseCosts: map[string]float64{
		types.ZoneBody:  1200,
		types.ZoneSeats: 800,
	},
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := sqlite.NewStore()
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	require.NoError(t, store.Attach(config))
	t.Cleanup(func() { store.Detach() })

	log, err := logger.New("dev")
	require.NoError(t, err)
	t.Cleanup(log.Sync)

	return server.NewRouter(server.RouterConfig{
		Log:                  log,
		CatalogHandler:       handlers.NewCatalogHandler(log, store),
		ConfigurationHandler: handlers.NewConfigurationHandler(log, store, testRates),
		QuoteHandler:         handlers.NewQuoteHandler(log, store, testRates),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetCatalog(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Platforms []types.Platform `json:"platforms"`
		Options   []types.Option   `json:"options"`
		Materials []types.Material `json:"materials"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Platforms, 1)
	assert.Equal(t, "cart-base", resp.Platforms[0].PlatformID)
	assert.NotEmpty(t, resp.Options)
	assert.NotEmpty(t, resp.Materials)
}

func TestValidateCatalog(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/catalog/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid, "seeded catalog should validate clean")
}

func TestValidateConfiguration(t *testing.T) {
	router := testRouter(t)

	t.Run("valid selection", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/configurations/validate", gin.H{
			"platform_id":      "cart-base",
			"selected_options": []string{"wheels-offroad", "suspension-lift-6"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Valid bool `json:"valid"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
	})

	t.Run("missing requirement reported", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/configurations/validate", gin.H{
			"platform_id":      "cart-base",
			"selected_options": []string{"suspension-lift-6"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Valid  bool `json:"valid"`
			Errors []struct {
				Code      string `json:"code"`
				OptionID  string `json:"option_id"`
				RelatedID string `json:"related_id"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "missing_requirement", resp.Errors[0].Code)
		assert.Equal(t, "wheels-offroad", resp.Errors[0].RelatedID)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/configurations/validate", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"invalid_body"`)
	})
}

func TestPriceConfiguration(t *testing.T) {
	router := testRouter(t)

	t.Run("valid configuration priced", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/configurations/price", gin.H{
			"platform_id":      "cart-base",
			"selected_options": []string{"wheels-offroad", "suspension-lift-6"},
			"material_selections": []gin.H{
				{"zone": "body", "material_id": "paint-matte-black"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var b pricing.Breakdown
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
		assert.Equal(t, 8999.0, b.BasePrice)
		assert.Equal(t, 3750.0, b.PartsSubtotal)
		assert.Equal(t, 722.5, b.LaborSubtotal)
		assert.Equal(t, 1500.0, b.MaterialAdjustment)
		assert.Equal(t, 14971.5, b.Total)
	})

	t.Run("invalid configuration rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/configurations/price", gin.H{
			"platform_id":      "cart-base",
			"selected_options": []string{"seat-captain", "seat-standard"},
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"invalid_configuration"`)
		assert.Contains(t, w.Body.String(), "exclusion_conflict")
	})
}

func TestAvailableOptions(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/configurations/options", gin.H{
		"platform_id":      "cart-base",
		"selected_options": []string{"seat-captain"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Options []types.Option `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	ids := make(map[string]bool)
	for _, o := range resp.Options {
		ids[o.OptionID] = true
	}
	assert.False(t, ids["seat-standard"], "excluded option must not be offered")
	assert.False(t, ids["seat-captain"], "already-selected option must not be offered")
	assert.False(t, ids["suspension-lift-6"], "option with unmet requirement must not be offered")
	assert.True(t, ids["wheels-offroad"])
	assert.True(t, ids["stereo-premium"], "requirement satisfied by current selection")
}

func TestQuoteLifecycle(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/quotes", gin.H{
		"configuration": gin.H{
			"platform_id":      "cart-base",
			"selected_options": []string{"wheels-offroad"},
		},
		"customer_name":  "Rowan Ellis",
		"customer_email": "rowan@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Quote     types.Quote       `json:"quote"`
		Breakdown pricing.Breakdown `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Quote.QuoteID)
	assert.Equal(t, types.QuoteStatusSubmitted, created.Quote.Status)
	// 8999 + 1350 parts + 2.5h * 85
	assert.Equal(t, 10561.5, created.Quote.Total)
	assert.Equal(t, created.Breakdown.Total, created.Quote.Total)

	w = doJSON(t, router, http.MethodGet, "/api/quotes/"+created.Quote.QuoteID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/quotes?status=submitted", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Quotes []types.Quote `json:"quotes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Quotes, 1)
	assert.Equal(t, created.Quote.QuoteID, listed.Quotes[0].QuoteID)

	w = doJSON(t, router, http.MethodDelete, "/api/quotes/"+created.Quote.QuoteID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/quotes/"+created.Quote.QuoteID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"quote_not_found"`)
}

func TestCreateQuoteRejectsInvalidConfiguration(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/quotes", gin.H{
		"configuration": gin.H{
			"platform_id":      "cart-base",
			"selected_options": []string{"suspension-lift-6"},
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "missing_requirement")

	// Nothing was persisted.
	w = doJSON(t, router, http.MethodGet, "/api/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"quotes":[]}`, w.Body.String())
}

func TestListQuotesRejectsUnknownStatus(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/quotes?status=%s", "expired"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"invalid_status"`)
}
