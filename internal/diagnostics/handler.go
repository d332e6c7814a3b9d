// Package diagnostics serves the service banner and the store connectivity
// report. Store failures are reported in the body, never as an error status.
package diagnostics

import (
	"context"
	"net/http"
	"time"

	"ImpactFlow/internal/config"
	"ImpactFlow/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const maxCollections = 10

// Prober is the slice of the store the report needs.
type Prober interface {
	Available() bool
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

type Handler struct {
	store   Prober
	uriSet  bool
	timeout time.Duration
	log     *zap.Logger
}

func NewHandler(s *store.Store, client *config.MongoDBClient, logger *zap.Logger) *Handler {
	return newHandler(s, client.URISet, logger)
}

func newHandler(p Prober, uriSet bool, logger *zap.Logger) *Handler {
	return &Handler{store: p, uriSet: uriSet, timeout: 5 * time.Second, log: logger.Named("diagnostics")}
}

type report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root handles GET /.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"name": "ImpactFlow API", "status": "ok"})
}

// Test handles GET /test. It always answers 200.
func (h *Handler) Test(c echo.Context) error {
	resp := report{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if h.uriSet {
		resp.DatabaseURL = "set"
	}

	if h.store.Available() {
		name := h.store.Name()
		resp.DatabaseName = &name
		resp.Database = "available"
		resp.ConnectionStatus = "connected"

		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		defer cancel()

		names, err := h.store.CollectionNames(ctx)
		if err != nil {
			h.log.Warn("diagnostics: listing collections failed", zap.Error(err))
			resp.Database = "connected but error: " + truncate(err.Error(), 80)
		} else {
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			resp.Collections = names
			resp.Database = "connected and working"
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
