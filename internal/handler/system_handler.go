package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Pinger checks database connectivity. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles the service-info and health endpoints.
type SystemHandler struct {
	db     Pinger
	logger zerolog.Logger
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(db Pinger, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: logger.With().Str("handler", "system").Logger(),
	}
}

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// serviceInfo is the body of GET /.
type serviceInfo struct {
	Message   string            `json:"message"`
	Database  string            `json:"database"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

// Home handles GET / requests with basic service information.
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, serviceInfo{
		Message:  "Inventory API",
		Database: databaseType,
		Status:   "running",
		Endpoints: map[string]string{
			"products": "/api/products",
			"health":   "/api/health",
			"stats":    "/api/stats",
		},
	})
}

// Health handles GET /api/health requests. It reports the database as
// connected only when a ping succeeds; connectivity failures are surfaced
// in the body rather than failing the request.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("database ping failed")
		database = "error: " + err.Error()
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}
