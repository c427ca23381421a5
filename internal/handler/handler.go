package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"inventory-api/internal/model"

	"github.com/rs/zerolog"
)

// databaseType names the backing engine in info and stats responses.
const databaseType = "PostgreSQL"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing more can be done for the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError translates a service error into an HTTP response.
// Validation failures become 400s, unknown IDs become 404s, and everything
// else is a 500 with a generic body.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if errors.Is(err, model.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, model.ErrProductNotFound.Message, logger)
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == model.ErrCodeValidation {
		writeError(w, http.StatusBadRequest, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}
