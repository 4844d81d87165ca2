package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
	"github.com/rogerio-castellano/inventory-insights/internal/logging"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
	"github.com/rogerio-castellano/inventory-insights/internal/query"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		logging.GetLogger().WithError(err).Warn("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string, details string) {
	respond(w, status, ErrorResponse{Error: message, Details: details})
}

// writeServiceError maps domain errors to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrSnapshotNotReady):
		writeError(w, http.StatusServiceUnavailable, "inventory data is not available yet", err.Error())
	case errors.Is(err, dashboard.ErrLoadFailure):
		writeError(w, http.StatusBadGateway, dashboard.ErrLoadFailure.Error(), err.Error())
	case errors.Is(err, query.ErrUnknownSortField), errors.Is(err, errBadQuery):
		writeError(w, http.StatusBadRequest, "invalid query", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error", "")
	}
}

func currentSnapshot(w http.ResponseWriter) (*models.Snapshot, bool) {
	if dashboardSvc == nil {
		writeServiceError(w, dashboard.ErrSnapshotNotReady)
		return nil, false
	}
	snap, err := dashboardSvc.Current()
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return snap, true
}
