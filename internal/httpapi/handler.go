// Package httpapi exposes the trip-planning service over plain net/http,
// following the bare ServeMux the reference services use for their HTTP
// surface (no router library appears anywhere in the platform's
// dependency stack).
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/draymaster/services/hos-trip-planner/internal/logger"
	"github.com/draymaster/services/hos-trip-planner/internal/service"
)

// NewRouter builds the HTTP surface: health check and trip planning.
func NewRouter(svc *service.TripService, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/plan-trip", handlePlanTrip(svc, log))

	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func handlePlanTrip(svc *service.TripService, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req planTripRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Errors: map[string]string{"body": "request body must be valid JSON"},
			})
			return
		}

		result, fieldErrors, err := svc.PlanTrip(r.Context(), req.toValidationInput())
		if fieldErrors != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Errors: fieldErrors})
			return
		}
		if err != nil {
			log.WithError(err).Errorw("Failed to plan trip")
			writeJSON(w, http.StatusInternalServerError, internalErrorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
