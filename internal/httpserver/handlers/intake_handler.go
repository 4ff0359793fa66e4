package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"tunedesk/internal/services"
)

// CreateIntake registers a car, its profile, its tags and its order as
// one unit of work.
func CreateIntake(svc *services.IntakeService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.IntakeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := svc.Create(r.Context(), in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, res)
	}
}
