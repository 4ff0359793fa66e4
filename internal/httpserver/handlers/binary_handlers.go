package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"tunedesk/internal/services"
)

func CreateBinary(svc *services.BinaryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.BinaryInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := svc.Create(r.Context(), in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, b)
	}
}

func GetBinary(svc *services.BinaryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, b)
	}
}

func ListBinaries(svc *services.BinaryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bs, err := svc.List(r.Context())
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, bs)
	}
}

// BinariesForCar lists the binaries of the car in {id}, newest first.
func BinariesForCar(svc *services.BinaryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		bs, err := svc.ForCar(r.Context(), id)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, bs)
	}
}

func UpdateBinary(svc *services.BinaryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var in services.BinaryInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := svc.Update(r.Context(), id, in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, b)
	}
}

func DeleteBinary(svc *services.BinaryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"deleted": true})
	}
}

func BinaryCount(svc *services.BinaryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.Count(r.Context())
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"count": n})
	}
}
