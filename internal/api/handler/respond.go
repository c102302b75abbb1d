package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/engine"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/logsink"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the error kinds surfaced by the lower layers onto HTTP
// statuses. Anything unclassified is an internal error.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrJobNotFound), errors.Is(err, logsink.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrConnection):
		status = http.StatusServiceUnavailable
	case errors.Is(err, engine.ErrIngestion), errors.Is(err, engine.ErrAggregation):
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}
