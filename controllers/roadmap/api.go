package roadmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"career-roadmap/services"
)

// monthsValue accepts either a JSON number or a JSON string.
type monthsValue string

func (m *monthsValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = monthsValue(s)
		return nil
	}
	if string(b) == "null" {
		*m = ""
		return nil
	}
	*m = monthsValue(b)
	return nil
}

type RoadmapRequest struct {
	CareerPath     string      `json:"career_path"`
	DurationMonths monthsValue `json:"duration_months"`
}

// ListPaths returns the catalog as JSON.
func (h *Handler) ListPaths(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.catalog.Paths(), http.StatusOK)
}

// maxRequestBody bounds the JSON accepted by CreateRoadmap.
const maxRequestBody = 1 << 16

// CreateRoadmap is the JSON counterpart of Generate.
func (h *Handler) CreateRoadmap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	key := strings.TrimSpace(req.CareerPath)
	if !h.catalog.Has(key) {
		respondError(w, "unknown career path: "+key, http.StatusNotFound)
		return
	}

	months, err := ParseMonths(string(req.DurationMonths))
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	roadmap, _, err := h.catalog.Roadmap(key, months, h.maxMonths)
	switch {
	case errors.Is(err, services.ErrInvalidDuration):
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.log.Error().Err(err).Str("career_path", key).Msg("building roadmap")
		respondError(w, "Failed to build roadmap", http.StatusInternalServerError)
		return
	}

	h.log.Info().Str("career_path", key).Int("months", months).Msg("roadmap generated")
	respondJSON(w, roadmap, http.StatusOK)
}

func tooManyAPI(w http.ResponseWriter, r *http.Request) {
	respondError(w, tooManyMessage, http.StatusTooManyRequests)
}

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}
