package conductor

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct{}

func (h *Handler) Size(w http.ResponseWriter, r *http.Request) {
	var req SizingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := SizeConductor(req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Catalog lists a (standard, material) catalog, or a single entry when
// the size query parameter is present.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	std := Standard(r.URL.Query().Get("standard"))
	if std == "" {
		std = MetricStandard
	}
	mat := Material(r.URL.Query().Get("material"))
	if mat == "" {
		mat = Copper
	}

	w.Header().Set("Content-Type", "application/json")
	if size := r.URL.Query().Get("size"); size != "" {
		entry, err := Lookup(std, mat, size)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(entry)
		return
	}

	entries := AllSizes(std, mat)
	if len(entries) == 0 {
		http.Error(w, "Unknown standard or material", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(entries)
}
