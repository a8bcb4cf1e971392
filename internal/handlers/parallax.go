package handlers

import (
	"math"
	"net/http"
	"strconv"

	"alexjohnson.dev/internal/parallax"
)

// GetParallax handles GET /api/parallax?offset=<px>
func GetParallax(w http.ResponseWriter, r *http.Request) {
	offset := 0.0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			respondError(w, http.StatusBadRequest, "Invalid offset")
			return
		}
		offset = v
	}
	respondJSON(w, http.StatusOK, parallax.ComputeOffsets(offset))
}
