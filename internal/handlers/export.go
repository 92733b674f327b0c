package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/debagworks/debagmetrics/internal/export"
)

// exportObservations streams the date range as a CSV attachment
func (r *Router) exportObservations(w http.ResponseWriter, req *http.Request) {
	rng, observations, err := r.rangeObservations(req)
	if err != nil {
		respondRangeError(w, err)
		return
	}

	csv := export.ObservationsCSV(observations)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"debags_%s_to_%s.csv\"", rng.StartLabel, rng.EndLabel))
	w.Header().Set("Content-Length", strconv.Itoa(len(csv)))
	w.Write([]byte(csv))
}
