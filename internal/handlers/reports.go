package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/debagworks/debagmetrics/internal/models"
	"github.com/debagworks/debagmetrics/internal/report"
	"github.com/debagworks/debagmetrics/internal/services/printer"
	"github.com/debagworks/debagmetrics/internal/validation"
)

// rangeObservations validates the start/end query pair and fetches the
// matching observations (Person preloaded, newest first). Reports are
// bounded by date range only, never by row count.
func (r *Router) rangeObservations(req *http.Request) (*validation.DateRange, []models.Observation, error) {
	q := req.URL.Query()
	rng, err := validation.ParseDateRange(q.Get("start"), q.Get("end"))
	if err != nil {
		return nil, nil, err
	}

	var observations []models.Observation
	err = r.db.Preload("Person").
		Where("created_at BETWEEN ? AND ?", rng.Start, rng.End).
		Order("created_at DESC").
		Find(&observations).Error
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errStore, err)
	}

	return rng, observations, nil
}

// getReport aggregates the range into per-person and per-role summaries
func (r *Router) getReport(w http.ResponseWriter, req *http.Request) {
	rng, observations, err := r.rangeObservations(req)
	if err != nil {
		respondRangeError(w, err)
		return
	}

	rep := report.Build(report.Range{Start: rng.StartLabel, End: rng.EndLabel}, observations)
	respondJSON(w, http.StatusOK, rep)
}

// getReportPDF renders the same aggregation as a printable PDF
func (r *Router) getReportPDF(w http.ResponseWriter, req *http.Request) {
	rng, observations, err := r.rangeObservations(req)
	if err != nil {
		respondRangeError(w, err)
		return
	}

	rep := report.Build(report.Range{Start: rng.StartLabel, End: rng.EndLabel}, observations)
	pdfBytes, err := printer.GenerateReportPDF(rep)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Unable to render report PDF.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"debags_report_%s_to_%s.pdf\"", rng.StartLabel, rng.EndLabel))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Write(pdfBytes)
}

var errStore = errors.New("store read failed")

// respondRangeError distinguishes validation failures (bad dates) from
// store failures: validation runs before any store access.
func respondRangeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errStore) {
		respondError(w, http.StatusInternalServerError, "Unable to build report.")
		return
	}
	respondError(w, http.StatusBadRequest, err.Error())
}
