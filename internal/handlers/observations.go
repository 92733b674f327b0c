package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/debagworks/debagmetrics/internal/models"
	"github.com/debagworks/debagmetrics/internal/validation"
)

// listObservations returns recent observations, newest first, honoring the
// optional equality filters and date range
func (r *Router) listObservations(w http.ResponseWriter, req *http.Request) {
	filters, err := validation.ParseObservationFilters(req.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.db.Preload("Person").Order("created_at DESC").Limit(filters.Limit)
	if filters.Role != "" {
		query = query.Where("role = ?", filters.Role)
	}
	if filters.Belt != "" {
		query = query.Where("belt = ?", filters.Belt)
	}
	if filters.ShiftWindow != "" {
		query = query.Where("shift_window = ?", filters.ShiftWindow)
	}
	if filters.FlowCondition != "" {
		query = query.Where("flow_condition = ?", filters.FlowCondition)
	}
	if filters.Range != nil {
		query = query.Where("created_at BETWEEN ? AND ?", filters.Range.Start, filters.Range.End)
	}

	var observations []models.Observation
	if err := query.Find(&observations).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Unable to fetch observations.")
		return
	}

	respondJSON(w, http.StatusOK, observations)
}

// createObservation records a timed run; avgSecondsPerBag is computed
// server-side and stored
func (r *Router) createObservation(w http.ResponseWriter, req *http.Request) {
	var input validation.CreateObservationInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	obs, err := input.NewObservation()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.db.Create(obs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Unable to create observation.")
		return
	}

	// Reload with the linked person for the response payload
	if err := r.db.Preload("Person").First(obs, obs.ID).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Unable to create observation.")
		return
	}

	r.audit("observation.create", "observation", obs.ID, obs)
	r.hub.Broadcast("observation.created", obs)

	respondJSON(w, http.StatusCreated, obs)
}

// deleteObservation removes a single observation by id
func (r *Router) deleteObservation(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil || id == 0 {
		respondError(w, http.StatusBadRequest, "Invalid observation id.")
		return
	}

	result := r.db.Delete(&models.Observation{}, id)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "Unable to delete observation.")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Observation not found.")
		return
	}

	r.audit("observation.delete", "observation", uint(id), nil)
	r.hub.Broadcast("observation.deleted", map[string]uint64{"id": id})

	w.WriteHeader(http.StatusNoContent)
}
