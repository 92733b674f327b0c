package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/debagworks/debagmetrics/internal/database"
	"github.com/debagworks/debagmetrics/internal/models"
	"github.com/debagworks/debagmetrics/internal/validation"
)

// listPeople returns the active roster in creation order
func (r *Router) listPeople(w http.ResponseWriter, req *http.Request) {
	var people []models.Person
	if err := r.db.Where("active = ?", true).Order("created_at ASC").Find(&people).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Unable to fetch people.")
		return
	}

	respondJSON(w, http.StatusOK, people)
}

// createPerson quick-adds a roster entry
func (r *Router) createPerson(w http.ResponseWriter, req *http.Request) {
	var input validation.CreatePersonInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	person, err := input.NewPerson()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.db.Create(person).Error; err != nil {
		// Uniqueness is left to the store; no pre-check
		if database.IsDuplicateKey(err) {
			respondError(w, http.StatusConflict, "Employee code already exists.")
			return
		}
		respondError(w, http.StatusInternalServerError, "Unable to create person.")
		return
	}

	r.audit("person.create", "person", person.ID, person)

	respondJSON(w, http.StatusCreated, person)
}
