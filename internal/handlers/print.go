package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/debagworks/debagmetrics/internal/models"
	"github.com/debagworks/debagmetrics/internal/services/printer"
)

// badgeRequest selects who to print and how to lay the sheet out.
type badgeRequest struct {
	// PersonIDs limits the sheet to specific people; empty means the
	// whole active roster.
	PersonIDs []uint `json:"personIds"`

	printer.BadgeConfig
}

// printBadges generates a QR badge sheet for roster people. Badges are
// scanned at the belt to select the person in the capture form.
func (r *Router) printBadges(w http.ResponseWriter, req *http.Request) {
	var payload badgeRequest
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	query := r.db.Where("active = ?", true).Order("created_at ASC")
	if len(payload.PersonIDs) > 0 {
		query = query.Where("id IN ?", payload.PersonIDs)
	}

	var people []models.Person
	if err := query.Find(&people).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Unable to fetch people.")
		return
	}
	if len(people) == 0 {
		respondError(w, http.StatusNotFound, "No matching people to print.")
		return
	}

	pdfBytes, err := printer.GenerateBadgesPDF(people, payload.BadgeConfig)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate PDF: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"debag_badges.pdf\"")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Write(pdfBytes)
}
