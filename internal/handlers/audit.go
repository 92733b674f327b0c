package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"gorm.io/datatypes"

	"github.com/debagworks/debagmetrics/internal/models"
	"github.com/debagworks/debagmetrics/internal/validation"
)

// audit records a data-changing action. Failures are logged, not surfaced:
// the trail is operational tooling and must never fail the request.
func (r *Router) audit(action, entity string, entityID uint, detail interface{}) {
	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			entry.Detail = datatypes.JSON(raw)
		}
	}

	if err := r.db.Create(&entry).Error; err != nil {
		log.Printf("Audit write failed (%s %s/%d): %v", action, entity, entityID, err)
	}
}

// listAudit returns the most recent audit entries, newest first
func (r *Router) listAudit(w http.ResponseWriter, req *http.Request) {
	limit := validation.DefaultListLimit
	if v := req.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < validation.MinListLimit || n > validation.MaxListLimit {
			respondError(w, http.StatusBadRequest, "Invalid limit.")
			return
		}
		limit = n
	}

	var entries []models.AuditLog
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Unable to fetch audit log.")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
