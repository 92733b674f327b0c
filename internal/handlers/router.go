package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/debagworks/debagmetrics/internal/buildinfo"
	"github.com/debagworks/debagmetrics/internal/config"
	"github.com/debagworks/debagmetrics/internal/database"
	"github.com/debagworks/debagmetrics/internal/middleware"
	"github.com/debagworks/debagmetrics/internal/websocket"
	"github.com/debagworks/debagmetrics/web"
)

// Router wraps the mux router, database and event hub
type Router struct {
	*mux.Router
	db  *database.DB
	cfg *config.Config
	hub *websocket.Hub
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, hub *websocket.Hub) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		db:     db,
		cfg:    cfg,
		hub:    hub,
	}

	r.Use(middleware.RequestID)

	pin := middleware.PinConfig{PIN: cfg.AppPIN, PINHash: cfg.AppPINHash}

	// Health check endpoint (no PIN: used by load balancers and the
	// capture form's connectivity probe)
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.PinAuth(pin))

	api.HandleFunc("/status", r.getStatus).Methods("GET")

	// People routes
	api.HandleFunc("/people", r.listPeople).Methods("GET")
	api.HandleFunc("/people", r.createPerson).Methods("POST")

	// Observation routes
	api.HandleFunc("/observations", r.listObservations).Methods("GET")
	api.HandleFunc("/observations", r.createObservation).Methods("POST")
	api.HandleFunc("/observations/export", r.exportObservations).Methods("GET")
	api.HandleFunc("/observations/{id:[0-9]+}", r.deleteObservation).Methods("DELETE")

	// Report routes
	api.HandleFunc("/reports", r.getReport).Methods("GET")
	api.HandleFunc("/reports/pdf", r.getReportPDF).Methods("GET")

	// Badge printing
	api.HandleFunc("/print/badges", r.printBadges).Methods("POST")

	// Audit trail
	api.HandleFunc("/audit", r.listAudit).Methods("GET")

	// Live event feed for dashboards (PIN via header or ?pin=)
	ws := r.PathPrefix("/ws").Subrouter()
	ws.Use(middleware.PinAuth(pin))
	ws.HandleFunc("", r.serveWs).Methods("GET")

	// Embedded capture form / dashboard
	if staticFS, err := web.GetFileSystem(cfg.FrontendDir); err == nil {
		r.PathPrefix("/").Handler(http.FileServer(http.FS(staticFS)))
	} else {
		log.Printf("Static assets unavailable: %v", err)
	}

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getStatus returns build and runtime information
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "running",
		"buildTime":  buildinfo.BuildTime,
		"commitHash": buildinfo.CommitHash,
		"startTime":  buildinfo.StartTime,
		"dashboards": r.hub.ClientCount(),
	})
}

// serveWs upgrades the connection and registers a dashboard listener
func (r *Router) serveWs(w http.ResponseWriter, req *http.Request) {
	websocket.ServeWs(r.hub, w, req)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
