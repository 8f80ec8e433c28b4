package http

import (
	"database/sql"
	"net/http"
	"time"
)

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	DB *sql.DB
}

// Status handles GET /api/health. It always responds 200; the database
// state is reported in the body.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	dbState := "connected"
	if err := h.DB.PingContext(r.Context()); err != nil {
		dbState = "unreachable"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"db":        dbState,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
