package handlers

import (
	"net/http"

	"github.com/alfagnish/users-api/internal/store"
)

// SystemHandler provides the health check and debug endpoints.
type SystemHandler struct {
	store *store.Store
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(s *store.Store) *SystemHandler {
	return &SystemHandler{store: s}
}

// Health reports service liveness. It reads nothing and cannot fail.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// DebugUsers exposes the current in-memory collection for manual testing.
func (h *SystemHandler) DebugUsers(w http.ResponseWriter, r *http.Request) {
	users := h.store.List()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users_count": len(users),
		"users":       users,
	})
}
