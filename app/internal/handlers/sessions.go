package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/sessions"
)

type SessionService interface {
	Query(ctx context.Context, filter sessions.Filter) (entities.SessionList, error)
}

// SessionsHandler serves GET /api/sessions.
type SessionsHandler struct {
	sessions SessionService
}

// NewSessionsHandler creates a SessionsHandler with injected dependencies.
func NewSessionsHandler(sessions SessionService) *SessionsHandler {
	return &SessionsHandler{sessions: sessions}
}

func (h *SessionsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := sessions.Filter{
		CustomerID:   r.URL.Query().Get("customerId"),
		CustomerName: r.URL.Query().Get("customerName"),
	}

	list, err := h.sessions.Query(r.Context(), filter)
	if err != nil {
		log.Printf("Error fetching sessions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch sessions")
		return
	}

	writeJSON(w, http.StatusOK, list)
}
