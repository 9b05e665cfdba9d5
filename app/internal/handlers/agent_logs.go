package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
)

type AgentLogService interface {
	List(ctx context.Context, sessionID string) ([]entities.AgentLog, error)
}

// AgentLogsHandler serves GET /api/agent-logs.
type AgentLogsHandler struct {
	agentLogs AgentLogService
}

// NewAgentLogsHandler creates an AgentLogsHandler with injected dependencies.
func NewAgentLogsHandler(agentLogs AgentLogService) *AgentLogsHandler {
	return &AgentLogsHandler{agentLogs: agentLogs}
}

func (h *AgentLogsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	logs, err := h.agentLogs.List(r.Context(), r.URL.Query().Get("sessionId"))
	if err != nil {
		log.Printf("Error fetching agent logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch agent logs")
		return
	}

	writeJSON(w, http.StatusOK, logs)
}
