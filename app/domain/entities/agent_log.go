package entities

// AgentLog is the projected view of one record from the agent-logs table,
// returned by the per-session drill-down endpoint.
type AgentLog struct {
	ID        string  `json:"id"`
	SessionID string  `json:"sessionId"`
	Cost      float64 `json:"cost"`
	Tokens    float64 `json:"tokens"`
	CreatedAt string  `json:"createdAt"`
}
