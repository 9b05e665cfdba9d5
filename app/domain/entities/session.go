package entities

// Session is the canonical row the dashboard consumes, computed fresh from
// one raw session record on every request.
type Session struct {
	ID                string  `json:"id"`
	SessionID         string  `json:"sessionId"`
	CustomerID        string  `json:"customerId"`
	CustomerName      string  `json:"customerName"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	DurationSec       float64 `json:"durationSec"`
	Minutes           float64 `json:"minutes"`
	TotalCost         float64 `json:"totalCost"`
	AvgCostPerMin     float64 `json:"avgCostPerMin"`
	TotalAgentLogCost float64 `json:"totalAgentLogCost"`
	AvgTokensPerLog   float64 `json:"avgTokensPerLog"`
	Summary           string  `json:"summary"`
	Sentiment         string  `json:"sentiment"`
}

// SessionSummary aggregates the rows that survived filtering for one request.
type SessionSummary struct {
	TotalSessions int     `json:"totalSessions"`
	TotalMinutes  float64 `json:"totalMinutes"`
	TotalCost     float64 `json:"totalCost"`
	AvgCostPerMin float64 `json:"avgCostPerMin"`
}

// SessionList is the /api/sessions response body.
type SessionList struct {
	Sessions []Session      `json:"sessions"`
	Summary  SessionSummary `json:"summary"`
}
