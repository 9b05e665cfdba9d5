package entities

// BillingUser accumulates per-user usage for the legacy /api/billing
// endpoint, keyed by the raw "Session ID" field value.
type BillingUser struct {
	Name     string  `json:"name"`
	Sessions int     `json:"sessions"`
	Minutes  float64 `json:"minutes"`
	Total    float64 `json:"total"`
}
