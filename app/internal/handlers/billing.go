package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
)

type BillingService interface {
	Aggregate(ctx context.Context) ([]entities.BillingUser, error)
}

// BillingHandler serves the legacy GET /api/billing endpoint.
type BillingHandler struct {
	billing BillingService
}

// NewBillingHandler creates a BillingHandler with injected dependencies.
func NewBillingHandler(billing BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

func (h *BillingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.billing.Aggregate(r.Context())
	if err != nil {
		log.Printf("Error aggregating billing data: %v", err)
		// Message kept verbatim from the first dashboard generation.
		writeError(w, http.StatusInternalServerError, "Failed to fetch Airtable data")
		return
	}

	writeJSON(w, http.StatusOK, users)
}
