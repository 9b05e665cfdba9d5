package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
)

type CustomerService interface {
	List(ctx context.Context) ([]entities.Customer, error)
}

// CustomersHandler serves GET /api/customers.
type CustomersHandler struct {
	customers CustomerService
}

// NewCustomersHandler creates a CustomersHandler with injected dependencies.
func NewCustomersHandler(customers CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

func (h *CustomersHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := h.customers.List(r.Context())
	if err != nil {
		log.Printf("Error fetching customers: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}

	writeJSON(w, http.StatusOK, list)
}
