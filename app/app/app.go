package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/voicedash/airtable-proxy/app/internal/agentlogs"
	"github.com/voicedash/airtable-proxy/app/internal/airtable"
	"github.com/voicedash/airtable-proxy/app/internal/billing"
	"github.com/voicedash/airtable-proxy/app/internal/config"
	"github.com/voicedash/airtable-proxy/app/internal/customers"
	"github.com/voicedash/airtable-proxy/app/internal/handlers"
	"github.com/voicedash/airtable-proxy/app/internal/sessions"
)

// App holds all application dependencies
type App struct {
	Config    *config.Config
	Airtable  *airtable.Client
	Customers *customers.Service
	Sessions  *sessions.Service
	Billing   *billing.Service
	AgentLogs *agentlogs.Service
}

// NewApp creates and initializes all application dependencies
func NewApp() (*App, error) {
	// Load configuration
	cfg := config.GetConfig()

	// Single Airtable client shared by every service; all state is
	// per-request, so nothing here needs locking or teardown.
	client := airtable.NewClient(cfg.Airtable.BaseURL, cfg.Airtable.BaseID, cfg.Airtable.APIKey)

	return &App{
		Config:    cfg,
		Airtable:  client,
		Customers: customers.NewService(client, cfg.Airtable.CustomersTable),
		Sessions:  sessions.NewService(client, cfg.Airtable.CustomersTable, cfg.Airtable.SessionsTable),
		Billing:   billing.NewService(client, cfg.Airtable.BillingTable),
		AgentLogs: agentlogs.NewService(client, cfg.Airtable.AgentLogsTable),
	}, nil
}

func (a *App) Run() error {
	// Create handlers with injected dependencies
	customersHandler := handlers.NewCustomersHandler(a.Customers)
	sessionsHandler := handlers.NewSessionsHandler(a.Sessions)
	billingHandler := handlers.NewBillingHandler(a.Billing)
	agentLogsHandler := handlers.NewAgentLogsHandler(a.AgentLogs)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/customers", customersHandler.Handle)
	mux.HandleFunc("/api/sessions", sessionsHandler.Handle)
	mux.HandleFunc("/api/billing", billingHandler.Handle)
	mux.HandleFunc("/api/agent-logs", agentLogsHandler.Handle)

	// The dashboard is served from another origin
	handler := cors.Default().Handler(mux)

	addr := fmt.Sprintf(":%d", a.Config.HTTP.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("Available endpoints:")
	log.Printf("  - Customers: /api/customers")
	log.Printf("  - Sessions: /api/sessions?customerId=&customerName=")
	log.Printf("  - Billing (legacy): /api/billing")
	log.Printf("  - Agent logs: /api/agent-logs?sessionId=")
	return http.ListenAndServe(addr, handler)
}
