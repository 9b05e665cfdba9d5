package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	IsDev   bool `env:"IS_DEV" env-default:"false"`
	IsDebug bool `env:"IS_DEBUG" env-default:"false"`

	Airtable struct {
		APIKey  string `env:"AIRTABLE_API_KEY" env-required:"true"`
		BaseID  string `env:"AIRTABLE_BASE_ID" env-required:"true"`
		BaseURL string `env:"AIRTABLE_BASE_URL" env-default:"https://api.airtable.com/v0"`

		CustomersTable string `env:"AIRTABLE_CUSTOMERS_TABLE" env-default:"Customers"`
		SessionsTable  string `env:"AIRTABLE_SESSIONS_TABLE" env-default:"Sessions"`
		AgentLogsTable string `env:"AIRTABLE_AGENT_LOGS_TABLE" env-default:"Agent Logs"`
		// Table the legacy /api/billing endpoint reads; the old dashboard
		// build points this at the agent-logs table.
		BillingTable string `env:"AIRTABLE_TABLE" env-default:"Agent Logs"`
	}
	HTTP struct {
		Port int `env:"PORT" env-default:"3000"`
	}
}

// Singleton: Config should only ever be created once.
var instance *Config

// Once is an object that will perform exactly one action.
var once sync.Once

// GetConfig returns pointer to Config.
func GetConfig() *Config {
	// Calls the function if and only if Do is being called for the first time for this instance of Once
	once.Do(func() {
		log.Print("collecting config...")

		// Config initialization
		instance = &Config{}

		// Read environment variables into the instance of the Config
		if err := cleanenv.ReadEnv(instance); err != nil {
			// If something is wrong
			helpText := "Environment variables error:"
			// Returns a description of environment variables with a custom header - helpText
			help, err := cleanenv.GetDescription(instance, &helpText)
			if err != nil {
				log.Fatal(err)
			}
			log.Print(help)
			log.Printf("%+v\n", instance)

			log.Fatal(err)
		}
	})
	return instance
}
