package config_test

import (
	"os"
	"testing"

	"github.com/voicedash/airtable-proxy/app/internal/config"
)

func TestGetConfig_Singleton(t *testing.T) {
	// Set dummy credentials for the test if not set, to avoid fatal error
	if os.Getenv("AIRTABLE_API_KEY") == "" {
		os.Setenv("AIRTABLE_API_KEY", "test_dummy_key_singleton")
		defer os.Unsetenv("AIRTABLE_API_KEY")
	}
	if os.Getenv("AIRTABLE_BASE_ID") == "" {
		os.Setenv("AIRTABLE_BASE_ID", "appTestBase")
		defer os.Unsetenv("AIRTABLE_BASE_ID")
	}

	cfg1 := config.GetConfig()
	if cfg1 == nil {
		t.Fatal("GetConfig() returned nil on first call")
	}

	cfg2 := config.GetConfig()
	if cfg2 == nil {
		t.Fatal("GetConfig() returned nil on second call")
	}

	if cfg1 != cfg2 {
		t.Error("GetConfig() returned different instances, expected singleton behavior")
	}

	if cfg1.Airtable.BaseURL != "https://api.airtable.com/v0" {
		t.Errorf("Expected default Airtable base URL, got %q", cfg1.Airtable.BaseURL)
	}
	if cfg1.Airtable.CustomersTable != "Customers" {
		t.Errorf("Expected default customers table 'Customers', got %q", cfg1.Airtable.CustomersTable)
	}
}
