package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderBland  = "bland"
	ProviderTwilio = "twilio"
)

type Config struct {
	Port                  string
	Environment           string
	RepresentativesAPIURL string
	CallProvider          string
	BlandAPIKey           string
	BlandAPIURL           string
	TwilioAccountSID      string
	TwilioAuthToken       string
	TwilioPhoneNumber     string
	CORSAllowedOrigins    []string
}

// Load reads the configuration from the environment, after merging in a .env
// file from the working directory when one exists. Variables already set in
// the environment win over the file.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	// a missing .env is normal outside local development
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		Port:                  getEnv("PORT", "8000"),
		Environment:           getEnv("ENV", "development"),
		RepresentativesAPIURL: getEnv("REPRESENTATIVES_API_URL", "https://whoismyrepresentative.com/getall_mems.php"),
		CallProvider:          strings.ToLower(getEnv("CALL_PROVIDER", ProviderBland)),
		BlandAPIKey:           getEnv("BLAND_API_KEY", ""),
		BlandAPIURL:           getEnv("BLAND_API_URL", "https://api.bland.ai/v1/calls"),
		TwilioAccountSID:      getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:       getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber:     getEnv("TWILIO_PHONE_NUMBER", ""),
		CORSAllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction selects the production logger and CORS behaviour.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) validate() error {
	switch c.CallProvider {
	case ProviderBland:
		// an empty BLAND_API_KEY surfaces as an auth failure at call time
	case ProviderTwilio:
		required := map[string]string{
			"TWILIO_ACCOUNT_SID":  c.TwilioAccountSID,
			"TWILIO_AUTH_TOKEN":   c.TwilioAuthToken,
			"TWILIO_PHONE_NUMBER": c.TwilioPhoneNumber,
		}
		for name, value := range required {
			if value == "" {
				return fmt.Errorf("missing required environment variable: %s", name)
			}
		}
	default:
		return fmt.Errorf("unsupported CALL_PROVIDER %q", c.CallProvider)
	}

	if c.Port == "" {
		return fmt.Errorf("missing required environment variable: PORT")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
