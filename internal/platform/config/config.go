package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Azure AD identity provider
	AzureClientID     string `mapstructure:"AZURE_AD_CLIENT_ID"`
	AzureClientSecret string `mapstructure:"AZURE_AD_CLIENT_SECRET"`
	AzureTenantID     string `mapstructure:"AZURE_AD_TENANT_ID"`
	AzureRedirectURL  string `mapstructure:"AZURE_REDIRECT_URL"`

	FrontendBaseURL    string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "ino-backend")
	viper.SetDefault("AZURE_AD_CLIENT_ID", "")
	viper.SetDefault("AZURE_AD_CLIENT_SECRET", "")
	viper.SetDefault("AZURE_AD_TENANT_ID", "")
	viper.SetDefault("AZURE_REDIRECT_URL", "http://localhost:3000/api/auth/callback/azure-ad")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AzureClientID = viper.GetString("AZURE_AD_CLIENT_ID")
	cfg.AzureClientSecret = viper.GetString("AZURE_AD_CLIENT_SECRET")
	cfg.AzureTenantID = viper.GetString("AZURE_AD_TENANT_ID")
	cfg.AzureRedirectURL = viper.GetString("AZURE_REDIRECT_URL")

	if cfg.AzureClientID == "" {
		log.Println("Warning: AZURE_AD_CLIENT_ID not set. Azure AD login will not function.")
	}
	if cfg.AzureTenantID == "" {
		log.Println("Warning: AZURE_AD_TENANT_ID not set. Azure AD login will not function.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	originsStr := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(originsStr, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
