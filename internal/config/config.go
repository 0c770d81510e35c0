package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultJWTSecret     = "your-secret-key-change-in-production"
	defaultOwnerPassword = "ownerpassword123"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret             string `mapstructure:"JWT_SECRET"`
	AccessTokenTTLMinutes int    `mapstructure:"ACCESS_TOKEN_TTL_MINUTES"`
	RefreshTokenTTLHours  int    `mapstructure:"REFRESH_TOKEN_TTL_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Upload tree
	UploadFolder           string   `mapstructure:"UPLOAD_FOLDER"`
	UploadNamespace        string   `mapstructure:"UPLOAD_NAMESPACE"`
	PublicBaseURL          string   `mapstructure:"PUBLIC_BASE_URL"`
	AllowedImageExtensions []string `mapstructure:"ALLOWED_IMAGE_EXTENSIONS"`
	MaxUploadSizeMB        int      `mapstructure:"MAX_UPLOAD_SIZE_MB"`

	// Bootstrap owner account, provisioned once at startup
	BootstrapOwnerUsername string `mapstructure:"BOOTSTRAP_OWNER_USERNAME"`
	BootstrapOwnerPassword string `mapstructure:"BOOTSTRAP_OWNER_PASSWORD"`
	BootstrapOwnerName     string `mapstructure:"BOOTSTRAP_OWNER_NAME"`

	// Unattached upload expiry
	OrphanSweepSchedule    string `mapstructure:"ORPHAN_SWEEP_SCHEDULE"`
	OrphanGracePeriodHours int    `mapstructure:"ORPHAN_GRACE_PERIOD_HOURS"`

	CatalogSeedFile string `mapstructure:"CATALOG_SEED_FILE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated env values arrive as a single element
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.AllowedImageExtensions = normalizeExtensions(splitList(config.AllowedImageExtensions))

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "accommodation_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 15)
	viper.SetDefault("REFRESH_TOKEN_TTL_HOURS", 24)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Upload defaults
	viper.SetDefault("UPLOAD_FOLDER", "./uploads")
	viper.SetDefault("UPLOAD_NAMESPACE", "uploads")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:7008")
	viper.SetDefault("ALLOWED_IMAGE_EXTENSIONS", []string{"jpg", "jpeg", "png", "gif", "webp"})
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 10)

	viper.SetDefault("BOOTSTRAP_OWNER_USERNAME", "owner")
	viper.SetDefault("BOOTSTRAP_OWNER_PASSWORD", defaultOwnerPassword)
	viper.SetDefault("BOOTSTRAP_OWNER_NAME", "System Owner")

	viper.SetDefault("ORPHAN_SWEEP_SCHEDULE", "@every 1h")
	viper.SetDefault("ORPHAN_GRACE_PERIOD_HOURS", 24)

	viper.SetDefault("CATALOG_SEED_FILE", "config/catalog.yaml")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.BootstrapOwnerPassword == defaultOwnerPassword {
			return fmt.Errorf("BOOTSTRAP_OWNER_PASSWORD must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if strings.TrimSpace(config.UploadFolder) == "" {
		return fmt.Errorf("upload folder is required")
	}

	if len(config.AllowedImageExtensions) == 0 {
		return fmt.Errorf("at least one image extension must be allowed")
	}

	return nil
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		out = append(out, strings.ToLower(strings.TrimPrefix(e, ".")))
	}
	return out
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AccessTokenTTL returns the lifetime of an access token
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// RefreshTokenTTL returns the lifetime of a refresh token
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLHours) * time.Hour
}

// OrphanGracePeriod is how long an unattached upload survives before the sweeper removes it
func (c *Config) OrphanGracePeriod() time.Duration {
	return time.Duration(c.OrphanGracePeriodHours) * time.Hour
}

// MaxUploadBytes is the upload size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) << 20
}
