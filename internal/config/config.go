package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Workbook  WorkbookConfig
	Tax       TaxConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	Debug     bool
	StoreName string
}

// WorkbookConfig identifies the tabular store: one workbook, two sheets.
type WorkbookConfig struct {
	Path          string
	CustomerSheet string
	LineSheet     string
}

type TaxConfig struct {
	Rate float64
}

// StorageConfig selects the blob store backend: "s3" or "local".
type StorageConfig struct {
	Backend      string
	Bucket       string
	Region       string
	KeyPrefix    string
	Endpoint     string
	LocalPath    string
	LocalBaseURL string
}

// DatabaseConfig configures the optional receipt audit database. An empty
// host disables auditing.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "ticketero-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_STORE_NAME", "Recibos Store")
	viper.SetDefault("WORKBOOK_PATH", "./data/ordenes.xlsx")
	viper.SetDefault("WORKBOOK_CUSTOMER_SHEET", "CLIENTES")
	viper.SetDefault("WORKBOOK_LINE_SHEET", "DETALLE_ORDEN")
	viper.SetDefault("TAX_RATE", 0.18)
	viper.SetDefault("STORAGE_BACKEND", "local")
	viper.SetDefault("STORAGE_BUCKET", "ticketero-receipts")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_KEY_PREFIX", "tickets")
	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_LOCAL_PATH", "./storage/tickets")
	viper.SetDefault("STORAGE_LOCAL_BASE_URL", "http://localhost:8080/tickets")
	viper.SetDefault("DB_HOST", "")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "ticketero")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "America/Lima")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Env:       viper.GetString("APP_ENV"),
			Port:      viper.GetString("APP_PORT"),
			Debug:     viper.GetBool("APP_DEBUG"),
			StoreName: viper.GetString("APP_STORE_NAME"),
		},
		Workbook: WorkbookConfig{
			Path:          viper.GetString("WORKBOOK_PATH"),
			CustomerSheet: viper.GetString("WORKBOOK_CUSTOMER_SHEET"),
			LineSheet:     viper.GetString("WORKBOOK_LINE_SHEET"),
		},
		Tax: TaxConfig{
			Rate: viper.GetFloat64("TAX_RATE"),
		},
		Storage: StorageConfig{
			Backend:      viper.GetString("STORAGE_BACKEND"),
			Bucket:       viper.GetString("STORAGE_BUCKET"),
			Region:       viper.GetString("STORAGE_REGION"),
			KeyPrefix:    viper.GetString("STORAGE_KEY_PREFIX"),
			Endpoint:     viper.GetString("STORAGE_ENDPOINT"),
			LocalPath:    viper.GetString("STORAGE_LOCAL_PATH"),
			LocalBaseURL: viper.GetString("STORAGE_LOCAL_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// AuditEnabled reports whether a receipt audit database is configured.
func (c *DatabaseConfig) AuditEnabled() bool {
	return c.Host != ""
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
