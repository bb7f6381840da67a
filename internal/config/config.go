package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/nurpe/dealer-docs/internal/layout"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type CompanyConfig struct {
	Name     string
	Address  string
	Contact  string
	TaxID    string
	LogoPath string
}

type DocsConfig struct {
	DefaultTaxRate       decimal.Decimal
	ProformaValidityDays int
	Strict               bool
	InvoicePrefix        string
	ProformaPrefix       string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	CORS        CORSConfig
	Company     CompanyConfig
	Docs        DocsConfig
	Redis       RedisConfig
}

var prefixPattern = regexp.MustCompile(`^[A-Z]+$`)

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 7090)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DOCS_DEFAULT_TAX_RATE", "21")
	v.SetDefault("DOCS_PROFORMA_VALIDITY_DAYS", 30)
	v.SetDefault("DOCS_STRICT", false)
	v.SetDefault("DOCS_INVOICE_PREFIX", "F")
	v.SetDefault("DOCS_PROFORMA_PREFIX", "PF")

	_ = v.ReadInConfig()

	taxRate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("DOCS_DEFAULT_TAX_RATE")))
	if err != nil {
		return nil, fmt.Errorf("DOCS_DEFAULT_TAX_RATE: %w", err)
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Company: CompanyConfig{
			Name:     strings.TrimSpace(v.GetString("COMPANY_NAME")),
			Address:  strings.TrimSpace(v.GetString("COMPANY_ADDRESS")),
			Contact:  strings.TrimSpace(v.GetString("COMPANY_CONTACT")),
			TaxID:    strings.TrimSpace(v.GetString("COMPANY_TAX_ID")),
			LogoPath: strings.TrimSpace(v.GetString("COMPANY_LOGO_PATH")),
		},
		Docs: DocsConfig{
			DefaultTaxRate:       taxRate,
			ProformaValidityDays: v.GetInt("DOCS_PROFORMA_VALIDITY_DAYS"),
			Strict:               v.GetBool("DOCS_STRICT"),
			InvoicePrefix:        strings.ToUpper(strings.TrimSpace(v.GetString("DOCS_INVOICE_PREFIX"))),
			ProformaPrefix:       strings.ToUpper(strings.TrimSpace(v.GetString("DOCS_PROFORMA_PREFIX"))),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Company.Name == "" {
		return fmt.Errorf("COMPANY_NAME is required")
	}
	if cfg.Docs.DefaultTaxRate.IsNegative() || cfg.Docs.DefaultTaxRate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return fmt.Errorf("DOCS_DEFAULT_TAX_RATE must be between 0 and 100, got %s", cfg.Docs.DefaultTaxRate)
	}
	if cfg.Docs.ProformaValidityDays <= 0 {
		return fmt.Errorf("DOCS_PROFORMA_VALIDITY_DAYS must be positive")
	}
	if !prefixPattern.MatchString(cfg.Docs.InvoicePrefix) {
		return fmt.Errorf("DOCS_INVOICE_PREFIX must be uppercase letters, got %q", cfg.Docs.InvoicePrefix)
	}
	if !prefixPattern.MatchString(cfg.Docs.ProformaPrefix) {
		return fmt.Errorf("DOCS_PROFORMA_PREFIX must be uppercase letters, got %q", cfg.Docs.ProformaPrefix)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", cfg.HTTP.Port)
	}
	return nil
}

// RequireServer checks the settings only the HTTP service needs.
func (c *Config) RequireServer() error {
	if c.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}

// Style builds the document style from the company settings. When the logo
// file cannot be read the style is still returned, without a logo, together
// with the error.
func (c *Config) Style() (layout.Style, error) {
	style := layout.DefaultStyle()
	style.Brand = layout.Branding{
		CompanyName: c.Company.Name,
		Address:     c.Company.Address,
		Contact:     c.Company.Contact,
		TaxID:       c.Company.TaxID,
	}
	if c.Company.LogoPath == "" {
		return style, nil
	}
	logo, err := os.ReadFile(c.Company.LogoPath)
	if err != nil {
		return style, fmt.Errorf("read company logo: %w", err)
	}
	style.Brand.Logo = logo
	return style, nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
