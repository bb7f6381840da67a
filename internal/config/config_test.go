package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// chdir moves into an empty directory so no app.env is picked up.
func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	t.Setenv("COMPANY_NAME", "Automóviles Prueba SL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 7090 || cfg.HTTP.Host != "0.0.0.0" {
		t.Errorf("http = %+v", cfg.HTTP)
	}
	if cfg.Environment != "development" {
		t.Errorf("env = %q", cfg.Environment)
	}
	if got := cfg.Docs.DefaultTaxRate.String(); got != "21" {
		t.Errorf("tax rate = %s", got)
	}
	if cfg.Docs.ProformaValidityDays != 30 || cfg.Docs.Strict {
		t.Errorf("docs = %+v", cfg.Docs)
	}
	if cfg.Docs.InvoicePrefix != "F" || cfg.Docs.ProformaPrefix != "PF" {
		t.Errorf("prefixes = %q %q", cfg.Docs.InvoicePrefix, cfg.Docs.ProformaPrefix)
	}
	if diff := cmp.Diff([]string{"*"}, cfg.CORS.AllowedOrigins); diff != "" {
		t.Errorf("cors (-want +got):\n%s", diff)
	}
	if err := cfg.RequireServer(); err == nil || !strings.Contains(err.Error(), "DB_DSN") {
		t.Errorf("RequireServer = %v, want DB_DSN error", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t)
	t.Setenv("COMPANY_NAME", "Automóviles Prueba SL")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DOCS_DEFAULT_TAX_RATE", "10")
	t.Setenv("DOCS_STRICT", "true")
	t.Setenv("DOCS_INVOICE_PREFIX", "fa")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_DSN", "postgres://localhost/docs")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 8080 || !cfg.Docs.Strict || cfg.Docs.InvoicePrefix != "FA" {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.Docs.DefaultTaxRate.String(); got != "10" {
		t.Errorf("tax rate = %s", got)
	}
	if diff := cmp.Diff([]string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins); diff != "" {
		t.Errorf("cors (-want +got):\n%s", diff)
	}
	if err := cfg.RequireServer(); err != nil {
		t.Errorf("RequireServer: %v", err)
	}
}

func TestLoadFromAppEnvFile(t *testing.T) {
	chdir(t)
	content := "COMPANY_NAME=Desde Fichero SL\nDOCS_PROFORMA_VALIDITY_DAYS=45\n"
	if err := os.WriteFile("app.env", []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Company.Name != "Desde Fichero SL" || cfg.Docs.ProformaValidityDays != 45 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := map[string]map[string]string{
		"missing company":   {},
		"negative tax":      {"COMPANY_NAME": "X", "DOCS_DEFAULT_TAX_RATE": "-1"},
		"unparsable tax":    {"COMPANY_NAME": "X", "DOCS_DEFAULT_TAX_RATE": "abc"},
		"zero validity":     {"COMPANY_NAME": "X", "DOCS_PROFORMA_VALIDITY_DAYS": "0"},
		"prefix with digit": {"COMPANY_NAME": "X", "DOCS_PROFORMA_PREFIX": "P1"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			chdir(t)
			t.Setenv("COMPANY_NAME", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestStyle(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(logo, []byte{0x89, 'P', 'N', 'G'}, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := &Config{Company: CompanyConfig{Name: "Prueba SL", TaxID: "B1", LogoPath: logo}}
	style, err := cfg.Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if style.Brand.CompanyName != "Prueba SL" || len(style.Brand.Logo) != 4 {
		t.Fatalf("brand = %+v", style.Brand)
	}
	if err := style.Validate(); err != nil {
		t.Fatalf("style invalid: %v", err)
	}

	cfg.Company.LogoPath = filepath.Join(dir, "missing.png")
	style, err = cfg.Style()
	if err == nil {
		t.Fatal("expected an error for a missing logo")
	}
	if style.Brand.Logo != nil || style.Brand.CompanyName != "Prueba SL" {
		t.Fatalf("fallback style = %+v", style.Brand)
	}
}
