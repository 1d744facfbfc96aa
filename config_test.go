package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpcad/cadlogin/internal/i18n"
	"github.com/spf13/afero"
)

func TestReadConfigDefaults(t *testing.T) {
	for _, key := range []string{"ENV_FILE", "PORT", "NEXT_PUBLIC_PROD_ORIGIN", "API_TIMEOUT", "DEMO_MODE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var cfg Config
	if err := readConfig(&cfg); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Wrong default port, expected %d, got %d", 3000, cfg.Port)
	}
	if cfg.APIURL != "http://localhost:8080/v1" {
		t.Errorf("Wrong default API URL, got '%s'", cfg.APIURL)
	}
	if cfg.APITimeout != 0 {
		t.Errorf("Expected no API timeout by default, got %s", cfg.APITimeout)
	}
	if cfg.DemoMode {
		t.Error("Demo mode should be disabled by default")
	}
}

func TestReadConfigFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "cad.env")
	contents := "PORT=4000\nAPI_TIMEOUT=5s\nDEMO_MODE=true\nCORS_ORIGIN_URL=https://cad.example.com\n"
	if err := os.WriteFile(envFile, []byte(contents), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	t.Setenv("ENV_FILE", envFile)
	// t.Setenv restores the previous state once the test finishes, so variables
	// exported from the file do not leak into other tests
	for _, key := range []string{"PORT", "API_TIMEOUT", "DEMO_MODE", "CORS_ORIGIN_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var cfg Config
	if err := readConfig(&cfg); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 4000 {
		t.Errorf("Wrong port, expected %d, got %d", 4000, cfg.Port)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("Wrong API timeout, expected %s, got %s", 5*time.Second, cfg.APITimeout)
	}
	if !cfg.DemoMode {
		t.Error("Demo mode should be enabled")
	}
	if origin := lookupEnv("CORS_ORIGIN_URL"); origin == nil || *origin != "https://cad.example.com" {
		t.Errorf("Variables in the env file should be exported, got %v", origin)
	}
}

func TestReadConfigEnvFileFormats(t *testing.T) {
	var cases = []struct {
		name         string
		fileName     string
		create       bool
		expectedPort int
	}{
		{"Dotenv file with .env extension", "cad.env", true, 4000},
		{"Dotenv file with any other extension", "cad.conf", true, 4000},
		{"Dotenv file without extension", "cadlogin", true, 4000},
		{"Missing file is ignored", "missing.env", false, 3000},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			envFile := filepath.Join(t.TempDir(), tcase.fileName)
			if tcase.create {
				if err := os.WriteFile(envFile, []byte("PORT=4000\n"), 0644); err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
			}
			t.Setenv("ENV_FILE", envFile)
			t.Setenv("PORT", "")
			os.Unsetenv("PORT")

			var cfg Config
			if err := readConfig(&cfg); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.Port != tcase.expectedPort {
				t.Errorf("Wrong port, expected %d, got %d", tcase.expectedPort, cfg.Port)
			}
		})
	}
}

func TestReadConfigEnvironmentOverridesEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("PORT=4000\n"), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("PORT", "5000")

	var cfg Config
	if err := readConfig(&cfg); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Wrong port, expected %d, got %d", 5000, cfg.Port)
	}
}

func TestLookupEnv(t *testing.T) {
	t.Setenv("CORS_ORIGIN_URL", "")
	if value := lookupEnv("CORS_ORIGIN_URL"); value == nil || *value != "" {
		t.Errorf("Expected empty value to be reported as set, got %v", value)
	}

	os.Unsetenv("CORS_ORIGIN_URL")
	if value := lookupEnv("CORS_ORIGIN_URL"); value != nil {
		t.Errorf("Expected unset variable to be nil, got '%s'", *value)
	}
}

func TestCustomTranslations(t *testing.T) {
	appFs := afero.NewMemMapFs()
	if err := afero.WriteFile(appFs, "/opt/translations/en.yml", []byte("Login: Sign in\n"), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	printers, err := i18n.Printers(translations("/opt/translations", appFs), "en")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := printers["en"].Sprintf("Login"); got != "Sign in" {
		t.Errorf("Expected custom translation to be used, got '%s'", got)
	}

	printers, err = i18n.Printers(translations("", appFs), "en")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := printers["es"]; !ok {
		t.Error("Expected embedded translations to be used when no directory is set")
	}
}
