package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" env-default:"3000" env-description:"Port number in which the webserver listens for requests"`
	// APIURL is the base URL of the CAD API, including its version prefix
	APIURL string `env:"NEXT_PUBLIC_PROD_ORIGIN" env-default:"http://localhost:8080/v1" env-description:"Base URL of the CAD API"`
	// APITimeout limits how long requests to the API can take. Zero means no limit
	APITimeout time.Duration `env:"API_TIMEOUT" env-default:"0s" env-description:"Maximum duration of requests to the API, 0 for no limit"`
	DemoMode   bool          `env:"DEMO_MODE" env-default:"false" env-description:"Show the demo instance banner"`
	LogLevel   string        `env:"LOG_LEVEL" env-default:"info" env-description:"Minimum level of logged messages"`
	LogFormat  string        `env:"LOG_FORMAT" env-default:"json" env-description:"Log output format, json or console"`
	// TranslationsDir, if set, replaces the embedded translations
	TranslationsDir string `env:"TRANSLATIONS_DIR" env-description:"Directory with custom translation files"`
}

// readConfig parses the configuration from the environment. If ENV_FILE points to an
// existing dotenv file, whatever its extension, the variables it defines are exported
// to the environment first. Variables already present in the environment win.
func readConfig(cfg *Config) error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("error loading %s: %w", envFile, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return cleanenv.ReadEnv(cfg)
}

// lookupEnv returns nil if the variable is not present in the environment, so
// unset variables can be told apart from empty ones.
func lookupEnv(key string) *string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	return &value
}
