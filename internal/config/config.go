package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"hufschlaeger.net/sonar-contacts-exporter/pkg/utils"
)

const (
	// SettingsName ist der Basisname der Settings-Datei (Settings.toml, Settings.json, ...)
	SettingsName = "Settings"
	// DefaultOutputFile ist die CSV-Datei im Arbeitsverzeichnis
	DefaultOutputFile = "contacts.csv"
)

var requiredKeys = []string{"url", "api_key", "data"}

type Config struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
	// Data wird akzeptiert, aber nicht ausgewertet.
	Data string `mapstructure:"data"`

	OutputFile string `mapstructure:"-"`
	LogLevel   string `mapstructure:"-"`
	LogPretty  bool   `mapstructure:"-"`
	Verbose    bool   `mapstructure:"-"`
}

// ConfigError beschreibt eine fehlende oder ungültige Settings-Datei.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("konfiguration ungültig (%s): %v", e.Key, e.Err)
	}
	return fmt.Sprintf("konfiguration ungültig: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var (
	ErrMissingKey = errors.New("schlüssel fehlt")
	ErrEmptyValue = errors.New("wert ist leer")
)

// NewConfig lädt die Settings-Datei aus dem Arbeitsverzeichnis.
func NewConfig() (*Config, error) {
	return Load(".")
}

// Load sucht die Settings-Datei in dir und liest url, api_key und data.
func Load(dir string) (*Config, error) {
	// .env laden (ignoriere Fehler wenn Datei nicht existiert)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "⚠️  Warnung beim Laden der .env: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName(SettingsName)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, &ConfigError{Err: fmt.Errorf("keine %s-Datei in %q gefunden: %w", SettingsName, dir, err)}
		}
		return nil, &ConfigError{Err: fmt.Errorf("settings-Datei nicht lesbar: %w", err)}
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, &ConfigError{Key: key, Err: ErrMissingKey}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ConfigError{Err: err}
	}

	cfg.OutputFile = DefaultOutputFile
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogPretty = getBoolEnv("LOG_PRETTY", true)
	cfg.Verbose = getBoolEnv("VERBOSE", false)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Verbose {
		cfg.LogLevel = "debug"
		cfg.printDebugInfo(v.ConfigFileUsed())
	}

	return cfg, nil
}

func (c *Config) printDebugInfo(file string) {
	fmt.Fprintf(os.Stderr, "🔧 Configuration loaded:\n")
	fmt.Fprintf(os.Stderr, "   Settings File: %s\n", file)
	fmt.Fprintf(os.Stderr, "   API URL: %s\n", c.URL)
	fmt.Fprintf(os.Stderr, "   API Key: %s (length: %d)\n", utils.MaskSecret(c.APIKey), len(c.APIKey))
	fmt.Fprintf(os.Stderr, "   Output File: %s\n", c.OutputFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return &ConfigError{Key: "url", Err: ErrEmptyValue}
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return &ConfigError{Key: "api_key", Err: ErrEmptyValue}
	}
	return nil
}
