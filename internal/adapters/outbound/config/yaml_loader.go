package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/costflow/costflow/internal/domain"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the project configuration file looked up in the project root.
	FileName = ".costflow.yaml"
	envFile  = ".env"
	// EnvPrefix marks environment variables that override file values.
	EnvPrefix = "COSTFLOW_"
)

// YAMLLoader implements domain.ConfigLoader by reading .costflow.yaml and
// then applying COSTFLOW_* overrides from .env and the environment.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .costflow.yaml from projectPath.
// A missing file yields DefaultConfig before overrides are applied.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	cfg, err := readFile(projectPath)
	if err != nil {
		return domain.Config{}, err
	}

	overrides, err := loadOverrides(projectPath)
	if err != nil {
		return domain.Config{}, err
	}
	cfg = merge(cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

func readFile(projectPath string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var raw domain.Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w: %v", FileName, domain.ErrInvalidConfig, err)
	}

	// Omitted keys fall back to defaults; explicit values always win.
	return merge(domain.DefaultConfig(), raw), nil
}

// loadOverrides collects COSTFLOW_* values. Entries from the project's .env
// are read first so that real environment variables take precedence.
func loadOverrides(projectPath string) (domain.Config, error) {
	k := koanf.New(".")

	dotenv, err := godotenv.Read(filepath.Join(projectPath, envFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.Config{}, fmt.Errorf("reading %s: %w", envFile, err)
	}
	for name, value := range dotenv {
		if key := envKey(name); key != "" {
			if err := k.Set(key, value); err != nil {
				return domain.Config{}, fmt.Errorf("reading %s: %w", envFile, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return domain.Config{}, fmt.Errorf("load env: %w", err)
	}

	return domain.Config{
		Process: domain.ProcessConfiguration{
			Invoice:      domain.InvoiceVariant(k.String("process.invoice")),
			Shipping:     domain.ShippingVariant(k.String("process.shipping")),
			Freight:      domain.FreightVariant(k.String("process.freight")),
			Availability: domain.AvailabilityVariant(k.String("process.availability")),
			ShippingDate: domain.ShippingDateVariant(k.String("process.shipping_date")),
		},
		Log: domain.LogConfig{
			Level:  k.String("log.level"),
			Format: k.String("log.format"),
		},
	}, nil
}

// envKey maps COSTFLOW_PROCESS_SHIPPING_DATE to process.shipping_date.
// Names without a section are ignored.
func envKey(name string) string {
	if !strings.HasPrefix(name, EnvPrefix) {
		return ""
	}
	rest := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	section, field, ok := strings.Cut(rest, "_")
	if !ok || field == "" {
		return ""
	}
	return section + "." + field
}

// merge overlays the non-empty values of override on top of base.
func merge(base, override domain.Config) domain.Config {
	result := base
	result.Process = base.Process.Merge(override.Process)
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		result.Log.Format = override.Log.Format
	}
	return result
}
