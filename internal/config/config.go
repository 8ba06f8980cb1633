package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dirmap/pkg/dirmap"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the working directory when no --config is given.
const ConfigFileName = "dirmap.yaml"

// Environment variables overriding the config file.
const (
	EnvRoot       = "DIRMAP_ROOT"
	EnvShowHidden = "DIRMAP_SHOW_HIDDEN"
	EnvVerbose    = "DIRMAP_VERBOSE"
)

// Config is the content of dirmap.yaml. Unset fields keep their defaults.
type Config struct {
	Root       string `yaml:"root"`
	ShowHidden *bool  `yaml:"show_hidden,omitempty"`
	Verbose    bool   `yaml:"verbose"`
}

// Settings are the effective values after defaults, file and environment.
type Settings struct {
	Root       string
	ShowHidden bool
	Verbose    bool
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", dirmap.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// LoadEnvFile loads variables from an env file into the process environment
// without overriding variables that are already set. An empty path means
// ".env", which may be absent; an explicit path must exist.
func LoadEnvFile(envPath string) error {
	if envPath == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		envPath = ".env"
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("%w: env file %s: %w", dirmap.ErrInvalidConfig, envPath, err)
	}
	return nil
}

// Resolve merges defaults, the config file (may be nil) and the environment.
// Priority (highest to lowest): environment > config file > defaults.
func Resolve(cfg *Config, lookupEnv func(string) (string, bool)) (Settings, error) {
	s := Settings{ShowHidden: true}

	if cfg != nil {
		s.Root = cfg.Root
		if cfg.ShowHidden != nil {
			s.ShowHidden = *cfg.ShowHidden
		}
		s.Verbose = cfg.Verbose
	}

	if v, ok := lookupEnv(EnvRoot); ok && v != "" {
		s.Root = v
	}
	if err := envBool(lookupEnv, EnvShowHidden, &s.ShowHidden); err != nil {
		return Settings{}, err
	}
	if err := envBool(lookupEnv, EnvVerbose, &s.Verbose); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func envBool(lookupEnv func(string) (string, bool), name string, dst *bool) error {
	v, ok := lookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", dirmap.ErrInvalidConfig, name, v)
	}
	*dst = b
	return nil
}
