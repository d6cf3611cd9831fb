package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spendcli/spend/internal/model"
)

// FileName is the config file looked up in the data directory.
const FileName = "spend.yaml"

// Environment variables that override the config file.
const (
	EnvDataDir      = "SPEND_DATA_DIR"
	EnvExpensesFile = "SPEND_EXPENSES_FILE"
	EnvBudgetFile   = "SPEND_BUDGET_FILE"
)

// Config represents the top-level spend.yaml configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Display  DisplayConfig  `yaml:"display"`
}

// StorageConfig names the backing files. Relative paths resolve against the data dir.
type StorageConfig struct {
	ExpensesFile string `yaml:"expenses_file"`
	BudgetFile   string `yaml:"budget_file"`
}

// DefaultsConfig holds values applied when the user omits them.
type DefaultsConfig struct {
	Category string `yaml:"category"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// Paths are the resolved storage locations handed to the record store.
type Paths struct {
	Expenses string
	Budget   string
}

// Load reads a spend.yaml file from disk. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data dir.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			ExpensesFile: "expenses.json",
			BudgetFile:   "budget.json",
		},
		Defaults: DefaultsConfig{
			Category: model.DefaultCategory,
		},
		Display: DisplayConfig{
			Currency: "$",
		},
	}
}

// Options control Resolve. Empty fields fall through to the environment and defaults.
type Options struct {
	DataDir    string
	ConfigPath string
	Getenv     func(string) string
}

// Resolved is a loaded config together with its storage locations.
type Resolved struct {
	Config  *Config
	DataDir string
	Paths   Paths
}

// Resolve builds the effective configuration: defaults, then spend.yaml,
// then environment, then explicit options.
func Resolve(opts Options) (*Resolved, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = getenv(EnvDataDir)
	}
	if dataDir == "" {
		dataDir = "."
	}
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir: %w", err)
	}

	cfgPath := opts.ConfigPath
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = filepath.Join(absDir, FileName)
	}

	cfg, err := Load(cfgPath)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = Default()
	default:
		return nil, err
	}

	if v := getenv(EnvExpensesFile); v != "" {
		cfg.Storage.ExpensesFile = v
	}
	if v := getenv(EnvBudgetFile); v != "" {
		cfg.Storage.BudgetFile = v
	}
	if cfg.Defaults.Category == "" {
		cfg.Defaults.Category = model.DefaultCategory
	}

	return &Resolved{
		Config:  cfg,
		DataDir: absDir,
		Paths:   cfg.PathsIn(absDir),
	}, nil
}

// PathsIn resolves the storage file names against dir.
func (c *Config) PathsIn(dir string) Paths {
	return Paths{
		Expenses: resolvePath(dir, c.Storage.ExpensesFile),
		Budget:   resolvePath(dir, c.Storage.BudgetFile),
	}
}

func resolvePath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
