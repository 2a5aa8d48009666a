// Package config loads branchwise settings from defaults, a YAML file and
// the environment.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/branchwise-go/pkg/branchwise"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/writer"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. BRANCHWISE_INPUT.
const EnvPrefix = "BRANCHWISE"

// Config holds all branchwise configuration.
type Config struct {
	Input     string `yaml:"input" envconfig:"INPUT" validate:"required"`
	Output    string `yaml:"output" envconfig:"OUTPUT" validate:"required,endswith=.xlsx"`
	Encoding  string `yaml:"encoding" envconfig:"ENCODING" validate:"omitempty,oneofci=utf-8 utf8 utf-16 utf16 windows-1252 cp1252 iso-8859-1 latin1"`
	Separator string `yaml:"separator" envconfig:"SEPARATOR" validate:"required"`
	SkipEmpty bool   `yaml:"skip_empty" envconfig:"SKIP_EMPTY"`

	Columns  ColumnsConfig  `yaml:"columns" envconfig:"COLUMNS"`
	Branches BranchesConfig `yaml:"branches" envconfig:"BRANCHES"`
	Format   writer.Format  `yaml:"format" envconfig:"FORMAT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// ColumnsConfig names the input columns that get normalized.
type ColumnsConfig struct {
	UGStipend string `yaml:"ug_stipend" envconfig:"UG_STIPEND" validate:"required"`
	PGStipend string `yaml:"pg_stipend" envconfig:"PG_STIPEND"`
	Branches  string `yaml:"branches" envconfig:"BRANCHES" validate:"required"`
}

// BranchesConfig lists the single-degree codes; dual degrees are derived.
// Codes become sheet names, so they must be unique and must not collide with
// the reserved Any-prefixed and Unavailable sheets.
type BranchesConfig struct {
	Single []string `yaml:"single" envconfig:"SINGLE" validate:"required,min=1,unique,dive,required,alphanum,max=27,startsnotwith=Any,ne=Unavailable"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// DefaultConfig returns the configuration for the fixed station export.
func DefaultConfig() *Config {
	return &Config{
		Input:     branchwise.DefaultInput,
		Output:    branchwise.DefaultOutput,
		Encoding:  "utf-8",
		Separator: branchwise.DefaultSeparator,
		Columns: ColumnsConfig{
			UGStipend: "Stipend (UG)",
			PGStipend: branchwise.PGStipendColumn,
			Branches:  branchwise.BranchesColumn,
		},
		Branches: BranchesConfig{
			Single: append([]string(nil), models.DefaultSingleDegrees...),
		},
		Format: writer.DefaultFormat(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with BRANCHWISE_* environment variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Options converts the configuration into generation options.
func (c *Config) Options() branchwise.Options {
	opts := branchwise.DefaultOptions()
	opts.InputPath = c.Input
	opts.OutputPath = c.Output
	opts.Encoding = c.Encoding
	opts.Separator = c.Separator
	opts.SkipEmpty = c.SkipEmpty
	opts.SingleDegrees = append([]string(nil), c.Branches.Single...)
	opts.Format = c.Format

	opts.Renames = map[string]string{
		c.Columns.UGStipend: branchwise.StipendColumn,
		c.Columns.Branches:  branchwise.BranchesColumn,
	}
	opts.NumericColumns = []string{branchwise.StipendColumn}
	if c.Columns.PGStipend != "" {
		opts.NumericColumns = append(opts.NumericColumns, c.Columns.PGStipend)
	}
	return opts
}
