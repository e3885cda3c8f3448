package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	RowGroups     int           `json:"row_groups" yaml:"row_groups" validate:"min=1"`
	ColGroups     int           `json:"col_groups" yaml:"col_groups" validate:"min=1"`
	Generations   int           `json:"generations" yaml:"generations" validate:"min=0"`
	FrameRate     time.Duration `json:"frame_rate" yaml:"frame_rate" validate:"min=0"`
	Delimiter     string        `json:"delimiter" yaml:"delimiter" validate:"oneof=0x2C ; tab space"`
	ClearScreen   bool          `json:"clear_screen" yaml:"clear_screen"`
	Plain         bool          `json:"plain" yaml:"plain"`
	UseMemoryPool bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	LogLevel      string        `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogJSON       bool          `json:"log_json" yaml:"log_json"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		RowGroups:     3,
		ColGroups:     3,
		Generations:   50,
		FrameRate:     500 * time.Millisecond,
		Delimiter:     ",",
		ClearScreen:   true,
		Plain:         false,
		UseMemoryPool: true,
		LogLevel:      "info",
		LogJSON:       false,
	}
}

// DelimiterRune returns the field delimiter of the board file
func (c Config) DelimiterRune() rune {
	switch c.Delimiter {
	case "tab":
		return '\t'
	case "space":
		return ' '
	case ";":
		return ';'
	default:
		return ','
	}
}

var validate = validator.New()

// Validate checks every field against its allowed range
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] %v", err)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their default value.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}
