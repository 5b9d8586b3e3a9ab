package vyustruct

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ukaji3/vyustruct-go/pkg/vyustruct/output"
)

// Merge contains defaults for column merging.
type Merge struct {
	Prune bool `toml:"prune"`
}

// Output contains defaults for serialized output.
type Output struct {
	Pretty     bool   `toml:"pretty"`
	TimeFormat string `toml:"time_format"`
}

// Logging contains log settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "auto", "text", "json"
}

// Config is the on-disk TOML configuration.
type Config struct {
	Merge   Merge   `toml:"merge"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Merge:   Merge{Prune: true},
		Output:  Output{TimeFormat: string(output.TimeTimestamp)},
		Logging: Logging{Level: "info", Format: "auto"},
	}
}

// LoadConfig parses the TOML file at path over the defaults. An empty or
// missing path yields the defaults; exists reports whether a file was read.
func LoadConfig(path string) (cfg *Config, exists bool, err error) {
	c := DefaultConfig()
	if path == "" {
		return &c, false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &c, false, nil
		}
		return nil, false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&c); err != nil {
		return nil, false, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !output.TimeFormat(c.Output.TimeFormat).Valid() {
		return fmt.Errorf("output.time_format must be %q or %q, got %q",
			output.TimeTimestamp, output.TimeMillis, c.Output.TimeFormat)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("logging.format must be auto, text or json, got %q", c.Logging.Format)
	}
	return nil
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Logging.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

// Options converts the configuration to Options using logger.
func (c *Config) Options(logger *slog.Logger) Options {
	prune := c.Merge.Prune
	return Options{
		Prune:      &prune,
		TimeFormat: output.TimeFormat(c.Output.TimeFormat),
		Pretty:     c.Output.Pretty,
		Logger:     logger,
	}
}
