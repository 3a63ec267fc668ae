package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/chopshop166/commandrobot/logging"
	"github.com/chopshop166/commandrobot/modifier"
	"gopkg.in/yaml.v3"
)

// DefaultLoopPeriod is the control period used when none is configured.
const DefaultLoopPeriod = 20 * time.Millisecond

// DefaultYAML is a commented starting point for a robot configuration file.
const DefaultYAML = `# commandrobot configuration
logging:
  level: info   # debug, info, warn, error
  format: text  # text or json

loop:
  period: 20ms

autonomous:
  # Display name of the routine to preselect. Empty keeps the routine
  # declared as default.
  default: ""

# Modifier pipelines per actuator, applied in order.
actuators:
  drive-left:
    - type: deadband
      threshold: 0.05
    - type: clamp
      min: -1
      max: 1
`

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source,omitempty"`
}

// LoopConfig tunes the host loop.
type LoopConfig struct {
	Period time.Duration `yaml:"period"`
}

// AutonomousConfig overrides the autonomous chooser.
type AutonomousConfig struct {
	Default string `yaml:"default"`
}

// Config models the robot configuration file.
type Config struct {
	Logging    LoggingConfig              `yaml:"logging"`
	Loop       LoopConfig                 `yaml:"loop"`
	Autonomous AutonomousConfig           `yaml:"autonomous"`
	Actuators  map[string][]modifier.Spec `yaml:"actuators,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Loop: LoopConfig{
			Period: DefaultLoopPeriod,
		},
		Actuators: map[string][]modifier.Spec{},
	}
}

// Load reads and validates the file at path. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Fields absent from the
// document keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Loop.Period == 0 {
		c.Loop.Period = DefaultLoopPeriod
	}
	if c.Actuators == nil {
		c.Actuators = map[string][]modifier.Spec{}
	}
	c.Autonomous.Default = strings.TrimSpace(c.Autonomous.Default)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Logging.Format)
	}
	if c.Loop.Period < 0 {
		return fmt.Errorf("loop: period must not be negative, got %s", c.Loop.Period)
	}
	for _, name := range c.ActuatorNames() {
		if _, err := modifier.FromSpecs(c.Actuators[name]); err != nil {
			return fmt.Errorf("actuator %s: %w", name, err)
		}
	}
	return nil
}

// LogLevel returns the configured level, or info when it cannot be parsed.
func (c *Config) LogLevel() logging.LogLevel {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.LogLevelInfo
	}
	return level
}

// Logger builds a logger writing to out (stderr when nil).
func (c *Config) Logger(out io.Writer) *logging.RobotLogger {
	cfg := logging.DefaultLoggerConfig()
	cfg.Level = c.LogLevel()
	cfg.Format = c.Logging.Format
	cfg.AddSource = c.Logging.AddSource
	if out != nil {
		cfg.Output = out
	}
	return logging.NewLogger(cfg)
}

// Pipeline builds the modifier pipeline configured for the named actuator.
// An actuator without configuration gets an empty pipeline.
func (c *Config) Pipeline(name string) (*modifier.Pipeline, error) {
	p, err := modifier.FromSpecs(c.Actuators[name])
	if err != nil {
		return nil, fmt.Errorf("config: actuator %s: %w", name, err)
	}
	return p, nil
}

// ActuatorNames returns the configured actuator names, sorted.
func (c *Config) ActuatorNames() []string {
	names := make([]string, 0, len(c.Actuators))
	for name := range c.Actuators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
