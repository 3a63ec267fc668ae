package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chopshop166/commandrobot/logging"
	"github.com/chopshop166/commandrobot/modifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "robot.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultLoopPeriod, cfg.Loop.Period)
	assert.Equal(t, logging.LogLevelInfo, cfg.LogLevel())
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	doc := strings.TrimSpace(`
logging:
  level: debug
  format: JSON
loop:
  period: 10ms
autonomous:
  default: " Two Ball "
actuators:
  arm:
    - type: clamp
      min: 0
      max: 10
    - type: negate
`)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logging.LogLevelDebug, cfg.LogLevel())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 10*time.Millisecond, cfg.Loop.Period)
	assert.Equal(t, "Two Ball", cfg.Autonomous.Default)
	assert.Equal(t, []string{"arm"}, cfg.ActuatorNames())

	p, err := cfg.Pipeline("arm")
	require.NoError(t, err)
	assert.Equal(t, -10.0, p.Apply(15))
}

func TestParse_PartialDocumentKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("autonomous:\n  default: Taxi\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, DefaultLoopPeriod, cfg.Loop.Period)
	assert.Equal(t, "Taxi", cfg.Autonomous.Default)
}

func TestParse_DefaultYAML(t *testing.T) {
	cfg, err := Parse([]byte(DefaultYAML))
	require.NoError(t, err)

	p, err := cfg.Pipeline("drive-left")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 0.0, p.Apply(0.01))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "syntax", doc: "logging: [", want: "parse"},
		{name: "level", doc: "logging:\n  level: loud\n", want: "unknown level"},
		{name: "format", doc: "logging:\n  format: xml\n", want: "unknown format"},
		{name: "period", doc: "loop:\n  period: -1s\n", want: "must not be negative"},
		{name: "modifier", doc: "actuators:\n  arm:\n    - type: spin\n", want: "actuator arm"},
		{name: "missing parameter", doc: "actuators:\n  arm:\n    - type: clamp\n      max: 1\n", want: "clamp requires min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestPipeline_UnknownActuatorIsEmpty(t *testing.T) {
	p, err := Default().Pipeline("intake")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0.5, p.Apply(0.5))
}

func TestSave_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Autonomous.Default = "Taxi"
	cfg.Loop.Period = 5 * time.Millisecond
	cfg.Actuators["claw"] = []modifier.Spec{{Type: "scale", Factor: modifier.Float(0.5)}}

	path := filepath.Join(t.TempDir(), "robot.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLogger_UsesConfiguredFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "json"

	var buf bytes.Buffer
	cfg.Logger(&buf).Info("robot.ready")
	assert.Contains(t, buf.String(), `"msg":"robot.ready"`)
}
