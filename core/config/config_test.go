package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yamlConfig  string
		expectError bool
		errorMsg    string
		check       func(t *testing.T, cfg *FileConfig)
	}{
		{
			name:       "Empty_Config_Uses_Defaults",
			yamlConfig: "{}",
			check: func(t *testing.T, cfg *FileConfig) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "Override_Subject",
			yamlConfig: `
subject:
  name: "Alice"
  age: 41
`,
			check: func(t *testing.T, cfg *FileConfig) {
				assert.Equal(t, "Alice", cfg.Subject.Name)
				assert.Equal(t, 41, cfg.Subject.Age)
				assert.Equal(t, "Delhi", cfg.Subject.City)
				assert.Equal(t, "India", cfg.Subject.Country)
			},
		},
		{
			name: "Disable_Markers",
			yamlConfig: `
proxy:
  after_on_panic: true
  markers: false
`,
			check: func(t *testing.T, cfg *FileConfig) {
				assert.True(t, cfg.Proxy.AfterOnPanic)
				assert.False(t, cfg.Proxy.MarkersEnabled())
			},
		},
		{
			name: "Blank_Name",
			yamlConfig: `
subject:
  name: "  "
`,
			expectError: true,
			errorMsg:    "subject.name must not be empty",
		},
		{
			name: "Negative_Age",
			yamlConfig: `
subject:
  age: -1
`,
			expectError: true,
			errorMsg:    "subject.age must not be negative",
		},
		{
			name: "Invalid_Level",
			yamlConfig: `
logging:
  level: "trace"
`,
			expectError: true,
			errorMsg:    "invalid logging.level 'trace'",
		},
		{
			name: "Invalid_Format",
			yamlConfig: `
logging:
  format: "xml"
`,
			expectError: true,
			errorMsg:    "invalid logging.format 'xml'",
		},
		{
			name:        "Malformed_YAML",
			yamlConfig:  "subject: [",
			expectError: true,
			errorMsg:    "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yamlConfig))
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.errorMsg), "expected error containing %q, got %q", tt.errorMsg, err.Error())
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynproxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("subject:\n  city: Mumbai\n"), 0o600))

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", cfg.Subject.City)
	assert.Equal(t, "Mohan", cfg.Subject.Name)
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestExampleConfigFile(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join("..", "..", "dynproxy.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Subject, cfg.Subject)
	assert.True(t, cfg.Proxy.MarkersEnabled())
}
