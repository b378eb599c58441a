package unit

import (
	"encoding/json"
	"os"

	"github.com/samsarahq/go/oops"
)

// Config controls runner reporting. Both files are optional; the user file
// overrides the workspace file.
type Config struct {
	// configPath is the path the configuration was loaded from, relative to
	// the current working directory.
	configPath string

	// Verbose reports every passing test, not just failures and the summary.
	Verbose bool `json:"verbose"`

	// NoColor disables colored labels in reports.
	NoColor bool `json:"noColor"`
}

// ReadUserConfig loads the runner configuration from ./unit.config.json,
// overlaid with ./user.unit.config.json when present. A missing workspace
// file yields the zero configuration.
func ReadUserConfig() (*Config, error) {
	workspaceConfig := "./unit.config.json"
	userConfig := "./user.unit.config.json"

	config := &Config{configPath: workspaceConfig}
	content, err := os.ReadFile(workspaceConfig)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return nil, oops.Wrapf(err, "reading config %s", workspaceConfig)
	}
	if err := json.Unmarshal(content, config); err != nil {
		return nil, oops.Wrapf(err, "parsing config %s", config.configPath)
	}

	if _, err := os.Stat(userConfig); err == nil {
		content, err := os.ReadFile(userConfig)
		if err != nil {
			return nil, oops.Wrapf(err, "reading config %s", userConfig)
		}

		// Overwrite the workspace settings with the user settings.
		config.configPath = userConfig
		if err := json.Unmarshal(content, config); err != nil {
			return nil, oops.Wrapf(err, "parsing config %s", config.configPath)
		}
	}

	return config, nil
}

// ConfigPath returns the path the configuration was loaded from.
func (c *Config) ConfigPath() string { return c.configPath }
