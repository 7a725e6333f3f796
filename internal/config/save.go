package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/heightscape/internal/engine/camera"
)

// UserConfigPath is where Save writes.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(UserConfigPath())
}

// SaveView records the controller's current view in the camera section and
// saves the config. It returns the file written.
func (c *Config) SaveView(ctl *camera.Controller) (string, error) {
	c.Camera.Capture(ctl)
	if err := c.Save(); err != nil {
		return "", err
	}
	return UserConfigPath(), nil
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
