package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/col3name/kotlin-git/internal/fsio"
)

// ErrInvalidUsername is returned when a username cannot be stored safely.
var ErrInvalidUsername = errors.New("invalid username")

// UserConfig holds the persisted per-user settings.
// A missing config file yields the zero value, not an error.
type UserConfig struct {
	Username string `yaml:"username"`
}

// LoadUser reads the user config from the storage root.
func (c *RepoConfig) LoadUser() (UserConfig, error) {
	var uc UserConfig

	data, err := fsio.ReadFile(c.ConfigFile())
	if err != nil {
		if fsio.IsNotExist(err) {
			return uc, nil
		}
		return uc, fmt.Errorf("failed to read config %q: %w", c.ConfigFile(), err)
	}

	if err := yaml.Unmarshal(data, &uc); err != nil {
		return uc, fmt.Errorf("failed to parse config %q: %w", c.ConfigFile(), err)
	}
	return uc, nil
}

// SaveUser persists the user config as key-value text. Names that
// would break the line-oriented storage formats are rejected.
func (c *RepoConfig) SaveUser(uc UserConfig) error {
	if strings.ContainsAny(uc.Username, "\t\n:") || uc.Username != strings.TrimSpace(uc.Username) {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, uc.Username)
	}
	if err := c.EnsureStore(); err != nil {
		return err
	}
	content := fmt.Sprintf("username: %s\n", uc.Username)
	if err := fsio.WriteFile(c.ConfigFile(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config %q: %w", c.ConfigFile(), err)
	}
	return nil
}
