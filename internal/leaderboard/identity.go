package leaderboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Identity is the anonymous user a client submits scores as.
type Identity struct {
	UserID string `yaml:"user_id"`
	Name   string `yaml:"name"`
}

// DefaultIdentityPath returns ~/.lightcycle/identity.yaml.
func DefaultIdentityPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("leaderboard: cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".lightcycle", "identity.yaml"), nil
}

// LoadIdentity reads the identity at path, creating and saving a new
// anonymous one when the file does not exist.
func LoadIdentity(path string) (Identity, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		id := NewIdentity("")
		if err := id.Save(path); err != nil {
			return Identity{}, err
		}
		return id, nil
	}
	if err != nil {
		return Identity{}, fmt.Errorf("leaderboard: cannot read identity: %w", err)
	}

	var id Identity
	if err := yaml.Unmarshal(data, &id); err != nil {
		return Identity{}, fmt.Errorf("leaderboard: cannot parse identity %s: %w", path, err)
	}
	if _, err := uuid.Parse(id.UserID); err != nil {
		return Identity{}, fmt.Errorf("leaderboard: identity %s has invalid user id: %w", path, err)
	}
	return id, nil
}

// NewIdentity creates an identity with a random user ID.
func NewIdentity(name string) Identity {
	return Identity{UserID: uuid.NewString(), Name: strings.TrimSpace(name)}
}

// Save writes the identity to path, creating parent directories.
func (id Identity) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("leaderboard: cannot create identity directory: %w", err)
	}
	data, err := yaml.Marshal(id)
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode identity: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("leaderboard: cannot write identity: %w", err)
	}
	return nil
}
