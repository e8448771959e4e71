package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RosterActivity describes one provisioned activity in the roster file.
// Document order is the store's enumeration order.
type RosterActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadRoster parses the YAML roster file. Shape validation (capacity,
// duplicates) happens when the roster is loaded into the store.
func LoadRoster(path string) ([]RosterActivity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var roster struct {
		Activities []RosterActivity `yaml:"activities"`
	}
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	if len(roster.Activities) == 0 {
		return nil, fmt.Errorf("roster %s provisions no activities", path)
	}
	return roster.Activities, nil
}
