// Package scenario replays a scripted list of roll values through a combat
// resolver. Scenarios are loaded from YAML or TOML content files.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/evercraft/internal/game/character"
	"github.com/cory-johannsen/evercraft/internal/game/combat"
)

// Format identifies a scenario file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatForPath selects a Format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("scenario: unsupported file extension in %q", path)
	}
}

// Scenario is an attacker, a defender, and the rolls the attacker makes in order.
type Scenario struct {
	Name     string             `yaml:"name" toml:"name"`
	Attacker character.Template `yaml:"attacker" toml:"attacker"`
	Defender character.Template `yaml:"defender" toml:"defender"`
	Rolls    []int              `yaml:"rolls" toml:"rolls"`
}

// Validate checks that the scenario has something to run.
//
// Postcondition: Returns nil iff Name is non-empty and Rolls is non-empty.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario: name must not be empty")
	}
	if len(s.Rolls) == 0 {
		return fmt.Errorf("scenario %q: rolls must not be empty", s.Name)
	}
	return nil
}

// Combatants builds the opening attacker/defender pair.
func (s *Scenario) Combatants() combat.Combatants {
	return combat.Combatants{
		Attacker: s.Attacker.Build(),
		Defender: s.Defender.Build(),
	}
}

// LoadFromBytes parses and validates a scenario in the given format.
// Unknown keys are rejected in both formats.
//
// Postcondition: Returns a validated *Scenario or a non-nil error.
func LoadFromBytes(data []byte, format Format) (*Scenario, error) {
	var s Scenario
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parsing scenario YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, fmt.Errorf("parsing scenario TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing scenario TOML: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("scenario: unknown format %d", format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a scenario from path, choosing the decoder by extension.
//
// Precondition: path must name a readable .yaml, .yml or .toml file.
// Postcondition: Returns a validated *Scenario or a non-nil error.
func LoadFile(path string) (*Scenario, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	s, err := LoadFromBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return s, nil
}
