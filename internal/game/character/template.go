package character

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Template is a set of optional overrides on the default character. A nil
// field keeps the default value.
type Template struct {
	Name         *string    `yaml:"name" toml:"name"`
	Alignment    *Alignment `yaml:"alignment" toml:"alignment"`
	ArmorClass   *int       `yaml:"armor_class" toml:"armor_class"`
	HitPoints    *int       `yaml:"hit_points" toml:"hit_points"`
	Strength     *int       `yaml:"strength" toml:"strength"`
	Dexterity    *int       `yaml:"dexterity" toml:"dexterity"`
	Constitution *int       `yaml:"constitution" toml:"constitution"`
	Wisdom       *int       `yaml:"wisdom" toml:"wisdom"`
	Intelligence *int       `yaml:"intelligence" toml:"intelligence"`
	Charisma     *int       `yaml:"charisma" toml:"charisma"`
	Experience   *int       `yaml:"experience" toml:"experience"`
}

// Options converts the non-nil overrides into Options.
func (t Template) Options() []Option {
	var opts []Option
	if t.Name != nil {
		opts = append(opts, WithName(*t.Name))
	}
	if t.Alignment != nil {
		opts = append(opts, WithAlignment(*t.Alignment))
	}
	if t.ArmorClass != nil {
		opts = append(opts, WithArmorClass(*t.ArmorClass))
	}
	if t.HitPoints != nil {
		opts = append(opts, WithHitPoints(*t.HitPoints))
	}
	if t.Strength != nil {
		opts = append(opts, WithStrength(*t.Strength))
	}
	if t.Dexterity != nil {
		opts = append(opts, WithDexterity(*t.Dexterity))
	}
	if t.Constitution != nil {
		opts = append(opts, WithConstitution(*t.Constitution))
	}
	if t.Wisdom != nil {
		opts = append(opts, WithWisdom(*t.Wisdom))
	}
	if t.Intelligence != nil {
		opts = append(opts, WithIntelligence(*t.Intelligence))
	}
	if t.Charisma != nil {
		opts = append(opts, WithCharisma(*t.Charisma))
	}
	if t.Experience != nil {
		opts = append(opts, WithExperience(*t.Experience))
	}
	return opts
}

// Build constructs the Character described by t.
func (t Template) Build() Character {
	return New(t.Options()...)
}

// LoadTemplateFromBytes parses a single character template from raw YAML bytes.
//
// Postcondition: Returns the decoded Template or a non-nil error. Unknown keys
// and unrecognized alignments are errors; empty input yields the empty Template.
func LoadTemplateFromBytes(data []byte) (Template, error) {
	var tmpl Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tmpl); err != nil && !errors.Is(err, io.EOF) {
		return Template{}, fmt.Errorf("parsing character template YAML: %w", err)
	}
	return tmpl, nil
}
