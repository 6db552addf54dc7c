package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/evercraft/internal/game/character"
	"github.com/cory-johannsen/evercraft/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const duelYAML = `
name: duel
attacker:
  name: Krusk
  alignment: neutral
  strength: 16
defender:
  name: Gimble
  alignment: good
  hit_points: 3
  dexterity: 12
rolls: [9, 12, 20]
`

const duelTOML = `
name = "duel"
rolls = [9, 12, 20]

[attacker]
name = "Krusk"
alignment = "neutral"
strength = 16

[defender]
name = "Gimble"
alignment = "Good"
hit_points = 3
dexterity = 12
`

func TestLoadFromBytes_YAML(t *testing.T) {
	s, err := scenario.LoadFromBytes([]byte(duelYAML), scenario.FormatYAML)
	require.NoError(t, err)
	assertDuel(t, s)
}

func TestLoadFromBytes_TOML(t *testing.T) {
	s, err := scenario.LoadFromBytes([]byte(duelTOML), scenario.FormatTOML)
	require.NoError(t, err)
	assertDuel(t, s)
}

func assertDuel(t *testing.T, s *scenario.Scenario) {
	t.Helper()
	assert.Equal(t, "duel", s.Name)
	assert.Equal(t, []int{9, 12, 20}, s.Rolls)

	c := s.Combatants()
	assert.Equal(t, "Krusk", c.Attacker.Name())
	assert.Equal(t, character.Neutral, c.Attacker.Alignment())
	assert.Equal(t, 16, c.Attacker.Strength())
	assert.Equal(t, 5, c.Attacker.HitPoints())
	assert.Equal(t, "Gimble", c.Defender.Name())
	assert.Equal(t, character.Good, c.Defender.Alignment())
	assert.Equal(t, 3, c.Defender.HitPoints())
	assert.Equal(t, 12, c.Defender.Dexterity())
	assert.Equal(t, 10, c.Defender.ArmorClass())
}

func TestLoadFromBytes_EmptyRolls(t *testing.T) {
	_, err := scenario.LoadFromBytes([]byte("name: duel\nrolls: []\n"), scenario.FormatYAML)
	assert.Error(t, err)
}

func TestLoadFromBytes_MissingName(t *testing.T) {
	_, err := scenario.LoadFromBytes([]byte("rolls = [10]\n"), scenario.FormatTOML)
	assert.Error(t, err)
}

func TestLoadFromBytes_UnknownKeys(t *testing.T) {
	_, err := scenario.LoadFromBytes([]byte("name: duel\nrolls: [10]\nturns: 3\n"), scenario.FormatYAML)
	assert.Error(t, err)

	_, err = scenario.LoadFromBytes([]byte("name = \"duel\"\nrolls = [10]\n[defender]\nvitality = \"dead\"\n"), scenario.FormatTOML)
	assert.Error(t, err)
}

func TestLoadFromBytes_BadAlignment(t *testing.T) {
	_, err := scenario.LoadFromBytes([]byte("name: duel\nrolls: [10]\nattacker:\n  alignment: lawful\n"), scenario.FormatYAML)
	assert.Error(t, err)

	_, err = scenario.LoadFromBytes([]byte("name = \"duel\"\nrolls = [10]\n[attacker]\nalignment = \"lawful\"\n"), scenario.FormatTOML)
	assert.Error(t, err)
}

func TestLoadFromBytes_UnknownFormat(t *testing.T) {
	_, err := scenario.LoadFromBytes([]byte(duelYAML), scenario.Format(9))
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	f, err := scenario.FormatForPath("a/b.yml")
	require.NoError(t, err)
	assert.Equal(t, scenario.FormatYAML, f)

	f, err = scenario.FormatForPath("B.TOML")
	require.NoError(t, err)
	assert.Equal(t, scenario.FormatTOML, f)

	_, err = scenario.FormatForPath("duel.json")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "duel.yaml")
	tomlPath := filepath.Join(dir, "duel.toml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(duelYAML), 0644))
	require.NoError(t, os.WriteFile(tomlPath, []byte(duelTOML), 0644))

	fromYAML, err := scenario.LoadFile(yamlPath)
	require.NoError(t, err)
	fromTOML, err := scenario.LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromTOML)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scenario.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// Property: any non-empty roll list survives a YAML load unchanged.
func TestLoadFromBytes_Property_RollsPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolls := rapid.SliceOfN(rapid.IntRange(-5, 30), 1, 20).Draw(rt, "rolls")
		s := scenario.Scenario{Name: "prop", Rolls: rolls}
		data := []byte("name: prop\nrolls: " + intList(rolls) + "\n")
		loaded, err := scenario.LoadFromBytes(data, scenario.FormatYAML)
		require.NoError(rt, err)
		assert.Equal(rt, s.Rolls, loaded.Rolls)
	})
}
