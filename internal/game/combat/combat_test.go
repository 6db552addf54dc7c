package combat_test

import (
	"testing"

	"github.com/cory-johannsen/evercraft/internal/game/combat"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestModifierFor(t *testing.T) {
	tests := []struct{ score, want int }{
		{1, -5},
		{2, -4},
		{3, -4},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{19, 4},
		{20, 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, combat.ModifierFor(tc.score), "score=%d", tc.score)
	}
}

func TestModifierFor_OutOfRangeNotRejected(t *testing.T) {
	assert.Equal(t, -5, combat.ModifierFor(0))
	assert.Equal(t, 10, combat.ModifierFor(30))
	// truncating division: -3/2 == -1
	assert.Equal(t, -6, combat.ModifierFor(-3))
}

func TestModifierFor_Property_Formula(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		score := rapid.IntRange(1, 1000).Draw(rt, "score")
		assert.Equal(rt, score/2-5, combat.ModifierFor(score))
	})
}

func TestIsCritical(t *testing.T) {
	assert.True(t, combat.IsCritical(20))
	assert.False(t, combat.IsCritical(19))
	assert.False(t, combat.IsCritical(21))
	assert.False(t, combat.IsCritical(1))
}

func TestCriticalMultiplierFor(t *testing.T) {
	assert.Equal(t, 2, combat.CriticalMultiplierFor(20))
	assert.Equal(t, 1, combat.CriticalMultiplierFor(19))
}

func TestModifiedDamage(t *testing.T) {
	tests := []struct {
		roll, strMod, want int
	}{
		{10, 0, 1},
		{20, 0, 2},
		{10, 3, 4},
		{20, 3, 8},
		{9, -5, 1},
		{20, -5, 1},
		{10, -1, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, combat.ModifiedDamage(tc.roll, tc.strMod), "roll=%d strMod=%d", tc.roll, tc.strMod)
	}
}

func TestModifiedDamage_Property_NeverBelowOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(-50, 50).Draw(rt, "roll")
		strMod := rapid.IntRange(-100, 100).Draw(rt, "strMod")
		assert.GreaterOrEqual(rt, combat.ModifiedDamage(roll, strMod), 1)
	})
}

func TestModifiedDamage_Property_CriticalDoubles(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		strMod := rapid.IntRange(0, 20).Draw(rt, "strMod")
		assert.Equal(rt, 2*(1+strMod), combat.ModifiedDamage(20, strMod))
		assert.Equal(rt, 1+strMod, combat.ModifiedDamage(10, strMod))
	})
}

func TestHitPointFloor(t *testing.T) {
	assert.Equal(t, 1, combat.HitPointFloor(-3))
	assert.Equal(t, 1, combat.HitPointFloor(0))
	assert.Equal(t, 7, combat.HitPointFloor(7))
}

func TestDamageFloor(t *testing.T) {
	assert.Equal(t, 1, combat.DamageFloor(-8))
	assert.Equal(t, 3, combat.DamageFloor(3))
}
