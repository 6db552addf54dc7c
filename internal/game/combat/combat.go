// Package combat resolves a single attack between two character snapshots.
package combat

// Fixed rule constants.
const (
	// CriticalRoll is the only natural roll that scores a critical hit.
	CriticalRoll = 20
	// BaseDamage is the damage of a plain hit before the strength modifier.
	BaseDamage = 1
	// MinimumDamage is the floor applied to every landed hit.
	MinimumDamage = 1
	// CriticalMultiplier scales base damage and strength modifier on a critical hit.
	CriticalMultiplier = 2
	// ExperiencePerAttack is awarded to the attacker on every resolution, hit or miss.
	ExperiencePerAttack = 10
)

// ModifierFor computes the ability modifier for a score: score/2 - 5 using
// Go's truncating integer division. No range checking is applied.
func ModifierFor(score int) int {
	return score/2 - 5
}

// IsCritical reports whether roll is a critical hit.
//
// Postcondition: Returns true iff roll == CriticalRoll.
func IsCritical(roll int) bool {
	return roll == CriticalRoll
}

// CriticalMultiplierFor returns CriticalMultiplier for a critical roll and 1 otherwise.
func CriticalMultiplierFor(roll int) int {
	if IsCritical(roll) {
		return CriticalMultiplier
	}
	return 1
}

// ModifiedDamage returns the damage dealt by a landed hit.
// Plain hit: BaseDamage + strMod. Critical hit: the whole sum doubled.
//
// Postcondition: Returns >= MinimumDamage.
func ModifiedDamage(roll, strMod int) int {
	return DamageFloor((BaseDamage + strMod) * CriticalMultiplierFor(roll))
}

// DamageFloor raises damage to MinimumDamage.
func DamageFloor(damage int) int {
	return max(MinimumDamage, damage)
}

// HitPointFloor raises a hit point total to 1. Used for the constitution-adjusted
// hit points that decide vitality.
func HitPointFloor(hp int) int {
	return max(1, hp)
}
