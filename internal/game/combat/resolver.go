package combat

import "github.com/cory-johannsen/evercraft/internal/game/character"

// Combatants pairs the attacker and defender of one resolution.
type Combatants struct {
	Attacker character.Character
	Defender character.Character
}

// Swap returns the pair with roles exchanged.
func (c Combatants) Swap() Combatants {
	return Combatants{Attacker: c.Defender, Defender: c.Attacker}
}

// Resolution holds the outcome of a single attack resolution.
type Resolution struct {
	// Combatants is the new attacker/defender pair.
	Combatants Combatants
	// Roll is the raw roll value as supplied.
	Roll int
	// StrengthModifier is the attacker's strength modifier.
	StrengthModifier int
	// EffectiveRoll is Roll + StrengthModifier.
	EffectiveRoll int
	// EffectiveArmorClass is defender armor class + defender dexterity modifier.
	EffectiveArmorClass int
	// Hit is true when EffectiveRoll >= EffectiveArmorClass.
	Hit bool
	// Critical is true when Roll is a critical roll. Only meaningful when Hit.
	Critical bool
	// Damage is the raw damage subtracted from the defender; 0 on a miss.
	Damage int
}

// Resolve performs one attack of c.Attacker against c.Defender with roll.
//
// The defender's stored hit points drop by the raw damage. Vitality is decided
// separately from the constitution-adjusted total max(1, hp + conMod) minus the
// same damage, so the two can disagree. A Dead defender stays Dead.
// The attacker gains ExperiencePerAttack whether or not the attack lands.
//
// Postcondition: inputs are not modified; Damage >= MinimumDamage iff Hit.
func Resolve(c Combatants, roll int) Resolution {
	attacker, defender := c.Attacker, c.Defender

	strMod := ModifierFor(attacker.Strength())
	effectiveAC := defender.ArmorClass() + ModifierFor(defender.Dexterity())
	effectiveRoll := roll + strMod
	hit := effectiveRoll >= effectiveAC

	damage := 0
	if hit {
		damage = ModifiedDamage(roll, strMod)
	}

	conHP := HitPointFloor(defender.HitPoints() + ModifierFor(defender.Constitution()))

	return Resolution{
		Combatants: Combatants{
			Attacker: attacker.GainExperience(ExperiencePerAttack),
			Defender: defender.TakeHit(damage, conHP),
		},
		Roll:                roll,
		StrengthModifier:    strMod,
		EffectiveRoll:       effectiveRoll,
		EffectiveArmorClass: effectiveAC,
		Hit:                 hit,
		Critical:            hit && IsCritical(roll),
		Damage:              damage,
	}
}

// ResolveAttack performs one attack and returns only the new Combatants.
func ResolveAttack(c Combatants, roll int) Combatants {
	return Resolve(c, roll).Combatants
}

// Resolver resolves one attack roll against a pair of combatants.
//
// Implementations MUST be safe for concurrent use.
type Resolver interface {
	Resolve(c Combatants, roll int) Resolution
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(c Combatants, roll int) Resolution

// Resolve calls f.
func (f ResolverFunc) Resolve(c Combatants, roll int) Resolution { return f(c, roll) }

// Standard is the Resolver backed by Resolve.
var Standard Resolver = ResolverFunc(Resolve)
