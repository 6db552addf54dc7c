// Package character defines the combatant snapshot value and its
// default-then-override construction.
package character

// Default values applied by New before any Option runs.
const (
	DefaultAlignment    = Evil
	DefaultArmorClass   = 10
	DefaultHitPoints    = 5
	DefaultAbilityScore = 10
)

// AbilityScores holds the six ability score values for a character.
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Wisdom       int
	Intelligence int
	Charisma     int
}

// DefaultAbilities returns every ability at DefaultAbilityScore.
func DefaultAbilities() AbilityScores {
	return AbilityScores{
		Strength:     DefaultAbilityScore,
		Dexterity:    DefaultAbilityScore,
		Constitution: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Intelligence: DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

// Character is an immutable combatant snapshot. Every change produces a new
// value; there is no in-place update.
//
// Invariant: vitality is derived, never supplied by a caller.
type Character struct {
	name       string
	alignment  Alignment
	armorClass int
	hitPoints  int
	vitality   Vitality
	abilities  AbilityScores
	experience int
}

// Option overrides one field of the default template.
type Option func(*Character)

// New builds a Character from the default template with opts applied in order.
// Vitality is derived from the resulting hit points.
//
// Postcondition: Vitality() == Dead iff HitPoints() <= 0.
func New(opts ...Option) Character {
	c := Character{
		alignment:  DefaultAlignment,
		armorClass: DefaultArmorClass,
		hitPoints:  DefaultHitPoints,
		abilities:  DefaultAbilities(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.vitality = VitalityFor(c.hitPoints)
	return c
}

// With returns a copy of c with opts applied. Vitality is carried over
// unchanged; only TakeHit moves it after construction.
func (c Character) With(opts ...Option) Character {
	next := c
	for _, opt := range opts {
		opt(&next)
	}
	next.vitality = c.vitality
	return next
}

// TakeHit returns a copy of c after an attack dealing damage. Stored hit
// points drop by damage. Vitality is decided from vitalityHitPoints - damage,
// which lets a resolver judge death on an adjusted total. Dead is terminal.
//
// Postcondition: HitPoints() == c.HitPoints() - damage; a Dead c stays Dead.
func (c Character) TakeHit(damage, vitalityHitPoints int) Character {
	next := c
	next.hitPoints = c.hitPoints - damage
	if c.vitality != Dead {
		next.vitality = VitalityFor(vitalityHitPoints - damage)
	}
	return next
}

// GainExperience returns a copy of c with amount added to its experience.
func (c Character) GainExperience(amount int) Character {
	next := c
	next.experience += amount
	return next
}

// Name returns the character's label.
func (c Character) Name() string { return c.name }

// Alignment returns the character's alignment.
func (c Character) Alignment() Alignment { return c.alignment }

// ArmorClass returns the base armor class before the dexterity modifier.
func (c Character) ArmorClass() int { return c.armorClass }

// HitPoints returns the remaining hit points; may be <= 0.
func (c Character) HitPoints() int { return c.hitPoints }

// Vitality returns whether the character is Alive or Dead.
func (c Character) Vitality() Vitality { return c.vitality }

// Abilities returns a copy of all six ability scores.
func (c Character) Abilities() AbilityScores { return c.abilities }

// Experience returns the accumulated experience.
func (c Character) Experience() int { return c.experience }

// Strength returns the strength score.
func (c Character) Strength() int { return c.abilities.Strength }

// Dexterity returns the dexterity score.
func (c Character) Dexterity() int { return c.abilities.Dexterity }

// Constitution returns the constitution score.
func (c Character) Constitution() int { return c.abilities.Constitution }

// Wisdom returns the wisdom score.
func (c Character) Wisdom() int { return c.abilities.Wisdom }

// Intelligence returns the intelligence score.
func (c Character) Intelligence() int { return c.abilities.Intelligence }

// Charisma returns the charisma score.
func (c Character) Charisma() int { return c.abilities.Charisma }

// IsDead reports whether the character's vitality is Dead.
func (c Character) IsDead() bool { return c.vitality == Dead }

// WithName overrides the name.
func WithName(name string) Option { return func(c *Character) { c.name = name } }

// WithAlignment overrides the alignment.
func WithAlignment(a Alignment) Option { return func(c *Character) { c.alignment = a } }

// WithArmorClass overrides the base armor class.
func WithArmorClass(ac int) Option { return func(c *Character) { c.armorClass = ac } }

// WithHitPoints overrides the hit points. Under New this also decides the
// initial vitality; under With vitality is left as it was.
func WithHitPoints(hp int) Option { return func(c *Character) { c.hitPoints = hp } }

// WithExperience overrides the experience total.
func WithExperience(xp int) Option { return func(c *Character) { c.experience = xp } }

// WithAbilities replaces all six ability scores at once.
func WithAbilities(a AbilityScores) Option { return func(c *Character) { c.abilities = a } }

// WithStrength overrides the strength score.
func WithStrength(score int) Option { return func(c *Character) { c.abilities.Strength = score } }

// WithDexterity overrides the dexterity score.
func WithDexterity(score int) Option { return func(c *Character) { c.abilities.Dexterity = score } }

// WithConstitution overrides the constitution score.
func WithConstitution(score int) Option {
	return func(c *Character) { c.abilities.Constitution = score }
}

// WithWisdom overrides the wisdom score.
func WithWisdom(score int) Option { return func(c *Character) { c.abilities.Wisdom = score } }

// WithIntelligence overrides the intelligence score.
func WithIntelligence(score int) Option {
	return func(c *Character) { c.abilities.Intelligence = score }
}

// WithCharisma overrides the charisma score.
func WithCharisma(score int) Option { return func(c *Character) { c.abilities.Charisma = score } }
