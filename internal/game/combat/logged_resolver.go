package combat

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggedResolver wraps a Resolver and logs every resolution at debug level
// with a unique resolution ID, the roll arithmetic, and the defender's new state.
type LoggedResolver struct {
	next   Resolver
	logger *zap.Logger
}

// NewLoggedResolver creates a LoggedResolver that delegates to next.
//
// Precondition: next and logger must be non-nil.
func NewLoggedResolver(next Resolver, logger *zap.Logger) *LoggedResolver {
	return &LoggedResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped Resolver and logs the Resolution.
//
// Postcondition: the returned Resolution is exactly the wrapped Resolver's result.
func (r *LoggedResolver) Resolve(c Combatants, roll int) Resolution {
	res := r.next.Resolve(c, roll)
	defender := res.Combatants.Defender
	r.logger.Debug("attack resolved",
		zap.String("resolution_id", uuid.New().String()),
		zap.String("attacker", res.Combatants.Attacker.Name()),
		zap.String("defender", defender.Name()),
		zap.Int("roll", res.Roll),
		zap.Int("effective_roll", res.EffectiveRoll),
		zap.Int("effective_ac", res.EffectiveArmorClass),
		zap.Bool("hit", res.Hit),
		zap.Bool("critical", res.Critical),
		zap.Int("damage", res.Damage),
		zap.Int("defender_hp", defender.HitPoints()),
		zap.Stringer("defender_vitality", defender.Vitality()),
	)
	return res
}
