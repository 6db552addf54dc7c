package scenario

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/evercraft/internal/game/combat"
)

// Result is the outcome of replaying every roll in a scenario.
type Result struct {
	// Rounds holds one Resolution per roll, in roll order.
	Rounds []combat.Resolution
	// Final is the Combatants pair after the last roll.
	Final combat.Combatants
}

// Runner feeds scenario rolls through a Resolver.
type Runner struct {
	resolver combat.Resolver
	logger   *zap.Logger
}

// NewRunner creates a Runner.
//
// Precondition: resolver and logger must be non-nil.
func NewRunner(resolver combat.Resolver, logger *zap.Logger) *Runner {
	return &Runner{resolver: resolver, logger: logger}
}

// Run resolves each roll in order, feeding the returned Combatants into the
// next call. Rolls continue after the defender dies.
//
// Precondition: s must have passed Validate.
// Postcondition: len(result.Rounds) == len(s.Rolls).
func (r *Runner) Run(s *Scenario) Result {
	current := s.Combatants()
	rounds := make([]combat.Resolution, 0, len(s.Rolls))
	for i, roll := range s.Rolls {
		res := r.resolver.Resolve(current, roll)
		rounds = append(rounds, res)
		current = res.Combatants
		r.logger.Info("round",
			zap.String("scenario", s.Name),
			zap.Int("round", i+1),
			zap.Int("roll", roll),
			zap.Bool("hit", res.Hit),
			zap.Bool("critical", res.Critical),
			zap.Int("damage", res.Damage),
			zap.Int("defender_hp", current.Defender.HitPoints()),
			zap.Stringer("defender_vitality", current.Defender.Vitality()),
		)
	}
	return Result{Rounds: rounds, Final: current}
}
