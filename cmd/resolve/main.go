// Package main provides the resolve binary, which replays a scripted scenario
// of attack rolls and logs each resolution.
package main

import (
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/evercraft/internal/config"
	"github.com/cory-johannsen/evercraft/internal/game/combat"
	"github.com/cory-johannsen/evercraft/internal/observability"
	"github.com/cory-johannsen/evercraft/internal/scenario"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	scenarioPath := flag.String("scenario", "", "scenario file (.yaml, .yml, .toml); overrides scenario.path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *scenarioPath != "" {
		cfg.Scenario.Path = *scenarioPath
		if err := cfg.Validate(); err != nil {
			log.Fatalf("validating config: %v", err)
		}
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := scenario.LoadFile(cfg.Scenario.Path)
	if err != nil {
		logger.Fatal("loading scenario", zap.Error(err))
	}
	logger.Info("running scenario",
		zap.String("scenario", s.Name),
		zap.String("path", cfg.Scenario.Path),
		zap.Int("rolls", len(s.Rolls)),
	)

	resolver := combat.NewLoggedResolver(combat.Standard, logger)
	result := scenario.NewRunner(resolver, logger).Run(s)

	attacker, defender := result.Final.Attacker, result.Final.Defender
	logger.Info("scenario complete",
		zap.String("attacker", attacker.Name()),
		zap.Int("attacker_experience", attacker.Experience()),
		zap.String("defender", defender.Name()),
		zap.Int("defender_hp", defender.HitPoints()),
		zap.Stringer("defender_vitality", defender.Vitality()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
