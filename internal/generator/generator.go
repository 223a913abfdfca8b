package generator

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/types"
	"github.com/stitts-dev/dk-lineup/pkg/logger"
)

// Generator turns an immutable player pool into single randomized lineups.
// Qualification is deterministic per pool; only the draws vary between calls,
// so retrying after an EmptyPoolError or InsufficientPlayersError cannot succeed
// without a different pool or broader thresholds.
type Generator struct {
	cfg     FilterConfig
	sampler *Sampler
}

// Option configures a Generator
type Option func(*Generator)

// WithFilterConfig overrides the default qualification thresholds
func WithFilterConfig(cfg FilterConfig) Option {
	return func(g *Generator) { g.cfg = cfg }
}

// WithRand injects a random source, letting tests fix the seed
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.sampler = NewSampler(rng) }
}

// New creates a Generator with the standard thresholds and a time-seeded source
func New(opts ...Option) *Generator {
	g := &Generator{
		cfg:     DefaultFilterConfig(),
		sampler: NewSampler(nil),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FilterConfig returns the thresholds the generator qualifies pools with
func (g *Generator) FilterConfig() FilterConfig {
	return g.cfg
}

// Qualify computes all six qualified pools from the player pool. Thresholds are
// derived from the pool on every call.
func (g *Generator) Qualify(pool types.PlayerPool, log *logrus.Entry) (QualifiedPools, error) {
	var pools QualifiedPools
	var err error

	if pools.QB, err = QualifyPosition(pool, types.PositionQB, g.cfg, log); err != nil {
		return QualifiedPools{}, err
	}
	if pools.RB, err = QualifyPosition(pool, types.PositionRB, g.cfg, log); err != nil {
		return QualifiedPools{}, err
	}
	if pools.WR, err = QualifyPosition(pool, types.PositionWR, g.cfg, log); err != nil {
		return QualifiedPools{}, err
	}
	if pools.TE, err = QualifyPosition(pool, types.PositionTE, g.cfg, log); err != nil {
		return QualifiedPools{}, err
	}
	if pools.Flex, err = QualifyPosition(pool, types.PositionFlex, g.cfg, log); err != nil {
		return QualifiedPools{}, err
	}
	if pools.DST, err = QualifyPosition(pool, types.PositionDST, g.cfg, log); err != nil {
		return QualifiedPools{}, err
	}
	return pools, nil
}

// Generate produces one valid lineup from the pool, or fails with a typed error.
// Safe to call concurrently: each call shuffles its own pool copies.
func (g *Generator) Generate(pool types.PlayerPool) (*types.Lineup, error) {
	generationID := uuid.New().String()
	log := logger.WithGenerationID(generationID)
	log.WithFields(logrus.Fields{
		"players":  len(pool.Players),
		"defenses": len(pool.Defenses),
	}).Info("Starting lineup generation")

	pools, err := g.Qualify(pool, log)
	if err != nil {
		log.WithError(err).Warn("Pool qualification failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"qb_qualified":   len(pools.QB.Players),
		"rb_qualified":   len(pools.RB.Players),
		"wr_qualified":   len(pools.WR.Players),
		"te_qualified":   len(pools.TE.Players),
		"flex_qualified": len(pools.Flex.Players),
		"dst_qualified":  len(pools.DST.Players),
	}).Debug("Qualification complete")

	picks, err := g.sampler.Sample(pools, log)
	if err != nil {
		log.WithError(err).Warn("Lineup sampling failed")
		return nil, err
	}

	lineup, err := AssembleLineup(picks)
	if err != nil {
		log.WithError(err).Error("Assembled lineup failed validation")
		return nil, err
	}

	log.WithField("lineup_id", lineup.ID).Info("Lineup generated")
	return lineup, nil
}
