package generator

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

// QualifiedPools holds the six qualified pools one lineup draws from
type QualifiedPools struct {
	QB   QualifiedPool
	RB   QualifiedPool
	WR   QualifiedPool
	TE   QualifiedPool
	Flex QualifiedPool
	DST  QualifiedPool
}

// Sampler performs the constrained random draws that fill a lineup. The random
// source is injected so tests can fix the seed; two production calls are meant
// to produce different lineups.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler around the given random source. A nil source
// falls back to a time-seeded one.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// Sample draws one player per slot from the qualified pools. Multi-instance
// positions shuffle a fresh copy of their pool and take distinct names; the FLEX
// draw additionally rejects any name already holding a skill slot. Partial
// results are never returned.
func (s *Sampler) Sample(pools QualifiedPools, log *logrus.Entry) (map[string]types.PlayerRecord, error) {
	picks := make(map[string]types.PlayerRecord, len(types.SlotOrder))
	usedNames := make(map[string]bool)

	qb, err := s.drawOne(pools.QB, types.SlotQB)
	if err != nil {
		return nil, err
	}
	picks[types.SlotQB] = qb

	rbs, err := s.drawDistinct(pools.RB, slotsForCriteria(types.PositionRB))
	if err != nil {
		return nil, err
	}
	for slot, rec := range rbs {
		picks[slot] = rec
		usedNames[rec.Name] = true
	}

	wrs, err := s.drawDistinct(pools.WR, slotsForCriteria(types.PositionWR))
	if err != nil {
		return nil, err
	}
	for slot, rec := range wrs {
		picks[slot] = rec
		usedNames[rec.Name] = true
	}

	te, err := s.drawOne(pools.TE, types.SlotTE)
	if err != nil {
		return nil, err
	}
	picks[types.SlotTE] = te
	usedNames[te.Name] = true

	flex, err := s.drawExcluding(pools.Flex, types.SlotFlex, usedNames)
	if err != nil {
		return nil, err
	}
	picks[types.SlotFlex] = flex

	dst, err := s.drawOne(pools.DST, types.SlotDST)
	if err != nil {
		return nil, err
	}
	picks[types.SlotDST] = dst

	if log != nil {
		names := make(map[string]string, len(picks))
		for slot, rec := range picks {
			names[slot] = rec.Name
		}
		log.WithFields(logrus.Fields{"picks": names}).Debug("Lineup sampled")
	}
	return picks, nil
}

// drawOne picks uniformly from a pool with no collision risk
func (s *Sampler) drawOne(pool QualifiedPool, slot string) (types.PlayerRecord, error) {
	if len(pool.Players) == 0 {
		return types.PlayerRecord{}, &InsufficientPlayersError{Slot: slot, Need: 1, Have: 0}
	}
	return pool.Players[s.rng.Intn(len(pool.Players))], nil
}

// drawDistinct shuffles a copy of the pool and takes the first record per slot
// with a name not already taken by an earlier slot in the same call
func (s *Sampler) drawDistinct(pool QualifiedPool, slots []string) (map[string]types.PlayerRecord, error) {
	shuffled := s.shuffledCopy(pool.Players)

	picks := make(map[string]types.PlayerRecord, len(slots))
	seen := make(map[string]bool, len(slots))
	next := 0
	for _, rec := range shuffled {
		if seen[rec.Name] {
			continue
		}
		picks[slots[next]] = rec
		seen[rec.Name] = true
		next++
		if next == len(slots) {
			return picks, nil
		}
	}
	return nil, &InsufficientPlayersError{Slot: slots[next], Need: len(slots), Have: next}
}

// drawExcluding shuffles a copy of the pool and takes the first record whose
// name does not collide with the already-selected skill players
func (s *Sampler) drawExcluding(pool QualifiedPool, slot string, exclude map[string]bool) (types.PlayerRecord, error) {
	if len(pool.Players) == 0 {
		return types.PlayerRecord{}, &InsufficientPlayersError{Slot: slot, Need: 1, Have: 0}
	}
	for _, rec := range s.shuffledCopy(pool.Players) {
		if !exclude[rec.Name] {
			return rec, nil
		}
	}
	return types.PlayerRecord{}, &InsufficientPlayersError{Slot: slot, Need: 1, Have: 0}
}

// shuffledCopy reshuffles a fresh copy of the pool, leaving the input untouched
// so the immutable pool can serve concurrent generation calls
func (s *Sampler) shuffledCopy(records []types.PlayerRecord) []types.PlayerRecord {
	shuffled := make([]types.PlayerRecord, len(records))
	copy(shuffled, records)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
