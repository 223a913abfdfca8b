package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

// AssembleLineup validates structural completeness of the sampled picks and
// produces the final immutable lineup. Every slot must be filled with a named
// record and no name may occupy two skill slots.
func AssembleLineup(picks map[string]types.PlayerRecord) (*types.Lineup, error) {
	if len(picks) != len(types.SlotOrder) {
		return nil, &CompositionError{
			Invariant: fmt.Sprintf("expected %d filled slots, got %d", len(types.SlotOrder), len(picks)),
		}
	}

	lineup := &types.Lineup{
		ID:    fmt.Sprintf("lineup_%s", uuid.New().String()[:8]),
		Slots: make([]types.LineupSlot, 0, len(types.SlotOrder)),
	}
	for _, slot := range types.SlotOrder {
		rec, ok := picks[slot]
		if !ok {
			return nil, &CompositionError{Invariant: fmt.Sprintf("slot %s not filled", slot)}
		}
		if rec.Name == "" {
			return nil, &CompositionError{Invariant: fmt.Sprintf("slot %s bound to empty record", slot)}
		}
		lineup.Slots = append(lineup.Slots, types.LineupSlot{Slot: slot, Player: rec})
	}

	seen := make(map[string]string, len(types.SkillSlots))
	for _, slot := range types.SkillSlots {
		rec, _ := lineup.Get(slot)
		if prior, dup := seen[rec.Name]; dup {
			return nil, &CompositionError{
				Invariant: fmt.Sprintf("player %s occupies both %s and %s", rec.Name, prior, slot),
			}
		}
		seen[rec.Name] = slot
	}

	return lineup, nil
}
