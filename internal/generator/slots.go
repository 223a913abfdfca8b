package generator

import "github.com/stitts-dev/dk-lineup/internal/types"

// PositionSlot represents one lineup slot and the criteria pool it draws from
type PositionSlot struct {
	SlotName string                // e.g. "RB1", "FLEX"
	Criteria types.FantasyPosition // qualified pool the slot draws from
}

// LineupSlots returns the nine DraftKings NFL classic slots in fill order.
// Multi-instance positions (RB, WR) appear once per instance; every RB/WR/FLEX
// draw uses a freshly reshuffled copy of its qualified pool.
func LineupSlots() []PositionSlot {
	return []PositionSlot{
		{SlotName: types.SlotQB, Criteria: types.PositionQB},
		{SlotName: types.SlotRB1, Criteria: types.PositionRB},
		{SlotName: types.SlotRB2, Criteria: types.PositionRB},
		{SlotName: types.SlotWR1, Criteria: types.PositionWR},
		{SlotName: types.SlotWR2, Criteria: types.PositionWR},
		{SlotName: types.SlotWR3, Criteria: types.PositionWR},
		{SlotName: types.SlotTE, Criteria: types.PositionTE},
		{SlotName: types.SlotFlex, Criteria: types.PositionFlex},
		{SlotName: types.SlotDST, Criteria: types.PositionDST},
	}
}

// slotsForCriteria returns the slot names drawing from the given criteria pool
func slotsForCriteria(pos types.FantasyPosition) []string {
	var names []string
	for _, slot := range LineupSlots() {
		if slot.Criteria == pos {
			names = append(names, slot.SlotName)
		}
	}
	return names
}
