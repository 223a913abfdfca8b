package types

// Lineup slot names in DraftKings display order
const (
	SlotQB   = "QB"
	SlotRB1  = "RB1"
	SlotRB2  = "RB2"
	SlotWR1  = "WR1"
	SlotWR2  = "WR2"
	SlotWR3  = "WR3"
	SlotTE   = "TE"
	SlotFlex = "FLEX"
	SlotDST  = "DST"
)

// SlotOrder is the canonical ordering of the nine lineup slots
var SlotOrder = []string{
	SlotQB, SlotRB1, SlotRB2, SlotWR1, SlotWR2, SlotWR3, SlotTE, SlotFlex, SlotDST,
}

// SkillSlots are the slots subject to the cross-slot name-uniqueness invariant.
// QB and DST draw from disjoint pools, so they cannot collide with anything.
var SkillSlots = []string{SlotRB1, SlotRB2, SlotWR1, SlotWR2, SlotWR3, SlotTE, SlotFlex}

// LineupSlot binds one lineup slot to the player occupying it
type LineupSlot struct {
	Slot   string       `json:"slot"`
	Player PlayerRecord `json:"player"`
}

// Lineup represents one complete generated lineup. It is immutable once returned:
// generation either fills all nine slots or fails, never both.
type Lineup struct {
	ID    string       `json:"id"`
	Slots []LineupSlot `json:"slots"`
}

// Get returns the player occupying the named slot
func (l Lineup) Get(slot string) (PlayerRecord, bool) {
	for _, s := range l.Slots {
		if s.Slot == slot {
			return s.Player, true
		}
	}
	return PlayerRecord{}, false
}

// SkillNames returns the names occupying the seven skill slots, in slot order
func (l Lineup) SkillNames() []string {
	names := make([]string, 0, len(SkillSlots))
	for _, slot := range SkillSlots {
		if p, ok := l.Get(slot); ok {
			names = append(names, p.Name)
		}
	}
	return names
}
