package types

// FantasyPosition represents a DraftKings roster position classification
type FantasyPosition string

const (
	PositionQB   FantasyPosition = "QB"
	PositionRB   FantasyPosition = "RB"
	PositionWR   FantasyPosition = "WR"
	PositionTE   FantasyPosition = "TE"
	PositionDST  FantasyPosition = "DST"
	PositionFlex FantasyPosition = "FLEX"
)

// Stat column names as they appear in the pro-football-reference tables after the
// duplicate passing/rushing headers are renamed.
const (
	StatPassCmp = "Pass_Cmp"
	StatPassAtt = "Pass_Att"
	StatPassYds = "Pass_Yds"
	StatRushAtt = "Att"
	StatTargets = "Tgt"
	StatVBD     = "VBD"
)

// PlayerRecord represents one merged player row: season stats keyed by column name
// plus the DraftKings salary and position. A nil Salary means the player has no
// contest entry this week and never reaches lineup generation.
type PlayerRecord struct {
	Name             string             `json:"name"`
	Team             string             `json:"team"`
	Position         FantasyPosition    `json:"position"`
	Salary           *float64           `json:"salary,omitempty"`
	AvgPointsPerGame float64            `json:"avg_points_per_game,omitempty"`
	Stats            map[string]float64 `json:"stats,omitempty"`
}

// Stat returns the named stat and whether it was present in the source table.
// Absent stats are not zero; qualification rules treat them as failing.
func (p PlayerRecord) Stat(name string) (float64, bool) {
	v, ok := p.Stats[name]
	return v, ok
}

// HasSalary reports whether the player carries a contest salary
func (p PlayerRecord) HasSalary() bool {
	return p.Salary != nil
}

// PlayerPool represents the merged, cleaned collection of player records for one
// contest week. Offensive players and team defenses are kept apart because they
// come from different sources and never share lineup slots.
type PlayerPool struct {
	Players  []PlayerRecord `json:"players"`
	Defenses []PlayerRecord `json:"defenses"`
}

// ByPosition returns the offensive players eligible for the given position.
// FLEX is the union of RB, WR and TE; eligibility is not exclusive.
func (pp PlayerPool) ByPosition(pos FantasyPosition) []PlayerRecord {
	var out []PlayerRecord
	for _, p := range pp.Players {
		switch pos {
		case PositionFlex:
			if p.Position == PositionRB || p.Position == PositionWR || p.Position == PositionTE {
				out = append(out, p)
			}
		default:
			if p.Position == pos {
				out = append(out, p)
			}
		}
	}
	return out
}

// Size returns the total number of records in the pool
func (pp PlayerPool) Size() int {
	return len(pp.Players) + len(pp.Defenses)
}
