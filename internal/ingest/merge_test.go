package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

func statRecord(name string, pos types.FantasyPosition, stats map[string]float64) types.PlayerRecord {
	return types.PlayerRecord{Name: name, Team: "KC", Position: pos, Stats: stats}
}

func salaryRow(name, pos string, salary float64) SalaryRow {
	return SalaryRow{Name: name, Position: pos, Team: "KC", Salary: &salary}
}

func TestMergePool_JoinsOnNormalizedName(t *testing.T) {
	stats := []types.PlayerRecord{
		statRecord("Odell Beckham Jr.", types.PositionWR, map[string]float64{types.StatTargets: 90, types.StatVBD: 3}),
		statRecord("Patrick Mahomes", types.PositionQB, map[string]float64{types.StatPassAtt: 380, types.StatVBD: 5}),
	}
	salaries := []SalaryRow{
		salaryRow("Odell Beckham", "WR", 7100),
		salaryRow("Patrick Mahomes", "QB", 8000),
	}

	pool := MergePool(stats, salaries)
	require.Len(t, pool.Players, 2)
	assert.Equal(t, "Odell Beckham", pool.Players[0].Name)
	require.NotNil(t, pool.Players[0].Salary)
	assert.Equal(t, 7100.0, *pool.Players[0].Salary)
}

func TestMergePool_DropsPlayersWithoutSalary(t *testing.T) {
	stats := []types.PlayerRecord{
		statRecord("Rostered Player", types.PositionRB, map[string]float64{types.StatRushAtt: 50}),
		statRecord("Bye Week Player", types.PositionRB, map[string]float64{types.StatRushAtt: 80}),
		statRecord("Blank Salary", types.PositionRB, map[string]float64{types.StatRushAtt: 60}),
	}
	salaries := []SalaryRow{
		salaryRow("Rostered Player", "RB", 6000),
		{Name: "Blank Salary", Position: "RB", Salary: nil},
	}

	pool := MergePool(stats, salaries)
	require.Len(t, pool.Players, 1)
	assert.Equal(t, "Rostered Player", pool.Players[0].Name)
}

func TestMergePool_SeparatesDefenses(t *testing.T) {
	salaries := []SalaryRow{
		salaryRow("Ravens", "DST", 3600),
		salaryRow("Jets", "DST", 2400),
		salaryRow("Lamar Jackson", "QB", 7900),
	}
	salaries[0].AvgPointsPerGame = 9.8

	pool := MergePool(nil, salaries)
	assert.Empty(t, pool.Players)
	require.Len(t, pool.Defenses, 2)
	assert.Equal(t, types.PositionDST, pool.Defenses[0].Position)
	assert.Equal(t, 9.8, pool.Defenses[0].AvgPointsPerGame)
}

func TestMergePool_KeepsStatsIntact(t *testing.T) {
	stats := []types.PlayerRecord{
		statRecord("Tyreek Hill", types.PositionWR, map[string]float64{types.StatTargets: 150, types.StatVBD: 5}),
	}
	pool := MergePool(stats, []SalaryRow{salaryRow("Tyreek Hill", "WR", 8300)})

	require.Len(t, pool.Players, 1)
	tgt, ok := pool.Players[0].Stat(types.StatTargets)
	require.True(t, ok)
	assert.Equal(t, 150.0, tgt)
}
