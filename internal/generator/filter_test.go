package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

func TestQualifyQB_ThresholdsAndZeroAttemptGuard(t *testing.T) {
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		qbRecord("Good QB", 250, 380, 2900, 4.0),  // 65.8% cmp, 7.6 ypa
		qbRecord("Wild QB", 190, 380, 2900, 4.0),  // 50% completion rate fails
		qbRecord("Dink QB", 250, 380, 1700, 4.0),  // 4.5 ypa fails
		qbRecord("Bench QB", 250, 380, 2900, 1.0), // VBD fails
		qbRecord("Ghost QB", 0, 0, 0, 9.9),        // zero attempts: rate undefined
	}}

	qp, err := QualifyPosition(pool, types.PositionQB, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	require.Len(t, qp.Players, 1)
	assert.Equal(t, "Good QB", qp.Players[0].Name)
}

func TestQualifyQB_ZeroAttemptsNeverQualifies(t *testing.T) {
	// A zero-attempt QB must be disqualified, not divide by zero
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		qbRecord("Ghost QB", 0, 0, 0, 99),
	}}

	qp, err := QualifyPosition(pool, types.PositionQB, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	assert.Empty(t, qp.Players)
}

func TestQualifyRB_QuantileThreshold(t *testing.T) {
	// Sorted attempts [5, 20, 22]: p75 = 21, so only Cara clears it. Alice has
	// the VBD but sits below the cutoff; Bob fails both.
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		rbRecord("Alice", 20, 2.0),
		rbRecord("Bob", 5, 0.5),
		rbRecord("Cara", 22, 3.0),
	}}

	qp, err := QualifyPosition(pool, types.PositionRB, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, qp.Thresholds[types.StatRushAtt], 1e-9)
	require.Len(t, qp.Players, 1)
	assert.Equal(t, "Cara", qp.Players[0].Name)
}

func TestQualifyRB_TiedTopAttempts(t *testing.T) {
	// Alice and Cara tie at 22 attempts: p75 of [5, 22, 22] is 22, both clear it,
	// Bob's VBD rules him out regardless
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		rbRecord("Alice", 22, 2.0),
		rbRecord("Bob", 5, 0.5),
		rbRecord("Cara", 22, 3.0),
	}}

	qp, err := QualifyPosition(pool, types.PositionRB, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	names := qualifiedNames(qp)
	assert.ElementsMatch(t, []string{"Alice", "Cara"}, names)
}

func TestQualifyRB_VBDCutoffIsStrict(t *testing.T) {
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		rbRecord("Edge", 30, 1.5), // VBD must exceed 1.5, not equal it
		rbRecord("Clear", 30, 1.6),
		rbRecord("Low", 1, 3.0),
	}}

	qp, err := QualifyPosition(pool, types.PositionRB, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Clear"}, qualifiedNames(qp))
}

func TestQualifyTE_UsesOwnTargetDistribution(t *testing.T) {
	// WRs see far more targets than TEs. A threshold computed over the TE pool
	// admits the top tight end; a WR-derived threshold would admit nobody.
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		wrRecord("WR One", 140, 5.0),
		wrRecord("WR Two", 120, 4.0),
		wrRecord("WR Three", 100, 3.0),
		teRecord("TE Star", 70, 4.0),
		teRecord("TE Mid", 40, 3.0),
		teRecord("TE Low", 20, 0.1),
	}}

	qp, err := QualifyPosition(pool, types.PositionTE, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	// p75 of [20, 40, 70] = 55
	assert.InDelta(t, 55.0, qp.Thresholds[types.StatTargets], 1e-9)
	assert.Equal(t, []string{"TE Star"}, qualifiedNames(qp))
}

func TestQualifyFlex_EitherTargetsOrAttempts(t *testing.T) {
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		rbRecord("Workhorse", 90, 3.0),   // attempts route
		wrRecord("Target Hog", 95, 3.0),  // targets route
		rbRecord("Backup", 10, 3.0),      // clears neither quantile
		wrRecord("Decoy", 12, 3.0),       // clears neither quantile
		teRecord("Blocking TE", 8, 0.5),  // VBD fails
		rbRecord("Pass Catcher", 9, 2.5), // low on both routes
	}}

	qp, err := QualifyPosition(pool, types.PositionFlex, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Workhorse", "Target Hog"}, qualifiedNames(qp))
}

func TestQualifyDST_QuarterQuantile(t *testing.T) {
	pool := types.PlayerPool{Defenses: []types.PlayerRecord{
		dstRecord("Bears", 4.0),
		dstRecord("Ravens", 9.0),
		dstRecord("Steelers", 8.0),
		dstRecord("Jets", 2.0),
	}}

	qp, err := QualifyPosition(pool, types.PositionDST, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	// p25 of [2, 4, 8, 9] = 3.5: only the Jets fall below it
	assert.ElementsMatch(t, []string{"Bears", "Ravens", "Steelers"}, qualifiedNames(qp))
}

func TestQualifyDST_EmptyPool(t *testing.T) {
	pool := types.PlayerPool{}

	_, err := QualifyPosition(pool, types.PositionDST, DefaultFilterConfig(), nil)
	var emptyErr *EmptyPoolError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "DST", emptyErr.Pool)
}

func TestQualifyRB_DegeneratePoolFails(t *testing.T) {
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		rbRecord("Lonely", 30, 3.0),
	}}

	_, err := QualifyPosition(pool, types.PositionRB, DefaultFilterConfig(), nil)
	var emptyErr *EmptyPoolError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "RB", emptyErr.Pool)
	assert.Equal(t, 1, emptyErr.Size)
}

func TestQualify_MissingStatFailsThreshold(t *testing.T) {
	// A missing Tgt column is not the same as zero targets, but both fail
	noTargets := types.PlayerRecord{
		Name: "No Data WR", Position: types.PositionWR, Salary: fptr(4000),
		Stats: map[string]float64{types.StatVBD: 9.0},
	}
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		wrRecord("WR One", 100, 4.0),
		wrRecord("WR Two", 80, 3.0),
		noTargets,
	}}

	qp, err := QualifyPosition(pool, types.PositionWR, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	assert.NotContains(t, qualifiedNames(qp), "No Data WR")
}

func TestQualify_ThresholdRecomputedPerCall(t *testing.T) {
	pool := types.PlayerPool{Players: []types.PlayerRecord{
		rbRecord("A", 10, 2.0),
		rbRecord("B", 20, 2.0),
		rbRecord("C", 30, 2.0),
	}}

	first, err := QualifyPosition(pool, types.PositionRB, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	second, err := QualifyPosition(pool, types.PositionRB, DefaultFilterConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, first.Thresholds, second.Thresholds)
	assert.Equal(t, qualifiedNames(first), qualifiedNames(second))
}

func TestSummarizeColumn(t *testing.T) {
	records := []types.PlayerRecord{
		rbRecord("A", 10, 1.0),
		rbRecord("B", 20, 1.0),
		rbRecord("C", 30, 1.0),
	}

	summary := SummarizeColumn(records, types.StatRushAtt)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 20.0, summary.Mean, 1e-9)
	assert.InDelta(t, 25.0, summary.P75, 1e-9)
}

// Test fixtures

func fptr(v float64) *float64 { return &v }

func qbRecord(name string, cmp, att, yds, vbd float64) types.PlayerRecord {
	return types.PlayerRecord{
		Name: name, Team: "KC", Position: types.PositionQB, Salary: fptr(7000),
		Stats: map[string]float64{
			types.StatPassCmp: cmp,
			types.StatPassAtt: att,
			types.StatPassYds: yds,
			types.StatVBD:     vbd,
		},
	}
}

func rbRecord(name string, att, vbd float64) types.PlayerRecord {
	return types.PlayerRecord{
		Name: name, Team: "SF", Position: types.PositionRB, Salary: fptr(6000),
		Stats: map[string]float64{
			types.StatRushAtt: att,
			types.StatVBD:     vbd,
		},
	}
}

func wrRecord(name string, tgt, vbd float64) types.PlayerRecord {
	return types.PlayerRecord{
		Name: name, Team: "MIA", Position: types.PositionWR, Salary: fptr(6500),
		Stats: map[string]float64{
			types.StatTargets: tgt,
			types.StatVBD:     vbd,
		},
	}
}

func teRecord(name string, tgt, vbd float64) types.PlayerRecord {
	return types.PlayerRecord{
		Name: name, Team: "KC", Position: types.PositionTE, Salary: fptr(5000),
		Stats: map[string]float64{
			types.StatTargets: tgt,
			types.StatVBD:     vbd,
		},
	}
}

func dstRecord(name string, avgPts float64) types.PlayerRecord {
	return types.PlayerRecord{
		Name: name, Team: name, Position: types.PositionDST, Salary: fptr(3000),
		AvgPointsPerGame: avgPts,
	}
}

func qualifiedNames(qp QualifiedPool) []string {
	names := make([]string, 0, len(qp.Players))
	for _, p := range qp.Players {
		names = append(names, p.Name)
	}
	return names
}
