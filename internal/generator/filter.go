package generator

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

// FilterConfig holds the statistical qualification thresholds per position.
// Defaults mirror the weekly merge pipeline this service replaced.
type FilterConfig struct {
	QBMinCompletionRate  float64 `json:"qb_min_completion_rate"`
	QBMinYardsPerAttempt float64 `json:"qb_min_yards_per_attempt"`
	QBMinVBD             float64 `json:"qb_min_vbd"`
	RBAttemptsQuantile   float64 `json:"rb_attempts_quantile"`
	RBMinVBD             float64 `json:"rb_min_vbd"`
	WRTargetsQuantile    float64 `json:"wr_targets_quantile"`
	WRMinVBD             float64 `json:"wr_min_vbd"`
	TETargetsQuantile    float64 `json:"te_targets_quantile"`
	TEMinVBD             float64 `json:"te_min_vbd"`
	FlexQuantile         float64 `json:"flex_quantile"`
	FlexMinVBD           float64 `json:"flex_min_vbd"`
	DSTPointsQuantile    float64 `json:"dst_points_quantile"`
}

// DefaultFilterConfig returns the standard qualification thresholds
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		QBMinCompletionRate:  0.60,
		QBMinYardsPerAttempt: 5.0,
		QBMinVBD:             2.0,
		RBAttemptsQuantile:   0.75,
		RBMinVBD:             1.5,
		WRTargetsQuantile:    0.75,
		WRMinVBD:             2.0,
		TETargetsQuantile:    0.75,
		TEMinVBD:             2.0,
		FlexQuantile:         0.75,
		FlexMinVBD:           2.0,
		DSTPointsQuantile:    0.25,
	}
}

// QualifiedPool represents the records passing every statistical threshold for
// one slot criteria, plus the computed cutoffs for inspection and logging
type QualifiedPool struct {
	Criteria   types.FantasyPosition `json:"criteria"`
	Players    []types.PlayerRecord  `json:"players"`
	Thresholds map[string]float64    `json:"thresholds,omitempty"`
}

// QualifyPosition filters one positional sub-pool down to its qualified pool.
// Thresholds are recomputed from the pool on every call, never cached.
func QualifyPosition(pool types.PlayerPool, pos types.FantasyPosition, cfg FilterConfig, log *logrus.Entry) (QualifiedPool, error) {
	var (
		qp  QualifiedPool
		err error
	)

	switch pos {
	case types.PositionQB:
		qp, err = qualifyQB(pool.ByPosition(types.PositionQB), cfg)
	case types.PositionRB:
		qp, err = qualifyByQuantile(pool.ByPosition(types.PositionRB), types.PositionRB,
			types.StatRushAtt, cfg.RBAttemptsQuantile, cfg.RBMinVBD)
	case types.PositionWR:
		qp, err = qualifyByQuantile(pool.ByPosition(types.PositionWR), types.PositionWR,
			types.StatTargets, cfg.WRTargetsQuantile, cfg.WRMinVBD)
	case types.PositionTE:
		qp, err = qualifyByQuantile(pool.ByPosition(types.PositionTE), types.PositionTE,
			types.StatTargets, cfg.TETargetsQuantile, cfg.TEMinVBD)
	case types.PositionFlex:
		qp, err = qualifyFlex(pool.ByPosition(types.PositionFlex), cfg)
	case types.PositionDST:
		qp, err = qualifyDST(pool.Defenses, cfg)
	default:
		return QualifiedPool{}, &EmptyPoolError{Pool: string(pos), Size: 0}
	}

	if err != nil {
		return QualifiedPool{}, err
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"criteria":   string(pos),
			"raw_count":  len(pool.ByPosition(pos)),
			"qualified":  len(qp.Players),
			"thresholds": qp.Thresholds,
		}).Debug("Position pool qualified")
	}
	return qp, nil
}

func qualifyQB(records []types.PlayerRecord, cfg FilterConfig) (QualifiedPool, error) {
	qp := QualifiedPool{
		Criteria: types.PositionQB,
		Thresholds: map[string]float64{
			"completion_rate":   cfg.QBMinCompletionRate,
			"yards_per_attempt": cfg.QBMinYardsPerAttempt,
			"vbd":               cfg.QBMinVBD,
		},
	}

	for _, rec := range records {
		cmpRate, err := rateStat(rec, types.StatPassCmp, types.StatPassAtt)
		if err != nil {
			// Zero attempts: rate undefined, record disqualified rather than crashing
			continue
		}
		ypa, err := rateStat(rec, types.StatPassYds, types.StatPassAtt)
		if err != nil {
			continue
		}
		vbd, ok := rec.Stat(types.StatVBD)
		if !ok {
			continue
		}
		if cmpRate > cfg.QBMinCompletionRate && ypa > cfg.QBMinYardsPerAttempt && vbd > cfg.QBMinVBD {
			qp.Players = append(qp.Players, rec)
		}
	}
	return qp, nil
}

func qualifyByQuantile(records []types.PlayerRecord, pos types.FantasyPosition, statName string, q, minVBD float64) (QualifiedPool, error) {
	if len(records) < 2 {
		return QualifiedPool{}, &EmptyPoolError{Pool: string(pos), Size: len(records)}
	}
	column := statColumn(records, statName)
	if len(column) == 0 {
		// No record carries the stat, so none can clear a threshold over it
		return QualifiedPool{Criteria: pos}, nil
	}
	cutoff := quantile(column, q)

	qp := QualifiedPool{
		Criteria: pos,
		Thresholds: map[string]float64{
			statName: cutoff,
			"vbd":    minVBD,
		},
	}
	for _, rec := range records {
		v, ok := rec.Stat(statName)
		if !ok {
			continue
		}
		vbd, ok := rec.Stat(types.StatVBD)
		if !ok {
			continue
		}
		if v >= cutoff && vbd > minVBD {
			qp.Players = append(qp.Players, rec)
		}
	}
	return qp, nil
}

func qualifyFlex(records []types.PlayerRecord, cfg FilterConfig) (QualifiedPool, error) {
	if len(records) < 2 {
		return QualifiedPool{}, &EmptyPoolError{Pool: string(types.PositionFlex), Size: len(records)}
	}
	targets := statColumn(records, types.StatTargets)
	attempts := statColumn(records, types.StatRushAtt)

	qp := QualifiedPool{
		Criteria:   types.PositionFlex,
		Thresholds: map[string]float64{"vbd": cfg.FlexMinVBD},
	}
	tgtCutoff, hasTgtCutoff := columnQuantile(targets, cfg.FlexQuantile)
	attCutoff, hasAttCutoff := columnQuantile(attempts, cfg.FlexQuantile)
	if hasTgtCutoff {
		qp.Thresholds[types.StatTargets] = tgtCutoff
	}
	if hasAttCutoff {
		qp.Thresholds[types.StatRushAtt] = attCutoff
	}

	for _, rec := range records {
		vbd, ok := rec.Stat(types.StatVBD)
		if !ok || vbd <= cfg.FlexMinVBD {
			continue
		}
		tgt, hasTgt := rec.Stat(types.StatTargets)
		att, hasAtt := rec.Stat(types.StatRushAtt)
		if (hasTgtCutoff && hasTgt && tgt >= tgtCutoff) || (hasAttCutoff && hasAtt && att >= attCutoff) {
			qp.Players = append(qp.Players, rec)
		}
	}
	return qp, nil
}

// columnQuantile computes the quantile of a column that may be empty when no
// record in the union carries the stat
func columnQuantile(column []float64, q float64) (float64, bool) {
	if len(column) == 0 {
		return 0, false
	}
	return quantile(column, q), true
}

func qualifyDST(records []types.PlayerRecord, cfg FilterConfig) (QualifiedPool, error) {
	column := make([]float64, 0, len(records))
	for _, rec := range records {
		column = append(column, rec.AvgPointsPerGame)
	}
	if len(column) < 2 {
		return QualifiedPool{}, &EmptyPoolError{Pool: string(types.PositionDST), Size: len(column)}
	}
	cutoff := quantile(column, cfg.DSTPointsQuantile)

	qp := QualifiedPool{
		Criteria:   types.PositionDST,
		Thresholds: map[string]float64{"avg_points_per_game": cutoff},
	}
	for _, rec := range records {
		if rec.AvgPointsPerGame >= cutoff {
			qp.Players = append(qp.Players, rec)
		}
	}
	return qp, nil
}

// rateStat divides one stat by another, refusing zero denominators
func rateStat(rec types.PlayerRecord, numStat, denStat string) (float64, error) {
	num, ok := rec.Stat(numStat)
	if !ok {
		return 0, &DivisionUndefinedError{Stat: numStat + "/" + denStat}
	}
	den, ok := rec.Stat(denStat)
	if !ok || den == 0 {
		return 0, &DivisionUndefinedError{Stat: numStat + "/" + denStat}
	}
	return num / den, nil
}

// statColumn extracts the present values of one stat across the records.
// Records missing the stat contribute nothing to the distribution.
func statColumn(records []types.PlayerRecord, statName string) []float64 {
	column := make([]float64, 0, len(records))
	for _, rec := range records {
		if v, ok := rec.Stat(statName); ok {
			column = append(column, v)
		}
	}
	return column
}

// ColumnSummary describes one stat column's distribution for pool inspection
type ColumnSummary struct {
	Stat   string  `json:"stat"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P75    float64 `json:"p75"`
}

// SummarizeColumn computes distribution stats for one positional stat column
func SummarizeColumn(records []types.PlayerRecord, statName string) ColumnSummary {
	column := statColumn(records, statName)
	summary := ColumnSummary{Stat: statName, Count: len(column)}
	if len(column) == 0 {
		return summary
	}
	summary.Mean = stat.Mean(column, nil)
	if len(column) > 1 {
		summary.StdDev = stat.StdDev(column, nil)
		summary.P75 = quantile(column, 0.75)
	} else {
		summary.P75 = column[0]
	}
	return summary
}
