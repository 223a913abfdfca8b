package ingest

import (
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/types"
	"github.com/stitts-dev/dk-lineup/pkg/logger"
)

// MergePool joins scraped stat records with DraftKings salary rows on the
// normalized player name. Players without a salary row (or with a blank salary)
// are not in this week's contest and are dropped. Defense rows come from the
// salary export alone; the stats site scores them as teams, not entries.
func MergePool(stats []types.PlayerRecord, salaries []SalaryRow) types.PlayerPool {
	log := logger.WithService("ingest")

	salaryByName := make(map[string]SalaryRow, len(salaries))
	var defenses []types.PlayerRecord
	for _, row := range salaries {
		if row.IsDefense() {
			if row.Salary == nil {
				continue
			}
			defenses = append(defenses, types.PlayerRecord{
				Name:             NormalizeName(row.Name),
				Team:             row.Team,
				Position:         types.PositionDST,
				Salary:           row.Salary,
				AvgPointsPerGame: row.AvgPointsPerGame,
			})
			continue
		}
		salaryByName[NormalizeName(row.Name)] = row
	}

	var players []types.PlayerRecord
	unmatched := 0
	for _, rec := range stats {
		key := NormalizeName(rec.Name)
		row, ok := salaryByName[key]
		if !ok || row.Salary == nil {
			unmatched++
			continue
		}
		merged := rec
		merged.Name = key
		merged.Salary = row.Salary
		merged.AvgPointsPerGame = row.AvgPointsPerGame
		if merged.Team == "" {
			merged.Team = row.Team
		}
		players = append(players, merged)
	}

	log.WithFields(logrus.Fields{
		"stat_rows":   len(stats),
		"salary_rows": len(salaries),
		"merged":      len(players),
		"defenses":    len(defenses),
		"unmatched":   unmatched,
	}).Info("Player pool merged")

	return types.PlayerPool{Players: players, Defenses: defenses}
}
