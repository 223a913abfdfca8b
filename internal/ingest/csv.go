package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

// SalaryRow represents one row of the DraftKings contest export
type SalaryRow struct {
	Name             string
	Position         string
	Team             string
	Salary           *float64
	AvgPointsPerGame float64
}

// ParseSalaryCSV reads a DraftKings contest export. Columns are located by
// header name, not index, because DraftKings reorders them between seasons.
// Blank or unparseable salaries become nil rather than zero: those players are
// not in the contest.
func ParseSalaryCSV(r io.Reader) ([]SalaryRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read salary CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Name", "Position", "Salary"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("salary CSV missing required column %q", required)
		}
	}

	var rows []SalaryRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read salary CSV row: %w", err)
		}

		row := SalaryRow{
			Name:     strings.TrimSpace(record[cols["Name"]]),
			Position: strings.TrimSpace(record[cols["Position"]]),
		}
		if row.Name == "" {
			continue
		}
		if i, ok := cols["TeamAbbrev"]; ok && i < len(record) {
			row.Team = strings.TrimSpace(record[i])
		}
		if salary, err := strconv.ParseFloat(strings.TrimSpace(record[cols["Salary"]]), 64); err == nil {
			row.Salary = &salary
		}
		if i, ok := cols["AvgPointsPerGame"]; ok && i < len(record) {
			if avg, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64); err == nil {
				row.AvgPointsPerGame = avg
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadSalaryFile parses a DraftKings contest export from disk
func LoadSalaryFile(path string) ([]SalaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open salary CSV %s: %w", path, err)
	}
	defer f.Close()
	return ParseSalaryCSV(f)
}

// IsDefense reports whether the salary row is a team defense entry
func (r SalaryRow) IsDefense() bool {
	return r.Position == string(types.PositionDST)
}
