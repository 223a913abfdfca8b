package scraper

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/stitts-dev/dk-lineup/internal/ingest"
	"github.com/stitts-dev/dk-lineup/internal/types"
)

// Defense table duplicates both the passing and rushing stat labels
const (
	defensePassBlockStart = 9
	defenseRushBlockStart = 16
)

var (
	defensePassBlock = []string{"Pass_Cmp", "Pass_Att", "Pass_Yds", "Pass_TD"}
	defenseRushBlock = []string{"Rush_Att", "Rush_Yds", "Rush_TD"}
)

// ParseDefenseTable parses the team defense table. Rows become DST records
// keyed by team name; the stat map is informational (lineup qualification for
// DST runs on the contest export's AvgPointsPerGame).
func ParseDefenseTable(r io.Reader) ([]types.PlayerRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse defense HTML: %w", err)
	}

	headers, err := tableHeaders(doc, defensePassBlockStart, defensePassBlock)
	if err != nil {
		return nil, err
	}
	for i, name := range defenseRushBlock {
		if defenseRushBlockStart+i < len(headers) {
			headers[defenseRushBlockStart+i] = name
		}
	}

	var records []types.PlayerRecord
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 || cells.Length() > len(headers) {
			return
		}

		rec := types.PlayerRecord{Position: types.PositionDST, Stats: make(map[string]float64)}
		cells.Each(func(j int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			if headers[j] == "Player" {
				rec.Name = ingest.NormalizeName(text)
				rec.Team = rec.Name
				return
			}
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				rec.Stats[headers[j]] = v
			}
		})
		if rec.Name != "" {
			records = append(records, rec)
		}
	})

	if len(records) == 0 {
		return nil, fmt.Errorf("defense table contained no team rows")
	}
	return records, nil
}
