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

// Offense table layout: the second header row carries the real column labels,
// and the passing Cmp/Att/Yds/TD group duplicates the rushing labels, so the
// passing block is renamed before lookup. Index 6 is the first passing column
// once the rank header is dropped.
const offensePassBlockStart = 6

var offensePassBlock = []string{types.StatPassCmp, types.StatPassAtt, types.StatPassYds, "Pass_TD"}

// ParseOffenseTable parses the season fantasy offense table into stat records.
// Blank numeric cells become absent stats, not zeroes: a missing value must
// keep failing thresholds without masquerading as a real zero.
func ParseOffenseTable(r io.Reader) ([]types.PlayerRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse offense HTML: %w", err)
	}

	headers, err := tableHeaders(doc, offensePassBlockStart, offensePassBlock)
	if err != nil {
		return nil, err
	}

	var records []types.PlayerRecord
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 || cells.Length() > len(headers) {
			return // header, spacer or repeated-header row
		}

		rec := types.PlayerRecord{Stats: make(map[string]float64)}
		cells.Each(func(j int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			switch headers[j] {
			case "Player":
				rec.Name = ingest.NormalizeName(text)
			case "Tm":
				rec.Team = text
			case "FantPos":
				rec.Position = types.FantasyPosition(text)
			default:
				if v, err := strconv.ParseFloat(text, 64); err == nil {
					rec.Stats[headers[j]] = v
				}
			}
		})
		if rec.Name != "" && rec.Team != "" {
			records = append(records, rec)
		}
	})

	if len(records) == 0 {
		return nil, fmt.Errorf("offense table contained no player rows")
	}
	return records, nil
}

// tableHeaders reads the second header row, drops the rank column and renames
// the duplicated stat block starting at blockStart
func tableHeaders(doc *goquery.Document, blockStart int, block []string) ([]string, error) {
	headerRows := doc.Find("tr")
	if headerRows.Length() < 2 {
		return nil, fmt.Errorf("stat table has no header rows")
	}

	var headers []string
	headerRows.Eq(1).Find("th").Each(func(i int, th *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(th.Text()))
	})
	if len(headers) < 2 {
		return nil, fmt.Errorf("stat table header row is empty")
	}
	headers = headers[1:] // drop the rank column; data rows carry it as th, not td

	for i, name := range block {
		if blockStart+i < len(headers) {
			headers[blockStart+i] = name
		}
	}
	// First data column is the player name regardless of site label
	headers[0] = "Player"
	return headers, nil
}
