package ingest

import "strings"

// nameReplacer strips the suffix and punctuation variants that differ between
// the stats site and the DraftKings export, so the merge key matches.
// " V " keeps its trailing space: a bare "V" strip would eat initials.
var nameReplacer = strings.NewReplacer(
	" II", "",
	" V ", " ",
	" Jr.", "",
	"'", "",
	".", "",
	"*", "",
)

// NormalizeName produces the merge key shared by both data sources
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(nameReplacer.Replace(name)), " ")
}
