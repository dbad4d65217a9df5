package benchmark

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"airiskmodel/pkg/core/pipeline"
	"airiskmodel/pkg/models"
)

// anchorVersion names the expected shape of the compiled leaderboard asset.
// Bump this (and the patterns below) together when the upstream asset format
// changes; a stale version whose anchors no longer match raises
// SchemaMismatch instead of silently returning empty tables, per §9.
const anchorVersion = "v1"

// totalsAnchor locates the totals array in the compiled bundle. The asset is
// a minified JS object literal, not JSON: keys are bare identifiers and the
// totals array is reached through a webpack-style alias assignment
// (`GI=[...],$I={totals:GI}`) rather than a direct `"totals":` key.
var totalsAnchor = regexp.MustCompile(`(?s)GI=\[(.*?)\],\$I=\{totals:GI\}`)

// totalsRowPattern / bySectorPattern / byOccupationPattern match individual
// record tuples with bare (unquoted) object keys, per §4.7's "regex over the
// full blob producing tuples" contract. Values stay double-quoted for
// strings and bare for numeric literals, matching the bundle's own style.
var (
	totalsRowPattern = regexp.MustCompile(`\{model:"([^"]+)",win_rate:([^,}]+),win_or_tie_rate:([^,}]+)\}`)

	bySectorPattern = regexp.MustCompile(`\{model:"([^"]+)",sector:"([^"]+)",win_rate:([^,}]+),win_or_tie_rate:([^,}]+)\}`)

	byOccupationPattern = regexp.MustCompile(`\{model:"([^"]+)",sector:"([^"]+)",occupation:"([^"]+)",win_rate:([^,}]+),win_or_tie_rate:([^,}]+)\}`)
)

// Parsed is the output contract named in §9: parse(bytes) -> {totals,
// by_sector, by_occupation}.
type Parsed struct {
	Totals       []models.ModelBenchmark
	BySector     []models.SectorWinRate
	ByOccupation []models.OccupationWinRate
}

// Parse extracts the three record shapes from a compiled leaderboard asset.
// Rows with model == "human" are retained at this layer (FilterHuman removes
// them as a separate step) so the parser stays a pure extraction step.
func Parse(blob []byte) (Parsed, error) {
	text := string(blob)

	totals, err := parseTotals(text)
	if err != nil {
		return Parsed{}, fmt.Errorf("benchmark parser %s: %w", anchorVersion, err)
	}

	bySector := parseBySector(text)
	byOccupation := parseByOccupation(text)

	if len(totals) == 0 {
		return Parsed{}, pipeline.SchemaMismatch("benchmark_asset", "totals anchor "+anchorVersion+" found no records")
	}

	return Parsed{Totals: totals, BySector: bySector, ByOccupation: byOccupation}, nil
}

func parseTotals(text string) ([]models.ModelBenchmark, error) {
	m := totalsAnchor.FindStringSubmatch(text)
	if m == nil {
		return nil, pipeline.SchemaMismatch("benchmark_asset", "totals anchor "+anchorVersion+" not found")
	}
	arrayText := m[1]

	rows := totalsRowPattern.FindAllStringSubmatch(arrayText, -1)
	out := make([]models.ModelBenchmark, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		model := r[1]
		if model == "" || seen[model] {
			continue
		}
		seen[model] = true
		winRate, _ := strconv.ParseFloat(NormalizeFloat(r[2]), 64)
		winOrTie, _ := strconv.ParseFloat(NormalizeFloat(r[3]), 64)
		out = append(out, models.ModelBenchmark{
			ModelID:        model,
			GlobalWinRate:  winRate,
			GlobalWinOrTie: winOrTie,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModelID < out[j].ModelID })
	return out, nil
}

func parseBySector(text string) []models.SectorWinRate {
	matches := bySectorPattern.FindAllStringSubmatch(text, -1)
	type key struct{ model, sector string }
	seen := make(map[key]bool, len(matches))
	var out []models.SectorWinRate
	for _, m := range matches {
		k := key{m[1], m[2]}
		if seen[k] {
			continue
		}
		seen[k] = true
		winRate, _ := strconv.ParseFloat(NormalizeFloat(m[3]), 64)
		winOrTie, _ := strconv.ParseFloat(NormalizeFloat(m[4]), 64)
		out = append(out, models.SectorWinRate{ModelID: m[1], Sector: m[2], WinRate: winRate, WinOrTie: winOrTie})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ModelID != out[j].ModelID {
			return out[i].ModelID < out[j].ModelID
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}

func parseByOccupation(text string) []models.OccupationWinRate {
	matches := byOccupationPattern.FindAllStringSubmatch(text, -1)
	type key struct{ model, sector, occupation string }
	seen := make(map[key]bool, len(matches))
	var out []models.OccupationWinRate
	for _, m := range matches {
		k := key{m[1], m[2], m[3]}
		if seen[k] {
			continue
		}
		seen[k] = true
		winRate, _ := strconv.ParseFloat(NormalizeFloat(m[4]), 64)
		winOrTie, _ := strconv.ParseFloat(NormalizeFloat(m[5]), 64)
		out = append(out, models.OccupationWinRate{ModelID: m[1], Sector: m[2], Occupation: m[3], WinRate: winRate, WinOrTie: winOrTie})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ModelID != out[j].ModelID {
			return out[i].ModelID < out[j].ModelID
		}
		if out[i].Sector != out[j].Sector {
			return out[i].Sector < out[j].Sector
		}
		return out[i].Occupation < out[j].Occupation
	})
	return out
}

// FilterHuman drops the "human" row from totals, by-sector, and
// by-occupation tables — per §4.7/data model "human excluded from downstream".
func FilterHuman(p Parsed) Parsed {
	out := Parsed{}
	for _, t := range p.Totals {
		if !strings.EqualFold(t.ModelID, "human") {
			out.Totals = append(out.Totals, t)
		}
	}
	for _, s := range p.BySector {
		if !strings.EqualFold(s.ModelID, "human") {
			out.BySector = append(out.BySector, s)
		}
	}
	for _, o := range p.ByOccupation {
		if !strings.EqualFold(o.ModelID, "human") {
			out.ByOccupation = append(out.ByOccupation, o)
		}
	}
	return out
}
