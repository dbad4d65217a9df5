package benchmark

import (
	"errors"
	"testing"

	"airiskmodel/pkg/core/pipeline"
)

func TestNormalizeFloat(t *testing.T) {
	cases := map[string]string{
		".45":  "0.45",
		"-.0":  "0",
		"0.9":  "0.9",
		"-.25": "-0.25",
	}
	for in, want := range cases {
		if got := NormalizeFloat(in); got != want {
			t.Errorf("NormalizeFloat(%q) = %q, want %q", in, got, want)
		}
	}
}

func sampleAsset() []byte {
	return []byte(`GI=[{model:"gpt-5-high",win_rate:.62,win_or_tie_rate:0.71},{model:"human",win_rate:.40,win_or_tie_rate:0.5},{model:"claude",win_rate:-.0,win_or_tie_rate:.1}],$I={totals:GI};
	var bySector=[{model:"gpt-5-high",sector:"54",win_rate:.55,win_or_tie_rate:.6},{model:"gpt-5-high",sector:"54",occupation:"Software Developers",win_rate:.58,win_or_tie_rate:.63}];`)
}

func TestParseTotals(t *testing.T) {
	parsed, err := Parse(sampleAsset())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(parsed.Totals) != 3 {
		t.Fatalf("expected 3 totals rows (incl. human), got %d", len(parsed.Totals))
	}
	var foundClaude bool
	for _, row := range parsed.Totals {
		if row.ModelID == "claude" {
			foundClaude = true
			if row.GlobalWinRate != 0 {
				t.Errorf("expected -.0 to normalize to 0, got %v", row.GlobalWinRate)
			}
		}
	}
	if !foundClaude {
		t.Fatalf("expected claude row in totals")
	}
}

func TestParseBySectorAndOccupation(t *testing.T) {
	parsed, err := Parse(sampleAsset())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(parsed.BySector) != 1 {
		t.Fatalf("expected 1 by-sector row, got %d", len(parsed.BySector))
	}
	if len(parsed.ByOccupation) != 1 {
		t.Fatalf("expected 1 by-occupation row, got %d", len(parsed.ByOccupation))
	}
	if parsed.ByOccupation[0].Occupation != "Software Developers" {
		t.Errorf("unexpected occupation: %q", parsed.ByOccupation[0].Occupation)
	}
}

func TestFilterHumanDropsHumanRow(t *testing.T) {
	parsed, err := Parse(sampleAsset())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	filtered := FilterHuman(parsed)
	for _, row := range filtered.Totals {
		if row.ModelID == "human" {
			t.Fatalf("expected human row to be filtered out")
		}
	}
	if len(filtered.Totals) != len(parsed.Totals)-1 {
		t.Errorf("expected exactly one row removed, got %d -> %d", len(parsed.Totals), len(filtered.Totals))
	}
}

func TestParseMissingAnchorIsSchemaMismatch(t *testing.T) {
	_, err := Parse([]byte(`{"unrelated": true}`))
	if err == nil {
		t.Fatalf("expected SchemaMismatch error for missing totals anchor")
	}
	var pe *pipeline.Error
	if !errors.As(err, &pe) || pe.Kind != pipeline.KindSchemaMismatch {
		t.Errorf("expected a %s error, got %v", pipeline.KindSchemaMismatch, err)
	}
}
