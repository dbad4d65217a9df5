package transfer

import (
	"testing"

	"airiskmodel/pkg/core/config"
	"airiskmodel/pkg/models"
)

func sampleOccupations() []models.Occupation {
	return []models.Occupation{
		{SOCCode: "13-1021", Title: "Buyers and Purchasing Agents, Farm Products"},
		{SOCCode: "13-1022", Title: "Wholesale and Retail Buyers, Except Farm Products"},
		{SOCCode: "13-1023", Title: "Purchasing Agents, Except Wholesale, Retail, and Farm Products"},
		{SOCCode: "15-1252", Title: "Software Developers"},
		{SOCCode: "43-9061", Title: "Office Clerks, General"},
	}
}

func TestMapNamesManualOverride(t *testing.T) {
	mappings := MapNames([]string{"Buyers and Purchasing Agents"}, sampleOccupations(), config.ManualOccSplit, 0.82)
	if len(mappings) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(mappings))
	}
	m := mappings[0]
	if m.Method != models.MatchManualSplit {
		t.Fatalf("expected manual_split method, got %s", m.Method)
	}
	want := map[string]bool{"13-1021": true, "13-1022": true, "13-1023": true}
	if len(m.SOCCodes) != 3 {
		t.Fatalf("expected exactly 3 SOC codes, got %v", m.SOCCodes)
	}
	for _, soc := range m.SOCCodes {
		if !want[soc] {
			t.Errorf("unexpected SOC code %s in manual split result", soc)
		}
	}
}

func TestMapNamesExact(t *testing.T) {
	mappings := MapNames([]string{"Software Developers"}, sampleOccupations(), nil, 0.82)
	if mappings[0].Method != models.MatchExact || mappings[0].SOCCodes[0] != "15-1252" {
		t.Fatalf("expected exact match to 15-1252, got %+v", mappings[0])
	}
}

func TestMapNamesFuzzy(t *testing.T) {
	mappings := MapNames([]string{"Software Developer"}, sampleOccupations(), nil, 0.82)
	if mappings[0].Method != models.MatchFuzzy {
		t.Fatalf("expected fuzzy match, got %+v", mappings[0])
	}
	if mappings[0].SOCCodes[0] != "15-1252" {
		t.Errorf("expected fuzzy match to resolve to 15-1252, got %v", mappings[0].SOCCodes)
	}
}

func TestMapNamesUnmatched(t *testing.T) {
	mappings := MapNames([]string{"Completely Unrelated Occupation Title"}, sampleOccupations(), nil, 0.82)
	if mappings[0].Method != models.MatchUnmatched {
		t.Fatalf("expected unmatched, got %+v", mappings[0])
	}
	if len(mappings[0].SOCCodes) != 0 {
		t.Errorf("expected no SOC codes for unmatched, got %v", mappings[0].SOCCodes)
	}
}
