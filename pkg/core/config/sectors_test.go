package config

import "testing"

func TestNormalizeSectorCodeMerges(t *testing.T) {
	cases := map[string]string{
		"311811": "31-33",
		"325412": "31-33",
		"448140": "44-45",
		"484110": "48-49",
		"541511": "54",
		"999999": "99",
		"x":      "NA",
		"":       "NA",
	}
	for naics, want := range cases {
		if got := NormalizeSectorCode(naics); got != want {
			t.Errorf("NormalizeSectorCode(%q) = %q, want %q", naics, got, want)
		}
	}
}

func TestIsSixDigitNAICS(t *testing.T) {
	if !IsSixDigitNAICS("541511") {
		t.Errorf("expected 541511 to be a valid 6-digit NAICS code")
	}
	if IsSixDigitNAICS("5415") {
		t.Errorf("expected a 4-digit code to be rejected")
	}
	if IsSixDigitNAICS("54151a") {
		t.Errorf("expected a non-numeric code to be rejected")
	}
}

func TestSectorTitleForUnknownFallsBackToNA(t *testing.T) {
	if got := SectorTitleFor("00"); got != SectorTitle["NA"] {
		t.Errorf("expected unknown sector code to map to the NA title, got %q", got)
	}
	if got := SectorTitleFor("54"); got != "Professional, Scientific, and Technical Services" {
		t.Errorf("unexpected title for sector 54: %q", got)
	}
}

func TestMergeOverridesOperatorWinsOnConflict(t *testing.T) {
	base := map[string][]string{"Buyers and Purchasing Agents": {"13-1021", "13-1022", "13-1023"}}
	extra := []Override{
		{Occupation: "Buyers and Purchasing Agents", SOCCodes: []string{"13-1021"}},
		{Occupation: "Cashiers", SOCCodes: []string{"41-2011"}},
		{Occupation: "", SOCCodes: []string{"99-9999"}},
		{Occupation: "Empty Codes", SOCCodes: nil},
	}
	merged := MergeOverrides(base, extra)
	if len(merged["Buyers and Purchasing Agents"]) != 1 {
		t.Errorf("expected operator override to replace the base entry, got %v", merged["Buyers and Purchasing Agents"])
	}
	if merged["Cashiers"] == nil {
		t.Errorf("expected new operator occupation to be added")
	}
	if _, ok := merged["Empty Codes"]; ok {
		t.Errorf("expected an override with no SOC codes to be skipped")
	}
}
