package config

import "regexp"

// SectorTitle is the closed enum of 2-digit NAICS sector codes to titles,
// including the three canonical merges and the government/unknown rows.
var SectorTitle = map[string]string{
	"11":    "Agriculture, Forestry, Fishing and Hunting",
	"21":    "Mining, Quarrying, and Oil and Gas Extraction",
	"22":    "Utilities",
	"23":    "Construction",
	"31-33": "Manufacturing",
	"42":    "Wholesale Trade",
	"44-45": "Retail Trade",
	"48-49": "Transportation and Warehousing",
	"51":    "Information",
	"52":    "Finance and Insurance",
	"53":    "Real Estate and Rental and Leasing",
	"54":    "Professional, Scientific, and Technical Services",
	"55":    "Management of Companies and Enterprises",
	"56":    "Administrative and Support and Waste Management and Remediation Services",
	"61":    "Educational Services",
	"62":    "Health Care and Social Assistance",
	"71":    "Arts, Entertainment, and Recreation",
	"72":    "Accommodation and Food Services",
	"81":    "Other Services (except Public Administration)",
	"92":    "Public Administration",
	"99":    "Government and Special Designation Sectors",
	"NA":    "Unknown",
}

var sixDigitNAICS = regexp.MustCompile(`^\d{6}$`)

// IsSixDigitNAICS reports whether s is a well-formed 6-digit NAICS code.
func IsSixDigitNAICS(s string) bool {
	return sixDigitNAICS.MatchString(s)
}

// NormalizeSectorCode derives a 2-digit (or merged) sector code from a NAICS
// code of any width. Invalid input maps to "NA".
func NormalizeSectorCode(naics string) string {
	if len(naics) < 2 {
		return "NA"
	}
	prefix := naics[:2]
	switch prefix {
	case "31", "32", "33":
		return "31-33"
	case "44", "45":
		return "44-45"
	case "48", "49":
		return "48-49"
	}
	if _, ok := SectorTitle[prefix]; ok {
		return prefix
	}
	for _, d := range prefix {
		if d < '0' || d > '9' {
			return "NA"
		}
	}
	return prefix
}

// SectorTitleFor returns the title for a normalized sector code, "Unknown"
// for anything not in the closed enum.
func SectorTitleFor(sector string) string {
	if t, ok := SectorTitle[sector]; ok {
		return t
	}
	return SectorTitle["NA"]
}
