// Package employment implements the Employment Loader (§4.5). The raw
// spreadsheet parsing named in §6 (oesmYYin4/**/nat4d_MYYYY_dl.xlsx,
// oesmYYnat/**/national_MYYYY_dl.xlsx) is external glue out of this
// package's scope per §1; this package consumes already-tabular rows (one
// map per spreadsheet row, column-name keyed) that the glue layer produces,
// and owns everything from there: filtering, NAICS normalization, and the
// EmploymentRow model.
package employment

import (
	"regexp"
	"strconv"
	"strings"

	"airiskmodel/pkg/core/config"
	"airiskmodel/pkg/models"
)

var naics6Pattern = regexp.MustCompile(`^\d{6}$`)

// LoadIndustryOccupation filters and normalizes one year's industry x
// occupation sheet: o_group=="detailed", area=="99" if the column is
// present, naics matching \d{6}, tot_emp parsed and > 0.
func LoadIndustryOccupation(year int, rows []map[string]string) []models.EmploymentRow {
	var out []models.EmploymentRow
	for _, row := range rows {
		if !strings.EqualFold(strings.TrimSpace(row["o_group"]), "detailed") {
			continue
		}
		if area, ok := row["area"]; ok && strings.TrimSpace(area) != "" && strings.TrimSpace(area) != "99" {
			continue
		}
		naics := strings.TrimSpace(row["naics"])
		if !naics6Pattern.MatchString(naics) {
			continue // ParseWarning: non-digit/wrong-width NAICS dropped silently
		}
		emp, err := strconv.ParseFloat(strings.ReplaceAll(row["tot_emp"], ",", ""), 64)
		if err != nil || emp <= 0 {
			continue // ParseWarning: non-positive/unparseable employment dropped silently
		}
		out = append(out, models.EmploymentRow{
			Year:       year,
			NAICS6:     naics,
			SectorCode: config.NormalizeSectorCode(naics),
			SOCCode:    strings.TrimSpace(row["occ_code"]),
			OccTitle:   row["occ_title"],
			TotalEmp:   emp,
			IsNational: false,
		})
	}
	return out
}

// LoadNationalOccupation filters and normalizes one year's national
// occupation sheet: o_group=="detailed", tot_emp parsed and > 0.
func LoadNationalOccupation(year int, rows []map[string]string) []models.EmploymentRow {
	var out []models.EmploymentRow
	for _, row := range rows {
		if !strings.EqualFold(strings.TrimSpace(row["o_group"]), "detailed") {
			continue
		}
		emp, err := strconv.ParseFloat(strings.ReplaceAll(row["tot_emp"], ",", ""), 64)
		if err != nil || emp <= 0 {
			continue
		}
		out = append(out, models.EmploymentRow{
			Year:       year,
			SOCCode:    strings.TrimSpace(row["occ_code"]),
			OccTitle:   row["occ_title"],
			TotalEmp:   emp,
			IsNational: true,
		})
	}
	return out
}
