package config

// ManualOccSplit maps a benchmark occupation title directly to a curated set
// of SOC codes, bypassing name matching entirely. Checked before exact/fuzzy
// matching in the Capability Transfer Engine's name mapper.
var ManualOccSplit = map[string][]string{
	"Buyers and Purchasing Agents": {"13-1021", "13-1022", "13-1023"},
}

// Override is the yaml/hjson-loadable representation of ManualOccSplit, for
// operators who want to hand-edit the mapping without a Go recompile. Loaded
// into Options.Overrides by LoadYAML/LoadHjson and merged onto ManualOccSplit
// with MergeOverrides.
type Override struct {
	Occupation string   `yaml:"occupation"`
	SOCCodes   []string `yaml:"soc_codes"`
}

// MergeOverrides layers operator-supplied overrides on top of the built-in
// ManualOccSplit table, operator entries winning on conflict.
func MergeOverrides(base map[string][]string, extra []Override) map[string][]string {
	merged := make(map[string][]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for _, o := range extra {
		if o.Occupation == "" || len(o.SOCCodes) == 0 {
			continue
		}
		merged[o.Occupation] = o.SOCCodes
	}
	return merged
}
