package config

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
	yaml "gopkg.in/yaml.v2"
)

// Options are the per-run options a caller may set, per spec §6 "Recognized
// options". Zero value is NOT a usable default; call Defaults() first.
type Options struct {
	ForceRefresh    bool   `yaml:"force_refresh"`
	DetailLimit     int    `yaml:"detail_limit"`
	AlignTopK       int    `yaml:"align_topk"`
	KNeighbors      int    `yaml:"k_neighbors"`
	NameMatchCutoff float64 `yaml:"name_match_cutoff"`
	YearStart       int    `yaml:"year_start"`
	YearEnd         int    `yaml:"year_end"`

	CacheDir string `yaml:"cache_dir"`

	Overrides []Override `yaml:"overrides"`
}

// Defaults returns the options baked into spec §6/§8.
func Defaults() Options {
	return Options{
		ForceRefresh:    false,
		DetailLimit:     0, // 0 means unlimited
		AlignTopK:       5,
		KNeighbors:      5,
		NameMatchCutoff: 0.82,
		YearStart:       2019,
		YearEnd:         2024,
		CacheDir:        "cache",
	}
}

// LoadYAML reads a YAML options file on top of Defaults(). Missing file is
// not an error; the caller runs with defaults.
func LoadYAML(path string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading options file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options yaml %s: %w", path, err)
	}
	return opts, nil
}

// LoadHjson reads an operator-maintained Hjson variant of the same schema —
// used for hand-edited manual override lists where YAML's strict quoting is
// friction for a human maintaining a small occupation-to-SOC table.
func LoadHjson(path string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading hjson options file %s: %w", path, err)
	}
	var generic map[string]interface{}
	if err := hjson.Unmarshal(data, &generic); err != nil {
		return opts, fmt.Errorf("parsing hjson options %s: %w", path, err)
	}
	normalized, err := yaml.Marshal(generic)
	if err != nil {
		return opts, fmt.Errorf("normalizing hjson options %s: %w", path, err)
	}
	if err := yaml.Unmarshal(normalized, &opts); err != nil {
		return opts, fmt.Errorf("applying hjson options %s: %w", path, err)
	}
	return opts, nil
}
