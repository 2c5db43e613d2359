// internal/daily/report.go
//
// YAML report of a batch of runs.

package daily

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report is the YAML document written after a batch of simulated days.
type Report struct {
	Strategy   string  `yaml:"strategy"`
	Dictionary int     `yaml:"dictionary_words"`
	Generated  string  `yaml:"generated"`
	Summary    Summary `yaml:"summary"`
	Runs       []Run   `yaml:"runs"`
}

// WriteReport marshals r to path.
func WriteReport(path string, r Report) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("daily: marshal report: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("daily: write report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (Report, error) {
	var r Report
	b, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("daily: read report %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &r); err != nil {
		return r, fmt.Errorf("daily: parse report %s: %w", path, err)
	}
	return r, nil
}
