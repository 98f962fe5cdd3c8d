package report

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"docfield-mapper/internal/diagnostic"
	"docfield-mapper/internal/resolve"
)

// CurrentVersion is the report format version written by New.
const CurrentVersion = "1"

// Report is the persisted result of resolving one document.
type Report struct {
	Version     string                 `yaml:"version"`
	RunID       string                 `yaml:"run_id"`
	Document    string                 `yaml:"document"`
	Schema      string                 `yaml:"schema,omitempty"`
	GeneratedAt time.Time              `yaml:"generated_at"`
	Assignments []Assignment           `yaml:"assignments"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty"`
}

// Assignment is the serialized form of resolve.Assignment.
type Assignment struct {
	Field    string  `yaml:"field"`
	Value    string  `yaml:"value"`
	Strategy string  `yaml:"strategy"`
	Score    float64 `yaml:"score"`
	Label    string  `yaml:"label,omitempty"`
	Line     int     `yaml:"line,omitempty"`
}

// New builds a Report with a fresh run ID.
func New(document, schema string, assignments []resolve.Assignment, diags diagnostic.Diagnostics) *Report {
	r := &Report{
		Version:     CurrentVersion,
		RunID:       uuid.NewString(),
		Document:    document,
		Schema:      schema,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Assignments: make([]Assignment, len(assignments)),
		Diagnostics: diags,
	}

	for i, a := range assignments {
		r.Assignments[i] = Assignment{
			Field:    a.Field,
			Value:    a.Value,
			Strategy: a.Strategy.String(),
			Score:    a.Score,
			Label:    a.Label,
			Line:     a.Line,
		}
	}

	return r
}

// Values returns the field to value map of the report. Later duplicates
// of a field overwrite earlier ones.
func (r *Report) Values() map[string]string {
	values := make(map[string]string, len(r.Assignments))
	for _, a := range r.Assignments {
		values[a.Field] = a.Value
	}

	return values
}

// Marshal serializes a Report to YAML.
func Marshal(r *Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// Parse parses YAML data into a Report.
func Parse(data []byte) (*Report, error) {
	var r Report

	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report YAML: %w", err)
	}

	if r.Version == "" {
		r.Version = CurrentVersion
	}

	// Severity is implied by the list a diagnostic is stored in.
	for i := range r.Diagnostics.Errors {
		r.Diagnostics.Errors[i].Severity = diagnostic.SeverityError
	}

	for i := range r.Diagnostics.Warnings {
		r.Diagnostics.Warnings[i].Severity = diagnostic.SeverityWarning
	}

	return &r, nil
}

// LoadFile loads a YAML report from path.
func LoadFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file %s: %w", path, err)
	}

	return Parse(data)
}

// WriteFile writes a Report to path as YAML.
func WriteFile(r *Report, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}

	return nil
}
