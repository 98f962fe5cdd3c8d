package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Job describes one resolution run.
type Job struct {
	Version  string `yaml:"version"`
	Document string `yaml:"document"`
	// Schema is the CSV, XLSX or SQLite file holding the expected fields.
	Schema string `yaml:"schema,omitempty"`
	// Table selects the SQLite table.
	Table string `yaml:"table,omitempty"`
	// Fields are used instead of, or when Schema is empty, as the expected fields.
	Fields []string `yaml:"fields,omitempty"`
	// Output is the report path. Its extension picks the format (.yaml, .yml, .csv or .xlsx).
	Output string `yaml:"output,omitempty"`
}

// LoadJob loads a job file. Relative paths in the job are resolved
// against the job file's directory.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	job, err := ParseJob(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	job.Document = resolvePath(base, job.Document)
	job.Schema = resolvePath(base, job.Schema)
	job.Output = resolvePath(base, job.Output)

	return job, nil
}

// ParseJob parses and validates YAML job data.
func ParseJob(data []byte) (*Job, error) {
	var job Job

	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	applyDefaults(&job)

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(job *Job) {
	if job.Version == "" {
		job.Version = CurrentVersion
	}

	if job.Output == "" && job.Document != "" {
		job.Output = strings.TrimSuffix(job.Document, filepath.Ext(job.Document)) + ".report.yaml"
	}
}

// Validate checks that the job names a document and some expected fields.
func (j *Job) Validate() error {
	var errs []error

	if j.Document == "" {
		errs = append(errs, errors.New("job: document is required"))
	}

	if j.Schema == "" && len(j.Fields) == 0 {
		errs = append(errs, errors.New("job: schema or fields is required"))
	}

	switch strings.ToLower(filepath.Ext(j.Output)) {
	case "", ".yaml", ".yml", ".csv", ".xlsx":
	default:
		errs = append(errs, fmt.Errorf("job: unsupported output type %q", filepath.Ext(j.Output)))
	}

	return errors.Join(errs...)
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
