package compare

import (
	"encoding/json"
	"io"
)

// JSONOutput is the top-level JSON report structure.
type JSONOutput struct {
	Kind      string      `json:"kind"`
	Left      string      `json:"left"`
	Right     string      `json:"right"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Results   []Result    `json:"results"`
}

// JSONSummary aggregates counts across all compared entities.
type JSONSummary struct {
	TotalAdded    int `json:"total_added"`
	TotalDeleted  int `json:"total_deleted"`
	TotalModified int `json:"total_modified"`
}

// JSONFormatter renders a comparison report as indented JSON. Drill-down
// records encode as ordered objects via Record.MarshalJSON.
type JSONFormatter struct {
	w io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

// Format outputs the report as JSON.
func (f *JSONFormatter) Format(report *Report) error {
	output := JSONOutput{
		Kind:      string(report.Kind),
		Left:      report.Left,
		Right:     report.Right,
		Timestamp: report.Timestamp,
		Results:   report.Results,
	}

	for _, result := range report.Results {
		output.Summary.TotalAdded += result.Added.Count
		output.Summary.TotalDeleted += result.Deleted.Count
		output.Summary.TotalModified += result.Modified.Count
	}

	encoder := json.NewEncoder(f.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
