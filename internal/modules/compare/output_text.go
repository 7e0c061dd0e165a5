package compare

import (
	"fmt"
	"io"
)

// TextFormatter renders a comparison report as text.
type TextFormatter struct {
	w       io.Writer
	verbose bool
	full    bool
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(w io.Writer, verbose, full bool) *TextFormatter {
	return &TextFormatter{
		w:       w,
		verbose: verbose,
		full:    full,
	}
}

// Format outputs the report as text.
func (f *TextFormatter) Format(report *Report) error {
	fmt.Fprintf(f.w, "Comparing %s -> %s (%s)\n\n", report.Left, report.Right, report.Kind)

	var total CategoryCounts
	for _, result := range report.Results {
		f.formatResult(result)
		total.Added += result.Added.Count
		total.Deleted += result.Deleted.Count
		total.Modified += result.Modified.Count
	}

	fmt.Fprintf(f.w, "\nTotal: %d added, %d deleted, %d modified\n",
		total.Added, total.Deleted, total.Modified)

	return nil
}

func (f *TextFormatter) formatResult(result Result) {
	line := fmt.Sprintf("%-20s %d added, %d deleted, %d modified",
		result.Entity+":", result.Added.Count, result.Deleted.Count, result.Modified.Count)
	if result.TotalLeft != nil && result.TotalRight != nil {
		line += fmt.Sprintf(" (%d -> %d records)", result.TotalLeft.Count, result.TotalRight.Count)
	}
	fmt.Fprintln(f.w, line)

	if f.verbose || f.full {
		f.formatCategory("Added", result.Added)
		f.formatCategory("Deleted", result.Deleted)
		f.formatCategory("Modified", result.Modified)
	}
}

func (f *TextFormatter) formatCategory(name string, cat CategoryRecords) {
	if len(cat.Records) == 0 {
		return
	}

	if !f.full {
		fmt.Fprintf(f.w, "  %-9s %s\n", name+":", joinFirstValues(cat.Records))
		return
	}

	for _, record := range cat.Records {
		fmt.Fprintf(f.w, "  [%s]\n", name)
		for _, field := range record {
			fmt.Fprintf(f.w, "    %s: %s\n", field.Name, field.Value)
		}
	}
}

// joinFirstValues summarizes records by their first column, which is the
// record's display identifier in every drill-down table.
func joinFirstValues(records []Record) string {
	out := ""
	for i, record := range records {
		if i > 0 {
			out += ", "
		}
		if len(record) > 0 {
			out += record[0].Value
		}
	}
	return out
}
