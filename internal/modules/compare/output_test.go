package compare

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleReport() *Report {
	return &Report{
		Kind:      KindObject,
		Left:      "2024-01-01T10:00:00+05:30",
		Right:     "Job_551",
		Timestamp: "2024-01-03T00:00:00Z",
		Results: []Result{
			{
				Entity: "Account",
				Added: CategoryRecords{Count: 2, Records: []Record{
					{{Name: "Id", Value: "001"}, {Name: "Name", Value: "Acme"}},
					{{Name: "Id", Value: "002"}, {Name: "Name", Value: "Globex"}},
				}},
				Deleted:    CategoryRecords{Count: 0},
				Modified:   CategoryRecords{Count: 1, Records: []Record{{{Name: "Id", Value: "003"}, {Name: "Name", Value: "Initech"}}}},
				TotalLeft:  &CategoryRecords{Count: 100},
				TotalRight: &CategoryRecords{Count: 101},
			},
			{
				Entity:   "Contact",
				Added:    CategoryRecords{Count: 0},
				Deleted:  CategoryRecords{Count: 3},
				Modified: CategoryRecords{Count: 0},
			},
		},
	}
}

func TestTextFormatter_Summary(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(&buf, false, false).Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Comparing 2024-01-01T10:00:00+05:30 -> Job_551 (object)",
		"2 added, 0 deleted, 1 modified (100 -> 101 records)",
		"0 added, 3 deleted, 0 modified",
		"Total: 2 added, 3 deleted, 1 modified",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Acme") {
		t.Error("summary output must not list individual records")
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(&buf, true, false).Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Added:    001, 002") {
		t.Errorf("verbose output missing added identifiers:\n%s", out)
	}
	if !strings.Contains(out, "Modified: 003") {
		t.Errorf("verbose output missing modified identifiers:\n%s", out)
	}
	if strings.Contains(out, "Deleted:") && strings.Contains(out, "Deleted:   \n") {
		t.Error("empty categories must be omitted in verbose output")
	}
}

func TestTextFormatter_Full(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(&buf, false, true).Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"[Added]", "Id: 001", "Name: Acme", "Name: Initech"} {
		if !strings.Contains(out, want) {
			t.Errorf("full output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var out struct {
		Kind    string `json:"kind"`
		Right   string `json:"right"`
		Summary struct {
			TotalAdded    int `json:"total_added"`
			TotalDeleted  int `json:"total_deleted"`
			TotalModified int `json:"total_modified"`
		} `json:"summary"`
		Results []struct {
			Entity string `json:"entity"`
			Added  struct {
				Count   int               `json:"count"`
				Records []json.RawMessage `json:"records"`
			} `json:"added"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if out.Kind != "object" || out.Right != "Job_551" {
		t.Errorf("unexpected header: kind=%q right=%q", out.Kind, out.Right)
	}
	if out.Summary.TotalAdded != 2 || out.Summary.TotalDeleted != 3 || out.Summary.TotalModified != 1 {
		t.Errorf("unexpected summary: %+v", out.Summary)
	}
	if len(out.Results) != 2 || out.Results[0].Entity != "Account" {
		t.Fatalf("unexpected results: %+v", out.Results)
	}
	if got := string(out.Results[0].Added.Records[0]); got != `{"Id":"001","Name":"Acme"}` {
		t.Errorf("record fields must encode in column order, got %s", got)
	}
}

func TestRecordMarshalJSON_PreservesOrder(t *testing.T) {
	record := Record{
		{Name: "Zeta", Value: "1"},
		{Name: "Alpha", Value: "2"},
		{Name: "Mid", Value: "3"},
	}
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(data); got != `{"Zeta":"1","Alpha":"2","Mid":"3"}` {
		t.Errorf("expected column-ordered object, got %s", got)
	}
}
