// Package compare implements the dual-snapshot comparison engine: it
// resolves two snapshot references, submits a comparison to the backup
// service, classifies every changed item as Added, Deleted or Modified,
// and materializes before/after record detail on demand.
package compare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ComparisonKind selects what is being compared between the two snapshots.
type ComparisonKind string

const (
	// KindObject compares named data objects record by record.
	KindObject ComparisonKind = "object"
	// KindMetadata compares hierarchically organized metadata folders.
	KindMetadata ComparisonKind = "metadata"
)

// Category is a classification bucket for a changed item.
type Category string

const (
	CategoryAdded    Category = "Added"
	CategoryDeleted  Category = "Deleted"
	CategoryModified Category = "Modified"
)

// SnapshotKind says how one side of a comparison is addressed.
type SnapshotKind string

const (
	// SnapshotTime addresses a snapshot by an explicit point in time.
	SnapshotTime SnapshotKind = "time"
	// SnapshotJob addresses a snapshot by an opaque job token, matched
	// against the backend's job list by contains match.
	SnapshotJob SnapshotKind = "job"
)

// PickerTime is the structured date/time vocabulary the backend's snapshot
// picker accepts: a 12-hour clock with an AM/PM session and a full English
// month name.
type PickerTime struct {
	Year    int    `json:"year"`
	Month   string `json:"month"`
	Day     int    `json:"day"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Session string `json:"session"`
}

// SnapshotReference identifies one side of a comparison. The time fields
// (Picker + Instant) or JobToken are populated, never both, per Kind.
type SnapshotReference struct {
	Kind     SnapshotKind
	Picker   PickerTime
	Instant  time.Time
	JobToken string
}

// Label returns a short display name for the snapshot, used in report
// headers.
func (r SnapshotReference) Label() string {
	if r.Kind == SnapshotJob {
		return r.JobToken
	}
	return r.Instant.Format(time.RFC3339)
}

// Options carries the optional parts of a comparison request.
type Options struct {
	// DestinationContext is the target system identifier; only meaningful
	// for metadata comparisons across environments. Empty means the
	// current system.
	DestinationContext string
	// ProjectionFields are extra field names to surface in drill-down
	// records. Object comparisons only.
	ProjectionFields []string
}

// CompareRequest is a fully assembled comparison. Entities order is
// preserved end to end so callers can correlate input with output.
type CompareRequest struct {
	Kind               ComparisonKind
	Left               SnapshotReference
	Right              SnapshotReference
	Entities           []string
	DestinationContext string
	ProjectionFields   []string
}

// Table is the row-oriented shape every collaborator endpoint returns.
// Rows carry display text only; no type coercion happens at this layer.
type Table struct {
	Columns []string
	Rows    [][]string
}

// TablePage is one page of a paginated table.
type TablePage struct {
	Table
	HasMore bool
}

// Field is one named value of a record.
type Field struct {
	Name  string
	Value string
}

// Record is a flat, ordered mapping from column name to display value,
// built by zipping a table's column names against one row.
type Record []Field

// Get returns the value of the named field.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// MarshalJSON encodes the record as a JSON object preserving field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal field name %q: %w", f.Name, err)
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal field value for %q: %w", f.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CategoryRecords is one change category's count plus, once drill-down has
// run, its full record listing. Records stays nil until then.
type CategoryRecords struct {
	Count   int      `json:"count"`
	Records []Record `json:"records,omitempty"`
}

// Result is the comparison outcome for a single entity.
type Result struct {
	Entity   string          `json:"entity"`
	Added    CategoryRecords `json:"added"`
	Deleted  CategoryRecords `json:"deleted"`
	Modified CategoryRecords `json:"modified"`

	// TotalLeft and TotalRight are the entity's total item counts under
	// each snapshot. Object comparisons only; nil otherwise.
	TotalLeft  *CategoryRecords `json:"total_left,omitempty"`
	TotalRight *CategoryRecords `json:"total_right,omitempty"`
}

// Report is the full outcome of one comparison batch, with results in the
// exact order of the request's entity list.
type Report struct {
	Kind      ComparisonKind
	Left      string
	Right     string
	Timestamp string
	Results   []Result
}

// Handle identifies an active result set on the backend. The backend
// resolves both snapshot references to concrete instants at submit time,
// job-token sides included, and echoes them here; the summary matcher
// needs them to recognize the synthesized total-column headers.
type Handle struct {
	ID        string
	LeftTime  time.Time
	RightTime time.Time
}

// Gateway is the transport boundary to the comparison backend. The engine
// performs no I/O except through it. One Handle represents one active
// result set; DrillDown switches it to a category listing and NavigateBack
// returns it to the entity-level summary.
type Gateway interface {
	Submit(ctx context.Context, req *CompareRequest) (*Handle, error)
	FetchPage(ctx context.Context, h *Handle, filter string, page int) (*TablePage, error)
	DrillDown(ctx context.Context, h *Handle, entity, column string) error
	RevealColumn(ctx context.Context, h *Handle, field string) error
	NavigateBack(ctx context.Context, h *Handle) error
}
