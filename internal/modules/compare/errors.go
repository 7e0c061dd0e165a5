package compare

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyEntityList is returned when a request is built with no entities.
var ErrEmptyEntityList = errors.New("entity list is empty")

// InvalidSnapshotError reports a snapshot reference input the resolver
// cannot interpret.
type InvalidSnapshotError struct {
	Value  interface{}
	Reason string
}

func (e *InvalidSnapshotError) Error() string {
	return fmt.Sprintf("invalid snapshot reference %v: %s", e.Value, e.Reason)
}

// NoDifferencesError means the summary-table filter for an entity returned
// zero rows. The backend omits entities that are identical in both
// snapshots, so this is a user-meaningful terminal result rather than a
// transient failure.
type NoDifferencesError struct {
	Entity string
}

func (e *NoDifferencesError) Error() string {
	return fmt.Sprintf("no differences found for %q between the selected snapshots", e.Entity)
}

// AmbiguousEntityMatchError means the summary-table filter matched more
// than one row for an entity, which the table contract does not allow.
type AmbiguousEntityMatchError struct {
	Entity  string
	Matches int
}

func (e *AmbiguousEntityMatchError) Error() string {
	return fmt.Sprintf("summary table has %d rows for entity %q, expected exactly one", e.Matches, e.Entity)
}

// TimeColumnAmbiguityError means neither the local-time nor the UTC
// rendering of a snapshot's timestamp matched exactly one summary column
// header. It carries both candidates and the full header list for
// diagnosis, since this indicates a contract mismatch with the backend's
// header rendering.
type TimeColumnAmbiguityError struct {
	Candidates []string
	Headers    []string
	Matches    []string
}

func (e *TimeColumnAmbiguityError) Error() string {
	if len(e.Matches) > 1 {
		return fmt.Sprintf("snapshot time candidates [%s] match multiple summary columns [%s]",
			strings.Join(e.Candidates, ", "), strings.Join(e.Matches, ", "))
	}
	return fmt.Sprintf("no summary column matches snapshot time candidates [%s]; headers were [%s]",
		strings.Join(e.Candidates, ", "), strings.Join(e.Headers, ", "))
}
