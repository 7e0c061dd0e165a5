package compare

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// headerTimeLayout is how the backend renders a snapshot's timestamp into
// the header of its "total" summary columns.
const headerTimeLayout = "January 2, 2006 3:04 PM"

// CategoryCounts are the aggregate change counts from one summary row.
type CategoryCounts struct {
	Added    int
	Deleted  int
	Modified int
}

// TotalColumns identifies the two timestamp-headed "total" columns of an
// object comparison's summary table, with the counts read from the matched
// row.
type TotalColumns struct {
	LeftColumn  string
	RightColumn string
	LeftCount   int
	RightCount  int
}

// SummaryMatcher extracts one entity's change counts from the comparison
// summary table.
//
// For object comparisons the table carries two extra columns whose headers
// are the snapshots' display times. The rendering environment may print
// those in the snapshot's own zone or converted to UTC, so the matcher
// tries both renderings case-insensitively and takes whichever is actually
// present.
type SummaryMatcher struct {
	kind      ComparisonKind
	leftTime  time.Time
	rightTime time.Time
}

// NewSummaryMatcher builds a matcher for one comparison, using the
// backend-resolved snapshot times from the handle.
func NewSummaryMatcher(kind ComparisonKind, leftTime, rightTime time.Time) *SummaryMatcher {
	return &SummaryMatcher{
		kind:      kind,
		leftTime:  leftTime,
		rightTime: rightTime,
	}
}

// Extract filters the summary table to the row for entity and returns its
// category counts plus, for object comparisons, the resolved total columns.
//
// Zero matching rows is the backend's way of saying the two snapshots are
// identical for this entity and surfaces as NoDifferencesError; more than
// one row is a table contract violation and surfaces as
// AmbiguousEntityMatchError.
func (m *SummaryMatcher) Extract(table *Table, entity string) (CategoryCounts, *TotalColumns, error) {
	row, err := matchRow(table, entity)
	if err != nil {
		return CategoryCounts{}, nil, err
	}

	counts := CategoryCounts{}
	if counts.Added, err = countAt(table, row, string(CategoryAdded), entity); err != nil {
		return CategoryCounts{}, nil, err
	}
	if counts.Deleted, err = countAt(table, row, string(CategoryDeleted), entity); err != nil {
		return CategoryCounts{}, nil, err
	}
	if counts.Modified, err = countAt(table, row, string(CategoryModified), entity); err != nil {
		return CategoryCounts{}, nil, err
	}

	if m.kind != KindObject {
		return counts, nil, nil
	}

	leftIdx, err := matchTimeColumn(m.leftTime, table.Columns)
	if err != nil {
		return CategoryCounts{}, nil, err
	}
	rightIdx, err := matchTimeColumn(m.rightTime, table.Columns)
	if err != nil {
		return CategoryCounts{}, nil, err
	}

	totals := &TotalColumns{
		LeftColumn:  table.Columns[leftIdx],
		RightColumn: table.Columns[rightIdx],
	}
	if totals.LeftCount, err = parseCount(row[leftIdx], totals.LeftColumn, entity); err != nil {
		return CategoryCounts{}, nil, err
	}
	if totals.RightCount, err = parseCount(row[rightIdx], totals.RightColumn, entity); err != nil {
		return CategoryCounts{}, nil, err
	}

	return counts, totals, nil
}

// matchRow finds the single row whose entity column (the table's first
// column) equals entity exactly.
func matchRow(table *Table, entity string) ([]string, error) {
	if table == nil || len(table.Columns) == 0 {
		return nil, &NoDifferencesError{Entity: entity}
	}

	var matched [][]string
	for _, row := range table.Rows {
		if len(row) > 0 && row[0] == entity {
			matched = append(matched, row)
		}
	}

	switch len(matched) {
	case 0:
		return nil, &NoDifferencesError{Entity: entity}
	case 1:
		return matched[0], nil
	default:
		return nil, &AmbiguousEntityMatchError{Entity: entity, Matches: len(matched)}
	}
}

// countAt reads the named count column from a row, treating an absent
// column as zero.
func countAt(table *Table, row []string, column, entity string) (int, error) {
	idx := -1
	for i, c := range table.Columns {
		if strings.EqualFold(c, column) {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(row) {
		return 0, nil
	}
	return parseCount(row[idx], column, entity)
}

func parseCount(value, column, entity string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse %s count %q for %s: %w", column, value, entity, err)
	}
	return n, nil
}

// matchTimeColumn locates the summary column whose header is t rendered in
// either the snapshot's own zone or UTC. Exactly one column must match
// across both candidates.
func matchTimeColumn(t time.Time, headers []string) (int, error) {
	candidates := []string{t.Format(headerTimeLayout)}
	if utc := t.UTC().Format(headerTimeLayout); !strings.EqualFold(utc, candidates[0]) {
		candidates = append(candidates, utc)
	}

	var matched []int
	for i, header := range headers {
		for _, cand := range candidates {
			if strings.EqualFold(strings.TrimSpace(header), cand) {
				matched = append(matched, i)
				break
			}
		}
	}

	if len(matched) != 1 {
		err := &TimeColumnAmbiguityError{
			Candidates: candidates,
			Headers:    append([]string(nil), headers...),
		}
		for _, i := range matched {
			err.Matches = append(err.Matches, headers[i])
		}
		return 0, err
	}
	return matched[0], nil
}
