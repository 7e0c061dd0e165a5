package compare

import (
	"context"
	"fmt"
)

// DrilldownFetcher retrieves the full record listing behind one summary
// cell: an entity's Added/Deleted/Modified category or one of its total
// columns.
type DrilldownFetcher struct {
	gateway Gateway
}

// NewDrilldownFetcher creates a fetcher over the given gateway.
func NewDrilldownFetcher(gateway Gateway) *DrilldownFetcher {
	return &DrilldownFetcher{gateway: gateway}
}

// Fetch drills into (entity, column), optionally widens the visible column
// set with extraFields, exhausts every page of the resulting table in
// order, and returns the rows as ordered records.
//
// A zero count returns nil immediately with no round-trip at all. On
// success the fetcher navigates back to the entity-level summary before
// returning, so subsequent drill-downs start from a consistent state.
func (f *DrilldownFetcher) Fetch(ctx context.Context, h *Handle, entity, column string, count int, extraFields []string) ([]Record, error) {
	if count == 0 {
		return nil, nil
	}

	if err := f.gateway.DrillDown(ctx, h, entity, column); err != nil {
		return nil, fmt.Errorf("drill into %s of %s: %w", column, entity, err)
	}

	for _, field := range extraFields {
		if err := f.gateway.RevealColumn(ctx, h, field); err != nil {
			return nil, fmt.Errorf("reveal column %s: %w", field, err)
		}
	}

	table := &Table{}
	for page := 0; ; page++ {
		p, err := f.gateway.FetchPage(ctx, h, "", page)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d of %s for %s: %w", page, column, entity, err)
		}
		if page == 0 {
			table.Columns = p.Columns
		}
		table.Rows = append(table.Rows, p.Rows...)
		if !p.HasMore {
			break
		}
	}

	records, err := zipRecords(table)
	if err != nil {
		return nil, fmt.Errorf("%s records for %s: %w", column, entity, err)
	}

	if err := f.gateway.NavigateBack(ctx, h); err != nil {
		return nil, fmt.Errorf("navigate back from %s of %s: %w", column, entity, err)
	}

	return records, nil
}

// zipRecords converts a table into ordered records, pairing each row's
// values with the column names positionally.
func zipRecords(table *Table) ([]Record, error) {
	records := make([]Record, 0, len(table.Rows))
	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return nil, fmt.Errorf("row %d has %d values for %d columns", i, len(row), len(table.Columns))
		}
		record := make(Record, len(row))
		for j, value := range row {
			record[j] = Field{Name: table.Columns[j], Value: value}
		}
		records = append(records, record)
	}
	return records, nil
}
