package compare

import (
	"context"
	"fmt"
	"time"
)

// Module runs comparison batches against a gateway.
type Module struct {
	gateway Gateway
}

// NewModule creates a new compare module.
func NewModule(gateway Gateway) *Module {
	return &Module{gateway: gateway}
}

// Execute submits the comparison and assembles one Result per requested
// entity, in the exact order of the request's entity list.
//
// The batch is strictly sequential and fail-fast: any error, a
// NoDifferencesError for one entity included, aborts the whole call and no
// partial result list is returned.
func (m *Module) Execute(ctx context.Context, req *CompareRequest) (*Report, error) {
	handle, err := m.gateway.Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submit comparison: %w", err)
	}

	matcher := NewSummaryMatcher(req.Kind, handle.LeftTime, handle.RightTime)
	fetcher := NewDrilldownFetcher(m.gateway)

	var extraFields []string
	if req.Kind == KindObject {
		extraFields = req.ProjectionFields
	}

	results := make([]Result, 0, len(req.Entities))
	for _, entity := range req.Entities {
		summary, err := m.collectSummary(ctx, handle, entity)
		if err != nil {
			return nil, err
		}

		counts, totals, err := matcher.Extract(summary, entity)
		if err != nil {
			return nil, err
		}

		result := Result{
			Entity:   entity,
			Added:    CategoryRecords{Count: counts.Added},
			Deleted:  CategoryRecords{Count: counts.Deleted},
			Modified: CategoryRecords{Count: counts.Modified},
		}

		if result.Added.Records, err = fetcher.Fetch(ctx, handle, entity, string(CategoryAdded), counts.Added, extraFields); err != nil {
			return nil, err
		}
		if result.Deleted.Records, err = fetcher.Fetch(ctx, handle, entity, string(CategoryDeleted), counts.Deleted, extraFields); err != nil {
			return nil, err
		}
		if result.Modified.Records, err = fetcher.Fetch(ctx, handle, entity, string(CategoryModified), counts.Modified, extraFields); err != nil {
			return nil, err
		}

		if totals != nil {
			left := CategoryRecords{Count: totals.LeftCount}
			if left.Records, err = fetcher.Fetch(ctx, handle, entity, totals.LeftColumn, totals.LeftCount, extraFields); err != nil {
				return nil, err
			}
			right := CategoryRecords{Count: totals.RightCount}
			if right.Records, err = fetcher.Fetch(ctx, handle, entity, totals.RightColumn, totals.RightCount, extraFields); err != nil {
				return nil, err
			}
			result.TotalLeft = &left
			result.TotalRight = &right
		}

		results = append(results, result)
	}

	return &Report{
		Kind:      req.Kind,
		Left:      req.Left.Label(),
		Right:     req.Right.Label(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Results:   results,
	}, nil
}

// collectSummary pages through the summary table filtered by entity name
// and merges the pages into one table. The backend applies the filter as
// free text; exact row matching happens in the matcher.
func (m *Module) collectSummary(ctx context.Context, h *Handle, entity string) (*Table, error) {
	var table *Table
	for page := 0; ; page++ {
		p, err := m.gateway.FetchPage(ctx, h, entity, page)
		if err != nil {
			return nil, fmt.Errorf("fetch summary page %d for %s: %w", page, entity, err)
		}
		if table == nil {
			table = &Table{Columns: p.Columns}
		}
		table.Rows = append(table.Rows, p.Rows...)
		if !p.HasMore {
			break
		}
	}
	return table, nil
}
