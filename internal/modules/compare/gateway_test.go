package compare

import (
	"context"
	"fmt"
	"time"
)

// gatewayCall records one round-trip issued against the fake gateway.
type gatewayCall struct {
	op     string
	entity string
	column string
	field  string
	filter string
	page   int
}

// fakeGateway scripts the comparison backend for engine tests. FetchPage
// serves summary pages keyed by filter until a drill-down switches the
// active result set, exactly like the real backend's single-handle model.
type fakeGateway struct {
	handle    Handle
	submitErr error
	summaries map[string][]TablePage
	drills    map[string][]TablePage
	calls     []gatewayCall
	active    string
}

func newFakeGateway(left, right time.Time) *fakeGateway {
	return &fakeGateway{
		handle:    Handle{ID: "rs-1", LeftTime: left, RightTime: right},
		summaries: make(map[string][]TablePage),
		drills:    make(map[string][]TablePage),
	}
}

func drillKey(entity, column string) string {
	return entity + "|" + column
}

func (g *fakeGateway) Submit(ctx context.Context, req *CompareRequest) (*Handle, error) {
	g.calls = append(g.calls, gatewayCall{op: "submit"})
	if g.submitErr != nil {
		return nil, g.submitErr
	}
	h := g.handle
	return &h, nil
}

func (g *fakeGateway) FetchPage(ctx context.Context, h *Handle, filter string, page int) (*TablePage, error) {
	g.calls = append(g.calls, gatewayCall{op: "page", filter: filter, page: page})

	var pages []TablePage
	if g.active != "" {
		pages = g.drills[g.active]
	} else {
		pages = g.summaries[filter]
	}
	if page >= len(pages) {
		return nil, fmt.Errorf("no page %d in active result set", page)
	}
	p := pages[page]
	return &p, nil
}

func (g *fakeGateway) DrillDown(ctx context.Context, h *Handle, entity, column string) error {
	g.calls = append(g.calls, gatewayCall{op: "drill", entity: entity, column: column})
	key := drillKey(entity, column)
	if _, ok := g.drills[key]; !ok {
		return fmt.Errorf("no drill-down scripted for %s", key)
	}
	g.active = key
	return nil
}

func (g *fakeGateway) RevealColumn(ctx context.Context, h *Handle, field string) error {
	g.calls = append(g.calls, gatewayCall{op: "reveal", field: field})
	return nil
}

func (g *fakeGateway) NavigateBack(ctx context.Context, h *Handle) error {
	g.calls = append(g.calls, gatewayCall{op: "back"})
	g.active = ""
	return nil
}

// callsOf filters the recorded calls by operation.
func (g *fakeGateway) callsOf(op string) []gatewayCall {
	var out []gatewayCall
	for _, c := range g.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// singlePage wraps one table as a one-page result set.
func singlePage(columns []string, rows ...[]string) []TablePage {
	return []TablePage{{Table: Table{Columns: columns, Rows: rows}}}
}
