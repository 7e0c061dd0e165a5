package compare

import "fmt"

// BuildRequest assembles a CompareRequest from two resolved snapshot
// references. Pure data assembly, no I/O.
//
// The entity list must be non-empty; its order is copied as-is and carried
// through to the result list. Projection fields are only valid for object
// comparisons. For metadata comparisons an empty destination context means
// the current system, so no destination selector is issued at submit time.
func BuildRequest(kind ComparisonKind, left, right SnapshotReference, entities []string, opts Options) (*CompareRequest, error) {
	if len(entities) == 0 {
		return nil, ErrEmptyEntityList
	}

	switch kind {
	case KindObject, KindMetadata:
	default:
		return nil, fmt.Errorf("unknown comparison kind %q", kind)
	}

	if kind == KindMetadata && len(opts.ProjectionFields) > 0 {
		return nil, fmt.Errorf("projection fields are only supported for object comparisons")
	}

	req := &CompareRequest{
		Kind:               kind,
		Left:               left,
		Right:              right,
		Entities:           append([]string(nil), entities...),
		DestinationContext: opts.DestinationContext,
		ProjectionFields:   append([]string(nil), opts.ProjectionFields...),
	}

	return req, nil
}
