package api

// Wire types for the comparison service API.

// snapshotSelector identifies one side of a comparison on the wire.
// Mode is "custom_datetime" with an RFC3339 value, or "job" with the
// export job's identifier.
type snapshotSelector struct {
	Mode  string `json:"mode"`
	Value string `json:"value"`
}

type submitRequest struct {
	Type        string           `json:"type"`
	Left        snapshotSelector `json:"left"`
	Right       snapshotSelector `json:"right"`
	Destination string           `json:"destination,omitempty"`
}

type submitResponse struct {
	ID        string `json:"id"`
	LeftTime  string `json:"leftTime"`
	RightTime string `json:"rightTime"`
}

type rowsResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	HasMore bool       `json:"hasMore"`
}

type drilldownRequest struct {
	Entity string `json:"entity"`
	Column string `json:"column"`
}

type columnRequest struct {
	Field string `json:"field"`
}
