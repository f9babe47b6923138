package graph

// Node is a point entity in the editor canvas.
type Node struct {
	ID uint64  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge connects two nodes. Edges are drawn without direction; Source and
// Target only record the order the endpoints were given in.
type Edge struct {
	ID     uint64 `json:"id"`
	Source uint64 `json:"source"`
	Target uint64 `json:"target"`
}

// Touches reports whether the edge has node id as either endpoint.
func (e Edge) Touches(id uint64) bool {
	return e.Source == id || e.Target == id
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool { return e.Source == e.Target }

// Stats summarizes the size of a store and its id counters.
type Stats struct {
	Nodes      int    `json:"nodes"`
	Edges      int    `json:"edges"`
	NextNodeID uint64 `json:"next_node_id"`
	NextEdgeID uint64 `json:"next_edge_id"`
}
