package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// Graph is a snapshot of every node and edge, in insertion order.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Clone returns a deep copy of g. Nil collections become empty slices.
func (g Graph) Clone() Graph {
	return Graph{
		Nodes: append(make([]Node, 0, len(g.Nodes)), g.Nodes...),
		Edges: append(make([]Edge, 0, len(g.Edges)), g.Edges...),
	}
}

// Empty reports whether g has no nodes and no edges.
func (g Graph) Empty() bool { return len(g.Nodes) == 0 && len(g.Edges) == 0 }

// Node returns the node with the given id.
func (g Graph) Node(id uint64) (Node, bool) {
	i := slices.IndexFunc(g.Nodes, func(n Node) bool { return n.ID == id })
	if i < 0 {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Degree counts the edges incident to node id. A self-loop counts twice.
func (g Graph) Degree(id uint64) int {
	d := 0
	for _, e := range g.Edges {
		if e.Source == id {
			d++
		}
		if e.Target == id {
			d++
		}
	}
	return d
}

// MarshalJSON encodes g as the tuple [nodes, edges].
func (g Graph) MarshalJSON() ([]byte, error) {
	nodes := g.Nodes
	if nodes == nil {
		nodes = []Node{}
	}
	edges := g.Edges
	if edges == nil {
		edges = []Edge{}
	}
	return json.Marshal([2]any{nodes, edges})
}

// UnmarshalJSON decodes the tuple [nodes, edges].
func (g *Graph) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode graph: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("decode graph: want [nodes, edges], got %d elements", len(raw))
	}
	var out Graph
	if err := json.Unmarshal(raw[0], &out.Nodes); err != nil {
		return fmt.Errorf("decode nodes: %w", err)
	}
	if err := json.Unmarshal(raw[1], &out.Edges); err != nil {
		return fmt.Errorf("decode edges: %w", err)
	}
	*g = out.Clone()
	return nil
}

// WriteGraph writes g as indented JSON to w.
func WriteGraph(g Graph, w io.Writer) error {
	data, err := MarshalGraph(g)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("indent: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// MarshalGraph converts g to compact JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}
