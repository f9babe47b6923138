package command

import (
	"encoding/json"

	"github.com/matzehuels/grapheditor/pkg/store"
)

// Command names.
const (
	AddNode               = "add_node"
	AddEdge               = "add_edge"
	UpdateNodePosition    = "update_node_position"
	GetGraph              = "get_graph"
	DeleteNode            = "delete_node"
	DeleteEdge            = "delete_edge"
	ClearGraph            = "clear_graph"
	GenerateCompleteGraph = "generate_complete_graph"
	AlignGraph            = "align_graph"
	GenerateRandomGraph   = "generate_random_graph"
)

// Kind is the JSON type of a parameter.
type Kind int

const (
	KindFloat Kind = iota // JSON number
	KindID                // non-negative integer id
	KindCount             // non-negative integer count
)

func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindCount:
		return "count"
	default:
		return "float"
	}
}

// Param describes one named argument.
type Param struct {
	Name string
	Kind Kind
}

// Command is one entry of the command surface.
type Command struct {
	Name    string
	Summary string
	Params  []Param

	run func(c *Command, s *store.Store, args json.RawMessage) (any, error)
}

type positionArgs struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type edgeArgs struct {
	Source uint64 `json:"source"`
	Target uint64 `json:"target"`
}

type moveArgs struct {
	NodeID uint64  `json:"nodeId"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type nodeArgs struct {
	NodeID uint64 `json:"nodeId"`
}

type edgeIDArgs struct {
	EdgeID uint64 `json:"edgeId"`
}

type countArgs struct {
	NumNodes uint `json:"numNodes"`
}

var (
	pX        = Param{Name: "x", Kind: KindFloat}
	pY        = Param{Name: "y", Kind: KindFloat}
	pSource   = Param{Name: "source", Kind: KindID}
	pTarget   = Param{Name: "target", Kind: KindID}
	pNodeID   = Param{Name: "nodeId", Kind: KindID}
	pEdgeID   = Param{Name: "edgeId", Kind: KindID}
	pNumNodes = Param{Name: "numNodes", Kind: KindCount}
)

// builtin returns the command table in presentation order.
func builtin() []*Command {
	return []*Command{
		{
			Name:    AddNode,
			Summary: "Add a node at (x, y)",
			Params:  []Param{pX, pY},
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				a, err := bind[positionArgs](c, raw)
				if err != nil {
					return nil, err
				}
				return s.AddNode(a.X, a.Y), nil
			},
		},
		{
			Name:    AddEdge,
			Summary: "Connect two existing nodes",
			Params:  []Param{pSource, pTarget},
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				a, err := bind[edgeArgs](c, raw)
				if err != nil {
					return nil, err
				}
				return s.AddEdge(a.Source, a.Target)
			},
		},
		{
			Name:    UpdateNodePosition,
			Summary: "Move a node to (x, y)",
			Params:  []Param{pNodeID, pX, pY},
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				a, err := bind[moveArgs](c, raw)
				if err != nil {
					return nil, err
				}
				return nil, s.UpdateNodePosition(a.NodeID, a.X, a.Y)
			},
		},
		{
			Name:    GetGraph,
			Summary: "Return all nodes and edges",
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				if _, err := bind[struct{}](c, raw); err != nil {
					return nil, err
				}
				return s.Graph(), nil
			},
		},
		{
			Name:    DeleteNode,
			Summary: "Delete a node and its edges",
			Params:  []Param{pNodeID},
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				a, err := bind[nodeArgs](c, raw)
				if err != nil {
					return nil, err
				}
				return nil, s.DeleteNode(a.NodeID)
			},
		},
		{
			Name:    DeleteEdge,
			Summary: "Delete an edge",
			Params:  []Param{pEdgeID},
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				a, err := bind[edgeIDArgs](c, raw)
				if err != nil {
					return nil, err
				}
				return nil, s.DeleteEdge(a.EdgeID)
			},
		},
		{
			Name:    ClearGraph,
			Summary: "Remove everything and reset ids",
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				if _, err := bind[struct{}](c, raw); err != nil {
					return nil, err
				}
				s.Clear()
				return nil, nil
			},
		},
		{
			Name:    GenerateCompleteGraph,
			Summary: "Replace the graph with a complete graph",
			Params:  []Param{pNumNodes},
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				a, err := bind[countArgs](c, raw)
				if err != nil {
					return nil, err
				}
				return nil, s.GenerateComplete(int(a.NumNodes))
			},
		},
		{
			Name:    AlignGraph,
			Summary: "Arrange nodes on a circle",
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				if _, err := bind[struct{}](c, raw); err != nil {
					return nil, err
				}
				return nil, s.AlignCircle()
			},
		},
		{
			Name:    GenerateRandomGraph,
			Summary: "Replace the graph with a random graph",
			Params:  []Param{pNumNodes},
			run: func(c *Command, s *store.Store, raw json.RawMessage) (any, error) {
				a, err := bind[countArgs](c, raw)
				if err != nil {
					return nil, err
				}
				return nil, s.GenerateRandom(int(a.NumNodes))
			},
		},
	}
}
