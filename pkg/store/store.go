// Package store implements the graph editor's in-memory state: an ordered
// collection of nodes and edges with sequential ids, and the command-style
// operations the presentation layer drives it with.
//
// # Identifiers
//
// Node and edge ids come from two independent counters starting at 0. A
// deleted id is never handed out again until [Store.Clear] or one of the
// generators resets both counters.
//
// # Integrity
//
// Edges are validated against the live node set when they are created, and
// [Store.DeleteNode] removes every edge touching the deleted node, so the
// store never holds an edge with a missing endpoint. Self-loops and parallel
// edges are allowed.
//
// # Concurrency
//
// A single RWMutex guards the whole aggregate. Every mutation holds the write
// lock for its full duration, so each operation is atomic with respect to
// all others; [Store.Graph] and [Store.Stats] take the read lock.
package store

import (
	"io"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grapheditor/pkg/config"
	"github.com/matzehuels/grapheditor/pkg/errors"
	"github.com/matzehuels/grapheditor/pkg/graph"
	"github.com/matzehuels/grapheditor/pkg/layout"
)

// Store is the graph editor's state. The zero value is not usable; call New.
type Store struct {
	mu         sync.RWMutex
	nodes      []graph.Node
	edges      []graph.Edge
	nextNodeID uint64
	nextEdgeID uint64

	circle      layout.Circle
	canvas      layout.Canvas
	spacing     float64
	probability float64
	rng         *rand.Rand
	logger      *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand sets the random source used by GenerateRandom.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithLayout overrides the circle used by AlignCircle.
func WithLayout(c config.Layout) Option {
	return func(s *Store) { s.circle = layout.CircleFrom(c) }
}

// WithGenerate overrides the generator parameters. A non-zero Seed also
// replaces the random source with a deterministic one.
func WithGenerate(g config.Generate) Option {
	return func(s *Store) {
		s.canvas = layout.CanvasFrom(g)
		s.spacing = g.Spacing
		s.probability = g.EdgeProbability
		if g.Seed != 0 {
			s.rng = rand.New(rand.NewPCG(g.Seed, g.Seed))
		}
	}
}

// WithConfig applies both sections of cfg.
func WithConfig(cfg config.Config) Option {
	return func(s *Store) {
		WithLayout(cfg.Layout)(s)
		WithGenerate(cfg.Generate)(s)
	}
}

// New creates an empty store with zero counters.
func New(opts ...Option) *Store {
	def := config.Default()
	s := &Store{
		nodes:       []graph.Node{},
		edges:       []graph.Edge{},
		circle:      layout.CircleFrom(def.Layout),
		canvas:      layout.CanvasFrom(def.Generate),
		spacing:     def.Generate.Spacing,
		probability: def.Generate.EdgeProbability,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddNode appends a node at (x, y) with the next node id.
func (s *Store) AddNode(x, y float64) graph.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNode(x, y)
}

// AddEdge connects two existing nodes. It fails if either endpoint is
// missing; self-loops and duplicates are accepted.
func (s *Store) AddEdge(source, target uint64) (graph.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nodeIndex(source) < 0 || s.nodeIndex(target) < 0 {
		return graph.Edge{}, errors.New(errors.ErrCodeNodeNotFound,
			"source or target node not found (source %d, target %d)", source, target)
	}
	return s.addEdge(source, target), nil
}

// UpdateNodePosition moves a node in place.
func (s *Store) UpdateNodePosition(id uint64, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.nodeIndex(id)
	if i < 0 {
		return nodeNotFound(id)
	}
	s.nodes[i].X = x
	s.nodes[i].Y = y
	return nil
}

// Graph returns a copy of the current nodes and edges in insertion order.
func (s *Store) Graph() graph.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return graph.Graph{Nodes: s.nodes, Edges: s.edges}.Clone()
}

// Stats reports collection sizes and the next ids to be assigned.
func (s *Store) Stats() graph.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return graph.Stats{
		Nodes:      len(s.nodes),
		Edges:      len(s.edges),
		NextNodeID: s.nextNodeID,
		NextEdgeID: s.nextEdgeID,
	}
}

// DeleteNode removes a node and every edge incident to it.
func (s *Store) DeleteNode(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.nodeIndex(id)
	if i < 0 {
		return nodeNotFound(id)
	}
	s.nodes = slices.Delete(s.nodes, i, i+1)
	before := len(s.edges)
	s.edges = slices.DeleteFunc(s.edges, func(e graph.Edge) bool { return e.Touches(id) })
	s.logger.Debug("deleted node", "id", id, "edges", before-len(s.edges))
	return nil
}

// DeleteEdge removes a single edge.
func (s *Store) DeleteEdge(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.edges, func(e graph.Edge) bool { return e.ID == id })
	if i < 0 {
		return errors.New(errors.ErrCodeEdgeNotFound, "edge %d not found", id)
	}
	s.edges = slices.Delete(s.edges, i, i+1)
	return nil
}

// Clear empties the store and resets both id counters to 0.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// GenerateComplete replaces the graph with n nodes on a diagonal and an
// edge for every pair i < j. Edge ids follow the pair order: i ascending,
// then j ascending.
func (s *Store) GenerateComplete(n int) error {
	if err := errors.ValidateNodeCount(n); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.nodes = slices.Grow(s.nodes, n)
	s.edges = slices.Grow(s.edges, n*(n-1)/2)
	for i := range n {
		s.addNode(layout.Diagonal(i, s.spacing))
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			s.addEdge(uint64(i), uint64(j))
		}
	}
	s.logger.Debug("generated complete graph", "nodes", len(s.nodes), "edges", len(s.edges))
	return nil
}

// AlignCircle moves every node onto the configured circle, keeping ids,
// edges and order. Node i of k is placed at angle i*2π/k. An empty store is
// left unchanged.
func (s *Store) AlignCircle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := len(s.nodes)
	for i := range s.nodes {
		s.nodes[i].X, s.nodes[i].Y = s.circle.Position(i, k)
	}
	return nil
}

// GenerateRandom replaces the graph with n nodes at uniformly random
// positions on the canvas. Each pair i < j independently receives an edge
// with the configured probability; edge ids stay contiguous.
func (s *Store) GenerateRandom(n int) error {
	if err := errors.ValidateNodeCount(n); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.nodes = slices.Grow(s.nodes, n)
	for range n {
		s.addNode(s.canvas.Random(s.rng))
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			if s.rng.Float64() < s.probability {
				s.addEdge(uint64(i), uint64(j))
			}
		}
	}
	s.logger.Debug("generated random graph", "nodes", len(s.nodes), "edges", len(s.edges))
	return nil
}

// =============================================================================
// Internal helpers (caller holds the write lock)
// =============================================================================

func (s *Store) addNode(x, y float64) graph.Node {
	n := graph.Node{ID: s.nextNodeID, X: x, Y: y}
	s.nodes = append(s.nodes, n)
	s.nextNodeID++
	return n
}

func (s *Store) addEdge(source, target uint64) graph.Edge {
	e := graph.Edge{ID: s.nextEdgeID, Source: source, Target: target}
	s.edges = append(s.edges, e)
	s.nextEdgeID++
	return e
}

func (s *Store) reset() {
	if len(s.nodes) > 0 || len(s.edges) > 0 {
		s.logger.Debug("cleared graph", "nodes", len(s.nodes), "edges", len(s.edges))
	}
	s.nodes = s.nodes[:0]
	s.edges = s.edges[:0]
	s.nextNodeID = 0
	s.nextEdgeID = 0
}

func (s *Store) nodeIndex(id uint64) int {
	return slices.IndexFunc(s.nodes, func(n graph.Node) bool { return n.ID == id })
}

func nodeNotFound(id uint64) error {
	return errors.New(errors.ErrCodeNodeNotFound, "node %d not found", id)
}
