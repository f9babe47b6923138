// Package graph provides the value types exchanged between the graph store
// and the presentation layer.
//
// # Core Types
//
//   - [Node]: a point with a sequential id and 2D coordinates
//   - [Edge]: a connection between two node ids
//   - [Graph]: a snapshot of all nodes and edges in insertion order
//
// # Wire Format
//
// Nodes and edges encode as flat JSON objects:
//
//	{"id": 0, "x": 50, "y": 50}
//	{"id": 0, "source": 0, "target": 1}
//
// A [Graph] encodes as a two-element array, nodes first, edges second.
// Empty collections encode as [] rather than null:
//
//	[[{"id":0,"x":0,"y":0}], []]
//
// # Concurrency
//
// Graph values are plain snapshots. They share no memory with the store that
// produced them and may be read from any goroutine.
package graph
