// Package pkg provides the libraries behind grapheditor, the in-memory
// backend of a desktop graph editor.
//
// # Overview
//
//  1. [store] - The graph state: nodes, edges, id counters and the edit operations
//  2. [command] - Named commands with JSON arguments, as invoked by a front end
//  3. [graph] - Value types and their JSON wire format
//  4. [layout] - Circle, diagonal and random placement
//  5. [config] - TOML configuration of layout and generator parameters
//  6. [errors] - Structured error codes and user-facing messages
//  7. [observability] - Hooks around command invocations
//
// # Data Flow
//
//	front end (desktop UI or grapheditor shell)
//	         ↓  name + JSON args
//	    [command] Dispatcher
//	         ↓
//	    [store] Store  ←  [layout], [config]
//	         ↓
//	    [graph] Node / Edge / Graph  →  JSON result
//
// # Quick Start
//
//	s := store.New()
//	d := command.New(s)
//	_, _ = d.Invoke(ctx, "generate_complete_graph", json.RawMessage(`{"numNodes": 5}`))
//	out, _ := d.Invoke(ctx, "get_graph", nil)
package pkg
