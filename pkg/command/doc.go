// Package command exposes the graph store to a presentation layer as a fixed
// set of named commands with JSON arguments and JSON results.
//
// # Commands
//
//	add_node                 {x, y}             → Node
//	add_edge                 {source, target}   → Edge
//	update_node_position     {nodeId, x, y}     → null
//	get_graph                                   → [nodes, edges]
//	delete_node              {nodeId}           → null
//	delete_edge              {edgeId}           → null
//	clear_graph                                 → null
//	generate_complete_graph  {numNodes}         → null
//	align_graph                                 → null
//	generate_random_graph    {numNodes}         → null
//
// Failures are *errors.Error values; errors.UserMessage gives the plain
// string shown to the user, e.g. "node 4 not found".
//
// # Usage
//
//	d := command.New(store.New(), command.WithLogger(logger))
//	out, err := d.Invoke(ctx, "add_node", json.RawMessage(`{"x": 10, "y": 20}`))
//
// [BindArgs] converts positional strings (as typed into a shell) into the
// JSON object a command expects.
package command
