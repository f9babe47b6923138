package command

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grapheditor/pkg/errors"
	"github.com/matzehuels/grapheditor/pkg/graph"
	"github.com/matzehuels/grapheditor/pkg/observability"
	"github.com/matzehuels/grapheditor/pkg/store"
)

func newTestDispatcher() *Dispatcher {
	return New(store.New())
}

func invoke(t *testing.T, d *Dispatcher, name, args string) json.RawMessage {
	t.Helper()
	out, err := d.Invoke(context.Background(), name, json.RawMessage(args))
	if err != nil {
		t.Fatalf("Invoke(%s, %s): %v", name, args, err)
	}
	return out
}

func TestCommandTable(t *testing.T) {
	d := newTestDispatcher()
	want := []string{
		AddNode, AddEdge, UpdateNodePosition, GetGraph, DeleteNode,
		DeleteEdge, ClearGraph, GenerateCompleteGraph, AlignGraph, GenerateRandomGraph,
	}
	cmds := d.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("commands = %d, want %d", len(cmds), len(want))
	}
	for i, c := range cmds {
		if c.Name != want[i] {
			t.Errorf("command %d = %s, want %s", i, c.Name, want[i])
		}
		if c.Summary == "" {
			t.Errorf("%s has no summary", c.Name)
		}
	}
	if _, ok := d.Lookup("add_node"); !ok {
		t.Error("Lookup(add_node) failed")
	}
	if _, ok := d.Lookup("undo"); ok {
		t.Error("Lookup(undo) should fail")
	}
}

func TestInvokeAddNodeAndEdge(t *testing.T) {
	d := newTestDispatcher()

	out := invoke(t, d, AddNode, `{"x": 10, "y": 20.5}`)
	if string(out) != `{"id":0,"x":10,"y":20.5}` {
		t.Errorf("add_node = %s", out)
	}
	invoke(t, d, AddNode, `{"x": 0, "y": 0}`)

	out = invoke(t, d, AddEdge, `{"source": 0, "target": 1}`)
	if string(out) != `{"id":0,"source":0,"target":1}` {
		t.Errorf("add_edge = %s", out)
	}

	_, err := d.Invoke(context.Background(), AddEdge, json.RawMessage(`{"source": 0, "target": 5}`))
	if !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Fatalf("add_edge to missing node = %v", err)
	}
	if msg := errors.UserMessage(err); !strings.HasPrefix(msg, "source or target node not found") {
		t.Errorf("message = %q", msg)
	}
}

func TestInvokeUnitResults(t *testing.T) {
	d := newTestDispatcher()
	invoke(t, d, GenerateCompleteGraph, `{"numNodes": 3}`)

	tests := []struct {
		name string
		args string
	}{
		{UpdateNodePosition, `{"nodeId": 1, "x": 5, "y": 6}`},
		{AlignGraph, ``},
		{DeleteEdge, `{"edgeId": 0}`},
		{DeleteNode, `{"nodeId": 2}`},
		{GenerateRandomGraph, `{"numNodes": 4}`},
		{ClearGraph, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := invoke(t, d, tt.name, tt.args); string(out) != "null" {
				t.Errorf("%s returned %s, want null", tt.name, out)
			}
		})
	}
}

func TestInvokeGetGraph(t *testing.T) {
	d := newTestDispatcher()

	if out := invoke(t, d, GetGraph, `{}`); string(out) != `[[],[]]` {
		t.Errorf("empty get_graph = %s", out)
	}

	invoke(t, d, GenerateCompleteGraph, `{"numNodes": 4}`)
	var g graph.Graph
	if err := json.Unmarshal(invoke(t, d, GetGraph, ``), &g); err != nil {
		t.Fatalf("decode get_graph: %v", err)
	}
	if len(g.Nodes) != 4 || len(g.Edges) != 6 {
		t.Errorf("get_graph = %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
}

func TestInvokeErrors(t *testing.T) {
	tests := []struct {
		name     string
		cmd      string
		args     string
		wantCode errors.Code
	}{
		{"unknown command", "undo", ``, errors.ErrCodeUnknownCommand},
		{"missing arg", AddNode, `{"x": 1}`, errors.ErrCodeInvalidInput},
		{"null arg", AddNode, `{"x": 1, "y": null}`, errors.ErrCodeInvalidInput},
		{"no args", DeleteNode, ``, errors.ErrCodeInvalidInput},
		{"wrong type", AddNode, `{"x": "a", "y": 1}`, errors.ErrCodeInvalidInput},
		{"negative id", DeleteNode, `{"nodeId": -1}`, errors.ErrCodeInvalidInput},
		{"negative count", GenerateCompleteGraph, `{"numNodes": -2}`, errors.ErrCodeInvalidInput},
		{"unknown field", GetGraph, `{"verbose": true}`, errors.ErrCodeInvalidInput},
		{"not an object", AddNode, `[1, 2]`, errors.ErrCodeInvalidInput},
		{"missing node", DeleteNode, `{"nodeId": 3}`, errors.ErrCodeNodeNotFound},
		{"missing edge", DeleteEdge, `{"edgeId": 3}`, errors.ErrCodeEdgeNotFound},
		{"move missing", UpdateNodePosition, `{"nodeId": 3, "x": 0, "y": 0}`, errors.ErrCodeNodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDispatcher()
			_, err := d.Invoke(context.Background(), tt.cmd, json.RawMessage(tt.args))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Invoke(%s, %s) = %v, want %s", tt.cmd, tt.args, err, tt.wantCode)
			}
		})
	}
}

func TestInvokeCanceledContext(t *testing.T) {
	d := newTestDispatcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Invoke(ctx, AddNode, json.RawMessage(`{"x":0,"y":0}`)); err != context.Canceled {
		t.Errorf("Invoke with canceled ctx = %v, want context.Canceled", err)
	}
	if st := d.Store().Stats(); st.Nodes != 0 {
		t.Error("canceled invocation should not run")
	}
}

func TestBindArgs(t *testing.T) {
	d := newTestDispatcher()
	tests := []struct {
		cmd     string
		args    []string
		want    string
		wantErr bool
	}{
		{AddNode, []string{"1.5", "-2"}, `{"x":1.5,"y":-2}`, false},
		{UpdateNodePosition, []string{"3", "0", "1e2"}, `{"nodeId":3,"x":0,"y":100}`, false},
		{GenerateRandomGraph, []string{"10"}, `{"numNodes":10}`, false},
		{GetGraph, nil, `{}`, false},
		{AddNode, []string{"1"}, "", true},
		{AddNode, []string{"a", "1"}, "", true},
		{DeleteNode, []string{"-1"}, "", true},
		{DeleteEdge, []string{"1.5"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.cmd+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			c, _ := d.Lookup(tt.cmd)
			got, err := BindArgs(c, tt.args)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("BindArgs error = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BindArgs: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("BindArgs = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInvokeArgs(t *testing.T) {
	d := newTestDispatcher()
	ctx := context.Background()

	if _, err := d.InvokeArgs(ctx, GenerateCompleteGraph, "4"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.InvokeArgs(ctx, DeleteNode, "0"); err != nil {
		t.Fatal(err)
	}
	st := d.Store().Stats()
	if st.Nodes != 3 || st.Edges != 3 {
		t.Errorf("after delete: %+v", st)
	}
	if _, err := d.InvokeArgs(ctx, "nope"); !errors.Is(err, errors.ErrCodeUnknownCommand) {
		t.Errorf("InvokeArgs(nope) = %v", err)
	}
}

func TestUsage(t *testing.T) {
	d := newTestDispatcher()
	c, _ := d.Lookup(UpdateNodePosition)
	if got := c.Usage(); got != "<nodeId> <x> <y>" {
		t.Errorf("Usage() = %q", got)
	}
	c, _ = d.Lookup(ClearGraph)
	if got := c.Usage(); got != "" {
		t.Errorf("Usage() = %q, want empty", got)
	}
}

func TestHooksAndLogging(t *testing.T) {
	counter := observability.NewCommandCounter()
	observability.SetCommandHooks(counter)
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	d := New(store.New(), WithLogger(logger))
	ctx := context.Background()

	_, _ = d.Invoke(ctx, AddNode, json.RawMessage(`{"x":1,"y":1}`))
	_, _ = d.Invoke(ctx, DeleteEdge, json.RawMessage(`{"edgeId":9}`))

	calls, failures := counter.Totals()
	if calls != 2 || failures != 1 {
		t.Errorf("Totals() = (%d, %d), want (2, 1)", calls, failures)
	}
	out := buf.String()
	if !strings.Contains(out, "command done") || !strings.Contains(out, "command failed") {
		t.Errorf("log output missing entries: %q", out)
	}
	if !strings.Contains(out, "invocation=") {
		t.Errorf("log output should carry invocation ids: %q", out)
	}
}
