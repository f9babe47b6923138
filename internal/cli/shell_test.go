package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/grapheditor/pkg/command"
	"github.com/matzehuels/grapheditor/pkg/store"
)

func runShellScript(t *testing.T, script string, opts shellOptions) (string, *command.Dispatcher) {
	t.Helper()
	d := command.New(store.New())
	var out bytes.Buffer
	opts.noPrompt = true
	if err := runShell(context.Background(), d, strings.NewReader(script), &out, opts); err != nil {
		t.Fatalf("runShell: %v", err)
	}
	return out.String(), d
}

func TestShellEditsGraph(t *testing.T) {
	script := `
# build a triangle
add_node 0 0
add_node 10 0
add_node 5 8
add_edge 0 1
add_edge 1 2
add_edge 2 0
delete_node 1
get_graph
`
	out, d := runShellScript(t, script, shellOptions{})

	st := d.Store().Stats()
	if st.Nodes != 2 || st.Edges != 1 {
		t.Errorf("store after script = %+v, want 2 nodes and 1 edge", st)
	}
	for _, want := range []string{"node 0 at (0.00, 0.00)", "edge 2: 2 — 0", "Nodes", "Edges", "8 commands"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShellReportsErrorsAndContinues(t *testing.T) {
	out, d := runShellScript(t, "delete_edge 4\nadd_edge 0 1\nadd_node\nfrobnicate\nadd_node 1 1\n", shellOptions{})

	for _, want := range []string{
		"edge 4 not found",
		"source or target node not found",
		"add_node expects 2 argument(s)",
		`unknown command "frobnicate"`,
		"3 commands, 2 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if d.Store().Stats().Nodes != 1 {
		t.Error("commands after a failure should still run")
	}
}

func TestShellJSON(t *testing.T) {
	out, _ := runShellScript(t, "generate_complete_graph 3\nget_graph\n", shellOptions{json: true})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("output = %q", out)
	}
	if lines[0] != "null" {
		t.Errorf("generate result = %q, want null", lines[0])
	}
	want := `[[{"id":0,"x":0,"y":0},{"id":1,"x":50,"y":50},{"id":2,"x":100,"y":100}],[{"id":0,"source":0,"target":1},{"id":1,"source":0,"target":2},{"id":2,"source":1,"target":2}]]`
	if lines[1] != want {
		t.Errorf("get_graph = %s\nwant %s", lines[1], want)
	}
}

func TestShellBuiltins(t *testing.T) {
	out, d := runShellScript(t, "help\ngenerate_complete_graph 4\nstats\nquit\nadd_node 1 1\n", shellOptions{})

	if !strings.Contains(out, "generate_random_graph") || !strings.Contains(out, "<numNodes>") {
		t.Errorf("help output missing commands:\n%s", out)
	}
	if !strings.Contains(out, "4 nodes") || !strings.Contains(out, "6 edges") {
		t.Errorf("stats output missing counts:\n%s", out)
	}
	if d.Store().Stats().Nodes != 4 {
		t.Error("input after quit should be ignored")
	}
}

func TestShellEmptyGraph(t *testing.T) {
	out, _ := runShellScript(t, "get_graph\n", shellOptions{})
	if !strings.Contains(out, "Graph is empty") {
		t.Errorf("output = %q", out)
	}
}

func TestShellCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := command.New(store.New())
	var out bytes.Buffer
	err := runShell(ctx, d, strings.NewReader("add_node 1 1\n"), &out, shellOptions{noPrompt: true})
	if err != context.Canceled {
		t.Errorf("runShell with canceled ctx = %v, want context.Canceled", err)
	}
}
