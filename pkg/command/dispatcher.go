package command

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/grapheditor/pkg/errors"
	"github.com/matzehuels/grapheditor/pkg/observability"
	"github.com/matzehuels/grapheditor/pkg/store"
)

var null = json.RawMessage("null")

// Dispatcher routes named commands to a store.
// It is safe for concurrent use; serialization happens inside the store.
type Dispatcher struct {
	store    *store.Store
	commands []*Command
	byName   map[string]*Command
	logger   *log.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for per-invocation debug output.
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a dispatcher serving the full command table against s.
func New(s *store.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:    s,
		commands: builtin(),
		byName:   map[string]*Command{},
		logger:   log.New(io.Discard),
	}
	for _, c := range d.commands {
		d.byName[c.Name] = c
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Store returns the underlying store.
func (d *Dispatcher) Store() *store.Store { return d.store }

// Commands lists the command table in presentation order.
func (d *Dispatcher) Commands() []Command {
	out := make([]Command, len(d.commands))
	for i, c := range d.commands {
		out[i] = *c
	}
	return out
}

// Lookup returns the command with the given name.
func (d *Dispatcher) Lookup(name string) (Command, bool) {
	c, ok := d.byName[name]
	if !ok {
		return Command{}, false
	}
	return *c, true
}

// Invoke runs one command. args is a JSON object keyed by parameter name; it
// may be empty or null for commands without parameters. The result is the
// JSON encoding of the command's return value, or null for commands that
// return nothing.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := d.byName[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownCommand, "unknown command %q", name)
	}

	id := uuid.NewString()
	logger := d.logger.With("cmd", name, "invocation", id)
	hooks := observability.Commands()
	hooks.OnCommandStart(ctx, name, id)
	start := time.Now()

	result, err := c.run(c, d.store, args)
	var out json.RawMessage
	if err == nil {
		out, err = encodeResult(result)
	}

	elapsed := time.Since(start)
	hooks.OnCommandComplete(ctx, name, id, elapsed, err)
	if err != nil {
		logger.Debug("command failed", "err", err, "elapsed", elapsed)
		return nil, err
	}
	logger.Debug("command done", "elapsed", elapsed)
	return out, nil
}

// InvokeArgs binds positional arguments and invokes the command.
func (d *Dispatcher) InvokeArgs(ctx context.Context, name string, positional ...string) (json.RawMessage, error) {
	c, ok := d.byName[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownCommand, "unknown command %q", name)
	}
	args, err := BindArgs(*c, positional)
	if err != nil {
		return nil, err
	}
	return d.Invoke(ctx, name, args)
}

// BindArgs converts positional string arguments into the JSON object c
// expects, parsing each value according to its parameter kind.
func BindArgs(c Command, positional []string) (json.RawMessage, error) {
	if len(positional) != len(c.Params) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s expects %d argument(s) (%s), got %d",
			c.Name, len(c.Params), c.Usage(), len(positional))
	}
	obj := make(map[string]any, len(c.Params))
	for i, p := range c.Params {
		raw := positional[i]
		switch p.Kind {
		case KindFloat:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", p.Name, raw)
			}
			obj[p.Name] = v
		default:
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a non-negative integer", p.Name, raw)
			}
			obj[p.Name] = v
		}
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "encode arguments")
	}
	return data, nil
}

// Usage renders the parameter list, e.g. "<nodeId> <x> <y>".
func (c Command) Usage() string {
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = "<" + p.Name + ">"
	}
	return strings.Join(parts, " ")
}

// bind checks that args carries every parameter of c and nothing else, then
// decodes it into T.
func bind[T any](c *Command, args json.RawMessage) (T, error) {
	var out T
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, null) {
		trimmed = []byte("{}")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return out, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: arguments must be a JSON object", c.Name)
	}
	for _, p := range c.Params {
		v, ok := fields[p.Name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), null) {
			return out, errors.New(errors.ErrCodeInvalidInput, "%s: missing argument %q", c.Name, p.Name)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: invalid arguments", c.Name)
	}
	return out, nil
}

func encodeResult(v any) (json.RawMessage, error) {
	if v == nil {
		return json.RawMessage("null"), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	return data, nil
}
