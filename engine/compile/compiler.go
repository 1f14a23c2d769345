package compile

import (
	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/core/parameters"
	"github.com/npillmayer/mdhtml/engine/markup"
	"github.com/npillmayer/mdhtml/input/mdast"
)

// Handler compiles nodes of a custom type.
type Handler func(ctx *Context, n *mdast.Unknown, parent mdast.Node) (string, error)

// Compiler compiles document trees to HTML. It is immutable after
// creation and may be used by concurrent goroutines.
type Compiler struct {
	params   *parameters.Registers
	entities markup.EntityMode
	handlers map[string]Handler
}

// Option configures a Compiler.
type Option func(*Compiler) error

// WithParameters replaces all compile parameters, e.g. with parameters
// loaded by parameters.FromConfiguration. Options following it may
// still change single parameters.
func WithParameters(regs *parameters.Registers) Option {
	return func(c *Compiler) error {
		if regs == nil {
			return core.Error(core.EINVALID, "compile parameters are nil")
		}
		c.params = regs.Clone()
		return nil
	}
}

// WithSanitize lets literal HTML be escaped instead of passed through.
func WithSanitize(sanitize bool) Option {
	return func(c *Compiler) error {
		c.params.Push(parameters.P_SANITIZE, sanitize)
		return nil
	}
}

// WithEntities selects the entity mode, "escape" or "numbers".
func WithEntities(mode string) Option {
	return func(c *Compiler) error {
		return c.params.Set(parameters.P_ENTITIES, mode)
	}
}

// WithMaxDepth bounds the nesting depth of document trees. 0 means
// unbounded.
func WithMaxDepth(depth int) Option {
	return func(c *Compiler) error {
		if depth < 0 {
			return core.Error(core.EINVALID, "maximum depth must not be negative, is %d", depth)
		}
		c.params.Push(parameters.P_MAXDEPTH, depth)
		return nil
	}
}

// WithHandler registers a compiler for nodes of a type unknown to package
// mdast. Node types known to mdast cannot be overridden.
func WithHandler(typeName string, h Handler) Option {
	return func(c *Compiler) error {
		if mdast.KindOf(typeName) != mdast.KindUnknown || typeName == "" {
			return core.Error(core.EINVALID, "cannot register a handler for node type %q", typeName)
		}
		if h == nil {
			return core.Error(core.EINVALID, "handler for node type %q is nil", typeName)
		}
		c.handlers[typeName] = h
		return nil
	}
}

// New creates a Compiler. Without options, parameters have their defaults.
func New(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		params:   parameters.NewRegisters(),
		handlers: make(map[string]Handler),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	mode, ok := markup.EntityModeFromString(c.params.S(parameters.P_ENTITIES))
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown entity mode %q", c.params.S(parameters.P_ENTITIES))
	}
	c.entities = mode
	return c, nil
}

// Compile compiles a document tree to HTML. On error, no output is returned.
func (c *Compiler) Compile(root *mdast.Root) (string, error) {
	if root == nil {
		return "", core.Error(core.EINVALID, "document tree is nil")
	}
	ctx := newContext(c)
	out, err := ctx.visit(root, nil)
	if err != nil {
		tracer().Errorf("compilation failed: %v", err)
		return "", err
	}
	tracer().Infof("compiled tree to %d bytes of HTML", len(out))
	return out, nil
}

// Compile compiles a document tree with a compiler created from opts.
func Compile(root *mdast.Root, opts ...Option) (string, error) {
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.Compile(root)
}
