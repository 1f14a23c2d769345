package compile

import (
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/core/parameters"
	"github.com/npillmayer/mdhtml/engine/markup"
	"github.com/npillmayer/mdhtml/engine/text/whitespace"
	"github.com/npillmayer/mdhtml/input/mdast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Context holds the state of a single compilation: the definition index
// and the footnote store. It is created at the start of Compile and must
// not be used after Compile returns.
type Context struct {
	compiler    *Compiler
	markup      markup.Builder
	sanitize    bool
	upper       cases.Caser
	definitions map[string]*mdast.Definition
	footnotes   *footnoteStore
	depth       int
	maxDepth    int
}

func newContext(c *Compiler) *Context {
	sanitize := c.params.B(parameters.P_SANITIZE)
	return &Context{
		compiler: c,
		markup: markup.Builder{
			Encoder:  markup.Encoder{Mode: c.entities},
			Sanitize: sanitize,
		},
		sanitize:    sanitize,
		upper:       cases.Upper(language.Und),
		definitions: make(map[string]*mdast.Definition),
		footnotes:   newFootnoteStore(),
		maxDepth:    c.params.N(parameters.P_MAXDEPTH),
	}
}

// Markup returns the element builder of this compilation.
func (ctx *Context) Markup() markup.Builder {
	return ctx.markup
}

// Visit compiles a single node. parent may be nil.
func (ctx *Context) Visit(n mdast.Node, parent mdast.Node) (string, error) {
	return ctx.visit(n, parent)
}

// All compiles the children of parent and joins the results with sep.
func (ctx *Context) All(parent mdast.Node, sep string) (string, error) {
	values, err := ctx.all(parent)
	if err != nil {
		return "", err
	}
	return strings.Join(values, sep), nil
}

func (ctx *Context) encode(s string) string {
	return ctx.markup.Encode(s)
}

// --- Definitions -----------------------------------------------------------

// scanDefinitions collects link definitions and footnote definitions from
// the whole tree, in document order. A definition overwrites an earlier one
// with the same identifier.
func (ctx *Context) scanDefinitions(root *mdast.Root) error {
	return mdast.Walk(root, func(n mdast.Node, parent mdast.Node) error {
		switch d := n.(type) {
		case *mdast.Definition:
			key := ctx.key(d.Identifier)
			if _, dup := ctx.definitions[key]; dup {
				tracer().Debugf("definition [%s] overwrites an earlier one", d.Identifier)
			}
			ctx.definitions[key] = d
		case *mdast.FootnoteDefinition:
			ctx.footnotes.appendExplicit(d)
		}
		return nil
	})
}

// key normalizes an identifier for case-insensitive lookup.
func (ctx *Context) key(identifier string) string {
	return ctx.upper.String(identifier)
}

// definition looks up an identifier, returning nil if it is undefined.
func (ctx *Context) definition(identifier string) *mdast.Definition {
	return ctx.definitions[ctx.key(identifier)]
}

// --- Dispatch --------------------------------------------------------------

// visit calls the compiler registered for the kind of n.
func (ctx *Context) visit(n mdast.Node, parent mdast.Node) (string, error) {
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.maxDepth > 0 && ctx.depth > ctx.maxDepth {
		return "", core.Error(core.ELIMIT, "document tree is nested deeper than %d levels", ctx.maxDepth)
	}
	if mdast.IsNil(n) {
		return "", core.Error(core.EINVALID, "nil node as child of %s", mdast.TypeName(parent))
	}
	if u, ok := n.(*mdast.Unknown); ok {
		if h, found := ctx.compiler.handlers[u.Type]; found {
			return h(ctx, u, parent)
		}
		return "", &core.UnsupportedNodeError{Kind: u.Type}
	}
	fn, found := compilers[n.Kind()]
	if !found {
		return "", &core.UnsupportedNodeError{Kind: n.Kind().String()}
	}
	return fn(ctx, n, parent)
}

// all compiles the children of parent.
func (ctx *Context) all(parent mdast.Node) ([]string, error) {
	return ctx.allOf(parent, mdast.Children(parent))
}

// allOf compiles nodes as children of parent. Empty results are dropped.
// A result following a hard break, or an escaped line break, loses its
// leading whitespace.
func (ctx *Context) allOf(parent mdast.Node, nodes []mdast.Node) ([]string, error) {
	values := make([]string, 0, len(nodes))
	for i, n := range nodes {
		value, err := ctx.visit(n, parent)
		if err != nil {
			return nil, err
		}
		if value != "" && i > 0 && breaksLine(nodes[i-1]) {
			value = whitespace.TrimLeft(value)
		}
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

func breaksLine(n mdast.Node) bool {
	switch b := n.(type) {
	case *mdast.Break:
		return true
	case *mdast.Escape:
		return b.Value == "\n"
	}
	return false
}
