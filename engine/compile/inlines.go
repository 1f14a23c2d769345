package compile

import (
	"github.com/npillmayer/mdhtml/engine/markup"
	"github.com/npillmayer/mdhtml/engine/text/whitespace"
	"github.com/npillmayer/mdhtml/input/mdast"
	"golang.org/x/net/html/atom"
)

// compileText escapes text. Blanks around line breaks are removed and
// runs of blanks collapse to a single space. Line breaks are kept.
func compileText(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	return ctx.text(n.(*mdast.Text).Value), nil
}

func (ctx *Context) text(s string) string {
	return whitespace.CollapseSpaces(whitespace.TrimLines(ctx.encode(s)))
}

// compileEscape renders an escaped newline as a hard break and any other
// escaped character as text.
func compileEscape(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	esc := n.(*mdast.Escape)
	if esc.Value == "\n" {
		return compileBreak(ctx, n, parent)
	}
	return ctx.text(esc.Value), nil
}

func compilePhrase(tag atom.Atom) compilerFunc {
	return func(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
		content, err := ctx.All(n, "")
		if err != nil {
			return "", err
		}
		return ctx.markup.Element(n, tag, nil, content, false), nil
	}
}

func compileInlineCode(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	code := n.(*mdast.InlineCode)
	return ctx.markup.Element(code, atom.Code, nil, whitespace.Collapse(ctx.encode(code.Value)), false), nil
}

func compileBreak(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	return ctx.markup.Void(n, atom.Br, nil) + "\n", nil
}

func compileLink(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	link := n.(*mdast.Link)
	content, err := ctx.All(link, "")
	if err != nil {
		return "", err
	}
	return ctx.markup.Element(link, atom.A, []markup.Attr{
		markup.A("href", markup.NormalizeURI(link.Href)),
		markup.A("title", link.Title),
	}, content, false), nil
}

func compileImage(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	img := n.(*mdast.Image)
	return ctx.markup.Void(img, atom.Img, []markup.Attr{
		markup.A("src", markup.NormalizeURI(img.Src)),
		markup.A("alt", img.Alt),
		markup.A("title", img.Title),
	}), nil
}

// compileFootnote moves the content of an inline footnote to the footnote
// section and leaves a reference in its place.
func compileFootnote(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	ref := ctx.footnotes.allocateInline(n.(*mdast.Footnote))
	return ctx.visit(ref, parent)
}

func compileFootnoteReference(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	ref := n.(*mdast.FootnoteReference)
	anchor := ctx.markup.Element(nil, atom.A, []markup.Attr{
		markup.A("href", "#fn-"+ref.Identifier),
	}, ctx.encode(ref.Identifier), false)
	return ctx.markup.Element(ref, atom.Sup, []markup.Attr{
		markup.A("id", "fnref-"+ref.Identifier),
	}, anchor, false), nil
}
