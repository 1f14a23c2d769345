package compile

import (
	"github.com/npillmayer/mdhtml/engine/markup"
	"github.com/npillmayer/mdhtml/input/mdast"
	"golang.org/x/net/html/atom"
)

// unresolved is true for a shortcut reference without a usable definition.
// Such a reference is rendered as the text it was written as.
func unresolved(rt mdast.ReferenceType, def *mdast.Definition) bool {
	return rt == mdast.ReferenceShortcut && (def == nil || def.Link == "")
}

func compileLinkReference(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	ref := n.(*mdast.LinkReference)
	content, err := ctx.All(ref, "")
	if err != nil {
		return "", err
	}
	def := ctx.definition(ref.Identifier)
	if unresolved(ref.ReferenceType, def) {
		tracer().Debugf("shortcut link reference [%s] is undefined", ref.Identifier)
		return "[" + content + "]", nil
	}
	var href, title string
	if def != nil {
		href, title = markup.NormalizeURI(def.Link), def.Title
	} else {
		tracer().Infof("link reference [%s] is undefined", ref.Identifier)
	}
	return ctx.markup.Element(ref, atom.A, []markup.Attr{
		markup.A("href", href),
		markup.A("title", title),
	}, content, false), nil
}

func compileImageReference(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	ref := n.(*mdast.ImageReference)
	def := ctx.definition(ref.Identifier)
	if unresolved(ref.ReferenceType, def) {
		tracer().Debugf("shortcut image reference [%s] is undefined", ref.Identifier)
		return "![" + ctx.encode(ref.Alt) + "]", nil
	}
	var src, title string
	if def != nil {
		src, title = markup.NormalizeURI(def.Link), def.Title
	} else {
		tracer().Infof("image reference [%s] is undefined", ref.Identifier)
	}
	return ctx.markup.Void(ref, atom.Img, []markup.Attr{
		markup.A("src", src),
		markup.A("alt", ref.Alt),
		markup.A("title", title),
	}), nil
}
