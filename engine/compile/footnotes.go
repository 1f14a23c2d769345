package compile

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/mdhtml/engine/markup"
	"github.com/npillmayer/mdhtml/input/mdast"
	"golang.org/x/net/html/atom"
)

// FootnoteRecord is an entry of the footnote section.
type FootnoteRecord struct {
	Identifier string
	Children   []mdast.Node
	Position   *mdast.Position
	source     mdast.Node // footnote definition or inline footnote
}

// footnoteStore keeps footnotes in the order they will be rendered:
// defined footnotes in document order, followed by inline footnotes in
// order of encounter.
type footnoteStore struct {
	records []*FootnoteRecord
	byID    map[string]*FootnoteRecord
	used    *hashset.Set // identifiers taken
	next    int          // no identifier below next is free
}

func newFootnoteStore() *footnoteStore {
	return &footnoteStore{
		byID: make(map[string]*FootnoteRecord),
		used: hashset.New(),
		next: 1,
	}
}

// appendExplicit stores a footnote definition. A definition with an
// identifier already stored replaces the content of the earlier one, but
// keeps its place.
func (fs *footnoteStore) appendExplicit(def *mdast.FootnoteDefinition) {
	children := mdast.Children(def)
	if rec, dup := fs.byID[def.Identifier]; dup {
		tracer().Debugf("footnote definition [^%s] overwrites an earlier one", def.Identifier)
		rec.Children, rec.Position, rec.source = children, def.Position, def
		return
	}
	fs.add(&FootnoteRecord{
		Identifier: def.Identifier,
		Children:   children,
		Position:   def.Position,
		source:     def,
	})
}

// allocateInline stores an inline footnote under the smallest positive
// number not yet used as an identifier. It returns a reference to the new
// footnote, to be compiled in place of fn.
func (fs *footnoteStore) allocateInline(fn *mdast.Footnote) *mdast.FootnoteReference {
	for fs.used.Contains(strconv.Itoa(fs.next)) {
		fs.next++
	}
	id := strconv.Itoa(fs.next)
	fs.add(&FootnoteRecord{
		Identifier: id,
		Children:   mdast.Children(fn),
		Position:   fn.Position,
		source:     fn,
	})
	tracer().Debugf("inline footnote gets identifier %s", id)
	return &mdast.FootnoteReference{
		Meta:       mdast.Meta{Position: fn.Position},
		Identifier: id,
	}
}

func (fs *footnoteStore) add(rec *FootnoteRecord) {
	fs.records = append(fs.records, rec)
	fs.byID[rec.Identifier] = rec
	fs.used.Add(rec.Identifier)
}

// Footnotes returns the footnotes collected so far, in rendering order.
func (ctx *Context) Footnotes() []FootnoteRecord {
	recs := make([]FootnoteRecord, len(ctx.footnotes.records))
	for i, r := range ctx.footnotes.records {
		recs[i] = *r
	}
	return recs
}

// footnoteSection renders all stored footnotes as an ordered list, each
// followed by a link back to its reference. Footnotes found while
// rendering the section are appended and rendered as well.
func (ctx *Context) footnoteSection() (string, error) {
	fs := ctx.footnotes
	if len(fs.records) == 0 {
		return "", nil
	}
	var items []string
	for i := 0; i < len(fs.records); i++ {
		rec := fs.records[i]
		parts, err := ctx.allOf(rec.source, rec.Children)
		if err != nil {
			return "", err
		}
		if _, inline := rec.source.(*mdast.Footnote); inline && len(parts) > 0 {
			parts = []string{strings.Join(parts, "")}
		}
		backref := ctx.markup.Element(nil, atom.A, []markup.Attr{
			markup.A("href", "#fnref-"+rec.Identifier),
			markup.A("class", "footnote-backref"),
		}, "↩", false)
		parts = append(parts, backref)
		items = append(items, ctx.markup.Element(nil, atom.Li, []markup.Attr{
			markup.A("id", "fn-"+rec.Identifier),
		}, strings.Join(parts, "\n"), true))
	}
	tracer().Debugf("footnote section has %d entries", len(items))
	hr := ctx.markup.Void(nil, atom.Hr, nil)
	ol := ctx.markup.Element(nil, atom.Ol, nil, strings.Join(items, "\n"), true)
	section := ctx.markup.Element(nil, atom.Div, []markup.Attr{markup.A("class", "footnotes")},
		hr+"\n"+ol, true)
	return section + "\n", nil
}
