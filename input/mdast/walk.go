package mdast

import (
	"errors"
	"reflect"
)

// SkipChildren may be returned by a WalkFunc to prevent Walk from
// descending into the children of the current node.
var SkipChildren = errors.New("skip children")

// WalkFunc is called by Walk for every node, parent is nil for the start node.
type WalkFunc func(n Node, parent Node) error

// Walk traverses a tree depth-first, calling fn for each node in document
// order (pre-order). It stops at the first error returned by fn, except for
// SkipChildren.
func Walk(n Node, fn WalkFunc) error {
	if n == nil {
		return nil
	}
	return walk(n, nil, fn)
}

func walk(n Node, parent Node, fn WalkFunc) error {
	if err := fn(n, parent); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, c := range Children(n) {
		if err := walk(c, n, fn); err != nil {
			return err
		}
	}
	return nil
}

// IsNil is true for a nil node, including a nil pointer of a node type.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Children returns the children of n in document order. Leaf nodes and
// nil nodes return nil.
func Children(n Node) []Node {
	if IsNil(n) {
		return nil
	}
	switch t := n.(type) {
	case *Root:
		return blocks(t.Children)
	case *Blockquote:
		return blocks(t.Children)
	case *ListItem:
		return blocks(t.Children)
	case *FootnoteDefinition:
		return blocks(t.Children)
	case *Paragraph:
		return inlines(t.Children)
	case *Heading:
		return inlines(t.Children)
	case *TableCell:
		return inlines(t.Children)
	case *Strong:
		return inlines(t.Children)
	case *Emphasis:
		return inlines(t.Children)
	case *Delete:
		return inlines(t.Children)
	case *Link:
		return inlines(t.Children)
	case *Footnote:
		return inlines(t.Children)
	case *LinkReference:
		return inlines(t.Children)
	case *List:
		if len(t.Children) == 0 {
			return nil
		}
		ch := make([]Node, len(t.Children))
		for i, c := range t.Children {
			ch[i] = c
		}
		return ch
	case *Table:
		if len(t.Children) == 0 {
			return nil
		}
		ch := make([]Node, len(t.Children))
		for i, c := range t.Children {
			ch[i] = c
		}
		return ch
	case *TableRow:
		if len(t.Children) == 0 {
			return nil
		}
		ch := make([]Node, len(t.Children))
		for i, c := range t.Children {
			ch[i] = c
		}
		return ch
	case *Unknown:
		return t.Children
	}
	return nil
}

func blocks(b []Block) []Node {
	if len(b) == 0 {
		return nil
	}
	ch := make([]Node, len(b))
	for i, c := range b {
		ch[i] = c
	}
	return ch
}

func inlines(in []Inline) []Node {
	if len(in) == 0 {
		return nil
	}
	ch := make([]Node, len(in))
	for i, c := range in {
		ch[i] = c
	}
	return ch
}
