package mdast

import (
	"encoding/json"
	"io"

	"github.com/npillmayer/mdhtml/core"
)

// jsonNode mirrors every property an mdast node may carry in JSON.
type jsonNode struct {
	Type          string      `json:"type"`
	Children      []*jsonNode `json:"children"`
	Value         string      `json:"value"`
	Depth         int         `json:"depth"`
	Ordered       bool        `json:"ordered"`
	Start         *int        `json:"start"`
	Loose         bool        `json:"loose"`
	Spread        bool        `json:"spread"`
	Checked       *bool       `json:"checked"`
	Lang          string      `json:"lang"`
	Align         []*string   `json:"align"`
	Identifier    string      `json:"identifier"`
	Label         string      `json:"label"`
	ReferenceType string      `json:"referenceType"`
	Href          string      `json:"href"`
	Src           string      `json:"src"`
	Link          string      `json:"link"`
	URL           string      `json:"url"`
	Title         string      `json:"title"`
	Alt           string      `json:"alt"`
	Position      *Position   `json:"position"`
	Data          *Data       `json:"data"`
}

// Decode reads a JSON encoded mdast tree from r. The top-level node must be
// of type "root".
func Decode(r io.Reader) (*Root, error) {
	var jn jsonNode
	if err := json.NewDecoder(r).Decode(&jn); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode document tree: %v", err)
	}
	return fromJSON(&jn)
}

// Unmarshal decodes a JSON encoded mdast tree.
func Unmarshal(data []byte) (*Root, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode document tree: %v", err)
	}
	return fromJSON(&jn)
}

func fromJSON(jn *jsonNode) (*Root, error) {
	if jn.Type != "root" {
		return nil, core.Error(core.EINVALID, "document tree must start with a root node, not %q", jn.Type)
	}
	n, err := convert(jn)
	if err != nil {
		return nil, err
	}
	root := n.(*Root)
	tracer().Debugf("decoded tree with %d top-level blocks", len(root.Children))
	return root, nil
}

func convert(jn *jsonNode) (Node, error) {
	if jn == nil {
		return nil, core.Error(core.EINVALID, "document tree contains a null node")
	}
	meta := Meta{Position: jn.Position, Data: jn.Data}
	kind := KindOf(jn.Type)
	var err error
	switch kind {
	case KindRoot:
		n := &Root{Meta: meta}
		n.Children, err = blockChildren(jn)
		return n, err
	case KindParagraph:
		n := &Paragraph{Meta: meta}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindHeading:
		if jn.Depth < 1 || jn.Depth > 6 {
			return nil, core.Error(core.EINVALID, "heading depth must be within 1…6, is %d", jn.Depth)
		}
		n := &Heading{Meta: meta, Depth: jn.Depth}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindBlockquote:
		n := &Blockquote{Meta: meta}
		n.Children, err = blockChildren(jn)
		return n, err
	case KindList:
		n := &List{Meta: meta, Ordered: jn.Ordered, Start: jn.Start, Loose: jn.Loose || jn.Spread}
		for _, c := range jn.Children {
			item, err := convert(c)
			if err != nil {
				return nil, err
			}
			li, ok := item.(*ListItem)
			if !ok {
				return nil, illegalChild(jn, item)
			}
			n.Children = append(n.Children, li)
		}
		return n, nil
	case KindListItem:
		n := &ListItem{Meta: meta, Checked: jn.Checked}
		n.Children, err = blockChildren(jn)
		return n, err
	case KindCode:
		return &Code{Meta: meta, Lang: jn.Lang, Value: jn.Value}, nil
	case KindTable:
		n := &Table{Meta: meta, Align: make([]Align, len(jn.Align))}
		for i, a := range jn.Align {
			n.Align[i] = alignFrom(a)
		}
		for _, c := range jn.Children {
			row, err := convert(c)
			if err != nil {
				return nil, err
			}
			tr, ok := row.(*TableRow)
			if !ok {
				return nil, illegalChild(jn, row)
			}
			n.Children = append(n.Children, tr)
		}
		return n, nil
	case KindTableRow:
		n := &TableRow{Meta: meta}
		for _, c := range jn.Children {
			cell, err := convert(c)
			if err != nil {
				return nil, err
			}
			td, ok := cell.(*TableCell)
			if !ok {
				return nil, illegalChild(jn, cell)
			}
			n.Children = append(n.Children, td)
		}
		return n, nil
	case KindTableCell:
		n := &TableCell{Meta: meta}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindHTML:
		return &HTML{Meta: meta, Value: jn.Value}, nil
	case KindThematicBreak:
		return &ThematicBreak{Meta: meta}, nil
	case KindInlineCode:
		return &InlineCode{Meta: meta, Value: jn.Value}, nil
	case KindStrong:
		n := &Strong{Meta: meta}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindEmphasis:
		n := &Emphasis{Meta: meta}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindDelete:
		n := &Delete{Meta: meta}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindBreak:
		return &Break{Meta: meta}, nil
	case KindLink:
		n := &Link{Meta: meta, Href: firstOf(jn.Href, jn.URL), Title: jn.Title}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindImage:
		return &Image{Meta: meta, Src: firstOf(jn.Src, jn.URL), Alt: jn.Alt, Title: jn.Title}, nil
	case KindFootnote:
		n := &Footnote{Meta: meta}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindFootnoteReference:
		return &FootnoteReference{Meta: meta, Identifier: jn.Identifier}, nil
	case KindLinkReference:
		n := &LinkReference{Meta: meta, Identifier: jn.Identifier}
		if n.ReferenceType, err = referenceTypeFrom(jn.ReferenceType); err != nil {
			return nil, err
		}
		n.Children, err = inlineChildren(jn)
		return n, err
	case KindImageReference:
		n := &ImageReference{Meta: meta, Identifier: jn.Identifier, Alt: jn.Alt}
		n.ReferenceType, err = referenceTypeFrom(jn.ReferenceType)
		return n, err
	case KindText:
		return &Text{Meta: meta, Value: jn.Value}, nil
	case KindEscape:
		return &Escape{Meta: meta, Value: jn.Value}, nil
	case KindDefinition:
		return &Definition{Meta: meta, Identifier: jn.Identifier, Link: firstOf(jn.Link, jn.URL), Title: jn.Title}, nil
	case KindFootnoteDefinition:
		n := &FootnoteDefinition{Meta: meta, Identifier: jn.Identifier}
		n.Children, err = blockChildren(jn)
		return n, err
	case KindYAML:
		return &YAML{Meta: meta, Value: jn.Value}, nil
	}
	tracer().Infof("decoding node of unknown type %q", jn.Type)
	n := &Unknown{Meta: meta, Type: jn.Type, Value: jn.Value}
	for _, c := range jn.Children {
		child, err := convert(c)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func blockChildren(jn *jsonNode) ([]Block, error) {
	var children []Block
	for _, c := range jn.Children {
		n, err := convert(c)
		if err != nil {
			return nil, err
		}
		b, ok := n.(Block)
		if !ok {
			return nil, illegalChild(jn, n)
		}
		children = append(children, b)
	}
	return children, nil
}

func inlineChildren(jn *jsonNode) ([]Inline, error) {
	var children []Inline
	for _, c := range jn.Children {
		n, err := convert(c)
		if err != nil {
			return nil, err
		}
		in, ok := n.(Inline)
		if !ok {
			return nil, illegalChild(jn, n)
		}
		children = append(children, in)
	}
	return children, nil
}

func illegalChild(parent *jsonNode, child Node) error {
	return core.Error(core.EINVALID, "node of type %q cannot contain a node of type %q",
		parent.Type, TypeName(child))
}

func alignFrom(a *string) Align {
	if a == nil {
		return AlignNone
	}
	switch *a {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	case "center":
		return AlignCenter
	}
	return AlignNone
}

func referenceTypeFrom(s string) (ReferenceType, error) {
	switch s {
	case "", "full":
		return ReferenceFull, nil
	case "collapsed":
		return ReferenceCollapsed, nil
	case "shortcut":
		return ReferenceShortcut, nil
	}
	return ReferenceFull, core.Error(core.EINVALID, "unknown reference type %q", s)
}

func firstOf(s ...string) string {
	for _, x := range s {
		if x != "" {
			return x
		}
	}
	return ""
}
