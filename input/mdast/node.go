package mdast

import "strconv"

// Kind is the type tag of a node.
type Kind int

// Node kinds. Names follow the mdast "type" property.
const (
	KindUnknown Kind = iota
	KindRoot
	KindParagraph
	KindHeading
	KindBlockquote
	KindList
	KindListItem
	KindCode
	KindTable
	KindTableRow
	KindTableCell
	KindHTML
	KindThematicBreak
	KindInlineCode
	KindStrong
	KindEmphasis
	KindDelete
	KindBreak
	KindLink
	KindImage
	KindFootnote
	KindFootnoteReference
	KindLinkReference
	KindImageReference
	KindText
	KindEscape
	KindDefinition
	KindFootnoteDefinition
	KindYAML
	kindStopper
)

var kindNames = [...]string{
	"unknown", "root", "paragraph", "heading", "blockquote", "list", "listItem",
	"code", "table", "tableRow", "tableCell", "html", "thematicBreak",
	"inlineCode", "strong", "emphasis", "delete", "break", "link", "image",
	"footnote", "footnoteReference", "linkReference", "imageReference",
	"text", "escape", "definition", "footnoteDefinition", "yaml",
}

func (k Kind) String() string {
	if k < 0 || k >= kindStopper {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// KindOf returns the kind for an mdast type name. "horizontalRule" and
// "rule" are accepted as older names of thematicBreak. Unknown names
// return KindUnknown.
func KindOf(name string) Kind {
	switch name {
	case "horizontalRule", "rule":
		return KindThematicBreak
	}
	for k := KindRoot; k < kindStopper; k++ {
		if kindNames[k] == name {
			return k
		}
	}
	return KindUnknown
}

// Point is a place in the source document.
type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset,omitempty"`
}

// Position is the source span of a node. It is carried along but never
// interpreted.
type Position struct {
	Start  Point `json:"start"`
	End    Point `json:"end"`
	Indent []int `json:"indent,omitempty"`
}

// Data holds rendering hints attached to a node by upstream tools.
// HTMLName replaces the element name, HTMLAttributes are merged into the
// element's attributes and a non-empty HTMLContent replaces the element's
// content.
type Data struct {
	HTMLName       string                 `json:"htmlName,omitempty"`
	HTMLAttributes map[string]interface{} `json:"htmlAttributes,omitempty"`
	HTMLContent    string                 `json:"htmlContent,omitempty"`
}

// Node is a node of a document tree.
type Node interface {
	Kind() Kind
	Pos() *Position
	NodeData() *Data
	node()
}

// Block is flow content: it may appear in the root, in blockquotes,
// list items and footnote definitions.
type Block interface {
	Node
	block()
}

// Inline is phrasing content: it may appear in paragraphs, headings,
// table cells and inline containers.
type Inline interface {
	Node
	inline()
}

// Meta is embedded in every node type.
type Meta struct {
	Position *Position
	Data     *Data
}

// Pos returns the source span of a node, if any.
func (m *Meta) Pos() *Position { return m.Position }

// NodeData returns the rendering hints of a node, if any.
func (m *Meta) NodeData() *Data { return m.Data }

// Align is the alignment of a table column.
type Align int

// Column alignments. AlignNone renders no alignment attribute.
const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return ""
}

// ReferenceType tells how a reference has been written.
type ReferenceType int

// Reference types. A shortcut reference is written as just "[label]".
const (
	ReferenceFull ReferenceType = iota
	ReferenceCollapsed
	ReferenceShortcut
)

func (rt ReferenceType) String() string {
	switch rt {
	case ReferenceCollapsed:
		return "collapsed"
	case ReferenceShortcut:
		return "shortcut"
	}
	return "full"
}

// --- Containers ------------------------------------------------------------

// Root is the top of a document tree.
type Root struct {
	Meta
	Children []Block
}

// Paragraph is a run of phrasing content.
type Paragraph struct {
	Meta
	Children []Inline
}

// Heading is a section heading of Depth 1…6.
type Heading struct {
	Meta
	Depth    int
	Children []Inline
}

// Blockquote is a quoted section of flow content.
type Blockquote struct {
	Meta
	Children []Block
}

// List is an ordered or unordered list. Start is the number of the first
// item of an ordered list; nil means "unspecified".
type List struct {
	Meta
	Ordered  bool
	Start    *int
	Loose    bool
	Children []*ListItem
}

// ListItem is an item of a list. Checked is non-nil for task list items.
type ListItem struct {
	Meta
	Checked  *bool
	Children []Block
}

// Code is a block of preformatted code. Lang is the info string.
type Code struct {
	Meta
	Lang  string
	Value string
}

// Table holds rows of cells. Align has one entry per column.
type Table struct {
	Meta
	Align    []Align
	Children []*TableRow
}

// TableRow is a row of a table. The first row of a table is its header.
type TableRow struct {
	Meta
	Children []*TableCell
}

// TableCell is a cell of a table row.
type TableCell struct {
	Meta
	Children []Inline
}

// HTML is literal markup, either as a block or inline.
type HTML struct {
	Meta
	Value string
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct {
	Meta
}

// InlineCode is a code span.
type InlineCode struct {
	Meta
	Value string
}

// Strong is strongly emphasized content.
type Strong struct {
	Meta
	Children []Inline
}

// Emphasis is emphasized content.
type Emphasis struct {
	Meta
	Children []Inline
}

// Delete is struck-through content.
type Delete struct {
	Meta
	Children []Inline
}

// Break is a hard line break.
type Break struct {
	Meta
}

// Link is a hyperlink with an inline target.
type Link struct {
	Meta
	Href     string
	Title    string
	Children []Inline
}

// Image is an image with an inline source.
type Image struct {
	Meta
	Src   string
	Alt   string
	Title string
}

// Footnote is a footnote written inline, e.g. "[^this is a note]".
type Footnote struct {
	Meta
	Children []Inline
}

// FootnoteReference refers to a footnote by identifier.
type FootnoteReference struct {
	Meta
	Identifier string
}

// LinkReference is a link whose target is given by a Definition.
type LinkReference struct {
	Meta
	Identifier    string
	ReferenceType ReferenceType
	Children      []Inline
}

// ImageReference is an image whose source is given by a Definition.
type ImageReference struct {
	Meta
	Identifier    string
	ReferenceType ReferenceType
	Alt           string
}

// Text is literal text.
type Text struct {
	Meta
	Value string
}

// Escape is a backslash-escaped character.
type Escape struct {
	Meta
	Value string
}

// Definition declares the target of link and image references.
type Definition struct {
	Meta
	Identifier string
	Link       string
	Title      string
}

// FootnoteDefinition declares the content of a footnote.
type FootnoteDefinition struct {
	Meta
	Identifier string
	Children   []Block
}

// YAML is front matter.
type YAML struct {
	Meta
	Value string
}

// Unknown is a node of a type this package does not model. Type holds the
// original type name.
type Unknown struct {
	Meta
	Type     string
	Value    string
	Children []Node
}

// --- Kinds and markers -----------------------------------------------------

func (*Root) Kind() Kind               { return KindRoot }
func (*Paragraph) Kind() Kind          { return KindParagraph }
func (*Heading) Kind() Kind            { return KindHeading }
func (*Blockquote) Kind() Kind         { return KindBlockquote }
func (*List) Kind() Kind               { return KindList }
func (*ListItem) Kind() Kind           { return KindListItem }
func (*Code) Kind() Kind               { return KindCode }
func (*Table) Kind() Kind              { return KindTable }
func (*TableRow) Kind() Kind           { return KindTableRow }
func (*TableCell) Kind() Kind          { return KindTableCell }
func (*HTML) Kind() Kind               { return KindHTML }
func (*ThematicBreak) Kind() Kind      { return KindThematicBreak }
func (*InlineCode) Kind() Kind         { return KindInlineCode }
func (*Strong) Kind() Kind             { return KindStrong }
func (*Emphasis) Kind() Kind           { return KindEmphasis }
func (*Delete) Kind() Kind             { return KindDelete }
func (*Break) Kind() Kind              { return KindBreak }
func (*Link) Kind() Kind               { return KindLink }
func (*Image) Kind() Kind              { return KindImage }
func (*Footnote) Kind() Kind           { return KindFootnote }
func (*FootnoteReference) Kind() Kind  { return KindFootnoteReference }
func (*LinkReference) Kind() Kind      { return KindLinkReference }
func (*ImageReference) Kind() Kind     { return KindImageReference }
func (*Text) Kind() Kind               { return KindText }
func (*Escape) Kind() Kind             { return KindEscape }
func (*Definition) Kind() Kind         { return KindDefinition }
func (*FootnoteDefinition) Kind() Kind { return KindFootnoteDefinition }
func (*YAML) Kind() Kind               { return KindYAML }
func (*Unknown) Kind() Kind            { return KindUnknown }

func (*Root) node()               {}
func (*Paragraph) node()          {}
func (*Heading) node()            {}
func (*Blockquote) node()         {}
func (*List) node()               {}
func (*ListItem) node()           {}
func (*Code) node()               {}
func (*Table) node()              {}
func (*TableRow) node()           {}
func (*TableCell) node()          {}
func (*HTML) node()               {}
func (*ThematicBreak) node()      {}
func (*InlineCode) node()         {}
func (*Strong) node()             {}
func (*Emphasis) node()           {}
func (*Delete) node()             {}
func (*Break) node()              {}
func (*Link) node()               {}
func (*Image) node()              {}
func (*Footnote) node()           {}
func (*FootnoteReference) node()  {}
func (*LinkReference) node()      {}
func (*ImageReference) node()     {}
func (*Text) node()               {}
func (*Escape) node()             {}
func (*Definition) node()         {}
func (*FootnoteDefinition) node() {}
func (*YAML) node()               {}
func (*Unknown) node()            {}

func (*Paragraph) block()          {}
func (*Heading) block()            {}
func (*Blockquote) block()         {}
func (*List) block()               {}
func (*Code) block()               {}
func (*Table) block()              {}
func (*HTML) block()               {}
func (*ThematicBreak) block()      {}
func (*Definition) block()         {}
func (*FootnoteDefinition) block() {}
func (*YAML) block()               {}
func (*Unknown) block()            {}

func (*HTML) inline()              {}
func (*InlineCode) inline()        {}
func (*Strong) inline()            {}
func (*Emphasis) inline()          {}
func (*Delete) inline()            {}
func (*Break) inline()             {}
func (*Link) inline()              {}
func (*Image) inline()             {}
func (*Footnote) inline()          {}
func (*FootnoteReference) inline() {}
func (*LinkReference) inline()     {}
func (*ImageReference) inline()    {}
func (*Text) inline()              {}
func (*Escape) inline()            {}
func (*Unknown) inline()           {}

// TypeName returns the mdast type name of a node. For *Unknown nodes this
// is the name found in the input.
func TypeName(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if u, ok := n.(*Unknown); ok && u != nil {
		return u.Type
	}
	return n.Kind().String()
}
