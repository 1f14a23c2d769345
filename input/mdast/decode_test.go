package mdast

import (
	"strings"
	"testing"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTree = `{
  "type": "root",
  "children": [
    {"type": "heading", "depth": 2, "children": [{"type": "text", "value": "Title"}]},
    {"type": "paragraph", "children": [
      {"type": "text", "value": "see "},
      {"type": "linkReference", "identifier": "Foo", "referenceType": "shortcut",
       "children": [{"type": "text", "value": "Foo"}]},
      {"type": "footnote", "children": [{"type": "text", "value": "inline note"}]}
    ]},
    {"type": "list", "ordered": true, "start": 3, "loose": false, "children": [
      {"type": "listItem", "checked": true, "children": [
        {"type": "paragraph", "children": [{"type": "text", "value": "item"}]}
      ]}
    ]},
    {"type": "table", "align": ["left", null, "center"], "children": [
      {"type": "tableRow", "children": [
        {"type": "tableCell", "children": [{"type": "text", "value": "a"}]}
      ]}
    ]},
    {"type": "definition", "identifier": "foo", "url": "https://example.com", "title": "Ex"},
    {"type": "horizontalRule",
     "position": {"start": {"line": 9, "column": 1}, "end": {"line": 9, "column": 4}}}
  ]
}`

func TestDecodeSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.mdast")
	defer teardown()
	//
	root, err := Decode(strings.NewReader(sampleTree))
	require.NoError(t, err)
	require.Len(t, root.Children, 6)
	h := root.Children[0].(*Heading)
	assert.Equal(t, 2, h.Depth)
	p := root.Children[1].(*Paragraph)
	ref := p.Children[1].(*LinkReference)
	assert.Equal(t, ReferenceShortcut, ref.ReferenceType)
	assert.Equal(t, "Foo", ref.Identifier)
	assert.Equal(t, KindFootnote, p.Children[2].Kind())
	list := root.Children[2].(*List)
	require.NotNil(t, list.Start)
	assert.Equal(t, 3, *list.Start)
	require.NotNil(t, list.Children[0].Checked)
	assert.True(t, *list.Children[0].Checked)
	table := root.Children[3].(*Table)
	assert.Equal(t, []Align{AlignLeft, AlignNone, AlignCenter}, table.Align)
	def := root.Children[4].(*Definition)
	assert.Equal(t, "https://example.com", def.Link)
	hr := root.Children[5].(*ThematicBreak)
	require.NotNil(t, hr.Pos())
	assert.Equal(t, 9, hr.Pos().Start.Line)
}

func TestDecodeUnknownType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.mdast")
	defer teardown()
	//
	root, err := Unmarshal([]byte(`{"type":"root","children":[
		{"type":"math","value":"x^2"}]}`))
	require.NoError(t, err)
	u, ok := root.Children[0].(*Unknown)
	require.True(t, ok)
	assert.Equal(t, "math", TypeName(u))
	assert.Equal(t, "x^2", u.Value)
}

func TestDecodeRejectsIllegalChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.mdast")
	defer teardown()
	//
	inputs := []string{
		`{"type":"paragraph"}`,
		`{"type":"root","children":[{"type":"text","value":"bare"}]}`,
		`{"type":"root","children":[{"type":"list","children":[{"type":"paragraph"}]}]}`,
		`{"type":"root","children":[{"type":"heading","depth":9}]}`,
		`{"type":"root","children":[{"type":"paragraph","children":[
			{"type":"imageReference","referenceType":"sideways"}]}]}`,
		`{"type":"root",`,
	}
	for _, in := range inputs {
		_, err := Unmarshal([]byte(in))
		if assert.Error(t, err, in) {
			assert.Equal(t, core.EINVALID, core.Code(err), in)
		}
	}
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "footnoteDefinition", KindFootnoteDefinition.String())
	assert.Equal(t, KindThematicBreak, KindOf("thematicBreak"))
	assert.Equal(t, KindThematicBreak, KindOf("rule"))
	assert.Equal(t, KindUnknown, KindOf("math"))
	assert.Equal(t, "tableRow", TypeName(&TableRow{}))
}
