package mdast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRoot() *Root {
	return &Root{Children: []Block{
		&Paragraph{Children: []Inline{
			&Text{Value: "a"},
			&Emphasis{Children: []Inline{&Text{Value: "b"}}},
		}},
		&Blockquote{Children: []Block{
			&Definition{Identifier: "x", Link: "/x"},
		}},
		&List{Children: []*ListItem{
			{Children: []Block{&Paragraph{Children: []Inline{&Text{Value: "c"}}}}},
		}},
	}}
}

func TestWalkOrder(t *testing.T) {
	var kinds []string
	err := Walk(sampleRoot(), func(n Node, parent Node) error {
		kinds = append(kinds, TypeName(n))
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"root", "paragraph", "text", "emphasis", "text",
		"blockquote", "definition",
		"list", "listItem", "paragraph", "text",
	}, kinds)
}

func TestWalkSkipAndStop(t *testing.T) {
	count := 0
	err := Walk(sampleRoot(), func(n Node, parent Node) error {
		count++
		if n.Kind() == KindParagraph {
			return SkipChildren
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	//
	stop := errors.New("stop")
	err = Walk(sampleRoot(), func(n Node, parent Node) error {
		if n.Kind() == KindDefinition {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
}

func TestChildrenOfLeaves(t *testing.T) {
	assert.Nil(t, Children(&Text{Value: "x"}))
	assert.Nil(t, Children(&Table{}))
	assert.Len(t, Children(&Table{Children: []*TableRow{{}, {}}}), 2)
}

func TestNilNodes(t *testing.T) {
	var p *Paragraph
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.False(t, IsNil(&Paragraph{}))
	assert.Nil(t, Children(p))
	n := 0
	err := Walk(&Root{Children: []Block{p, nil}}, func(Node, Node) error {
		n++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}
