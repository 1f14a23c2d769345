package markup

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/mdhtml/input/mdast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestEncode(t *testing.T) {
	enc := Encoder{}
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot; &#x27;e&#x27; &#x60;", enc.Encode(`a & b <c> "d" 'e' `+"`"))
	assert.Equal(t, "Grüße", enc.Encode("Grüße"))
	enc.Mode = NumericEntities
	assert.Equal(t, "Gr&#xFC;&#xDF;e &amp; &#x1F600;", enc.Encode("Grüße & 😀"))
	m, ok := EntityModeFromString("Numbers")
	assert.True(t, ok)
	assert.Equal(t, NumericEntities, m)
	_, ok = EntityModeFromString("named")
	assert.False(t, ok)
}

func TestNormalizeURI(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"https://example.com/a?b=c&d#e", "https://example.com/a?b=c&d#e"},
		{"/path with spaces", "/path%20with%20spaces"},
		{"/ä", "/%C3%A4"},
		{"/already%20encoded", "/already%20encoded"},
		{"/100%", "/100%25"},
		{"/%zz", "/%25zz"},
		{`"quoted"`, "%22quoted%22"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, NormalizeURI(c.in), "normalize %q", c.in)
	}
}

func TestElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markup")
	defer teardown()
	//
	b := Builder{}
	assert.Equal(t, "<p>x</p>", b.Element(nil, atom.P, nil, "x", false))
	assert.Equal(t, "<blockquote>\n<p>x</p>\n</blockquote>",
		b.Element(nil, atom.Blockquote, nil, "<p>x</p>", true))
	assert.Equal(t, "<tbody></tbody>", b.Element(nil, atom.Tbody, nil, "", true))
	assert.Equal(t, "<hr>", b.Void(nil, atom.Hr, nil))
	assert.Equal(t, `<ol start="3">`, b.Void(nil, atom.Ol, []Attr{A("start", 3)}))
	assert.Equal(t, `<img src="a.png" alt="">`,
		b.Void(nil, atom.Img, []Attr{A("src", "a.png"), A("alt", ""), A("title", "")}))
	assert.Equal(t, `<input type="checkbox" checked disabled>`,
		b.Void(nil, atom.Input, []Attr{A("type", "checkbox"), A("checked", true), A("disabled", true), A("hidden", false)}))
	assert.Equal(t, `<code class="language-go x">`,
		b.Void(nil, atom.Code, []Attr{A("class", []string{"language-go", "x"})}))
}

func TestElementAttributeEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markup")
	defer teardown()
	//
	b := Builder{}
	out := b.Element(nil, atom.A, []Attr{A("href", "/x?a=1&b=2"), A("title", `say "hi" <now>`)}, "link", false)
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	a := cascadia.MustCompile("a").MatchFirst(doc)
	require.NotNil(t, a)
	attrs := map[string]string{}
	for _, at := range a.Attr {
		attrs[at.Key] = at.Val
	}
	assert.Equal(t, "/x?a=1&b=2", attrs["href"])
	assert.Equal(t, `say "hi" <now>`, attrs["title"])
}

func TestElementWithNodeData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markup")
	defer teardown()
	//
	n := &mdast.Paragraph{Meta: mdast.Meta{Data: &mdast.Data{
		HTMLName: "section",
		HTMLAttributes: map[string]interface{}{
			"id":    "intro",
			"class": "lead",
		},
	}}}
	b := Builder{}
	assert.Equal(t, `<section class="lead" id="intro">x</section>`,
		b.Element(n, atom.P, nil, "x", false))
	//
	n.Data = &mdast.Data{HTMLAttributes: map[string]interface{}{"id": "new"}, HTMLContent: "<b>raw</b>"}
	assert.Equal(t, `<p id="new"><b>raw</b></p>`, b.Element(n, atom.P, []Attr{A("id", "old")}, "x", false))
	b.Sanitize = true
	assert.Equal(t, `<p id="new">&lt;b&gt;raw&lt;/b&gt;</p>`, b.Element(n, atom.P, nil, "x", false))
}

func TestElementDataNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.markup")
	defer teardown()
	//
	n := &mdast.Paragraph{Meta: mdast.Meta{Data: &mdast.Data{
		HTMLName: "p><script>alert(1)</script",
		HTMLAttributes: map[string]interface{}{
			`x" onmouseover="alert(2)`: "y",
			"data-note":                "ok",
		},
	}}}
	b := Builder{}
	assert.Equal(t, `<p data-note="ok">x</p>`, b.Element(n, atom.P, nil, "x", false))
	assert.Equal(t, `<hr data-note="ok">`, b.Void(n, atom.Hr, nil))
	assert.Equal(t, `<p>x</p>`, b.Element(nil, atom.P, []Attr{A("a b", "c")}, "x", false))
	//
	n.Data = &mdast.Data{
		HTMLName: "section",
		HTMLAttributes: map[string]interface{}{
			"onclick": "alert(3)",
			"OnLoad":  "alert(4)",
			"style":   "color:red",
			"class":   "lead",
		},
	}
	assert.Equal(t, `<section OnLoad="alert(4)" class="lead" onclick="alert(3)" style="color:red">x</section>`,
		b.Element(n, atom.P, nil, "x", false))
	b.Sanitize = true
	assert.Equal(t, `<p class="lead">x</p>`, b.Element(n, atom.P, nil, "x", false))
}
