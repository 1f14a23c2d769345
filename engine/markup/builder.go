package markup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/mdhtml/input/mdast"
	"golang.org/x/net/html/atom"
)

// Attr is an attribute of an element. Value may be a string, an integer,
// a float, a bool, a []string (joined by spaces) or nil.
//
// Attributes with a nil, false or empty value are not rendered. The one
// exception is "alt", which is rendered even if empty. A true value renders
// the attribute name only.
type Attr struct {
	Key   string
	Value interface{}
}

// A builds an attribute.
func A(key string, value interface{}) Attr {
	return Attr{Key: key, Value: value}
}

// Builder creates HTML elements.
type Builder struct {
	Encoder
	Sanitize bool // escape content of node data, ignore its element names and script attributes
}

// Element renders an element with start tag, content and end tag.
// content is expected to be rendered HTML already. If block is set,
// non-empty content is put on lines of its own.
// n is the node the element is created for and may be nil.
func (b Builder) Element(n mdast.Node, tag atom.Atom, attrs []Attr, content string, block bool) string {
	name, attrs, override, hasOverride := b.applyData(n, tag, attrs)
	if hasOverride {
		content = override
	}
	var sb strings.Builder
	sb.Grow(len(content) + 2*len(name) + 16)
	b.startTag(&sb, name, attrs)
	if block && content != "" {
		sb.WriteByte('\n')
		sb.WriteString(content)
		sb.WriteByte('\n')
	} else {
		sb.WriteString(content)
	}
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
	return sb.String()
}

// Void renders an element without content and without end tag, e.g. <hr>.
func (b Builder) Void(n mdast.Node, tag atom.Atom, attrs []Attr) string {
	name, attrs, _, _ := b.applyData(n, tag, attrs)
	var sb strings.Builder
	b.startTag(&sb, name, attrs)
	return sb.String()
}

func (b Builder) startTag(sb *strings.Builder, name string, attrs []Attr) {
	sb.WriteByte('<')
	sb.WriteString(name)
	for _, a := range attrs {
		if !isName(a.Key) {
			tracer().Infof("dropping attribute with malformed name %q", a.Key)
			continue
		}
		v, ok := attrValue(a)
		if !ok {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		if v == nil {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(b.Encode(*v))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

// attrValue returns the string value of an attribute, or nil for an
// attribute without value. ok is false if the attribute is to be omitted.
func attrValue(a Attr) (v *string, ok bool) {
	var s string
	switch x := a.Value.(type) {
	case nil:
		return nil, false
	case bool:
		return nil, x
	case string:
		s = x
	case int:
		s = strconv.Itoa(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case []string:
		s = strings.Join(x, " ")
	case []interface{}:
		parts := make([]string, 0, len(x))
		for _, p := range x {
			parts = append(parts, fmt.Sprint(p))
		}
		s = strings.Join(parts, " ")
	default:
		s = fmt.Sprint(x)
	}
	if s == "" && a.Key != "alt" {
		return nil, false
	}
	return &s, true
}

// applyData merges the rendering hints of n into name and attributes.
func (b Builder) applyData(n mdast.Node, tag atom.Atom, attrs []Attr) (string, []Attr, string, bool) {
	name := tag.String()
	if n == nil {
		return name, attrs, "", false
	}
	data := n.NodeData()
	if data == nil {
		return name, attrs, "", false
	}
	if data.HTMLName != "" && b.Sanitize {
		tracer().Debugf("sanitizing: ignoring element name %q of node %s", data.HTMLName, mdast.TypeName(n))
	} else if data.HTMLName != "" && !isName(data.HTMLName) {
		tracer().Infof("ignoring malformed element name %q of node %s", data.HTMLName, mdast.TypeName(n))
	} else if data.HTMLName != "" {
		tracer().Debugf("node %s renders as <%s> instead of <%s>", mdast.TypeName(n), data.HTMLName, name)
		name = data.HTMLName
	}
	if len(data.HTMLAttributes) > 0 {
		merged := make([]Attr, len(attrs), len(attrs)+len(data.HTMLAttributes))
		copy(merged, attrs)
		keys := make([]string, 0, len(data.HTMLAttributes))
		for k := range data.HTMLAttributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !isName(k) || (b.Sanitize && unsafeAttr(k)) {
				tracer().Infof("dropping attribute %q of node %s", k, mdast.TypeName(n))
				continue
			}
			merged = setAttr(merged, k, data.HTMLAttributes[k])
		}
		attrs = merged
	}
	if data.HTMLContent != "" {
		content := data.HTMLContent
		if b.Sanitize {
			content = b.Encode(content)
		}
		return name, attrs, content, true
	}
	return name, attrs, "", false
}

func setAttr(attrs []Attr, key string, value interface{}) []Attr {
	for i := range attrs {
		if attrs[i].Key == key {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, Attr{Key: key, Value: value})
}

// isName checks s against [A-Za-z][A-Za-z0-9-]*, which covers every name
// an element or attribute is given here.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '-'):
		default:
			return false
		}
	}
	return true
}

// unsafeAttr is true for attributes which may carry script or styling.
// They are not taken from node data when sanitizing.
func unsafeAttr(key string) bool {
	key = strings.ToLower(key)
	return strings.HasPrefix(key, "on") || key == "style" || key == "srcdoc"
}
