package whitespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetab(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"no tabs", "no tabs"},
		{"\tx", "    x"},
		{"ab\tc", "ab  c"},
		{"abcd\te", "abcd    e"},
		{"a\tb\n\tc", "a   b\n    c"},
		{"é\tx", "é   x"},
		{"e\u0301\tx", "e\u0301   x"}, // combining accent occupies a single column
	}
	for _, c := range cases {
		assert.Equal(t, c.out, Detab(c.in, TabWidth), "detab %q", c.in)
	}
	assert.Equal(t, "a x", Detab("a\tx", 2))
	assert.Equal(t, "a   x", Detab("a\tx", 0))
}

func TestTrimAndCollapse(t *testing.T) {
	assert.Equal(t, "a b", Trim(" \t a b\n "))
	assert.Equal(t, "b  ", TrimLeft(" \n b  "))
	assert.Equal(t, " a b c ", Collapse("  a \n\t b   c\n"))
	assert.Equal(t, "a b\nc d", CollapseSpaces("a  \t b\nc   d"))
}

func TestTrimLines(t *testing.T) {
	assert.Equal(t, "single  line ", TrimLines("single  line "))
	assert.Equal(t, "a\nb", TrimLines("a  \n  b"))
	assert.Equal(t, "a\nb", TrimLines("a\n\n\nb"))
	assert.Equal(t, "  a\nb  ", TrimLines("  a \t\n\tb  "))
	assert.Equal(t, "ü\nö", TrimLines("ü \n ö"))
}
