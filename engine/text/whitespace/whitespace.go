package whitespace

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/uax/grapheme"
)

// TabWidth is the distance between tab stops.
const TabWidth = 4

var setupGraphemes sync.Once

// Detab replaces every tab character with spaces up to the next tab stop.
// Tab stops are every width columns; a width below 1 is treated as TabWidth.
func Detab(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	if width < 1 {
		width = TabWidth
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.ContainsRune(line, '\t') {
			lines[i] = detabLine(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

func detabLine(line string, width int) string {
	var b strings.Builder
	b.Grow(len(line) + 2*width)
	gstr := grapheme.StringFromString(line)
	column := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if g == "\t" {
			pad := width - column%width
			b.WriteString(strings.Repeat(" ", pad))
			column += pad
			continue
		}
		b.WriteString(g)
		column++
	}
	return b.String()
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimLeft removes leading whitespace.
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// Collapse replaces every run of whitespace, including line breaks and
// leading or trailing runs, by a single space.
func Collapse(s string) string {
	return collapse(s, unicode.IsSpace)
}

// CollapseSpaces replaces every run of spaces and tabs by a single space.
// Line breaks are kept.
func CollapseSpaces(s string) string {
	return collapse(s, isBlank)
}

func collapse(s string, isWS func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isWS(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// TrimLines removes spaces and tabs at line boundaries and merges
// consecutive line breaks. The first line's start and the last line's end
// are left alone.
func TrimLines(s string) string {
	if !strings.ContainsRune(s, '\n') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		j := i
		for j < len(s) && isBlank(rune(s[j])) {
			j++
		}
		if j < len(s) && s[j] == '\n' {
			for j < len(s) && s[j] == '\n' {
				j++
			}
			for j < len(s) && isBlank(rune(s[j])) {
				j++
			}
			b.WriteByte('\n')
			i = j
			continue
		}
		b.WriteString(s[i:j])
		if j < len(s) {
			b.WriteByte(s[j])
		}
		i = j + 1
	}
	return b.String()
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
