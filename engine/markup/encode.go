package markup

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// EntityMode selects how much an Encoder encodes.
type EntityMode int

const (
	// EscapeOnly encodes only characters which are unsafe in HTML text and
	// attribute values.
	EscapeOnly EntityMode = iota
	// NumericEntities additionally encodes every non-ASCII character as a
	// hexadecimal character reference.
	NumericEntities
)

// EntityModeFromString maps "escape" and "numbers" to an EntityMode.
func EntityModeFromString(s string) (EntityMode, bool) {
	switch strings.ToLower(s) {
	case "", "escape":
		return EscapeOnly, true
	case "numbers":
		return NumericEntities, true
	}
	return EscapeOnly, false
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&#x27;",
	"`", "&#x60;",
)

// Encoder encodes text for inclusion into HTML text or attribute values.
type Encoder struct {
	Mode EntityMode
}

// Encode escapes s according to the encoder's mode.
func (enc Encoder) Encode(s string) string {
	s = escaper.Replace(s)
	if enc.Mode != NumericEntities {
		return s
	}
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		b.WriteString("&#x")
		b.WriteString(strings.ToUpper(strconv.FormatInt(int64(r), 16)))
		b.WriteByte(';')
	}
	return b.String()
}
