package markup

import "strings"

const hexDigits = "0123456789ABCDEF"

// NormalizeURI percent-encodes every byte of uri which may not appear
// literally in a URI. Existing escapes of the form %XX are kept, a '%' not
// starting a valid escape is encoded as %25.
func NormalizeURI(uri string) string {
	var b strings.Builder
	b.Grow(len(uri) + 8)
	for i := 0; i < len(uri); i++ {
		c := uri[i]
		switch {
		case c == '%':
			if i+2 < len(uri) && isHex(uri[i+1]) && isHex(uri[i+2]) {
				b.WriteString(uri[i : i+3])
				i += 2
			} else {
				b.WriteString("%25")
			}
		case isURISafe(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
		}
	}
	return b.String()
}

func isURISafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(";/?:@&=+$,-_.!~*'()#", c) >= 0
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
