package pyscan

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// stringLiteral returns the value of n if n is a plain text string
// constant. Formatted strings and bytes literals are not text constants and
// do not match; neither does an implicit concatenation that contains one.
func stringLiteral(n *sitter.Node, source []byte) (string, bool) {
	switch n.Type() {
	case "string":
		return decodeString(n.Content(source))
	case "concatenated_string":
		var sb strings.Builder
		for _, part := range namedChildren(n) {
			s, ok := stringLiteral(part, source)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
		return sb.String(), true
	default:
		return "", false
	}
}

// decodeString decodes the source text of a single string token including
// its prefix and quotes.
func decodeString(raw string) (string, bool) {
	i := strings.IndexAny(raw, `"'`)
	if i < 0 {
		return "", false
	}

	isRaw := false
	for _, c := range strings.ToLower(raw[:i]) {
		switch c {
		case 'r':
			isRaw = true
		case 'u':
		default: // f, b, t and anything unknown
			return "", false
		}
	}

	body := raw[i:]
	quote := body[:1]
	if strings.HasPrefix(body, strings.Repeat(quote, 3)) && len(body) >= 6 {
		quote = strings.Repeat(quote, 3)
	}
	if len(body) < 2*len(quote) || !strings.HasSuffix(body, quote) {
		return "", false
	}
	body = body[len(quote) : len(body)-len(quote)]

	if isRaw {
		return body, true
	}
	return unescape(body), true
}

// unescape applies Python's backslash escapes for text strings. Escapes
// that Python does not define are kept verbatim.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}

		i++
		switch e := s[i]; e {
		case '\n':
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\\', '\'', '"':
			sb.WriteByte(e)
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(s[i:j], 8, 32)
			sb.WriteRune(rune(v))
			i = j - 1
		case 'x':
			i = writeHexEscape(&sb, s, i, 2)
		case 'u':
			i = writeHexEscape(&sb, s, i, 4)
		case 'U':
			i = writeHexEscape(&sb, s, i, 8)
		case 'N':
			i = writeNamedEscape(&sb, s, i)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

// writeHexEscape decodes the width hex digits following s[i] and returns the
// index of the last consumed byte. Malformed escapes are copied as-is.
func writeHexEscape(sb *strings.Builder, s string, i, width int) int {
	end := i + 1 + width
	if end <= len(s) {
		if v, err := strconv.ParseUint(s[i+1:end], 16, 32); err == nil && v <= 0x10FFFF {
			sb.WriteRune(rune(v))
			return end - 1
		}
	}
	sb.WriteByte('\\')
	sb.WriteByte(s[i])
	return i
}

// writeNamedEscape decodes `\N{NAME}` where s[i] is the N.
func writeNamedEscape(sb *strings.Builder, s string, i int) int {
	if i+1 < len(s) && s[i+1] == '{' {
		if end := strings.IndexByte(s[i+2:], '}'); end >= 0 {
			if r, ok := lookupRune(s[i+2 : i+2+end]); ok {
				sb.WriteRune(r)
				return i + 2 + end
			}
		}
	}
	sb.WriteString(`\N`)
	return i
}
