// Package output writes extraction results as JSON in the layout produced by
// Python's json.dumps defaults: one line, ", " and ": " separators.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf16"
	"unicode/utf8"
)

// Writer handles structured output.
type Writer struct {
	out   io.Writer
	ascii bool
}

// Config holds output configuration.
type Config struct {
	// ASCII escapes every non-ASCII character (and DEL) as \uXXXX.
	ASCII  bool
	Output io.Writer
}

// New creates a new output Writer.
func New(cfg Config) *Writer {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Writer{
		out:   cfg.Output,
		ascii: cfg.ASCII,
	}
}

// Write outputs a value as a single line of JSON.
func (w *Writer) Write(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}

	_, err := w.out.Write(respace(buf.Bytes(), w.ascii))
	return err
}

// respace rewrites compact encoding/json output: a space follows every
// separator outside string literals, and with ascii set every non-ASCII rune
// inside them is escaped.
func respace(b []byte, ascii bool) []byte {
	out := make([]byte, 0, len(b)+len(b)/4)
	inString := false
	for i := 0; i < len(b); i++ {
		c := b[i]
		if !inString {
			out = append(out, c)
			switch c {
			case '"':
				inString = true
			case ',', ':':
				out = append(out, ' ')
			}
			continue
		}

		switch {
		case c == '\\':
			// Copy the escape and the byte it protects.
			out = append(out, c, b[i+1])
			i++
		case c == '"':
			out = append(out, c)
			inString = false
		case ascii && c == 0x7f:
			out = append(out, `\u007f`...)
		case ascii && c >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(b[i:])
			out = appendEscapedRune(out, r)
			i += size - 1
		default:
			out = append(out, c)
		}
	}
	return out
}

func appendEscapedRune(out []byte, r rune) []byte {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		return fmt.Appendf(out, `\u%04x\u%04x`, hi, lo)
	}
	return fmt.Appendf(out, `\u%04x`, r)
}
