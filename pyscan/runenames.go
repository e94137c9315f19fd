package pyscan

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

const cjkIdeographPrefix = "CJK UNIFIED IDEOGRAPH-"

var (
	runeIndexOnce sync.Once
	runeIndex     map[string]rune
)

// lookupRune resolves a Unicode character name as used by `\N{...}`
// escapes. Matching is case-insensitive.
func lookupRune(name string) (rune, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if hex, ok := strings.CutPrefix(name, cjkIdeographPrefix); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !unicode.Is(unicode.Han, rune(v)) {
			return 0, false
		}
		return rune(v), true
	}

	runeIndexOnce.Do(buildRuneIndex)
	r, ok := runeIndex[name]
	return r, ok
}

// buildRuneIndex inverts runenames.Name. It walks every code point once, so
// it only runs the first time a named escape is decoded.
func buildRuneIndex() {
	runeIndex = make(map[string]rune, 1<<16)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		name := runenames.Name(r)
		if name == "" || strings.HasPrefix(name, "<") {
			continue
		}
		if _, dup := runeIndex[name]; !dup {
			runeIndex[name] = r
		}
	}
}
