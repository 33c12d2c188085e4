package checklist

import (
	"strconv"
	"strings"
	"unicode"
)

// NormalizeHeaders converts raw spreadsheet headers into lowercase
// snake_case column names. Runs of non-alphanumeric characters collapse
// into a single underscore, headers that normalize to nothing become
// 'x', and repeated names get numeric suffixes in occurrence order
// ('note', 'note_2', 'note_3') so every column stays addressable.
func NormalizeHeaders(raw []string) []string {
	res := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := normalizeHeader(h)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = name + "_" + strconv.Itoa(n)
		}
		res[i] = name
	}
	return res
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	var sep bool
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
		} else {
			sep = true
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}
