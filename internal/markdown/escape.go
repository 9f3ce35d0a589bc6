package markdown

import "strings"

// Reserved lists the characters that Escape prefixes with a backslash.
const Reserved = "\\`*_{}[]#+-|"

var escaper = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(Reserved))
	for _, c := range Reserved {
		pairs = append(pairs, string(c), `\`+string(c))
	}
	return strings.NewReplacer(pairs...)
}()

// Escape backslash-escapes every reserved Markdown character in s. It is not
// idempotent: escaping already escaped text escapes the backslashes again.
func Escape(s string) string {
	return escaper.Replace(s)
}
