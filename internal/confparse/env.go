package confparse

import (
	"os"
	"strings"
)

// ExpandEnv substitutes "$ENV:NAME" tokens in an unquoted value string.
// A token is only recognized when it starts the string or is preceded by
// whitespace; NAME runs to the next space or end of string. Unmatched
// names expand to the empty string. Any other "$" is copied verbatim.
//
// ExpandEnv must never be called on a quoted value: spec.md's quoted vs.
// unquoted value law exempts quoted values from environment expansion.
func ExpandEnv(value string) string {
	if !strings.Contains(value, "$") {
		return value
	}

	var out strings.Builder
	out.Grow(len(value))

	i := 0
	for i < len(value) {
		dollar := strings.IndexByte(value[i:], '$')
		if dollar == -1 {
			out.WriteString(value[i:])
			break
		}
		dollar += i
		out.WriteString(value[i:dollar])

		atStart := dollar == 0 || isWhite(value[dollar-1])
		if atStart && strings.HasPrefix(value[dollar:], "$ENV:") {
			rest := value[dollar+len("$ENV:"):]
			name := rest
			end := dollar + len("$ENV:") + len(rest)
			if sp := strings.IndexByte(rest, ' '); sp != -1 {
				name = rest[:sp]
				end = dollar + len("$ENV:") + sp
			}
			out.WriteString(os.Getenv(name))
			i = end
			continue
		}

		out.WriteByte('$')
		i = dollar + 1
	}

	return out.String()
}

func isWhite(b byte) bool {
	return b == ' ' || b == '\t'
}
