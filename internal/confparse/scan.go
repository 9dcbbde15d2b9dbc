package confparse

import "strings"

// stripComment finds where an in-line comment begins, respecting quoted
// spans: a quoted span starts at ' or " and ends at the matching quote,
// and inside one \X escapes any character X. A '#' inside a quoted span
// is literal; a '#' outside one ends the line. warn reports whether the
// byte immediately before '#' was non-whitespace (spec.md §4.6 step 3).
// unterminated reports an opened-but-never-closed quoted span, which is a
// syntax error per spec.md §9's resolved Open Question.
func stripComment(line string) (stripped string, warn, unterminated bool) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '\'', '"':
			quote := c
			i++
			for i < len(line) && line[i] != quote {
				if line[i] == '\\' && i+1 < len(line) {
					i++
				}
				i++
			}
			if i >= len(line) {
				return line, false, true
			}
			// i is at the closing quote; loop's i++ advances past it.
		case '#':
			warn = i > 0 && !isWhite(line[i-1])
			return line[:i], warn, false
		}
	}
	return line, false, false
}

// unescapeQuoted strips the matching outer quote characters from value and
// unescapes \X sequences inside. value must already have been verified to
// start and end with the same quote character.
func unescapeQuoted(value string) string {
	inner := value[1 : len(value)-1]
	var out strings.Builder
	out.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			out.WriteByte(inner[i])
			continue
		}
		out.WriteByte(inner[i])
	}
	return out.String()
}

// isQuotedValue reports whether value begins and ends with matching quote
// characters (and is at least 2 bytes long, so a lone quote is not treated
// as an empty quoted value).
func isQuotedValue(value string) bool {
	if len(value) < 2 {
		return false
	}
	first, last := value[0], value[len(value)-1]
	return (first == '"' || first == '\'') && first == last
}

// lineScanner turns physical lines from an inputStack into logical lines:
// leading whitespace trimmed, blanks/comments dropped, trailing comments
// stripped with quote awareness, and backslash-continued lines joined with
// a single separating space per spec.md §4.6.
type lineScanner struct {
	stack *inputStack
	buf   strings.Builder
}

// logicalLine is one dispatch-ready line plus the frame path/line at which
// it began (for error reporting when the line spans a continuation).
type logicalLine struct {
	text string
	path string
	line int
}

// next returns the next logical line, warning through warn when an
// ambiguous '#' was seen on any of its physical lines. ok is false once
// every frame on the stack is exhausted.
func (s *lineScanner) next(warn func(path string, line int, msg string)) (logicalLine, bool, error) {
	s.buf.Reset()
	startPath, startLine := "", 0

	for {
		if s.stack.top == nil {
			return logicalLine{}, false, nil
		}

		raw, ok, err := s.stack.readLine()
		if err != nil {
			return logicalLine{}, false, err
		}
		if !ok {
			s.stack.pop()
			continue
		}

		path, line := s.stack.top.path, s.stack.top.line
		trimmed := strings.TrimLeft(raw, " \t")
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}

		stripped, didWarn, unterminated := stripComment(trimmed)
		if unterminated {
			return logicalLine{}, false, newParseError(path, line, "Unterminated quoted value")
		}
		if didWarn && warn != nil {
			warn(path, line, "Ambiguous '#' character in line, treating it as comment. Add a space before it to remove this warning.")
		}

		stripped = strings.TrimRight(stripped, " \t")

		if strings.HasSuffix(stripped, "\\") {
			// Only the backslash itself is dropped here; any whitespace
			// that preceded it was already past the trailing-whitespace
			// trim above (the backslash, not the space, was the last
			// byte), so it survives as part of the joined text.
			stripped = strings.TrimSuffix(stripped, "\\")
			if s.buf.Len() == 0 {
				startPath, startLine = path, line
			}
			s.buf.WriteString(stripped)
			s.buf.WriteByte(' ')
			continue
		}

		if s.buf.Len() == 0 {
			return logicalLine{text: stripped, path: path, line: line}, true, nil
		}
		s.buf.WriteString(stripped)
		return logicalLine{text: s.buf.String(), path: startPath, line: startLine}, true, nil
	}
}
