// # internal/analyze/sanitize.go
package analyze

// SanitizeLine strips string-literal contents and same-line comments from a
// single line so that keyword lookalikes inside literals never reach the
// recognizers. Quoted content (single or double) is replaced by one space,
// `//` truncates the rest of the line, and a `/*...*/` pair closed on the
// same line collapses to one space. Escape sequences are not interpreted, so
// an embedded \" ends the string early; block comments left open at end of
// line are not carried into the next line. Both are accepted precision gaps
// of the line-oriented scan.
func SanitizeLine(line string) string {
	out := make([]byte, 0, len(line))
	inString := false
	var quote byte

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if inString {
			if ch == quote {
				inString = false
			}
			continue
		}

		if ch == '/' && i+1 < len(line) {
			if line[i+1] == '/' {
				break
			}
			if line[i+1] == '*' {
				end := indexCommentClose(line, i+2)
				if end < 0 {
					// Unterminated on this line; drop the remainder.
					break
				}
				out = append(out, ' ')
				i = end + 1
				continue
			}
		}

		if ch == '"' || ch == '\'' {
			inString = true
			quote = ch
			out = append(out, ' ')
			continue
		}

		out = append(out, ch)
	}

	return string(out)
}

func indexCommentClose(line string, from int) int {
	for i := from; i+1 < len(line); i++ {
		if line[i] == '*' && line[i+1] == '/' {
			return i
		}
	}
	return -1
}

// isSkippableLine reports whether a trimmed line is dropped before it reaches
// the classifier: blank lines and lines that start with a comment marker.
func isSkippableLine(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	for _, prefix := range []string{"//", "/*", "*", "#"} {
		if len(trimmed) >= len(prefix) && trimmed[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
