// # internal/analyze/recognize.go
package analyze

import "strings"

// lineMatch is the outcome of running one language's recognizer set over a
// sanitized, trimmed line. Conditionals/Loops/Switches feed the raw construct
// counters; Arms are decision points (case labels) that weigh on cyclomatic
// complexity without raising the conditional counter, mirroring how switch
// arms are tallied.
type lineMatch struct {
	Conditionals int
	Loops        int
	Switches     int
	Arms         int
	LogicalOps   int
}

func (m lineMatch) IsBranch() bool {
	return m.Conditionals > 0 || m.Loops > 0 || m.Switches > 0 || m.Arms > 0
}

func (m lineMatch) IsConditional() bool { return m.Conditionals > 0 || m.Arms > 0 }
func (m lineMatch) IsLoop() bool        { return m.Loops > 0 }
func (m lineMatch) IsSwitch() bool      { return m.Switches > 0 }

// decisionPoints is the cyclomatic weight contributed by this line.
func (m lineMatch) decisionPoints() int {
	return m.Conditionals + m.Loops + m.Switches + m.Arms
}

// recognize dispatches to the recognizer set for the active language.
func recognize(lang Language, line string) lineMatch {
	switch lang {
	case LangRust:
		return recognizeRust(line)
	case LangJS:
		return recognizeJS(line)
	case LangPython:
		return recognizePython(line)
	case LangJava:
		return recognizeJava(line)
	case LangGo:
		return recognizeGo(line)
	case LangC:
		return recognizeC(line)
	default:
		return recognizeGeneric(line)
	}
}

// hasKeyword reports a single occurrence of a branching keyword, either at
// line start or surrounded by spaces.
func hasKeyword(line, keyword string) bool {
	return strings.HasPrefix(line, keyword+" ") || strings.Contains(line, " "+keyword+" ")
}

// countBoundaryKeyword counts every occurrence of keyword (which must carry
// its trailing space) that sits at line start or is preceded by whitespace or
// one of `{ ( ) ;`. This is the boundary rule that keeps "gift" from
// registering as an "if".
func countBoundaryKeyword(line, keyword string) int {
	count := 0
	if strings.HasPrefix(line, keyword) {
		count++
	}
	for i := 1; i+len(keyword) <= len(line); i++ {
		if line[i:i+len(keyword)] != keyword {
			continue
		}
		switch line[i-1] {
		case ' ', '\t', '{', '(', ')', ';':
			count++
		}
	}
	return count
}

func countLogical(line string, ops ...string) int {
	total := 0
	for _, op := range ops {
		total += strings.Count(line, op)
	}
	return total
}

func recognizeRust(line string) lineMatch {
	var m lineMatch
	m.Conditionals += countBoundaryKeyword(line, "if ")
	if hasKeyword(line, "match") {
		m.Switches++
	}
	for _, kw := range []string{"while ", "for ", "loop "} {
		m.Loops += countBoundaryKeyword(line, kw)
	}
	// Match arms are decision points of their own; a line holding both the
	// match and an arm is counted for both, on purpose.
	if strings.Contains(line, "=>") {
		m.Conditionals++
	}
	m.LogicalOps = countLogical(line, " && ", " || ")
	return m
}

func recognizeJS(line string) lineMatch {
	var m lineMatch
	if hasKeyword(line, "if") {
		m.Conditionals++
	}
	if hasKeyword(line, "switch") {
		m.Switches++
	}
	if hasKeyword(line, "while") || hasKeyword(line, "for") {
		m.Loops++
	}
	if strings.HasPrefix(line, "case ") {
		m.Arms++
	}
	if strings.Contains(line, " ? ") && strings.Contains(line, " : ") {
		m.Conditionals++
	}
	if hasKeyword(line, "catch") {
		m.Conditionals++
	}
	m.LogicalOps = countLogical(line, " && ", " || ")
	return m
}

func recognizePython(line string) lineMatch {
	var m lineMatch
	if hasKeyword(line, "if") || strings.HasSuffix(line, " if") {
		m.Conditionals++
	}
	if hasKeyword(line, "while") || hasKeyword(line, "for") {
		m.Loops++
	}
	if strings.Contains(line, "except ") {
		m.Conditionals++
	}
	m.LogicalOps = countLogical(line, " and ", " or ")
	return m
}

func recognizeJava(line string) lineMatch {
	var m lineMatch
	if hasKeyword(line, "if") {
		m.Conditionals++
	}
	if hasKeyword(line, "switch") {
		m.Switches++
	}
	if hasKeyword(line, "while") || hasKeyword(line, "for") {
		m.Loops++
	}
	if strings.HasPrefix(line, "case ") {
		m.Arms++
	}
	if hasKeyword(line, "catch") {
		m.Conditionals++
	}
	m.LogicalOps = countLogical(line, " && ", " || ")
	return m
}

func recognizeGo(line string) lineMatch {
	var m lineMatch
	if hasKeyword(line, "if") {
		m.Conditionals++
	}
	if hasKeyword(line, "switch") {
		m.Switches++
	}
	if hasKeyword(line, "select") {
		m.Switches++
	}
	if hasKeyword(line, "for") {
		m.Loops++
	}
	if strings.HasPrefix(line, "case ") {
		m.Arms++
	}
	m.LogicalOps = countLogical(line, " && ", " || ")
	return m
}

func recognizeC(line string) lineMatch {
	var m lineMatch
	if hasKeyword(line, "if") {
		m.Conditionals++
	}
	if hasKeyword(line, "switch") {
		m.Switches++
	}
	if hasKeyword(line, "while") || hasKeyword(line, "for") {
		m.Loops++
	}
	if strings.HasPrefix(line, "case ") {
		m.Arms++
	}
	if strings.Contains(line, " ? ") && strings.Contains(line, " : ") {
		m.Conditionals++
	}
	m.LogicalOps = countLogical(line, " && ", " || ")
	return m
}

func recognizeGeneric(line string) lineMatch {
	var m lineMatch
	if hasKeyword(line, "if") {
		m.Conditionals++
	}
	if hasKeyword(line, "while") || hasKeyword(line, "for") {
		m.Loops++
	}
	if hasKeyword(line, "switch") {
		m.Switches++
	}
	m.LogicalOps = countLogical(line, " && ", " || ", " and ", " or ")
	return m
}
