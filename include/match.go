package include

import (
	"strings"

	"shinc/common"
)

// isSpaceByte reports ASCII white space. Tokens are file stems and may hold
// any other byte, punctuation and UTF-8 sequences included.
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// atLineStart reports whether only spaces and tabs precede pos on its line.
func atLineStart(text string, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case '\n':
			return true
		case ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// accepted decides if occurrence text[start:end] of a directive counts as a
// match under policy.
func accepted(text string, start, end int, policy common.MatchPolicy) bool {
	switch policy {
	case common.MatchPolicySubstring:
		return true
	case common.MatchPolicyLine:
		if !atLineStart(text, start) {
			return false
		}
		fallthrough
	default:
		return end == len(text) || isSpaceByte(text[end])
	}
}

// index returns position of the first accepted occurrence of directive in
// text or -1.
func index(text, directive string, policy common.MatchPolicy) int {
	for pos := 0; pos <= len(text); {
		i := strings.Index(text[pos:], directive)
		if i < 0 {
			return -1
		}
		start := pos + i
		if accepted(text, start, start+len(directive), policy) {
			return start
		}
		pos = start + 1
	}
	return -1
}

// replace substitutes every accepted occurrence of directive in text with
// body and returns resulting text together with number of replacements.
func replace(text, directive, body string, policy common.MatchPolicy) (string, int) {
	if policy == common.MatchPolicySubstring {
		n := strings.Count(text, directive)
		if n == 0 {
			return text, 0
		}
		return strings.ReplaceAll(text, directive, body), n
	}

	var (
		b         strings.Builder
		n, last   int
		directLen = len(directive)
	)
	for pos := 0; pos <= len(text); {
		i := strings.Index(text[pos:], directive)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + directLen
		if !accepted(text, start, end, policy) {
			pos = start + 1
			continue
		}
		if n == 0 {
			b.Grow(len(text) + len(body))
		}
		b.WriteString(text[last:start])
		b.WriteString(body)
		last, pos = end, end
		n++
	}
	if n == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), n
}
