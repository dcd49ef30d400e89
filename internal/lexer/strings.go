package lexer

import (
	"strings"

	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/errors"
)

// scanString scans a `"…"` or `"""…"""` literal starting at the current
// '"', producing a BasicLit whose Unescaped field follows the borrowing
// discipline of spec.md §3.2/§9: for a single-line literal, a slice of the
// original input when it has no escapes, an owned string only when an
// escape (including a `\uXXXX` that expands to multi-byte UTF-8) forced an
// allocation. A block literal is always owned (see scanBlockString).
func (l *Lexer) scanString() {
	loc := l.Location()
	l.advance() // opening '"'
	if l.peekRune() == '"' && l.peekRuneAt(1) == '"' {
		l.advance()
		l.advance()
		l.scanBlockString(loc)
		return
	}
	l.scanSingleLineString(loc)
}

func (l *Lexer) scanSingleLineString(loc errors.Location) {
	contentStart := l.pos
	hasEscape := false
	var owned strings.Builder

	for {
		r := l.peekRune()
		switch r {
		case 0, '\n', '\r':
			l.SyntaxError("unterminated string literal")
		case '"':
			if hasEscape {
				owned.WriteString(l.input[contentStart:l.pos])
				l.advance() // closing '"'
				l.finishString(false, "", true, owned.String(), loc)
			} else {
				raw := l.input[contentStart:l.pos]
				l.advance() // closing '"'
				l.finishString(false, raw, false, "", loc)
			}
			return
		case '\\':
			if !hasEscape {
				owned.WriteString(l.input[contentStart:l.pos])
				hasEscape = true
			}
			l.advance() // backslash
			l.decodeEscape(&owned)
			contentStart = l.pos
		default:
			l.advance()
		}
	}
}

func (l *Lexer) decodeEscape(owned *strings.Builder) {
	r := l.peekRune()
	switch r {
	case '"':
		owned.WriteByte('"')
		l.advance()
	case '\\':
		owned.WriteByte('\\')
		l.advance()
	case '/':
		owned.WriteByte('/')
		l.advance()
	case 'b':
		owned.WriteByte('\b')
		l.advance()
	case 'f':
		owned.WriteByte('\f')
		l.advance()
	case 'n':
		owned.WriteByte('\n')
		l.advance()
	case 'r':
		owned.WriteByte('\r')
		l.advance()
	case 't':
		owned.WriteByte('\t')
		l.advance()
	case 'u':
		l.advance()
		cp := l.decodeHex4()
		switch {
		case cp >= 0xD800 && cp <= 0xDBFF:
			// high surrogate: must be followed by \uDC00-\uDFFF
			if l.peekRune() != '\\' || l.peekRuneAt(1) != 'u' {
				l.SyntaxError("invalid escape: lone UTF-16 surrogate")
			}
			l.advance()
			l.advance()
			low := l.decodeHex4()
			if low < 0xDC00 || low > 0xDFFF {
				l.SyntaxError("invalid escape: invalid UTF-16 surrogate pair")
			}
			combined := ((rune(cp) - 0xD800) << 10) | (rune(low) - 0xDC00) + 0x10000
			owned.WriteRune(combined)
		case cp >= 0xDC00 && cp <= 0xDFFF:
			l.SyntaxError("invalid escape: lone UTF-16 surrogate")
		default:
			owned.WriteRune(rune(cp))
		}
	default:
		l.SyntaxError("invalid escape character")
	}
}

func (l *Lexer) decodeHex4() uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		r := l.peekRune()
		var d uint32
		switch {
		case r >= '0' && r <= '9':
			d = uint32(r - '0')
		case r >= 'a' && r <= 'f':
			d = uint32(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = uint32(r-'A') + 10
		default:
			l.SyntaxError("invalid escape: expected 4 hex digits")
		}
		v = v<<4 | d
		l.advance()
	}
	return v
}

// scanBlockString scans the body of a `"""…"""` literal. The only
// recognized escape is `\"""`, per spec.md §4.C; the raw body is then run
// through the standard GraphQL block-string dedent algorithm (strip a
// common leading-whitespace indent from every line but the first, then
// trim wholly-blank leading/trailing lines) before becoming the literal's
// value. A dedented block string is always built fresh, so it is always
// owned, never borrowed.
func (l *Lexer) scanBlockString(loc errors.Location) {
	var raw strings.Builder
	for {
		r := l.peekRune()
		if r == 0 {
			l.SyntaxError("unterminated block string literal")
		}
		if r == '"' && l.peekRuneAt(1) == '"' && l.peekRuneAt(2) == '"' {
			l.advance()
			l.advance()
			l.advance()
			break
		}
		if r == '\\' && l.peekRuneAt(1) == '"' && l.peekRuneAt(2) == '"' && l.peekRuneAt(3) == '"' {
			raw.WriteString(`"""`)
			l.advance()
			l.advance()
			l.advance()
			l.advance()
			continue
		}
		raw.WriteRune(r)
		l.advance()
	}
	value := dedentBlockString(raw.String())
	l.finishString(true, "", true, value, loc)
}

func (l *Lexer) finishString(block bool, borrowed string, owned bool, ownedText string, loc errors.Location) {
	u := ast.UnescapedText{Borrowed: borrowed}
	if owned {
		u = ast.UnescapedText{Owned: ownedText, IsOwned: true}
	}
	l.next = String
	l.lit = &BasicLit{Block: block, Unescaped: u, Loc: loc}
}

// dedentBlockString implements the GraphQL block string value algorithm:
// split into lines, find the minimum common leading-whitespace indent
// among all lines but the first, strip it from every line but the first,
// then drop wholly-blank leading/trailing lines, and join with "\n".
func dedentBlockString(raw string) string {
	lines := strings.Split(raw, "\n")
	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespace(line)
		if indent < len(line) {
			if commonIndent == -1 || indent < commonIndent {
				commonIndent = indent
			}
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func isBlank(s string) bool {
	return leadingWhitespace(s) == len(s)
}
