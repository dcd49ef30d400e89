package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

func TestLexerScansIdentAndPunctuation(t *testing.T) {
	l := lexer.NewLexer(`hello: World!`, false)
	require.Equal(t, "hello", l.ConsumeIdent())
	l.ConsumeToken(':')
	require.Equal(t, "World", l.ConsumeIdent())
	l.ConsumeToken('!')
	require.Equal(t, lexer.EOF, l.Peek())
}

func TestLexerScansIntAndFloat(t *testing.T) {
	l := lexer.NewLexer(`42 3.14 6.02e23`, false)
	kind, text, _ := l.ConsumeLiteral()
	require.Equal(t, lexer.Int, kind)
	require.Equal(t, "42", text)
	kind, text, _ = l.ConsumeLiteral()
	require.Equal(t, lexer.Float, kind)
	require.Equal(t, "3.14", text)
	kind, text, _ = l.ConsumeLiteral()
	require.Equal(t, lexer.Float, kind)
	require.Equal(t, "6.02e23", text)
}

func TestLexerRejectsLeadingZero(t *testing.T) {
	l := lexer.NewLexer(`007`, false)
	err := l.CatchSyntaxError(func() {
		l.ConsumeLiteral()
	})
	require.NotNil(t, err)
}

func TestLexerSingleLineStringWithEscape(t *testing.T) {
	l := lexer.NewLexer(`"hi\né"`, false)
	_, _, lit := l.ConsumeLiteral()
	require.NotNil(t, lit)
	require.False(t, lit.Block)
	require.Equal(t, "hi\né", lit.Unescaped.Text())
}

func TestLexerBlockStringDedent(t *testing.T) {
	src := "\"\"\"\n    Hello,\n      World!\n    \"\"\""
	l := lexer.NewLexer(src, false)
	_, _, lit := l.ConsumeLiteral()
	require.NotNil(t, lit)
	require.True(t, lit.Block)
	require.Equal(t, "Hello,\n  World!", lit.Unescaped.Text())
}

func TestLexerCommentsAreIgnoredBetweenTokens(t *testing.T) {
	l := lexer.NewLexer("# leading comment\nfoo", false)
	require.Equal(t, "foo", l.ConsumeIdent())
}

func TestLexerUnterminatedStringIsSyntaxError(t *testing.T) {
	l := lexer.NewLexer(`"unterminated`, false)
	err := l.CatchSyntaxError(func() {
		l.ConsumeLiteral()
	})
	require.NotNil(t, err)
	require.Equal(t, "ParseError", err.Rule)
}

func TestLexerDescCommentFromStringDescription(t *testing.T) {
	l := lexer.NewLexer(`"""a field"""`+"\n"+`field`, true)
	desc := l.DescComment()
	require.Equal(t, "a field", desc)
}
