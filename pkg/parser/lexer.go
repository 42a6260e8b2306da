package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dicta-lang/dicta/pkg/token"
)

// Lexer tokenizes Dicta input.
//
// The tokenizer is an explicit ordered list of matchers tried at each
// input position; the first rule that matches wins. Priority is
// behavior, not an implementation detail: NUMBER before MINUS makes
// `-10` a single signed literal, and the keyword rules are plain
// prefix literals that the uppercase-only ID rule can never shadow.
type Lexer struct {
	input string
	pos   int // current byte offset
	line  int // current line number (1-based)
	col   int // current column number (1-based, counted in runes)
}

// matcher is one tokenizer rule. match reports how many bytes of s the
// rule consumes, or zero when it does not apply at this position.
type matcher struct {
	kind  token.Kind
	match func(s string) int
}

// matchers lists every rule in strict priority order.
var matchers = []matcher{
	{token.NUMBER, matchNumber},
	{token.STRING, matchString},
	{token.ID, matchID},
	{token.ASSIGN, literal(":=")},
	{token.SEMICOLON, literal(";")},
	{token.BEGIN, literal("begin")},
	{token.END, literal("end")},
	{token.IS, literal("is")},
	{token.PIPE, literal("|")},
	{token.PLUS, literal("+")},
	{token.MINUS, literal("-")},
	{token.TIMES, literal("*")},
	{token.LPAREN, literal("(")},
	{token.RPAREN, literal(")")},
	{token.ORD, literal("ord")},
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// currentPos returns the position of the next unread character.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// advance consumes n bytes, updating line and column bookkeeping. A
// lexeme may span newlines (string literals can), so every consumed
// rune is inspected.
func (l *Lexer) advance(n int) {
	for _, r := range l.input[l.pos : l.pos+n] {
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.pos += n
}

// skipWhitespace consumes any run of whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.advance(size)
	}
}

// NextToken returns the next token. At end of input it returns EOF;
// a character no rule accepts yields a single ILLEGAL token carrying
// that character.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()
	if l.pos >= len(l.input) {
		return token.Token{Kind: token.EOF, Pos: pos}
	}

	rest := l.input[l.pos:]
	for _, m := range matchers {
		if n := m.match(rest); n > 0 {
			lexeme := rest[:n]
			l.advance(n)
			return token.Token{Kind: m.kind, Lexeme: lexeme, Pos: pos}
		}
	}

	// No rule applies: emit the offending rune.
	_, size := utf8.DecodeRuneInString(rest)
	lexeme := rest[:size]
	l.advance(size)
	return token.Token{Kind: token.ILLEGAL, Lexeme: lexeme, Pos: pos}
}

// matchNumber matches an optional sign followed by decimal digits.
func matchNumber(s string) int {
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	n := i
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == i {
		return 0
	}
	return n
}

// matchString matches `q(` up to and including the next `)`. The run
// may span newlines. A `)` always closes the string: content cannot
// contain one, and there is no escape syntax. Without a closing `)`
// the rule does not apply at all, leaving the `q` to fail as an
// unrecognized character.
func matchString(s string) int {
	if !strings.HasPrefix(s, "q(") {
		return 0
	}
	end := strings.IndexByte(s[2:], ')')
	if end < 0 {
		return 0
	}
	return 2 + end + 1
}

// matchID matches an uppercase identifier: [A-Z_][A-Z_0-9]*.
func matchID(s string) int {
	if !isIDStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && (isIDStart(s[n]) || isDigit(s[n])) {
		n++
	}
	return n
}

// literal returns a matcher for fixed text. Matching is a pure prefix
// check with no word-boundary test, so `beginx` lexes as BEGIN
// followed by whatever `x` turns out to be.
func literal(text string) func(s string) int {
	return func(s string) int {
		if strings.HasPrefix(s, text) {
			return len(text)
		}
		return 0
	}
}

// isIDStart returns true if ch can start or continue an identifier.
func isIDStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// isDigit returns true if ch is an ASCII digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize scans the whole input and returns all tokens, including the
// trailing EOF. It fails on the first unrecognized character; the
// token sequence is immutable once produced.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Kind == token.ILLEGAL {
			r, _ := utf8.DecodeRuneInString(tok.Lexeme)
			return nil, &LexError{Pos: tok.Pos, Message: fmt.Sprintf(ErrUnexpectedChar, r)}
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}
