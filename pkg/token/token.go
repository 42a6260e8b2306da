// Package token defines the lexical vocabulary of the Dicta
// configuration language.
//
// The language is closed: the fifteen kinds below are the entire token
// set, and the lexer matches them in a fixed priority order. There is no
// dialect or extension mechanism.
package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int32

const (
	// Special kinds. EOF marks the end of the token sequence; ILLEGAL
	// carries the first unrecognized character so the tokenizer can
	// report it.
	EOF Kind = iota
	ILLEGAL

	// Literals and names
	NUMBER // 42, -10, +7
	STRING // q(hello)
	ID     // HOSTNAME, API_PORT

	// Punctuation and operators
	ASSIGN    // :=
	SEMICOLON // ;
	PIPE      // |
	PLUS      // +
	MINUS     // -
	TIMES     // *
	LPAREN    // (
	RPAREN    // )

	// Keywords
	BEGIN // begin
	END   // end
	IS    // is
	ORD   // ord
)

// String returns the kind's name as it appears in diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", k)
}

var kindNames = map[Kind]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	NUMBER: "NUMBER",
	STRING: "STRING",
	ID:     "ID",

	ASSIGN:    "ASSIGN",
	SEMICOLON: "SEMICOLON",
	PIPE:      "PIPE",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	TIMES:     "TIMES",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",

	BEGIN: "BEGIN",
	END:   "END",
	IS:    "IS",
	ORD:   "ORD",
}

// IsKeyword returns true for the lowercase word kinds.
func IsKeyword(k Kind) bool {
	return k == BEGIN || k == END || k == IS || k == ORD
}

// Token is one lexical token. Lexeme is the exact source text: a STRING
// token keeps its q(...) envelope, a NUMBER keeps its sign. Tokens are
// produced once by the lexer and never mutated.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}
