// Package parser implements the Dicta front-end: tokenizer, constant
// table, typed-expression evaluator, and the recursive-descent
// dictionary grammar. Parsing evaluates directly to core values; there
// is no intermediate AST.
//
// The driver recognizes, in order: any number of `NAME is <value>`
// constant declarations, then at most one `begin ... end` dictionary
// block, then end of input. Anything else is an error; the grammar is
// rigid and the first error aborts the whole parse.
package parser

import (
	"fmt"
	"strconv"

	"github.com/dicta-lang/dicta/pkg/core"
	"github.com/dicta-lang/dicta/pkg/token"
)

// Parser walks a pre-tokenized input left to right. The cursor and the
// constant table are its only state; the cursor never moves backwards.
type Parser struct {
	tokens []token.Token
	pos    int
	consts *constTable
}

// NewParser creates a Parser over a token sequence produced by
// Tokenize, with a fresh constant table.
func NewParser(tokens []token.Token) *Parser {
	return newParserWith(tokens, newConstTable())
}

func newParserWith(tokens []token.Token, consts *constTable) *Parser {
	return &Parser{tokens: tokens, consts: consts}
}

// Parse compiles a complete input text into its document.
func Parse(input string) (*core.Dict, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseDocument()
}

// ParseDocument runs the top-level grammar: declarations, then at most
// one dictionary block, then end of input. Declarations-only input and
// empty input both yield an empty document.
func (p *Parser) ParseDocument() (*core.Dict, error) {
	for p.check(token.ID) && p.checkPeek(token.IS) {
		if err := p.parseDeclaration(); err != nil {
			return nil, err
		}
	}

	doc := core.NewDict()
	if p.check(token.BEGIN) {
		d, err := p.parseDictionary()
		if err != nil {
			return nil, err
		}
		doc = d
	}

	if tok := p.current(); tok.Kind != token.EOF {
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrTrailingToken, tok.Kind, tok.Lexeme),
		}
	}
	return doc, nil
}

// parseDeclaration consumes `ID is <value>` and binds the result,
// overwriting any prior binding of the same name.
func (p *Parser) parseDeclaration() error {
	name, err := p.expect(token.ID)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.IS); err != nil {
		return err
	}
	v, err := p.parseValue()
	if err != nil {
		return err
	}
	p.consts.define(name.Lexeme, v)
	return nil
}

// parseDictionary consumes `begin (ID := value ;)* end`. The trailing
// semicolon is mandatory for every entry, including the last.
func (p *Parser) parseDictionary() (*core.Dict, error) {
	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}

	dict := core.NewDict()
	for p.check(token.ID) {
		key := p.advance()
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		dict.Set(key.Lexeme, v)
	}

	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	return dict, nil
}

// parseValue consumes one value: a number, a string, a nested
// dictionary, a constant reference, or a |...| expression. Shared by
// declarations and dictionary entries, so constants can hold any value
// a dictionary entry can.
func (p *Parser) parseValue() (core.Value, error) {
	tok := p.current()
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return parseNumber(tok)
	case token.STRING:
		p.advance()
		return core.Text(unwrapString(tok.Lexeme)), nil
	case token.BEGIN:
		return p.parseDictionary()
	case token.ID:
		p.advance()
		v, ok := p.consts.resolve(tok.Lexeme)
		if !ok {
			return nil, &ParseError{
				Pos:     tok.Pos,
				Message: fmt.Sprintf(ErrUndefinedConst, tok.Lexeme),
			}
		}
		return v, nil
	case token.PIPE:
		return p.parseExpression()
	case token.EOF:
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrExpectedToken, "value", token.EOF),
			AtEOF:   true,
		}
	default:
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrValueToken, tok.Kind, tok.Lexeme),
		}
	}
}

// parseNumber converts a NUMBER lexeme. The language's integers are
// signed 64-bit; out-of-range literals fail rather than wrap.
func parseNumber(tok token.Token) (core.Value, error) {
	n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrInvalidNumber, tok.Lexeme),
		}
	}
	return core.Int(n), nil
}

// unwrapString strips the q(...) envelope, keeping the inner
// characters verbatim. No escape processing of any kind.
func unwrapString(lexeme string) string {
	return lexeme[2 : len(lexeme)-1]
}

// current returns the token under the cursor.
func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

// peek returns the token after the cursor.
func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos+1]
}

// advance returns the current token and moves the cursor forward. The
// cursor never advances past EOF.
func (p *Parser) advance() token.Token {
	tok := p.current()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// check reports whether the current token has the given kind.
func (p *Parser) check(kind token.Kind) bool {
	return p.current().Kind == kind
}

// checkPeek reports whether the next token has the given kind.
func (p *Parser) checkPeek(kind token.Kind) bool {
	return p.peek().Kind == kind
}

// expect consumes a token of the given kind or fails, naming the
// expected and actual kinds.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return token.Token{}, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrExpectedToken, kind, tok.Kind),
			AtEOF:   tok.Kind == token.EOF,
		}
	}
	p.advance()
	return tok, nil
}
