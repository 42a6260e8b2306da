package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dicta-lang/dicta/pkg/core"
	"github.com/dicta-lang/dicta/pkg/token"
)

// parseExpression consumes a `|additive|` constant expression and
// evaluates it. Expressions are evaluated at parse time against the
// constants bound so far; there is no deferred evaluation.
func (p *Parser) parseExpression() (core.Value, error) {
	if _, err := p.expect(token.PIPE); err != nil {
		return nil, err
	}
	v, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PIPE); err != nil {
		return nil, err
	}
	return v, nil
}

// parseAdditive handles `+` and `-`, left-associative.
func (p *Parser) parseAdditive() (core.Value, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left, err = applyAdditive(op, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseMultiplicative handles `*`, left-associative.
func (p *Parser) parseMultiplicative() (core.Value, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.check(token.TIMES) {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left, err = applyMultiplicative(op, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseFactor handles the leaves of the expression grammar:
// parenthesized sub-expressions, literals, constant references, and
// ord(...) calls.
func (p *Parser) parseFactor() (core.Value, error) {
	tok := p.current()
	switch tok.Kind {
	case token.LPAREN:
		p.advance()
		v, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return v, nil
	case token.STRING:
		p.advance()
		return core.Text(unwrapString(tok.Lexeme)), nil
	case token.NUMBER:
		p.advance()
		return parseNumber(tok)
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
	case token.ORD:
		return p.parseOrd()
	case token.EOF:
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrExpectedToken, "expression", token.EOF),
			AtEOF:   true,
		}
	default:
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrFactorToken, tok.Kind, tok.Lexeme),
		}
	}
}

// parseOrd consumes `ord ( STRING|ID )` and yields the argument's code
// point. The argument must be a text of exactly one character, counted
// in runes.
func (p *Parser) parseOrd() (core.Value, error) {
	if _, err := p.expect(token.ORD); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	tok := p.current()
	var text core.Text
	switch tok.Kind {
	case token.STRING:
		p.advance()
		text = core.Text(unwrapString(tok.Lexeme))
	case token.ID:
		p.advance()
		v, ok := p.consts.resolve(tok.Lexeme)
		if !ok {
			return nil, &ParseError{
				Pos:     tok.Pos,
				Message: fmt.Sprintf(ErrUndefinedConst, tok.Lexeme),
			}
		}
		t, ok := v.(core.Text)
		if !ok {
			return nil, &ParseError{Pos: tok.Pos, Message: ErrOrdArgument}
		}
		text = t
	default:
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: ErrOrdArgument,
			AtEOF:   tok.Kind == token.EOF,
		}
	}

	if utf8.RuneCountInString(string(text)) != 1 {
		return nil, &ParseError{Pos: tok.Pos, Message: ErrOrdLength}
	}
	r, _ := utf8.DecodeRuneInString(string(text))

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return core.Int(r), nil
}

// applyAdditive evaluates `+` and `-`. `+` is integer addition or text
// concatenation; `-` is integer subtraction only.
func applyAdditive(op token.Token, left, right core.Value) (core.Value, error) {
	switch op.Kind {
	case token.PLUS:
		switch l := left.(type) {
		case core.Int:
			if r, ok := right.(core.Int); ok {
				return l + r, nil
			}
		case core.Text:
			if r, ok := right.(core.Text); ok {
				return l + r, nil
			}
		}
	case token.MINUS:
		if l, ok := left.(core.Int); ok {
			if r, ok := right.(core.Int); ok {
				return l - r, nil
			}
		}
	}
	return nil, typeError(op, left, right)
}

// applyMultiplicative evaluates `*`: integer product, or text
// repetition with either operand order. A repetition count of zero or
// less yields the empty text.
func applyMultiplicative(op token.Token, left, right core.Value) (core.Value, error) {
	switch l := left.(type) {
	case core.Int:
		switch r := right.(type) {
		case core.Int:
			return l * r, nil
		case core.Text:
			return repeatText(r, l), nil
		}
	case core.Text:
		if r, ok := right.(core.Int); ok {
			return repeatText(l, r), nil
		}
	}
	return nil, typeError(op, left, right)
}

func repeatText(t core.Text, n core.Int) core.Text {
	if n <= 0 {
		return ""
	}
	return core.Text(strings.Repeat(string(t), int(n)))
}

func typeError(op token.Token, left, right core.Value) *TypeError {
	return &TypeError{
		Pos:   op.Pos,
		Op:    op.Lexeme,
		Left:  left.ValueKind(),
		Right: right.ValueKind(),
	}
}
