// Package format renders Dicta source in canonical form.
//
// The formatter walks the token stream with the same grammar as the
// parser, emitting text instead of values: declarations one per line,
// a blank line before the dictionary block, one entry per line with
// nested blocks indented, and single spaces around binary operators.
// Lexemes are carried verbatim, so formatting never changes what a
// document compiles to.
package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dicta-lang/dicta/pkg/token"
)

// DefaultIndent is the indentation width used when none is configured.
const DefaultIndent = 4

// printer accumulates output with indentation bookkeeping.
type printer struct {
	output      *bytes.Buffer
	width       int
	depth       int
	atLineStart bool
}

func newPrinter(width int) *printer {
	if width <= 0 {
		width = DefaultIndent
	}
	return &printer{
		output:      &bytes.Buffer{},
		width:       width,
		atLineStart: true,
	}
}

// String returns the formatted output with exactly one trailing
// newline, or the empty string if nothing was written.
func (p *printer) String() string {
	if p.output.Len() == 0 {
		return ""
	}
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*p.width; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) indent() {
	p.depth++
}

func (p *printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// formatter walks the token stream left to right, like the parser but
// without evaluating anything: constants stay references, expressions
// stay expressions.
type formatter struct {
	tokens []token.Token
	pos    int
	p      *printer
}

// Format renders a token sequence (as produced by parser.Tokenize,
// including the trailing EOF) in canonical form. width is the
// indentation width in spaces. Input that does not fit the grammar
// yields an error; callers that want full validation should parse
// first, since the formatter never resolves constants.
func Format(tokens []token.Token, width int) (string, error) {
	f := &formatter{tokens: tokens, p: newPrinter(width)}

	hadDecl := false
	for f.check(token.ID) && f.checkPeek(token.IS) {
		if err := f.formatDeclaration(); err != nil {
			return "", err
		}
		hadDecl = true
	}

	if f.check(token.BEGIN) {
		if hadDecl {
			f.p.writeln()
		}
		if err := f.formatDictionary(); err != nil {
			return "", err
		}
		f.p.writeln()
	}

	if tok := f.current(); tok.Kind != token.EOF {
		return "", fmt.Errorf("cannot format: unexpected token %s (%q) at line %d, column %d",
			tok.Kind, tok.Lexeme, tok.Pos.Line, tok.Pos.Column)
	}
	return f.p.String(), nil
}

func (f *formatter) formatDeclaration() error {
	name := f.advance()
	f.advance() // is
	f.p.write(name.Lexeme)
	f.p.write(" is ")
	if err := f.formatValue(); err != nil {
		return err
	}
	f.p.writeln()
	return nil
}

func (f *formatter) formatDictionary() error {
	if err := f.expect(token.BEGIN); err != nil {
		return err
	}
	f.p.write("begin")
	f.p.writeln()
	f.p.indent()

	for f.check(token.ID) {
		key := f.advance()
		if err := f.expect(token.ASSIGN); err != nil {
			return err
		}
		f.p.write(key.Lexeme)
		f.p.write(" := ")
		if err := f.formatValue(); err != nil {
			return err
		}
		if err := f.expect(token.SEMICOLON); err != nil {
			return err
		}
		f.p.write(";")
		f.p.writeln()
	}

	if err := f.expect(token.END); err != nil {
		return err
	}
	f.p.dedent()
	f.p.write("end")
	return nil
}

func (f *formatter) formatValue() error {
	tok := f.current()
	switch tok.Kind {
	case token.NUMBER, token.STRING, token.ID:
		f.advance()
		f.p.write(tok.Lexeme)
		return nil
	case token.BEGIN:
		return f.formatDictionary()
	case token.PIPE:
		return f.formatExpression()
	default:
		return f.errUnexpected(tok, "value")
	}
}

func (f *formatter) formatExpression() error {
	if err := f.expect(token.PIPE); err != nil {
		return err
	}
	f.p.write("|")
	if err := f.formatAdditive(); err != nil {
		return err
	}
	if err := f.expect(token.PIPE); err != nil {
		return err
	}
	f.p.write("|")
	return nil
}

func (f *formatter) formatAdditive() error {
	if err := f.formatMultiplicative(); err != nil {
		return err
	}
	for f.check(token.PLUS) || f.check(token.MINUS) {
		op := f.advance()
		f.p.write(" ")
		f.p.write(op.Lexeme)
		f.p.write(" ")
		if err := f.formatMultiplicative(); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) formatMultiplicative() error {
	if err := f.formatFactor(); err != nil {
		return err
	}
	for f.check(token.TIMES) {
		f.advance()
		f.p.write(" * ")
		if err := f.formatFactor(); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) formatFactor() error {
	tok := f.current()
	switch tok.Kind {
	case token.LPAREN:
		f.advance()
		f.p.write("(")
		if err := f.formatAdditive(); err != nil {
			return err
		}
		if err := f.expect(token.RPAREN); err != nil {
			return err
		}
		f.p.write(")")
		return nil
	case token.NUMBER, token.STRING, token.ID:
		f.advance()
		f.p.write(tok.Lexeme)
		return nil
	case token.ORD:
		return f.formatOrd()
	default:
		return f.errUnexpected(tok, "expression")
	}
}

func (f *formatter) formatOrd() error {
	f.advance() // ord
	if err := f.expect(token.LPAREN); err != nil {
		return err
	}
	arg := f.current()
	if arg.Kind != token.STRING && arg.Kind != token.ID {
		return f.errUnexpected(arg, "ord argument")
	}
	f.advance()
	if err := f.expect(token.RPAREN); err != nil {
		return err
	}
	f.p.write("ord(")
	f.p.write(arg.Lexeme)
	f.p.write(")")
	return nil
}

func (f *formatter) current() token.Token {
	if f.pos >= len(f.tokens) {
		return f.tokens[len(f.tokens)-1] // EOF
	}
	return f.tokens[f.pos]
}

func (f *formatter) peek() token.Token {
	if f.pos+1 >= len(f.tokens) {
		return f.tokens[len(f.tokens)-1] // EOF
	}
	return f.tokens[f.pos+1]
}

func (f *formatter) advance() token.Token {
	tok := f.current()
	if tok.Kind != token.EOF {
		f.pos++
	}
	return tok
}

func (f *formatter) check(kind token.Kind) bool {
	return f.current().Kind == kind
}

func (f *formatter) checkPeek(kind token.Kind) bool {
	return f.peek().Kind == kind
}

func (f *formatter) expect(kind token.Kind) error {
	tok := f.current()
	if tok.Kind != kind {
		return fmt.Errorf("cannot format: expected %s, got %s at line %d, column %d",
			kind, tok.Kind, tok.Pos.Line, tok.Pos.Column)
	}
	f.advance()
	return nil
}

func (f *formatter) errUnexpected(tok token.Token, where string) error {
	return fmt.Errorf("cannot format: unexpected token %s (%q) in %s at line %d, column %d",
		tok.Kind, tok.Lexeme, where, tok.Pos.Line, tok.Pos.Column)
}
