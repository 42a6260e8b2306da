package parser

import (
	"fmt"

	"github.com/dicta-lang/dicta/pkg/core"
	"github.com/dicta-lang/dicta/pkg/token"
)

// Session is an interactive parse session: constants bound by one Eval
// call stay visible to later calls. The constant table itself never
// leaves this package; callers observe it only through Lookup and
// Constants.
type Session struct {
	consts *constTable
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{consts: newConstTable()}
}

// Result is the outcome of evaluating one input line.
type Result struct {
	// Bindings lists the names bound by declarations, in order.
	Bindings []string
	// Value is the trailing value or dictionary, nil if the line held
	// only declarations (or nothing).
	Value core.Value
}

// Eval parses one submission: any number of declarations, then at most
// one value or dictionary block. Blank input is a no-op. A ParseError
// with AtEOF set means the submission is incomplete rather than wrong,
// so the caller can keep reading lines.
func (s *Session) Eval(input string) (*Result, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	p := newParserWith(tokens, s.consts)
	res := &Result{}

	for p.check(token.ID) && p.checkPeek(token.IS) {
		name := p.current().Lexeme
		if err := p.parseDeclaration(); err != nil {
			return nil, err
		}
		res.Bindings = append(res.Bindings, name)
	}

	if !p.check(token.EOF) {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		res.Value = v
	}

	if tok := p.current(); tok.Kind != token.EOF {
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf(ErrTrailingToken, tok.Kind, tok.Lexeme),
		}
	}
	return res, nil
}

// Lookup returns the session's current binding for name.
func (s *Session) Lookup(name string) (core.Value, bool) {
	return s.consts.resolve(name)
}

// Constants returns the bound names, sorted.
func (s *Session) Constants() []string {
	return s.consts.names()
}

// Reset drops every binding.
func (s *Session) Reset() {
	s.consts = newConstTable()
}
