package parser

import (
	"fmt"

	"github.com/dicta-lang/dicta/pkg/core"
	"github.com/dicta-lang/dicta/pkg/token"
)

// LexError reports an input character no tokenizer rule accepts.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// ParseError reports a failed grammar expectation: a wrong token kind,
// an undefined constant, a malformed ord(...) call, or leftover input.
// AtEOF is true when the failing token was the end of input, which
// interactive callers use to tell "incomplete" from "wrong".
type ParseError struct {
	Pos     token.Position
	Message string
	AtEOF   bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// TypeError reports an operator applied to operand kinds it does not
// support.
type TypeError struct {
	Pos   token.Position
	Op    string
	Left  core.Kind
	Right core.Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf(ErrOperandTypes+" at line %d, column %d",
		e.Op, e.Left, e.Right, e.Pos.Line, e.Pos.Column)
}

// Common error messages
const (
	ErrUnexpectedChar = "unexpected character %q"
	ErrExpectedToken  = "expected %s, got %s"
	ErrTrailingToken  = "unexpected token %s (%q) at end of input"
	ErrValueToken     = "unexpected token %s (%q) in value"
	ErrFactorToken    = "unexpected token %s (%q) in expression"
	ErrUndefinedConst = "undefined constant %q"
	ErrInvalidNumber  = "invalid number literal %q"
	ErrOrdArgument    = "ord() argument must be a string literal or a constant"
	ErrOrdLength      = "ord() expects a single-character string"
	ErrOperandTypes   = "unsupported operand types for %s: %s and %s"
)
