package output

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dicta-lang/dicta/pkg/parser"
)

// FormatError renders err as a single diagnostic line for stderr.
//
// Compilation failures carry their source position and are prefixed
// "Syntax error:". Filesystem failures are prefixed "File operation
// error:". Everything else gets a generic "Error:" prefix.
func FormatError(err error) string {
	if IsCompileError(err) {
		return fmt.Sprintf("Syntax error: %v", err)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("File operation error: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// IsCompileError reports whether err originates from lexing, parsing,
// or expression evaluation.
func IsCompileError(err error) bool {
	var lexErr *parser.LexError
	var parseErr *parser.ParseError
	var typeErr *parser.TypeError
	return errors.As(err, &lexErr) || errors.As(err, &parseErr) || errors.As(err, &typeErr)
}
