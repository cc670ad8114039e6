package htmltoken

import (
	"github.com/cwbudde/webfrontend/internal/errors"
	"github.com/cwbudde/webfrontend/internal/token"
)

// ParseError wraps a tokenizer-level parse error (WHATWG HTML §13.2.5
// calls these "parse errors") in the shared errors.CompilerError
// formatter, so the CLI and tests get the same source-line + caret
// rendering the JavaScript side uses.
type ParseError struct {
	*errors.CompilerError
	Code string // e.g. "missing-semicolon-after-character-reference"
}

// NewParseError builds a ParseError at pos with the given WHATWG error
// code and source context. The code itself doubles as the message: HTML
// parse error codes (e.g. "unexpected-null-character") are already
// human-readable.
func NewParseError(code, source, file string, pos token.Location) *ParseError {
	return &ParseError{
		CompilerError: errors.NewCompilerError(pos, code, source, file),
		Code:          code,
	}
}
