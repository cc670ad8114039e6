package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/webfrontend/internal/token"
)

func TestCompilerError_Format(t *testing.T) {
	tests := []struct {
		name        string
		pos         token.Location
		message     string
		source      string
		file        string
		wantContain []string
	}{
		{
			name:    "simple error with file",
			pos:     token.Location{Line: 1, Column: 10},
			message: "unexpected end tag",
			source:  "<div></span>",
			file:    "test.html",
			wantContain: []string{
				"Error in test.html:1:10",
				"   1 | <div></span>",
				"^",
				"unexpected end tag",
			},
		},
		{
			name:    "error without file",
			pos:     token.Location{Line: 5, Column: 15},
			message: "unterminated string literal",
			source:  "line1\nline2\nline3\nline4\nlet x = 'oops\nline6",
			file:    "",
			wantContain: []string{
				"Error at line 5:15",
				"   5 | let x = 'oops",
				"^",
				"unterminated string literal",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCompilerError(tt.pos, tt.message, tt.source, tt.file)
			got := err.Format(false)
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("Format() missing %q in:\n%s", want, got)
				}
			}
			if err.Error() != got {
				t.Errorf("Error() should equal Format(false)")
			}
		})
	}
}

func TestFormatErrors_Multiple(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(token.Location{Line: 1, Column: 1}, "first", "abc", "f.html"),
		NewCompilerError(token.Location{Line: 2, Column: 1}, "second", "abc", "f.html"),
	}
	out := FormatErrors(errs, false)
	if !strings.Contains(out, "2 error(s)") {
		t.Errorf("expected error count header, got: %s", out)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("expected both messages present, got: %s", out)
	}
}

func TestFormatErrors_Empty(t *testing.T) {
	if FormatErrors(nil, false) != "" {
		t.Errorf("expected empty string for no errors")
	}
}
