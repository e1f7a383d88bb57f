package si

import (
	"fmt"
	"io"
	"strings"
)

// LineEnding selects the line terminator of rendered text.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
)

func (l LineEnding) String() string {
	if l == CRLF {
		return "\r\n"
	}
	return "\n"
}

// indentUnit is the prefix added per nesting level.
const indentUnit = "   "

// TextPrinter renders the model as indented text.
// The first write error is kept in AccError and all later output is dropped.
type TextPrinter struct {
	W          io.Writer
	LineEnding LineEnding
	// Tables resolves codes to descriptions. nil means the built-in tables.
	Tables   *Tables
	AccError error
}

func (p *TextPrinter) Error() error {
	return p.AccError
}

func (p *TextPrinter) tables() *Tables {
	if p.Tables == nil {
		return defaultTables
	}
	return p.Tables
}

// printf writes one line at the given depth.
func (p *TextPrinter) printf(depth int, format string, args ...any) {
	if p.AccError != nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	_, p.AccError = io.WriteString(p.W, strings.Repeat(indentUnit, depth)+line+p.LineEnding.String())
}

// title writes a heading underlined with '=' to the heading length.
func (p *TextPrinter) title(depth int, name string) {
	p.printf(depth, "%s", name)
	p.printf(depth, "%s", strings.Repeat("=", len(name)))
}
