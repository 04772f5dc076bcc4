package slha

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup misses on a well-formed model. Recoverable; match with errors.Is.
var (
	ErrBlockNotFound   = errors.New("block not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrDecayNotFound   = errors.New("no decay table")
	ErrUnknownParticle = errors.New("unknown particle")
)

type Location struct {
	Filename string
	Line     int
}

// ParseError is a malformed row or header. Parsing aborts on the first one,
// so Location always points at the offending input line.
type ParseError struct {
	Message  string
	Location Location
	Source   string
}

func (e *ParseError) Error() string {
	if e.Location.Filename != "" {
		return fmt.Sprintf("%s:%d: %s", e.Location.Filename, e.Location.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Location.Line, e.Message)
}

func FormatError(err *ParseError) string {
	var b strings.Builder

	b.WriteString("✗ ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Location.Line > 0 {
		b.WriteString(fmt.Sprintf("  ╭─[%s:%d]\n", err.Location.Filename, err.Location.Line))
		if err.Source != "" {
			b.WriteString("  │\n")
			b.WriteString(fmt.Sprintf("%3d│ %s\n", err.Location.Line, err.Source))
			b.WriteString("  │\n")
		}
	}

	return b.String()
}
