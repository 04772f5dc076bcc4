package slha

import (
	"os"
	"strings"
)

type LineKind int

const (
	EOF LineKind = iota
	BLANK
	COMMENT_ONLY
	BLOCK_HEADER
	DECAY_HEADER
	DATA_ROW
)

func (lk LineKind) String() string {
	switch lk {
	case EOF:
		return "EOF"
	case BLANK:
		return "BLANK"
	case COMMENT_ONLY:
		return "COMMENT_ONLY"
	case BLOCK_HEADER:
		return "BLOCK_HEADER"
	case DECAY_HEADER:
		return "DECAY_HEADER"
	case DATA_ROW:
		return "DATA_ROW"
	default:
		return "UNKNOWN"
	}
}

// Line is one classified input line. Tokens holds the whitespace-split
// fields with the trailing comment already stripped; Comment holds the
// text after the first '#', without the marker.
type Line struct {
	Kind    LineKind
	Tokens  []string
	Comment string
	Raw     string
	Number  int
}

// Lexer classifies SLHA input line by line. SLHA is strictly
// line-oriented, so the unit of lexing is a whole line rather than a
// token stream.
type Lexer struct {
	lines    []string
	filename string
	pos      int
}

func NewLexer(input, filename string) *Lexer {
	return &Lexer{
		lines:    strings.Split(input, "\n"),
		filename: filename,
	}
}

func NewLexerFromFile(filename string) (*Lexer, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewLexer(string(content), filename), nil
}

// Next returns the next classified line. After the last input line it
// keeps returning a Line with Kind == EOF.
func (l *Lexer) Next() Line {
	if l.pos >= len(l.lines) {
		return Line{Kind: EOF, Number: len(l.lines)}
	}

	raw := strings.TrimRight(l.lines[l.pos], "\r")
	l.pos++
	line := Line{Raw: raw, Number: l.pos}

	text := raw
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		line.Comment = strings.TrimSpace(raw[i+1:])
		text = raw[:i]
	}
	line.Tokens = strings.Fields(text)

	switch {
	case len(line.Tokens) == 0:
		if strings.ContainsRune(raw, '#') {
			line.Kind = COMMENT_ONLY
		} else {
			line.Kind = BLANK
		}
	case strings.EqualFold(line.Tokens[0], "BLOCK"):
		line.Kind = BLOCK_HEADER
	case strings.EqualFold(line.Tokens[0], "DECAY"):
		line.Kind = DECAY_HEADER
	default:
		line.Kind = DATA_ROW
	}

	return line
}
