package slha

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

type Option func(*parser)

// WithLogger routes parse warnings (duplicate entries, replaced decay
// tables, re-opened blocks) to log. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *parser) {
		if log != nil {
			p.log = log
		}
	}
}

type parser struct {
	lexer *Lexer
	log   *zap.Logger
}

// ReadFile reads and parses an SLHA file. Files ending in .gz are
// decompressed transparently.
func ReadFile(path string, opts ...Option) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return Parse(r, path, opts...)
}

// Parse consumes the whole of r and builds the data model in a single
// batch pass. filename is used for error locations only.
func Parse(r io.Reader, filename string, opts ...Option) (*Data, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &parser{
		lexer: NewLexer(string(content), filename),
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p.run()
}

func ParseString(input string, opts ...Option) (*Data, error) {
	return Parse(strings.NewReader(input), "", opts...)
}

func (p *parser) run() (*Data, error) {
	data := NewData()

	var curBlock *Block
	var curDecay *Decay
	inPreamble := true

	for {
		line := p.lexer.Next()
		if line.Kind == EOF {
			break
		}

		switch line.Kind {
		case BLANK:
			continue

		case COMMENT_ONLY:
			if inPreamble {
				data.Preamble = append(data.Preamble, line.Raw)
			}
			continue

		case BLOCK_HEADER:
			inPreamble = false
			curDecay = nil
			if len(line.Tokens) < 2 {
				return nil, p.errorf(line, "BLOCK header missing block name")
			}
			name := line.Tokens[1]
			if b, ok := data.findBlock(name); ok {
				p.log.Warn("block re-opened, merging entries",
					zap.String("block", b.Name), zap.Int("line", line.Number))
				curBlock = b
			} else {
				curBlock = NewBlock(name)
				curBlock.Comment = line.Comment
				data.addBlock(curBlock)
			}

		case DECAY_HEADER:
			inPreamble = false
			curBlock = nil
			dec, err := p.decayHeader(line)
			if err != nil {
				return nil, err
			}
			if data.putDecay(dec) {
				p.log.Warn("decay table replaced",
					zap.Int("pid", dec.PID), zap.Int("line", line.Number))
			}
			curDecay = dec

		case DATA_ROW:
			inPreamble = false
			switch {
			case curBlock != nil:
				entry, err := p.blockRow(line)
				if err != nil {
					return nil, err
				}
				if curBlock.put(entry) {
					p.log.Warn("duplicate block entry overwritten",
						zap.String("block", curBlock.Name),
						zap.String("key", entry.Key.String()),
						zap.Int("line", line.Number))
				}
			case curDecay != nil:
				mode, err := p.decayRow(line)
				if err != nil {
					return nil, err
				}
				curDecay.Modes = append(curDecay.Modes, mode)
			default:
				return nil, p.errorf(line, "data row outside any BLOCK or DECAY section")
			}
		}
	}

	return data, nil
}

func (p *parser) decayHeader(line Line) (*Decay, error) {
	if len(line.Tokens) < 3 {
		return nil, p.errorf(line, "DECAY header needs particle ID and width, got %d field(s)", len(line.Tokens)-1)
	}
	pid, err := strconv.Atoi(line.Tokens[1])
	if err != nil {
		return nil, p.errorf(line, "bad particle ID %q: not an integer", line.Tokens[1])
	}
	width, err := strconv.ParseFloat(line.Tokens[2], 64)
	if err != nil {
		return nil, p.errorf(line, "bad decay width %q: not a number", line.Tokens[2])
	}
	return &Decay{PID: pid, Width: width, Comment: line.Comment}, nil
}

// blockRow splits a data row into index key and value: every token but
// the last is the key, the last is the value.
func (p *parser) blockRow(line Line) (Entry, error) {
	if len(line.Tokens) < 2 {
		return Entry{}, p.errorf(line, "block entry needs an index and a value, got %d field(s)", len(line.Tokens))
	}
	key := make(Key, len(line.Tokens)-1)
	for i, tok := range line.Tokens[:len(line.Tokens)-1] {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Entry{}, p.errorf(line, "bad block index %q: not an integer", tok)
		}
		key[i] = n
	}
	return Entry{
		Key:     key,
		Value:   ParseValue(line.Tokens[len(line.Tokens)-1]),
		Comment: line.Comment,
	}, nil
}

func (p *parser) decayRow(line Line) (Mode, error) {
	if len(line.Tokens) < 3 {
		return Mode{}, p.errorf(line, "decay row needs BR, daughter count and daughters, got %d field(s)", len(line.Tokens))
	}
	br, err := strconv.ParseFloat(line.Tokens[0], 64)
	if err != nil {
		return Mode{}, p.errorf(line, "bad branching ratio %q: not a number", line.Tokens[0])
	}
	nda, err := strconv.Atoi(line.Tokens[1])
	if err != nil {
		return Mode{}, p.errorf(line, "bad daughter count %q: not an integer", line.Tokens[1])
	}
	daughters := make([]int, len(line.Tokens)-2)
	for i, tok := range line.Tokens[2:] {
		id, err := strconv.Atoi(tok)
		if err != nil {
			return Mode{}, p.errorf(line, "bad daughter ID %q: not an integer", tok)
		}
		daughters[i] = id
	}
	if len(daughters) != nda {
		return Mode{}, p.errorf(line, "daughter count %d does not match NDA %d", len(daughters), nda)
	}
	return Mode{BR: br, NDA: nda, Daughters: daughters, Comment: line.Comment}, nil
}

func (p *parser) errorf(line Line, format string, args ...interface{}) error {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Location: Location{Filename: p.lexer.filename, Line: line.Number},
		Source:   line.Raw,
	}
}
