// Package slha reads, queries, mutates and rewrites files in the SLHA
// (SUSY Les Houches Accord) format, a line-oriented text format for
// exchanging particle-physics model parameters and decay tables.
package slha

import (
	"fmt"
	"strconv"
	"strings"
)

type ValueKind int

const (
	IntValue ValueKind = iota
	FloatValue
	StringValue
)

// Value is a block entry value: an integer, a float, or an opaque string
// (SLHA blocks may hold string entries, e.g. SPINFO program names).
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
}

func Int(v int64) Value     { return Value{Kind: IntValue, Int: v} }
func Float(v float64) Value { return Value{Kind: FloatValue, Float: v} }
func String(s string) Value { return Value{Kind: StringValue, Str: s} }

// ParseValue classifies a raw token: integer when it carries no '.', 'e'
// or 'E', float otherwise, opaque string when numeric parsing fails.
func ParseValue(tok string) Value {
	if !strings.ContainsAny(tok, ".eE") {
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return Int(n)
		}
		return String(tok)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Float(f)
	}
	return String(tok)
}

// AsFloat widens a numeric value; string values yield 0.
func (v Value) AsFloat() float64 {
	switch v.Kind {
	case IntValue:
		return float64(v.Int)
	case FloatValue:
		return v.Float
	default:
		return 0
	}
}

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		return fmt.Sprintf("%.8E", v.Float)
	default:
		return v.Str
	}
}

// Key indexes a block entry: one integer for scalar entries, two or more
// for matrix entries such as mixing matrices.
type Key []int

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, n := range k {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

type Entry struct {
	Key     Key
	Value   Value
	Comment string
}

// Block is a named, ordered table of index→value entries. Entry order is
// insertion order; lookup goes through a side index so that a duplicate
// key overwrites rather than appends.
type Block struct {
	Name    string
	Comment string

	entries []Entry
	index   map[string]int
}

func NewBlock(name string) *Block {
	return &Block{Name: name, index: make(map[string]int)}
}

func (b *Block) Len() int { return len(b.entries) }

// Entries returns the live entry slice in insertion order. Callers must
// not modify it; use Set to mutate.
func (b *Block) Entries() []Entry { return b.entries }

func (b *Block) Get(key Key) (Value, bool) {
	i, ok := b.index[key.String()]
	if !ok {
		return Value{}, false
	}
	return b.entries[i].Value, true
}

// Set creates or overwrites the value at key. The comment of an existing
// entry is left alone.
func (b *Block) Set(key Key, v Value) {
	if i, ok := b.index[key.String()]; ok {
		b.entries[i].Value = v
		return
	}
	b.put(Entry{Key: key, Value: v})
}

// put inserts an entry, replacing value and comment on a duplicate key.
// It reports whether an existing entry was overwritten.
func (b *Block) put(e Entry) bool {
	if i, ok := b.index[e.Key.String()]; ok {
		b.entries[i] = e
		return true
	}
	b.index[e.Key.String()] = len(b.entries)
	b.entries = append(b.entries, e)
	return false
}

// Mode is one branching-ratio row of a decay table.
type Mode struct {
	BR        float64
	NDA       int
	Daughters []int
	Comment   string
}

// Decay is one particle's decay table: total width plus branching-ratio
// rows in encounter order. The width is stored, never recomputed from
// the rows.
type Decay struct {
	PID     int
	Width   float64
	Comment string
	Modes   []Mode
}

// Data is the aggregate root: every block and decay table of one SLHA
// file, each collection in first-seen order. Blocks and decays carry no
// back-references; all lookups go through Data by name or PDG ID.
type Data struct {
	// Preamble holds the comment lines preceding the first section
	// header, re-emitted verbatim on write.
	Preamble []string

	blocks   []*Block
	blockIdx map[string]int
	decays   []*Decay
	decayIdx map[int]int
}

func NewData() *Data {
	return &Data{
		blockIdx: make(map[string]int),
		decayIdx: make(map[int]int),
	}
}

func (d *Data) String() string {
	return fmt.Sprintf("<SLHA data: %d blocks, %d decays>", len(d.blocks), len(d.decays))
}

// addBlock appends a block. If the name is already taken the first block
// keeps ownership of name-based lookups.
func (d *Data) addBlock(b *Block) {
	key := strings.ToUpper(b.Name)
	if _, ok := d.blockIdx[key]; !ok {
		d.blockIdx[key] = len(d.blocks)
	}
	d.blocks = append(d.blocks, b)
}

func (d *Data) findBlock(name string) (*Block, bool) {
	i, ok := d.blockIdx[strings.ToUpper(name)]
	if !ok {
		return nil, false
	}
	return d.blocks[i], true
}

// putDecay installs a decay table. Re-encountering a PDG ID replaces the
// prior table in place, keeping its first-seen position. Reports whether
// a prior table was replaced.
func (d *Data) putDecay(dec *Decay) bool {
	if i, ok := d.decayIdx[dec.PID]; ok {
		d.decays[i] = dec
		return true
	}
	d.decayIdx[dec.PID] = len(d.decays)
	d.decays = append(d.decays, dec)
	return false
}
