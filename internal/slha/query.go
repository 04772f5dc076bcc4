package slha

import (
	"fmt"
	"sort"
)

// Blocks returns block names in first-seen order.
func (d *Data) Blocks() []string {
	names := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		names[i] = b.Name
	}
	return names
}

// Decays returns the PDG IDs that carry decay tables, in first-seen order.
func (d *Data) Decays() []int {
	pids := make([]int, len(d.decays))
	for i, dec := range d.decays {
		pids[i] = dec.PID
	}
	return pids
}

// FindBlock returns the first block whose name matches, ignoring case.
func (d *Data) FindBlock(name string) (*Block, error) {
	b, ok := d.findBlock(name)
	if !ok {
		return nil, fmt.Errorf("block %q: %w", name, ErrBlockNotFound)
	}
	return b, nil
}

// GetBlock returns the block's entries in stored order.
func (d *Data) GetBlock(name string) ([]Entry, error) {
	b, err := d.FindBlock(name)
	if err != nil {
		return nil, err
	}
	return b.Entries(), nil
}

// GetBlockString renders the block exactly as Write would.
func (d *Data) GetBlockString(name string) (string, error) {
	b, err := d.FindBlock(name)
	if err != nil {
		return "", err
	}
	return blockString(b), nil
}

func (d *Data) GetValue(block string, key Key) (Value, error) {
	b, err := d.FindBlock(block)
	if err != nil {
		return Value{}, err
	}
	v, ok := b.Get(key)
	if !ok {
		return Value{}, fmt.Errorf("block %q entry %s: %w", block, key, ErrEntryNotFound)
	}
	return v, nil
}

// SetValue creates or overwrites the entry at key. A missing block is
// created and appended at the end of block order; the comment of an
// existing entry is preserved.
func (d *Data) SetValue(block string, key Key, v Value) {
	b, ok := d.findBlock(block)
	if !ok {
		b = NewBlock(block)
		d.addBlock(b)
	}
	b.Set(key, v)
}

func (d *Data) GetDecay(pid int) (*Decay, error) {
	i, ok := d.decayIdx[pid]
	if !ok {
		return nil, fmt.Errorf("particle %d: %w", pid, ErrDecayNotFound)
	}
	return d.decays[i], nil
}

// GetDecayString renders the decay table exactly as Write would.
func (d *Data) GetDecayString(pid int) (string, error) {
	dec, err := d.GetDecay(pid)
	if err != nil {
		return "", err
	}
	return decayString(dec), nil
}

func (d *Data) GetWidth(pid int) (float64, error) {
	dec, err := d.GetDecay(pid)
	if err != nil {
		return 0, err
	}
	return dec.Width, nil
}

// GetBR returns the branching ratio of the decay channel with the given
// daughters, matched as a multiset: order-independent, but two channels
// differing only in the multiplicity of a repeated daughter stay
// distinct. A missing channel is 0.0, not an error; only a particle
// without any decay table is.
func (d *Data) GetBR(pid int, daughters []int) (float64, error) {
	dec, err := d.GetDecay(pid)
	if err != nil {
		return 0, err
	}
	want := sortedCopy(daughters)
	for _, m := range dec.Modes {
		if intsEqual(sortedCopy(m.Daughters), want) {
			return m.BR, nil
		}
	}
	return 0, nil
}

// Name-based decay lookups resolve through the particle registry first;
// an unknown alias propagates ErrUnknownParticle.

func (d *Data) GetDecayByName(particle string) (*Decay, error) {
	pid, err := ResolveID(particle)
	if err != nil {
		return nil, err
	}
	return d.GetDecay(pid)
}

func (d *Data) GetWidthByName(particle string) (float64, error) {
	pid, err := ResolveID(particle)
	if err != nil {
		return 0, err
	}
	return d.GetWidth(pid)
}

func (d *Data) GetBRByName(particle string, daughters ...string) (float64, error) {
	pid, err := ResolveID(particle)
	if err != nil {
		return 0, err
	}
	ids := make([]int, len(daughters))
	for i, name := range daughters {
		if ids[i], err = ResolveID(name); err != nil {
			return 0, err
		}
	}
	return d.GetBR(pid, ids)
}

func sortedCopy(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	return out
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
