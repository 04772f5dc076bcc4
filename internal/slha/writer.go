package slha

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Write renders the data model back to SLHA text: preamble first, then
// blocks and decay tables, each collection in stored order.
func (d *Data) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, line := range d.Preamble {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	for _, b := range d.blocks {
		if _, err := fmt.Fprintln(bw, blockString(b)); err != nil {
			return err
		}
	}
	for _, dec := range d.decays {
		if _, err := fmt.Fprintln(bw, decayString(dec)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes to path, or to standard output when path is "" or
// "-". Paths ending in .gz are gzip-compressed. The destination is
// closed on every exit path.
func (d *Data) WriteFile(path string) (err error) {
	if path == "" || path == "-" {
		return d.Write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		defer func() {
			if cerr := gz.Close(); err == nil {
				err = cerr
			}
		}()
		w = gz
	}

	return d.Write(w)
}

func blockString(b *Block) string {
	var sb strings.Builder

	sb.WriteString("BLOCK " + b.Name)
	if b.Comment != "" {
		sb.WriteString("   # " + b.Comment)
	}
	for _, e := range b.Entries() {
		sb.WriteString("\n")
		sb.WriteString(entryString(e))
	}

	return sb.String()
}

// entryString formats one block entry: right-justified index columns, a
// left-justified value column, then the trailing comment.
func entryString(e Entry) string {
	var sb strings.Builder

	if len(e.Key) == 1 {
		fmt.Fprintf(&sb, " %9d", e.Key[0])
	} else {
		for _, k := range e.Key {
			fmt.Fprintf(&sb, " %3d", k)
		}
	}
	fmt.Fprintf(&sb, "   %-16s", e.Value)
	if e.Comment != "" {
		sb.WriteString("   # " + e.Comment)
	}

	return strings.TrimRight(sb.String(), " ")
}

func decayString(d *Decay) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "DECAY %9d   %16.8E", d.PID, d.Width)
	if d.Comment != "" {
		sb.WriteString("   # " + d.Comment)
	}
	for _, m := range d.Modes {
		fmt.Fprintf(&sb, "\n   %16.8E   %2d", m.BR, m.NDA)
		for _, id := range m.Daughters {
			fmt.Fprintf(&sb, " %9d", id)
		}
		if m.Comment != "" {
			sb.WriteString("   # " + m.Comment)
		}
	}

	return sb.String()
}
