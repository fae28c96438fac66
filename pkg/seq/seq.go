// 6 May 2025

// Package seq reads sequences, which begin their lives in fasta
// format. The aligners only want byte slices, so this is a thin
// layer: comments and sequence data, nothing about alphabets.
package seq

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/seq_mut/pkg/common"
)

const cmmtChar = '>'

// Seq is one sequence with its comment line, ">" removed.
type Seq struct {
	cmmt string
	seq  []byte
}

// Seq returns the sequence bytes. They belong to the Seq; treat them
// as read-only.
func (s Seq) Seq() []byte { return s.seq }

// Cmmt returns the comment without the leading ">".
func (s Seq) Cmmt() string { return s.cmmt }

func (s Seq) Len() int { return len(s.seq) }

// Options change reading behaviour.
type Options struct {
	RmvGaps bool // remove "-" characters on reading
}

// ReadFasta reads everything from rdr. A line starting with ">"
// opens a new sequence; white space inside sequence data is thrown
// away. An input without a single sequence is an error.
func ReadFasta(rdr io.Reader, opts *Options) ([]Seq, error) {
	if opts == nil {
		opts = &Options{}
	}
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return parse(buf, opts)
}

func parse(buf []byte, opts *Options) ([]Seq, error) {
	var seqs []Seq
	var cur Seq
	open := false
	flush := func() error {
		if !open {
			return nil
		}
		if len(cur.seq) == 0 {
			return errors.New("zero length sequence after " + cur.cmmt)
		}
		seqs = append(seqs, cur)
		return nil
	}
	for _, line := range bytes.Split(buf, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] == cmmtChar {
			if err := flush(); err != nil {
				return nil, err
			}
			cur = Seq{cmmt: strings.TrimSpace(string(line[1:]))}
			open = true
			continue
		}
		if !open {
			return nil, errors.New("sequence data before any \">\" comment line")
		}
		for _, c := range line {
			switch {
			case c == ' ' || c == '\t' || c == '\r':
			case opts.RmvGaps && c == common.GapChar:
			default:
				cur.seq = append(cur.seq, c)
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, errors.New("no sequences found")
	}
	return seqs, nil
}

// ReadFile reads a fasta file. The file is mapped rather than read,
// which matters for genome sized inputs; if mapping fails we fall
// back to a plain read.
func ReadFile(fname string, opts *Options) ([]Seq, error) {
	if opts == nil {
		opts = &Options{}
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		buf, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		return parse(buf, opts)
	}
	defer mm.Unmap()
	seqs, err := parse(mm, opts)
	if err != nil {
		err = fmt.Errorf("reading from %s: %w", fname, err)
	}
	return seqs, err
}

// NumSeq counts the sequences in a fasta file without parsing it.
func NumSeq(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		buf, err := os.ReadFile(fname)
		if err != nil {
			return 0, err
		}
		return bytes.Count(buf, []byte{cmmtChar}), nil
	}
	defer mm.Unmap()
	return bytes.Count(mm, []byte{cmmtChar}), nil
}
