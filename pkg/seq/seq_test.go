package seq_test

import (
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/seq_mut/pkg/common"
	"github.com/andrew-torda/seq_mut/pkg/seq"
)

const twoseqs = `> first one
ACGT
ac gt
>second
AC-GT
`

func TestReadFasta(t *testing.T) {
	seqs, err := seq.ReadFasta(strings.NewReader(twoseqs), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 2 {
		t.Fatal("got", len(seqs), "sequences")
	}
	if seqs[0].Cmmt() != "first one" || seqs[1].Cmmt() != "second" {
		t.Fatal("comments:", seqs[0].Cmmt(), "/", seqs[1].Cmmt())
	}
	if string(seqs[0].Seq()) != "ACGTacgt" {
		t.Fatal("white space not stripped:", string(seqs[0].Seq()))
	}
	if string(seqs[1].Seq()) != "AC-GT" {
		t.Fatal("gap removed although RmvGaps not set:", string(seqs[1].Seq()))
	}
}

func TestRmvGaps(t *testing.T) {
	seqs, err := seq.ReadFasta(strings.NewReader(twoseqs), &seq.Options{RmvGaps: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(seqs[1].Seq()) != "ACGT" {
		t.Fatal("gap kept:", string(seqs[1].Seq()))
	}
}

func TestReadBroken(t *testing.T) {
	broken := []string{
		"",
		"ACGT\n",           // data with no comment line
		"> a\n> b\nACGT\n", // first sequence empty
		"> a\nACGT\n> b\n", // last sequence empty
	}
	for _, s := range broken {
		if _, err := seq.ReadFasta(strings.NewReader(s), nil); err == nil {
			t.Fatalf("input %q should not parse", s)
		}
	}
}

func TestReadFileAndNumSeq(t *testing.T) {
	fname, err := common.WrtTemp(twoseqs)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)

	seqs, err := seq.ReadFile(fname, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 2 || seqs[0].Len() != 8 {
		t.Fatal("file read gave", len(seqs), "sequences")
	}
	n, err := seq.NumSeq(fname)
	if err != nil || n != 2 {
		t.Fatal("NumSeq:", n, err)
	}
}
