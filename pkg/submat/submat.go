// 12 May 2025

// Package submat reads substitution matrices in the ncbi/blast text
// format (blosum62 and friends) and scores pairs of residues with
// them. A Submat satisfies the align.Scorer interface, so it can be
// dropped in anywhere a match/mismatch pair would go.
package submat

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/matrix"
)

const notset int8 = -1

// Submat maps a pair of residues to a score. Upper and lower case
// both work. Residues the matrix does not know score as the matrix's
// final column, conventionally the "*" catch-all.
type Submat struct {
	mat   *matrix.FMatrix2d
	cmap  [128]int8
	nalfa int
}

// dropCmmt cuts a line at the comment character and trims it.
func dropCmmt(line []byte) []byte {
	if i := bytes.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return bytes.TrimSpace(line)
}

// alfbtLine digests the header line listing the alphabet; every
// field must be a single ascii character.
func (sm *Submat) alfbtLine(line []byte) error {
	for i := range sm.cmap {
		sm.cmap[i] = notset
	}
	fields := bytes.Fields(line)
	if len(fields) == 0 {
		return errors.New("empty alphabet line")
	}
	for i, f := range fields {
		if len(f) != 1 || f[0] > 127 {
			return fmt.Errorf("alphabet entry %q is not a single ascii character", f)
		}
		sm.cmap[f[0]] = int8(i)
	}
	for _, f := range fields { // fill in the other case where free
		l, u := bytes.ToLower(f)[0], bytes.ToUpper(f)[0]
		if sm.cmap[l] == notset {
			sm.cmap[l] = sm.cmap[u]
		}
		if sm.cmap[u] == notset {
			sm.cmap[u] = sm.cmap[l]
		}
	}
	sm.nalfa = len(fields)
	return nil
}

// Read reads a substitution matrix from rdr. "#" starts a comment,
// the first real line is the alphabet, each further line is one row
// labelled with its residue. The matrix is stored symmetrically, so
// a triangular file would also do.
func Read(rdr io.Reader) (*Submat, error) {
	sm := new(Submat)
	scnr := bufio.NewScanner(rdr)

	var line []byte
	for scnr.Scan() {
		if line = dropCmmt(scnr.Bytes()); len(line) > 0 {
			break
		}
	}
	if err := sm.alfbtLine(line); err != nil {
		return nil, err
	}
	sm.mat = matrix.NewFMatrix2d(sm.nalfa, sm.nalfa)

	nrow := 0
	for scnr.Scan() {
		line := dropCmmt(scnr.Bytes())
		if len(line) == 0 {
			continue
		}
		fields := bytes.Fields(line)
		if len(fields) != sm.nalfa+1 {
			return nil, fmt.Errorf("wrong number of items on line %q", line)
		}
		if len(fields[0]) != 1 || fields[0][0] > 127 || sm.cmap[fields[0][0]] == notset {
			return nil, fmt.Errorf("row label %q not in the alphabet", fields[0])
		}
		i := sm.cmap[fields[0][0]]
		for j := 0; j < sm.nalfa; j++ {
			f, err := strconv.ParseFloat(string(fields[j+1]), 32)
			if err != nil {
				return nil, fmt.Errorf("row %q: %w", fields[0], err)
			}
			sm.mat.Mat[i][j], sm.mat.Mat[j][i] = float32(f), float32(f)
		}
		nrow++
	}
	if err := scnr.Err(); err != nil {
		return nil, err
	}
	if nrow != sm.nalfa {
		return nil, fmt.Errorf("alphabet has %d entries but %d rows found", sm.nalfa, nrow)
	}
	return sm, nil
}

// ReadFile reads a substitution matrix from a file.
func ReadFile(fname string) (*Submat, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	sm, err := Read(fp)
	if err != nil {
		err = fmt.Errorf("reading from %s: %w", fname, err)
	}
	return sm, err
}

// Score returns the similarity of bytes a and b. Unknown bytes fall
// into the last column of the matrix.
func (sm *Submat) Score(a, b byte) float32 {
	i, j := sm.lookup(a), sm.lookup(b)
	return sm.mat.Mat[i][j]
}

func (sm *Submat) lookup(c byte) int8 {
	if c > 127 || sm.cmap[c] == notset {
		return int8(sm.nalfa - 1)
	}
	return sm.cmap[c]
}
