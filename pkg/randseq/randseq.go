// 2 Apr 2025

// Package randseq makes reproducible random sequences for tests and
// benchmarks. Everything takes an explicit seed, so a failing test
// can be re-run on exactly the same data.
package randseq

import (
	"math/rand"
)

var dna = []byte("ACGT")
var protein = []byte("ACDEFGHIKLMNPQRSTVWY")

func fromAlpha(alpha []byte, seed int64, n int) []byte {
	rnd := rand.New(rand.NewSource(seed))
	s := make([]byte, n)
	for i := range s {
		s[i] = alpha[rnd.Intn(len(alpha))]
	}
	return s
}

// DNA returns n random nucleotides.
func DNA(seed int64, n int) []byte { return fromAlpha(dna, seed, n) }

// Protein returns n random residues over the twenty amino acids.
func Protein(seed int64, n int) []byte { return fromAlpha(protein, seed, n) }

// Mutate changes about frac of the sites of s in place and returns
// the number of sites actually changed. A site can be redrawn as
// itself, so the count can come out below len(s)*frac.
func Mutate(seed int64, frac float64, s []byte) int {
	rnd := rand.New(rand.NewSource(seed))
	n := 0
	for i := range s {
		if rnd.Float64() >= frac {
			continue
		}
		if c := dna[rnd.Intn(len(dna))]; c != s[i] {
			s[i] = c
			n++
		}
	}
	return n
}
