// 3 Apr 2025

/*

mutscore aligns a reference sequence against one or more query
sequences and reports the mutations implied by each alignment.

Usage:
 mutscore [options] ref.fa query.fa [more_queries.fa ...]

The first sequence of each file is used; gaps in the input are
removed before aligning. For each query one gets the alignment score,
the counts of matches, substitutions, insertions and deletions, the
fraction of identical aligned columns and the Levenshtein distance.

Flags:
  -a mode
    	global (default), local or semiglobal. Semiglobal aligns the
    	whole reference within the query with free gaps at the query's
    	ends, which is what one wants when the reference is a gene and
    	the query a longer stretch of genome.
  -m N -s N
    	match reward and mismatch penalty. Ignored when -b is given.
  -b filename
    	read a substitution matrix in the usual white-space separated
    	format with an alphabet line, as for blosum or pam matrices.
  -g N -e N
    	gap open and gap extend penalties. Both must be negative. A
    	gap of length L costs g + L*e.
  -p
    	print the three-row rendering of each alignment.
  -w N
    	line width for -p.
  -o filename
    	write output to filename instead of stdout.

*/
package main
