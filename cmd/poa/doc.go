// 12 May 2025

/*

poa builds a partial order alignment graph from the sequences in a
fasta file and prints the consensus, the heaviest path through the
graph. With a second file, each of its sequences is aligned against
the graph and scored, without changing the graph.

Usage:
 poa [options] graph.fa [queries.fa]

The first sequence of graph.fa seeds the graph as a simple chain.
Every further sequence is aligned against the graph and merged in, so
shared stretches pile up support on the same nodes and variants
branch off.

Flags:
  -m N -s N -g N -e N
    	match, mismatch, gap open and gap extend. Gap penalties must
    	be negative.
  -n N
    	refuse to grow the graph beyond N nodes. The default limit is
    	20000 nodes.
  -p
    	print the three-row rendering of each query against its path
    	through the graph.
  -w N
    	line width for -p.
  -o filename
    	write output to filename instead of stdout.

*/
package main
