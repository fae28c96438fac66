// 6 May 2025

/*

variants compares every pair of sequences from one or more fasta
files. For each pair it writes one csv line with the alignment score,
the fraction of identical aligned columns and the Levenshtein
distance.

Usage:
 variants [options] f1.fa [f2.fa ...]

All sequences from all files go into one pool; gaps in the input are
removed. With N sequences one gets N*(N-1)/2 lines.

Flags:
  -a mode
    	global (default), local or semiglobal.
  -m N -s N -g N -e N
    	match, mismatch, gap open and gap extend. Gap penalties must
    	be negative.
  -plot filename.png
    	draw the identity profile of the least similar pair. Each bar
    	is the fraction of matches in a window of alignment columns.
  -window N
    	columns per bar in the plot.
  -font filename.ttf
    	label the plot. Without a font the plot has no text.
  -o filename
    	write the csv table to filename instead of stdout.

*/
package main
