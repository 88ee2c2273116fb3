// 19 Oct 2026

/*

Nucstat checks files of nucleotides before they are loaded into postgres.
Usage:
	nucstat [options] file [file ...]

For each file we print the length, the count and fraction of each base
and a table of which base follows which. Then we check the file the way
the dna type does. It must hold one non-empty line of A, T, C and G,
ending in a newline. Problems are printed and the exit status is 1 if
any file failed.

Flags:
	-p plot.png
		draw a bar chart of the composition. Only with one file.
	-q
		no report, only complaints

*/
package main
