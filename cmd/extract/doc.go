// 19 Oct 2026

/*

Extract pulls the sequence out of a data file downloaded from the National
Library of Medicine (for example https://www.ncbi.nlm.nih.gov/nuccore/HQ287898.1).
Usage:
	extract [options] [infile [outfile]]

Lines starting with N are sequence. The N is dropped, white space at
either end is dropped and what is left is appended to one long line.
Everything else is ignored. The output is that one line and a newline.

If no input file is given, SAMN01780187.fastq is used.
If no output file is given, dna.txt is used.
The input may be gzip or snappy compressed. We look at the contents,
not the name.

Flags:
	-v
		say how many lines and fragments were found

*/
package main
