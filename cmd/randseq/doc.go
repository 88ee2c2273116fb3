// 31 July 2020
// 19 Oct 2026 nucleotides only

/*

Randseq makes a file of random nucleotides.
Usage:
	randseq [options] fname [n]
will write n nucleotides to fname, all on one line, followed by a newline.
If n is not given, it is 10 000 000. If fname is "-", write to stdout.

Each of A, T, C and G is equally likely. The random numbers are not
suitable for anything to do with security.

Flags:
	-r
		random number seed. The default of 0 means take it from the clock.
	-z
		compress the output with snappy. This is also switched on if
		fname ends with .sz

To make the standard set of test files, use mkdata.

*/
package main
