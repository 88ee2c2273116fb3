/*

Mkdata writes the five files of random nucleotides we use for loading
and timing the DNA types in postgres.
Usage:
	mkdata [options]

The files are
	random_nucleotides_10M_100Mb.txt   10 000 000 nucleotides
	random_nucleotides_200K_2Mb.txt       200 000
	random_nucleotides_1M_10Mb.txt      1 000 000
	random_nucleotides_100K_1Mb.txt       100 000
	random_nucleotides_1K_100Kb.txt         1 000

Put them in /tmp or somewhere else outside your home directory.
Otherwise the postgres server cannot read them.

Flags:
	-d
		directory for the files, default is the current directory
	-r
		random number seed. 0 (default) means use the clock.
	-v
		say what is being written

*/
package main
