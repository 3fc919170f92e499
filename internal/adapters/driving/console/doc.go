// Package console provides the line-oriented text front end for the
// crossword editor. It is a driving adapter: it reads commands, calls the
// editor service, and prints the board after every successful edit.
//
// Commands:
//
//	exit
//	help
//	print
//	words
//	clear row col
//	block row col
//	write letter row col
//
// Rows and columns are 0-based. Bad input is reported and the session
// continues.
package console
