/* Package main: gobf -- a tape machine compiler and interpreter

gobf runs programs for the classic eight instruction tape machine language.
A program operates on a circular tape of 30,000 byte cells, all initially
zero, through a data pointer that starts at the first cell:

	>   move the data pointer one cell right
	<   move the data pointer one cell left
	+   increment the current cell
	-   decrement the current cell
	.   write the current cell to output
	,   read one byte of input into the current cell
	[   if the current cell is zero, skip past the matching ]
	]   if the current cell is non-zero, go back to the matching [

Every other byte is a comment.

Pointer movement wraps around either end of the tape, and cell arithmetic
wraps modulo 256; neither is ever an error.

Programs run in three stages:

1. Compile scans the source once, building a tree of instructions where each
   loop owns its body. Unbalanced brackets are reported by line and column.

2. Optimize folds every run of adjacent moves, and every run of adjacent
   increments or decrements, into a single instruction of the summed
   magnitude; "+++>>-<" becomes "+3 >2 -1 <1".

3. A VM walks the tree against its tape, writing output and reading input
   through buffered streams; output is flushed before every input.

Usage:

	gobf [flags] <source file path>

Output is written as raw bytes. With -utf8, each byte is instead written as
the utf8 encoding of the code point with the same value, so that bytes 0x80
and above print as Latin-1 characters on a utf8 terminal. With -debug, program
output is also copied into the debug log, and the VM is dumped after running.

The process exits 1 after any usage, file, compile, or runtime error, and 0
otherwise.
*/
package main
