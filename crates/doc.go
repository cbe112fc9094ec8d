// Package crates simulates rearrangement of labeled crates between stacks.
//
// Input is a drawing of the starting stacks, a blank line, and a list of move
// instructions:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//
// ParseDrawing reads the drawing into rows of optional crates, which
// BuildStacks transposes into bottom-to-top Stacks. Instructions are then
// replayed by a Mover: SingleMover moves crates one at a time, reversing the
// order of a moved block, while BulkMover moves a block while preserving
// its order.
package crates
