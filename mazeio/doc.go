// Package mazeio reads puzzle grids from their line-oriented text form and
// writes solved paths.
//
// Input layout, one record per line, all coordinates 1-based:
//
//	rows cols
//	row col color circle direction     (rows×cols-1 times)
//	fin_row fin_col X X X
//
// color is R or B, circle is C (circle) or N (plain) and direction is one of
// N E S W NE SE SW NW. Blank lines are ignored. Every cell except the target
// must be listed exactly once, in any order.
//
// Errors carry the offending line number (see ParseError) and wrap one of
// the sentinels below or the token errors of package maze.
package mazeio
