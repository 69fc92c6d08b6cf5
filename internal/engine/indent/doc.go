// Package indent converts raw indented text into normalized block depths.
//
// Structure is derived from leading whitespace rather than bracket syntax.
// Every non-blank, non-comment line's leading column is compared with a
// stack of columns seen so far: a deeper column opens a new block, an equal
// column continues the current one and a shallower column must match one of
// the enclosing blocks exactly.
//
// Blank lines and lines that look like comments or VCS conflict markers are
// "deferred": they are excluded from the column bookkeeping and afterwards
// inherit the depth of the line that follows them, so they never break
// block continuity.
//
// Basic usage:
//
//	lines, err := indent.Normalize("a\n  b\n  c\n")
//	// lines[0].Depth == 0, lines[1].Depth == 1, lines[2].Depth == 1
package indent
