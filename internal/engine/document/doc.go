// Package document implements the block-aware text document.
//
// A Document is a flat sequence of lines, each carrying a normalized depth
// (see package indent). Parent, child and sibling relations are never stored;
// they are derived by scanning depths:
//
//   - a line's subtree is the line plus all following lines that are deeper
//   - siblings share a depth and are separated only by deeper lines
//
// The cursor is a (line, offset) pair plus a view depth: the depth at which
// line navigation operates. Moving to the next line means moving to the
// next sibling at the view depth, skipping over children. The view depth
// can lag behind the cursor line's own depth after ascending or editing;
// navigation treats such a cursor as detached from the current view.
//
// All operations are synchronous and a Document has a single owner. Failed
// operations leave the document unchanged and report failure through a
// boolean or an error so the caller can produce feedback.
package document
