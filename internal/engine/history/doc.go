// Package history provides undo and redo for the document.
//
// History keeps whole-state snapshots rather than inverse operations: a
// document is a short array of lines, and restoring a snapshot also restores
// the cursor and view depth exactly.
//
//	h := history.New[document.Snapshot](100)
//
//	before := doc.Snapshot()
//	doc.Delete()
//	h.Push("delete block", before)
//
//	state, info, err := h.Undo(doc.Snapshot())
//	if err == nil {
//		doc.Restore(state)
//	}
//
// # Extending an entry
//
// Extend records a change like Push, but consecutive calls with the same
// name share one entry until Seal is called, so a run of typed characters
// undoes as a unit.
package history
