// Package feedback turns editor events into non-visual output.
//
// An Announcer receives spoken text and short audio cues. The editor core
// only reports what happened; the app decides which cue plays and what is
// spoken, and a TextRenderer applies the user's pronunciation definitions
// before text reaches the Announcer.
package feedback
