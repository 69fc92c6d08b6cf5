// Package renderer draws the editor on a backend.
//
// The screen shows the title, the current line indented by its depth, the
// last announcement and a status line. View also implements the feedback
// announcer, shown as the message row with a bell for bump cues, and the
// app prompter, which edits a line of input on the bottom row.
package renderer
