// Package app drives a document from key events.
//
// App owns one document and translates keymap actions into document calls,
// choosing what is spoken and which cue plays after each one. Prompts, the
// clipboard and the announcer are interfaces so the same App runs under the
// terminal front-end and in tests.
//
//	a := app.New(doc,
//	    app.WithSettings(settings, path),
//	    app.WithAnnouncer(announcer),
//	    app.WithPrompter(prompter),
//	)
//	if err := a.HandleKey(ev); errors.Is(err, app.ErrQuit) {
//	    // exit
//	}
//
// Run wires the App to a backend: it draws through a renderer.View, which
// also becomes the announcer and prompter, and handles events until the user
// quits. Edits are recorded for undo.
package app
