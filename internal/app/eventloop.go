package app

import (
	"context"
	"errors"

	"github.com/dshills/blockwalk/internal/feedback"
	"github.com/dshills/blockwalk/internal/renderer"
	"github.com/dshills/blockwalk/internal/renderer/backend"
)

// cancelled is posted to wake the loop when its context is done.
type cancelled struct{}

// Post queues fn to run on the event loop reading b. It is the only safe
// way to touch the App from another goroutine.
func Post(b backend.Backend, fn func(*App)) error {
	return b.PostEvent(backend.Interrupt(fn))
}

// Run draws the document on an initialized backend and processes events
// until the user quits or the backend closes. When ctx is done Run returns
// ctx.Err().
func (a *App) Run(ctx context.Context, b backend.Backend) error {
	view := renderer.New(b)
	if a.announcer == feedback.Discard {
		a.announcer = view
	} else {
		a.announcer = feedback.Multi(a.announcer, view)
	}
	if a.prompter == nil {
		a.prompter = view
	}

	stop := context.AfterFunc(ctx, func() {
		if err := b.PostEvent(backend.Interrupt(cancelled{})); err != nil {
			a.logger.Warn("posting cancel: %v", err)
		}
	})
	defer stop()

	a.logger.Debug("event loop started")
	a.speakLine()

	for {
		view.Draw(frame(a.Status()))

		ev := view.NextEvent()
		switch ev.Type {
		case backend.EventKey:
			if err := a.HandleKey(ev.Key); err != nil {
				if errors.Is(err, ErrQuit) {
					a.logger.Debug("quit")
					return nil
				}
				return err
			}
		case backend.EventPaste:
			a.HandlePaste(ev.PasteText)
		case backend.EventInterrupt:
			switch data := ev.Data.(type) {
			case cancelled:
				return ctx.Err()
			case func(*App):
				data(a)
			}
		case backend.EventClosed:
			return nil
		}
	}
}

func frame(s Status) renderer.Frame {
	return renderer.Frame{
		FilePath:  s.FilePath,
		Text:      s.Text,
		Line:      s.Line,
		LineCount: s.LineCount,
		Column:    s.Column,
		Depth:     s.Depth,
		ViewDepth: s.ViewDepth,
		Selection: s.Selection,
	}
}
