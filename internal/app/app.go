package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dshills/blockwalk/internal/config"
	"github.com/dshills/blockwalk/internal/engine/document"
	"github.com/dshills/blockwalk/internal/engine/history"
	"github.com/dshills/blockwalk/internal/feedback"
	"github.com/dshills/blockwalk/internal/input/key"
	"github.com/dshills/blockwalk/internal/input/keymap"
)

// Prompter asks the user for a line of text.
type Prompter interface {
	// Prompt shows title and message and returns the entered text, starting
	// from initial. ok is false when the user cancels.
	Prompt(title, message, initial string) (answer string, ok bool)
}

// App is the editor application for a single document. It is not safe for
// concurrent use; the event loop serializes all calls.
type App struct {
	doc     *document.Document
	history *history.History[document.Snapshot]

	keymap       *keymap.Keymap
	settings     *config.Settings
	settingsPath string
	text         *feedback.TextRenderer

	announcer feedback.Announcer
	clipboard Clipboard
	prompter  Prompter
	logger    *Logger

	lastSearch string
}

// Option configures an App.
type Option func(*App)

// WithSettings sets the settings and the file they are saved to. An empty
// path disables saving.
func WithSettings(s *config.Settings, path string) Option {
	return func(a *App) {
		if s != nil {
			a.settings = s
		}
		a.settingsPath = path
	}
}

// WithKeymap replaces the default keymap. Settings key overrides are not
// applied to it.
func WithKeymap(km *keymap.Keymap) Option {
	return func(a *App) {
		a.keymap = km
	}
}

// WithAnnouncer sets where speech and cues go.
func WithAnnouncer(an feedback.Announcer) Option {
	return func(a *App) {
		a.announcer = an
	}
}

// WithClipboard sets the clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// WithPrompter sets the prompter used by jump, find, reformat and the
// definition commands.
func WithPrompter(p Prompter) Option {
	return func(a *App) {
		a.prompter = p
	}
}

// WithUndoLimit bounds how many changes can be undone.
func WithUndoLimit(n int) Option {
	return func(a *App) {
		a.history.SetMaxEntries(n)
	}
}

// WithLogger sets the logger.
func WithLogger(l *Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// New creates an App editing doc.
func New(doc *document.Document, opts ...Option) *App {
	a := &App{
		doc:       doc,
		history:   history.New[document.Snapshot](0),
		settings:  config.Default(),
		announcer: feedback.Discard,
		clipboard: &MemoryClipboard{},
		logger:    NullLogger,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.WithComponent("app")

	a.text = feedback.NewTextRenderer(a.settings.Characters, a.settings.Strings)
	if a.keymap == nil {
		km, err := buildKeymap(a.settings)
		if err != nil {
			a.logger.Warn("key overrides: %v", err)
		}
		a.keymap = km
	}
	return a
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func buildKeymap(s *config.Settings) (*keymap.Keymap, error) {
	km := keymap.Default()
	if len(s.Keys) == 0 {
		return km, nil
	}
	return km, km.ApplyOverrides(s.Keys)
}

// Document returns the edited document.
func (a *App) Document() *document.Document {
	return a.doc
}

// Settings returns the current settings.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// Keymap returns the active keymap.
func (a *App) Keymap() *keymap.Keymap {
	return a.keymap
}

// History returns the undo history.
func (a *App) History() *history.History[document.Snapshot] {
	return a.history
}

// LastSearch returns the phrase F3 searches for.
func (a *App) LastSearch() string {
	return a.lastSearch
}

// SetPrompter replaces the prompter.
func (a *App) SetPrompter(p Prompter) {
	a.prompter = p
}

// SetAnnouncer replaces the announcer.
func (a *App) SetAnnouncer(an feedback.Announcer) {
	a.announcer = an
}

// Open loads a file into the document. A missing file starts an empty
// document that saves to path.
func (a *App) Open(path string) error {
	err := a.doc.LoadFile(path)
	if err == nil {
		a.history.Clear()
		a.logger.Info("opened %s (%d lines)", path, a.doc.LineCount())
		return nil
	}
	if isNotExist(err) {
		a.doc.SetFilePath(path)
		a.logger.Info("new file %s", path)
		return nil
	}
	return NewOperationError("open", path, err)
}

// HandleKey runs the action bound to ev, or inserts the typed character.
// It returns ErrQuit when the user asks to quit.
func (a *App) HandleKey(ev key.Event) error {
	if action, ok := a.keymap.Lookup(ev); ok {
		return a.Dispatch(action)
	}
	if ev.IsChar() {
		a.history.Extend(editTyping, a.doc.Snapshot)
		a.doc.Insert(ev.Rune)
	}
	return nil
}

// HandlePaste pastes text delivered by the terminal.
func (a *App) HandlePaste(text string) {
	a.doc.CancelSelection()
	a.paste(text)
}

// ApplySettings replaces the settings, rebuilding the pronunciation tables
// and the keymap. Invalid key overrides are reported but the valid ones
// still apply.
func (a *App) ApplySettings(s *config.Settings) error {
	a.settings = s
	a.text = feedback.NewTextRenderer(s.Characters, s.Strings)
	km, err := buildKeymap(s)
	a.keymap = km
	a.logger.SetLevel(ParseLogLevel(s.LogLevel))
	if err != nil {
		return fmt.Errorf("key overrides: %w", err)
	}
	return nil
}

// SaveSettings writes the settings to their file, if one is set.
func (a *App) SaveSettings() error {
	if a.settingsPath == "" {
		return nil
	}
	if err := config.Save(a.settingsPath, a.settings); err != nil {
		return NewOperationError("save settings", a.settingsPath, err)
	}
	return nil
}

// Status describes the cursor position for display. Line is 1-based and
// Column is a rune offset into Text, the current line without its newline.
type Status struct {
	FilePath  string
	Line      int
	LineCount int
	Column    int
	Depth     int
	ViewDepth int
	Selection bool
	Text      string
}

// Status returns the current cursor position.
func (a *App) Status() Status {
	return Status{
		FilePath:  a.doc.FilePath(),
		Line:      a.doc.CursorLine() + 1,
		LineCount: a.doc.LineCount(),
		Column:    a.doc.CursorOffset(),
		Depth:     a.doc.CurrentDepth(),
		ViewDepth: a.doc.ViewDepth(),
		Selection: a.doc.HasSelection(),
		Text:      strings.TrimSuffix(a.doc.CurrentLine(), "\n"),
	}
}
