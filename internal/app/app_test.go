package app

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/dshills/blockwalk/internal/config"
	"github.com/dshills/blockwalk/internal/engine/document"
	"github.com/dshills/blockwalk/internal/feedback"
	"github.com/dshills/blockwalk/internal/input/key"
	"github.com/dshills/blockwalk/internal/input/keymap"
)

const sample = "root\n  child one\n  child two\nsecond\n"

// fakePrompter answers prompts from a queue and cancels once it runs out.
type fakePrompter struct {
	answers []string
	titles  []string
	initial []string
}

func (p *fakePrompter) Prompt(title, _, initial string) (string, bool) {
	p.titles = append(p.titles, title)
	p.initial = append(p.initial, initial)
	if len(p.answers) == 0 {
		return "", false
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, true
}

type fixture struct {
	app       *App
	recorder  *feedback.Recorder
	clipboard *MemoryClipboard
	prompter  *fakePrompter
}

func newFixture(t *testing.T, text string, opts ...Option) *fixture {
	t.Helper()
	doc, err := document.NewFromString(text)
	if err != nil {
		t.Fatalf("loading document: %v", err)
	}
	f := &fixture{
		recorder:  &feedback.Recorder{},
		clipboard: &MemoryClipboard{},
		prompter:  &fakePrompter{},
	}
	opts = append([]Option{
		WithAnnouncer(f.recorder),
		WithClipboard(f.clipboard),
		WithPrompter(f.prompter),
	}, opts...)
	f.app = New(doc, opts...)
	return f
}

func (f *fixture) dispatch(t *testing.T, actions ...keymap.Action) {
	t.Helper()
	for _, action := range actions {
		if err := f.app.Dispatch(action); err != nil {
			t.Fatalf("dispatch %s: %v", action, err)
		}
	}
}

func (f *fixture) answer(answers ...string) {
	f.prompter.answers = append(f.prompter.answers, answers...)
}

func TestNewDefaults(t *testing.T) {
	a := New(document.New())

	if a.Settings() == nil || !a.Settings().BeepOnCapitalCharacters {
		t.Error("expected default settings")
	}
	if a.Keymap().Len() == 0 {
		t.Error("expected default keymap")
	}
	if a.LastSearch() != "" {
		t.Errorf("expected no last search, got %q", a.LastSearch())
	}
	// Discard announcer and no prompter must not panic.
	if err := a.Dispatch(keymap.ActionJumpToLine); err != nil {
		t.Fatal(err)
	}
}

func TestNewAppliesKeyOverrides(t *testing.T) {
	s := config.Default()
	s.Keys = map[string]string{"F5": "save", "F6": "no_such_action"}
	a := New(document.New(), WithSettings(s, ""))

	action, ok := a.Keymap().Lookup(key.MustParse("F5"))
	if !ok || action != keymap.ActionSave {
		t.Errorf("expected F5 bound to save, got %v %v", action, ok)
	}
	if _, ok := a.Keymap().Lookup(key.MustParse("F6")); ok {
		t.Error("expected invalid override to be skipped")
	}
}

func TestWithKeymap(t *testing.T) {
	km := keymap.New("custom")
	if err := km.Bind("F2", keymap.ActionQuit); err != nil {
		t.Fatal(err)
	}
	s := config.Default()
	s.Keys = map[string]string{"F5": "save"}
	a := New(document.New(), WithKeymap(km), WithSettings(s, ""))

	if a.Keymap() != km {
		t.Fatal("expected custom keymap")
	}
	if err := a.HandleKey(key.MustParse("F2")); !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}

func TestHandleKeyInsertsCharacters(t *testing.T) {
	f := newFixture(t, "ab")
	f.app.Document().NavigateToNextCharacter()

	for _, r := range "xY" {
		if err := f.app.HandleKey(key.NewRuneEvent(r, key.ModShift)); err != nil {
			t.Fatal(err)
		}
	}
	// Ctrl chords that are not bound are ignored.
	if err := f.app.HandleKey(key.NewRuneEvent('k', key.ModCtrl)); err != nil {
		t.Fatal(err)
	}

	if got := f.app.Status().Text; got != "axYb" {
		t.Errorf("expected %q, got %q", "axYb", got)
	}
}

func TestHandleKeyDispatchesBindings(t *testing.T) {
	f := newFixture(t, sample)

	if err := f.app.HandleKey(key.MustParse("Down")); err != nil {
		t.Fatal(err)
	}
	if got := f.recorder.Last(); got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
	if err := f.app.HandleKey(key.MustParse("Ctrl+Q")); !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}

func TestHandlePaste(t *testing.T) {
	f := newFixture(t, "ab")
	f.app.Document().StartSelection()

	f.app.HandlePaste("xyz")

	if f.app.Document().HasSelection() {
		t.Error("expected paste to cancel the selection")
	}
	if got := f.app.Status().Text; got != "xyzab" {
		t.Errorf("expected %q, got %q", "xyzab", got)
	}
	if got := f.recorder.Last(); got != msgPasted {
		t.Errorf("expected %q, got %q", msgPasted, got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	a := New(document.New())
	if err := a.Open(path); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if a.Document().LineCount() != 4 {
		t.Errorf("expected 4 lines, got %d", a.Document().LineCount())
	}
	if a.Document().FilePath() != path {
		t.Errorf("expected path %q, got %q", path, a.Document().FilePath())
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	a := New(document.New())

	if err := a.Open(path); err != nil {
		t.Fatalf("expected missing file to start a new document, got %v", err)
	}
	if a.Document().FilePath() != path {
		t.Errorf("expected path %q, got %q", path, a.Document().FilePath())
	}
	if a.Document().LineCount() != 1 {
		t.Errorf("expected blank document, got %d lines", a.Document().LineCount())
	}
}

func TestOpenDirectory(t *testing.T) {
	a := New(document.New())
	err := a.Open(t.TempDir())

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %v", err)
	}
	if opErr.Op != "open" {
		t.Errorf("expected op %q, got %q", "open", opErr.Op)
	}
}

func TestApplySettings(t *testing.T) {
	f := newFixture(t, "abc")

	s := config.Default()
	s.Characters["a"] = "alpha"
	s.Keys = map[string]string{"F5": "quit", "Bogus+Key": "save"}
	s.LogLevel = "debug"

	err := f.app.ApplySettings(s)
	if err == nil {
		t.Error("expected error for invalid key override")
	}
	if f.app.Settings() != s {
		t.Error("expected settings to be replaced")
	}
	if action, ok := f.app.Keymap().Lookup(key.MustParse("F5")); !ok || action != keymap.ActionQuit {
		t.Errorf("expected F5 bound to quit, got %v %v", action, ok)
	}

	f.dispatch(t, keymap.ActionNextCharacter, keymap.ActionPreviousCharacter)
	if got := f.recorder.Last(); got != "alpha" {
		t.Errorf("expected %q, got %q", "alpha", got)
	}
}

func TestSaveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	f := newFixture(t, "abc", WithSettings(config.Default(), path))

	f.answer("alpha")
	f.dispatch(t, keymap.ActionAddCharacterDefinition)
	if err := f.app.SaveSettings(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Characters["a"] != "alpha" {
		t.Errorf("expected saved definition, got %v", loaded.Characters)
	}
}

func TestSaveSettingsWithoutPath(t *testing.T) {
	a := New(document.New())
	if err := a.SaveSettings(); err != nil {
		t.Errorf("expected no-op, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	f := newFixture(t, sample)
	f.app.Document().SetFilePath("/tmp/x.txt")
	f.dispatch(t, keymap.ActionIncreaseLevel, keymap.ActionNextLine, keymap.ActionNextCharacter)
	f.app.Document().StartSelection()

	got := f.app.Status()
	want := Status{
		FilePath:  "/tmp/x.txt",
		Line:      2,
		LineCount: 4,
		Column:    1,
		Depth:     1,
		ViewDepth: 1,
		Selection: true,
		Text:      "child one",
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSetters(t *testing.T) {
	a := New(document.New())
	r := &feedback.Recorder{}
	p := &fakePrompter{answers: []string{"1"}}
	a.SetAnnouncer(r)
	a.SetPrompter(p)

	if err := a.Dispatch(keymap.ActionJumpToLine); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(p.titles, []string{"Jump to line"}) {
		t.Errorf("expected jump prompt, got %v", p.titles)
	}
	if len(r.Utterances()) == 0 {
		t.Error("expected announcements on the new announcer")
	}
}
