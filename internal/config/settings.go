package config

import (
	"maps"
	"strings"
	"unicode/utf8"
)

// Settings holds the user preferences persisted between sessions.
type Settings struct {
	// BeepOnCapitalCharacters plays a cue before upper-case characters.
	BeepOnCapitalCharacters bool `toml:"beep_on_capital_characters" yaml:"beep_on_capital_characters"`

	// Characters maps single characters to their spoken form.
	Characters map[string]string `toml:"characters,omitempty" yaml:"characters,omitempty"`

	// Strings maps phrases to their spoken form.
	Strings map[string]string `toml:"strings,omitempty" yaml:"strings,omitempty"`

	// Reformat holds the default block marks for reformatting.
	Reformat ReformatSettings `toml:"reformat" yaml:"reformat"`

	// Keys maps key specifications to action names, overriding defaults.
	Keys map[string]string `toml:"keys,omitempty" yaml:"keys,omitempty"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// ReformatSettings holds the marks that open and close a block.
type ReformatSettings struct {
	Begin string `toml:"begin" yaml:"begin"`
	End   string `toml:"end" yaml:"end"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		BeepOnCapitalCharacters: true,
		Characters:              make(map[string]string),
		Strings:                 make(map[string]string),
		Reformat: ReformatSettings{
			Begin: "{",
			End:   "}",
		},
		Keys:     make(map[string]string),
		LogLevel: "info",
	}
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Characters = maps.Clone(s.Characters)
	c.Strings = maps.Clone(s.Strings)
	c.Keys = maps.Clone(s.Keys)
	return &c
}

// SetCharacter defines how a single character is spoken. An empty
// pronunciation removes the definition.
func (s *Settings) SetCharacter(char, pronunciation string) error {
	if utf8.RuneCountInString(char) != 1 {
		return &ValidationError{Path: "characters", Message: "key must be a single character", Value: char}
	}
	if s.Characters == nil {
		s.Characters = make(map[string]string)
	}
	if pronunciation == "" {
		delete(s.Characters, char)
		return nil
	}
	s.Characters[char] = pronunciation
	return nil
}

// SetString defines how a phrase is spoken. An empty pronunciation removes
// the definition.
func (s *Settings) SetString(phrase, pronunciation string) error {
	if phrase == "" {
		return &ValidationError{Path: "strings", Message: "phrase must not be empty", Value: phrase}
	}
	if s.Strings == nil {
		s.Strings = make(map[string]string)
	}
	if pronunciation == "" {
		delete(s.Strings, phrase)
		return nil
	}
	s.Strings[phrase] = pronunciation
	return nil
}

// Validate checks the settings and returns the first problem found.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Reformat.Begin) == "" {
		return &ValidationError{Path: "reformat.begin", Message: "must not be empty", Value: s.Reformat.Begin}
	}
	if strings.TrimSpace(s.Reformat.End) == "" {
		return &ValidationError{Path: "reformat.end", Message: "must not be empty", Value: s.Reformat.End}
	}
	for char := range s.Characters {
		if utf8.RuneCountInString(char) != 1 {
			return &ValidationError{Path: "characters", Message: "key must be a single character", Value: char}
		}
	}
	switch strings.ToLower(s.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Message: "unknown level", Value: s.LogLevel}
	}
	return nil
}

// fillDefaults replaces zero values a decoded file left unset.
func (s *Settings) fillDefaults() {
	d := Default()
	if s.Characters == nil {
		s.Characters = d.Characters
	}
	if s.Strings == nil {
		s.Strings = d.Strings
	}
	if s.Keys == nil {
		s.Keys = d.Keys
	}
	if s.Reformat.Begin == "" {
		s.Reformat.Begin = d.Reformat.Begin
	}
	if s.Reformat.End == "" {
		s.Reformat.End = d.Reformat.End
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
}
