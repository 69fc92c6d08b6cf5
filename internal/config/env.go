package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BLOCKWALK_"

// envMapping maps environment variables to the setting they override.
var envMapping = map[string]func(s *Settings, val string) error{
	"BLOCKWALK_LOG_LEVEL": func(s *Settings, val string) error {
		s.LogLevel = strings.ToLower(val)
		return nil
	},
	"BLOCKWALK_BEEP_ON_CAPITAL_CHARACTERS": func(s *Settings, val string) error {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &ValidationError{Path: "beep_on_capital_characters", Message: "expected a boolean", Value: val}
		}
		s.BeepOnCapitalCharacters = b
		return nil
	},
	"BLOCKWALK_REFORMAT_BEGIN": func(s *Settings, val string) error {
		s.Reformat.Begin = val
		return nil
	},
	"BLOCKWALK_REFORMAT_END": func(s *Settings, val string) error {
		s.Reformat.End = val
		return nil
	},
}

// ApplyEnv overrides settings from BLOCKWALK_* environment variables.
// Empty values are treated as set.
func ApplyEnv(s *Settings) error {
	return applyEnv(s, os.LookupEnv)
}

func applyEnv(s *Settings, lookup func(string) (string, bool)) error {
	for env, apply := range envMapping {
		val, ok := lookup(env)
		if !ok {
			continue
		}
		if err := apply(s, val); err != nil {
			return err
		}
	}
	return s.Validate()
}
