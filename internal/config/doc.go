// Package config loads and saves blockwalk settings.
//
// Settings live in a single file, by default
// $XDG_CONFIG_HOME/blockwalk/settings.toml. The codec follows the file
// extension: .toml uses go-toml, .yaml and .yml use yaml.v3. Keys absent from
// the file keep their defaults, and a missing file is not an error.
//
//	s, err := config.Load(path)
//	if err != nil {
//	    var perr *config.ParseError
//	    if errors.As(err, &perr) {
//	        // report perr.Line
//	    }
//	}
//	_ = config.ApplyEnv(s)
//
// A TOML settings file looks like:
//
//	beep_on_capital_characters = true
//	log_level = "info"
//
//	[characters]
//	"(" = "open paren"
//
//	[strings]
//	"func" = "funk"
//
//	[reformat]
//	begin = "{"
//	end = "}"
//
//	[keys]
//	"Ctrl+G" = "jump_to_line"
//
// The watcher subpackage reloads the file when it changes on disk.
package config
