package main

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config is the CLI's configuration layer: recognized flags plus the
// BITCRAFT_DB_PATH environment variable override, mirroring the teacher's
// "flags are the configuration layer" approach for a single binary.
type Config struct {
	DBPath string
	Color  bool
}

// parseConfig scans args (normally os.Args[1:]) by hand for the
// recognized leading options, the same raw os.Args style
// cmd/funxy/main.go uses throughout rather than the flag package, and
// returns the remaining arguments (the subcommand and its own
// arguments) unconsumed.
func parseConfig(args []string) (Config, []string) {
	cfg := Config{DBPath: defaultDBPath(), Color: true}

	i := 0
	for i < len(args) {
		switch args[i] {
		case "-db":
			if i+1 < len(args) {
				cfg.DBPath = args[i+1]
				i += 2
				continue
			}
			i++
		case "-color":
			cfg.Color = true
			i++
		case "-no-color":
			cfg.Color = false
			i++
		default:
			if v, ok := stripBoolFlag(args[i], "-color"); ok {
				cfg.Color = v
				i++
				continue
			}
			// first unrecognized argument is the subcommand; stop scanning
			return withEnvOverride(cfg), args[i:]
		}
	}
	return withEnvOverride(cfg), args[i:]
}

// stripBoolFlag recognizes "-name=true"/"-name=false" forms.
func stripBoolFlag(arg, name string) (bool, bool) {
	prefix := name + "="
	if len(arg) <= len(prefix) || arg[:len(prefix)] != prefix {
		return false, false
	}
	v, err := strconv.ParseBool(arg[len(prefix):])
	if err != nil {
		return false, false
	}
	return v, true
}

func withEnvOverride(cfg Config) Config {
	if env := os.Getenv("BITCRAFT_DB_PATH"); env != "" {
		cfg.DBPath = env
	}
	return cfg
}

func defaultDBPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "bitcraftctl_history.db"
	}
	return filepath.Join(dir, ".bitcraftctl_history.db")
}
