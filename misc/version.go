// Package misc holds small process-wide facts: the program's name and the
// version/commit it was built from. Nothing here depends on config or state
// so every other package is free to import it without a cycle.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
)

var once sync.Once
var appName string
var version string
var commit string

func load() {
	appName = strings.TrimSuffix(filepath.Base(firstNonEmpty(os.Args[0], "toccer")), filepath.Ext(os.Args[0]))

	version = "(devel)"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			commit = s.Value
		}
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// GetAppName returns the executable's base name, stripped of its extension.
func GetAppName() string {
	once.Do(load)
	return appName
}

// GetVersion returns the module version embedded at build time, or
// "(devel)" when the binary was built outside a tagged module checkout.
func GetVersion() string {
	once.Do(load)
	return version
}

// GetGitHash returns the VCS revision embedded at build time, or "" when
// none was recorded.
func GetGitHash() string {
	once.Do(load)
	return commit
}
