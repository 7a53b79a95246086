// Package model defines the data structures for mod overlay management.
package model

import (
	"regexp"
	"strings"
)

// Path represents a file system path.
type Path string

// RelPath is a forward-slash separated path relative to a mod's root.
type RelPath string

// orderPrefix matches the on-disk ordering prefixes a mod directory may
// carry: numeric prefixes like "02_" and disable markers like "~" or "!_".
// Both alternatives are anchored so markers inside a name never match.
var orderPrefix = regexp.MustCompile(`^(?:\d+_|[.!~]+_?)`)

// StripPrefix removes the ordering prefix from a mod directory name,
// returning the clean mod name.
func StripPrefix(name string) string {
	if loc := orderPrefix.FindStringIndex(name); loc != nil {
		return name[loc[1]:]
	}

	return name
}

// DisabledName reports whether a directory name marks the mod as disabled.
func DisabledName(name string) bool {
	return strings.HasPrefix(name, "~")
}

// Mod is a user-installed package contributing files that overlay the base
// game's files. Name is the on-disk directory name; CleanName has any
// ordering prefix stripped.
type Mod struct {
	Name      string
	CleanName string
	// Rank is the 1-based position in the load order. Lower ranks take
	// precedence when two mods claim the same path.
	Rank      int
	Enabled   bool
	CheatOnly bool
	// Files maps each contributed relative path to a content hash.
	Files map[RelPath]string
}

// Paths returns the mod's contributed paths in sorted order.
func (mod Mod) Paths() []RelPath {
	paths := make([]RelPath, 0, len(mod.Files))
	for path := range mod.Files {
		paths = append(paths, path)
	}

	sortRelPaths(paths)

	return paths
}

func sortRelPaths(paths []RelPath) {
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			if paths[i] > paths[j] {
				paths[i], paths[j] = paths[j], paths[i]
			}
		}
	}
}

// ScanResult is the outcome of scanning a mods root directory.
type ScanResult struct {
	Root Path
	// TitleID is the game title directory name when the root matches the
	// emulator's mods/contents/<titleID> layout, empty otherwise.
	TitleID string
	// Mods holds every mod directory in load order, including disabled and
	// cheat-only entries. The special cheats folder is excluded.
	Mods []Mod
	// CheatsFolder is the on-disk name of the special cheats directory, or
	// empty when the root has none.
	CheatsFolder string
}

// OverlaySet returns the enabled, overlay-relevant mods in priority order.
// Cheat-only mods contribute no game files and are skipped.
func (s ScanResult) OverlaySet() []Mod {
	set := make([]Mod, 0, len(s.Mods))

	for _, mod := range s.Mods {
		if mod.Enabled && !mod.CheatOnly {
			set = append(set, mod)
		}
	}

	return set
}

// Find returns the mod whose directory name or clean name matches.
func (s ScanResult) Find(name string) (Mod, bool) {
	for _, mod := range s.Mods {
		if mod.Name == name || mod.CleanName == name {
			return mod, true
		}
	}

	return Mod{}, false
}
