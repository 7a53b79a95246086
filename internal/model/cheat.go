package model

// Cheat is a single named cheat block parsed from a mod's cheats directory.
type Cheat struct {
	Name string
	Code string
	// Mod is the directory name of the mod that ships the cheat.
	Mod string
	// File is the cheat definition file the block was read from.
	File Path
}

// CheatSelection maps cheat names to their enabled state, as encoded in the
// central enabled.txt file.
type CheatSelection map[string]bool

// EnabledNames returns the sorted names of all enabled cheats.
func (sel CheatSelection) EnabledNames() []string {
	names := make([]string, 0, len(sel))

	for name, enabled := range sel {
		if enabled {
			names = append(names, name)
		}
	}

	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[i] > names[j] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}

	return names
}
