package model

// ManifestEntry is one mod record in the emulator's mods.json file.
type ManifestEntry struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// Manifest is the document shape of the emulator's mods.json.
type Manifest struct {
	Mods []ManifestEntry `json:"mods"`
}
