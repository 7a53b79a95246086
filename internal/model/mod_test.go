package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"01_Alpha", "Alpha"},
		{"10_Gamma", "Gamma"},
		{"~Delta", "Delta"},
		{"~_Delta", "Delta"},
		{"!Epsilon", "Epsilon"},
		{".Hidden", "Hidden"},
		{"~~Twice", "Twice"},
		{"Plain", "Plain"},
		// Markers inside a name are part of the name, not a prefix.
		{"HD Textures v1.2", "HD Textures v1.2"},
		{"Mod.With.Dots", "Mod.With.Dots"},
		{"Bang!Bang", "Bang!Bang"},
		{"Wavy~Name", "Wavy~Name"},
		{"01_HD Textures v1.2", "HD Textures v1.2"},
		{"~Patch v2.0!", "Patch v2.0!"},
		{"Awesome.cheats", "Awesome.cheats"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripPrefix(tt.name), "name %q", tt.name)
	}
}

func TestDisabledName(t *testing.T) {
	assert.True(t, DisabledName("~Delta"))
	assert.False(t, DisabledName("01_Alpha"))
	assert.False(t, DisabledName("Wavy~Name"))
}

func TestScanResultFind(t *testing.T) {
	scan := ScanResult{Mods: []Mod{
		{Name: "01_Alpha", CleanName: "Alpha"},
		{Name: "~Delta", CleanName: "Delta"},
	}}

	byName, ok := scan.Find("01_Alpha")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", byName.CleanName)

	byClean, ok := scan.Find("Delta")
	assert.True(t, ok)
	assert.Equal(t, "~Delta", byClean.Name)

	_, ok = scan.Find("Missing")
	assert.False(t, ok)
}
