package config

import "sort"

// Presets are named eight-digit inputs.
var Presets = map[string]string{
	"pi":       "31415926",
	"sorted":   "12345678",
	"reversed": "87654321",
	"dupes":    "33311122",
	"almost":   "12345687",
}

// GetPreset returns the digits for name, or "" when there is no such preset.
func GetPreset(name string) string {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
