package config

import "sort"

// Presets are named timing profiles.
var Presets = map[string]TimingConfig{
	"classic":  {CharsPerSecond: 60, MaxDurationMs: 500},
	"teletype": {CharsPerSecond: 10, MaxDurationMs: 8000, FrameRate: 30},
	"terminal": {CharsPerSecond: 120, MaxDurationMs: 1500},
	"burst":    {CharsPerSecond: 240, MaxDurationMs: 150},
	"drawl":    {CharsPerSecond: 20, MaxDurationMs: 3000},
}

func GetPreset(name string) *TimingConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
