package assets

// RelicInfo is the display data of a relic.
type RelicInfo struct {
	Glyph string
	Desc  string
}

// relics maps relic names, as stored in saves, to their display data.
var relics = map[string]RelicInfo{
	"Phoenix Feather": {Glyph: "🪶", Desc: "Cheats death once when a trap would take your last life."},
	"Vision Lens":     {Glyph: "🔍", Desc: "Halves the chance that a wrong door is trapped."},
	"Time Stone":      {Glyph: "⏳", Desc: "Hums quietly. Its power has not awakened."},
}

// Relic returns the display data for a relic name.
func Relic(name string) RelicInfo {
	if info, ok := relics[name]; ok {
		return info
	}
	return RelicInfo{Glyph: "❔", Desc: name} // fallback
}
