package tui

var iconGlyphs = map[string]string{
	"shower":  "🚿",
	"bus":     "🚌",
	"basket":  "🧺",
	"tools":   "🔧",
	"tree":    "🌳",
	"recycle": "♻",
	"car":     "🚗",
	"carrot":  "🥕",
	"bicycle": "🚲",
	"coffee":  "☕",
	"ban":     "🚫",
	"bolt":    "⚡",
	"mobile":  "📱",
	"trash":   "🗑",
	"leaf":    "🍃",
}

// glyph maps a catalog icon name to a terminal glyph. Unknown names get a bullet.
func glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}
