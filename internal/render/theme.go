package render

// Theme holds the emoji glyphs used to draw room blocks.
// Emoji are rendered by the terminal with their own colors, so each theme
// is a distinct set of glyphs rather than a tint.
type Theme struct {
	Name   string
	Wall   string
	Floor  string // centre glyph when the variant has none
	Door   string
	Start  string
	Ladder string
	Broken string // centre of a cell that could not be furnished
}

// Themes lists the palettes the viewer cycles through.
var Themes = []Theme{
	{
		// Crystalline: ice and frost
		Name:   "crystal",
		Wall:   "🧊",
		Floor:  "❄️",
		Door:   "🚪",
		Start:  "🟢",
		Ladder: "🪜",
		Broken: "❌",
	},
	{
		// Fungal warrens: living walls
		Name:   "fungal",
		Wall:   "🍄",
		Floor:  "🌿",
		Door:   "🟩",
		Start:  "🟢",
		Ladder: "🪜",
		Broken: "❌",
	},
	{
		// Brass engine: gears and sparks
		Name:   "brass",
		Wall:   "⚙️",
		Floor:  "✨",
		Door:   "🟨",
		Start:  "🟢",
		Ladder: "🪜",
		Broken: "❌",
	},
	{
		// Plain ASCII for terminals without emoji fonts
		Name:   "ascii",
		Wall:   "#",
		Floor:  ".",
		Door:   "+",
		Start:  "S",
		Ladder: "L",
		Broken: "!",
	},
}
