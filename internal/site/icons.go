package site

import "github.com/zaqqye/navodaya_web/internal/models"

type Glyph struct {
	Name   string
	Symbol string
}

var glyphs = map[models.ServiceIcon]Glyph{
	models.IconServer:    {Name: "Server", Symbol: "🖥"},
	models.IconNetwork:   {Name: "Network", Symbol: "🌐"},
	models.IconBriefcase: {Name: "Briefcase", Symbol: "💼"},
}

var fallbackGlyph = Glyph{Name: "Dot", Symbol: "•"}

// IconFor maps a service icon to its glyph. Unknown values get a neutral
// glyph and ok=false.
func IconFor(icon models.ServiceIcon) (Glyph, bool) {
	g, ok := glyphs[icon]
	if !ok {
		return fallbackGlyph, false
	}
	return g, true
}
