package display

import (
	"github.com/gogpu/gg"

	"github.com/turtacn/periodic-combinator/internal/application/session"
	"github.com/turtacn/periodic-combinator/internal/domain/element"
)

// Palette colors.
var (
	colorBackground  = gg.Hex("#2c2c2f")
	colorSymbol      = gg.Hex("#52575d")
	colorWhite       = gg.Hex("#ffffff")
	colorBlack       = gg.Hex("#000000")
	colorFailure     = gg.Hex("#ff6464")
	colorTooltipBG   = gg.Hex("#e5e5e5")
	colorTooltipText = colorBackground
	colorUnknown     = gg.Hex("#bdbdbd")
)

// categoryColors are the pastel fills for each element family.
var categoryColors = map[element.Category]gg.RGBA{
	element.CategoryAlkaliMetal:         gg.Hex("#ffcccc"),
	element.CategoryAlkalineEarthMetal:  gg.Hex("#ffe5cc"),
	element.CategoryTransitionMetal:     gg.Hex("#ffffcc"),
	element.CategoryPostTransitionMetal: gg.Hex("#e5ffcc"),
	element.CategoryMetalloid:           gg.Hex("#ccffcc"),
	element.CategoryNonmetal:            gg.Hex("#ccffe5"),
	element.CategoryHalogen:             gg.Hex("#cce5ff"),
	element.CategoryNobleGas:            gg.Hex("#e5ccff"),
	element.CategoryLanthanide:          gg.Hex("#ffcce5"),
	element.CategoryActinide:            gg.Hex("#ffe5cc"),
}

// CategoryColor returns the fill color for c.
func CategoryColor(c element.Category) gg.RGBA {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return colorUnknown
}

func popupColor(k session.PopupKind) gg.RGBA {
	if k == session.PopupFailure {
		return colorFailure
	}
	return colorWhite
}
