// pkg/render/color.go
package render

import (
	"image/color"

	"go-owl-patrol/internal/config"
)

// Palette holds every colour the owl renderer needs.
type Palette struct {
	Background   color.RGBA
	Text         color.RGBA
	BugBody      color.RGBA
	BugLeg       color.RGBA
	BugLabel     color.RGBA
	OwlBody      color.RGBA
	OwlBelly     color.RGBA
	OwlBeak      color.RGBA
	Shadow       color.RGBA
	Bubble       color.RGBA
	BubbleStroke color.RGBA
	Feedback     color.RGBA
}

// DefaultPalette builds the palette from the config colours.
func DefaultPalette() Palette {
	return Palette{
		Background:   config.BackgroundColor,
		Text:         config.TextDarkColor,
		BugBody:      config.BugBodyColor,
		BugLeg:       config.BugLegColor,
		BugLabel:     config.BugLabelColor,
		OwlBody:      config.OwlBodyColor,
		OwlBelly:     config.OwlBellyColor,
		OwlBeak:      config.OwlBeakColor,
		Shadow:       config.ShadowColor,
		Bubble:       config.BubbleColor,
		BubbleStroke: config.BubbleStroke,
		Feedback:     config.FeedbackColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its opacity multiplied by a (0..1).
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}
