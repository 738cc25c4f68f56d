// internal/component/feedback.go
package component

import "github.com/tanema/gween"

// FloatingText — всплывающая надпись над совой ("+20 XP"), гаснет за FeedbackDuration.
type FloatingText struct {
	Text    string
	X, Y    float64
	OffsetY float64
	Alpha   float64
	Rise    *gween.Tween
	Fade    *gween.Tween
	Done    bool
}
