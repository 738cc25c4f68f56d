// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"go-owl-patrol/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	Active        bool // подсвеченное состояние переключателей
	BgColor       color.RGBA
	LastClickTime time.Time
	OnClick       func()
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, onClick func()) *Button {
	return &Button{
		Rect:    rect,
		Text:    label,
		BgColor: config.ButtonColor,
		OnClick: onClick,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Press вызывает действие, если с прошлого нажатия прошло больше ClickCooldown.
func (b *Button) Press(now time.Time) bool {
	if now.Sub(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = now
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw отрисовывает кнопку с коротким "пульсом" после нажатия.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.08*math.Exp(-elapsed*8)

	w := float64(b.Rect.Dx()) * scale
	h := float64(b.Rect.Dy()) * scale
	x := float64(b.Rect.Min.X) - (w-float64(b.Rect.Dx()))/2
	y := float64(b.Rect.Min.Y) - (h-float64(b.Rect.Dy()))/2

	bg := b.BgColor
	fg := config.TextDarkColor
	if b.Active {
		bg = config.ButtonActiveColor
		fg = config.TextLightColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, config.PanelStroke, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, fg)
}
