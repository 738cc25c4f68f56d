// internal/ui/stat_prompt.go
package ui

import (
	"image"
	"strings"
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	promptWidth  = 330
	promptHeight = 96
)

// StatPrompt — окно выбора характеристики с тремя кнопками и полосой обратного отсчёта.
type StatPrompt struct {
	Rect    image.Rectangle
	buttons []*Button
	chosen  *component.Stat
}

// NewStatPrompt размещает окно по центру сверху.
func NewStatPrompt() *StatPrompt {
	x := (config.ScreenWidth - promptWidth) / 2
	y := 40
	p := &StatPrompt{Rect: image.Rect(x, y, x+promptWidth, y+promptHeight)}
	for j, stat := range component.AllStats {
		stat := stat
		bx := x + 15 + j*(buttonWidth+9)
		by := y + 36
		b := NewButton(image.Rect(bx, by, bx+buttonWidth, by+buttonHeight+4), strings.ToUpper(stat.String()[:1])+stat.String()[1:], func() {
			p.chosen = &stat
		})
		b.BgColor = config.StatColors[j]
		p.buttons = append(p.buttons, b)
	}
	return p
}

// HandleClick возвращает выбранную характеристику, если клик пришёлся на кнопку.
func (p *StatPrompt) HandleClick(x, y int, now time.Time) (component.Stat, bool) {
	p.chosen = nil
	for _, b := range p.buttons {
		if b.Contains(x, y) {
			b.Press(now)
			break
		}
	}
	if p.chosen == nil {
		return 0, false
	}
	return *p.chosen, true
}

// Contains сообщает, попадает ли точка в окно.
func (p *StatPrompt) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.Rect)
}

// Draw рисует окно; remaining — доля оставшегося времени (0..1).
func (p *StatPrompt) Draw(screen *ebiten.Image, face font.Face, remaining float64) {
	r := p.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.ButtonActiveColor, true)
	text.Draw(screen, "Level up! Choose a stat:", face, r.Min.X+15, r.Min.Y+24, config.TextDarkColor)

	for _, b := range p.buttons {
		b.Draw(screen, face)
	}

	if remaining < 0 {
		remaining = 0
	}
	barW := float32(float64(r.Dx()-4) * remaining)
	vector.DrawFilledRect(screen, float32(r.Min.X+2), float32(r.Max.Y-6), barW, 4, config.XPBarColor, true)
}
