// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"go-owl-patrol/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gearTeeth = 8

// GearToggle — круглая кнопка-шестерёнка, открывающая панель настроек.
type GearToggle struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewGearToggle(x, y, radius float32) *GearToggle {
	return &GearToggle{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает шестерёнку; open подсвечивает её, пока панель открыта.
func (g *GearToggle) Draw(screen *ebiten.Image, open bool) {
	elapsed := time.Since(g.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := g.Radius * float32(scale)

	fill := config.ButtonColor
	if open {
		fill = config.ButtonActiveColor
	}
	for i := 0; i < gearTeeth; i++ {
		angle := 2 * math.Pi * float64(i) / gearTeeth
		tx := g.X + float32(math.Cos(angle))*r
		ty := g.Y + float32(math.Sin(angle))*r
		vector.DrawFilledCircle(screen, tx, ty, r*0.28, fill, true)
	}
	vector.DrawFilledCircle(screen, g.X, g.Y, r*0.9, fill, true)
	vector.StrokeCircle(screen, g.X, g.Y, r*0.9, 1.5, config.IndicatorStroke, true)
	vector.DrawFilledCircle(screen, g.X, g.Y, r*0.35, config.PanelColor, true)
}

// IsClicked проверяет, был ли клик внутри шестерёнки.
func (g *GearToggle) IsClicked(x, y int) bool {
	dx := float32(x) - g.X
	dy := float32(y) - g.Y
	return dx*dx+dy*dy <= g.Radius*g.Radius*1.3*1.3
}

// HandleClick запускает пульс; открытие панели решает вызывающий.
func (g *GearToggle) HandleClick(now time.Time) bool {
	if now.Sub(g.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	g.LastClickTime = now
	return true
}
