// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"

	"go-owl-patrol/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	xpBarWidth  = 118
	xpBarHeight = 12
	statGap     = 40
	borderWidth = 1
)

// XPIndicator отображает опыт совы и три характеристики.
type XPIndicator struct {
	X, Y float32
}

// NewXPIndicator создает новый индикатор опыта.
func NewXPIndicator(x, y float32) *XPIndicator {
	return &XPIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. stats — сила, ловкость, интеллект.
func (i *XPIndicator) Draw(screen *ebiten.Image, face font.Face, experience int, stats [3]int) {
	// 1. Обводка полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, config.IndicatorStroke, true)

	// 2. Заполненная часть: прогресс к следующему очку характеристики
	fillRatio := float64(experience) / float64(config.XPPerStatPoint)
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarColor, true)
	}
	text.Draw(screen, fmt.Sprintf("%d XP", experience), face, int(i.X)+xpBarWidth+6, int(i.Y)+xpBarHeight-1, config.TextDarkColor)

	// 3. Счётчики характеристик
	rowY := i.Y + xpBarHeight + 10
	for j, n := range stats {
		x := i.X + float32(j)*statGap
		vector.DrawFilledCircle(screen, x+5, rowY+5, 5, config.StatColors[j], true)
		text.Draw(screen, fmt.Sprintf("%d", n), face, int(x)+14, int(rowY)+10, config.TextDarkColor)
	}
}
