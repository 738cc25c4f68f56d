// internal/ui/control_panel.go
package ui

import (
	"fmt"
	"image"
	"math"
	"time"

	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	buttonWidth    = 96
	buttonHeight   = 26
	buttonGap      = 8
	scaleStep      = 0.1
	percentStep    = 5.0
	intervalStep   = 10.0
)

// Controls — операции виджета, доступные из панели настроек.
type Controls interface {
	Spawn() types.BugID
	ClearAll()
	Host() config.Host
	SetScale(scale float64)
	SetStartPercent(xPercent, yPercent float64)
	SetSpawnInterval(minSeconds, maxSeconds float64)
	SetAutoSpawn(enabled bool)
	SetReturnToStart(enabled bool)
}

// ControlPanel — выезжающая снизу панель настроек виджета.
type ControlPanel struct {
	IsVisible bool
	controls  Controls
	fontFace  font.Face
	currentY  float64
	targetY   float64
	buttons   []*Button
	auto      *Button
	home      *Button
}

// NewControlPanel создаёт скрытую панель.
func NewControlPanel(controls Controls, face font.Face) *ControlPanel {
	p := &ControlPanel{
		controls: controls,
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
	p.layout()
	return p
}

func (p *ControlPanel) layout() {
	rows := [][]struct {
		label string
		do    func()
	}{
		{
			{"Spawn Bug", func() { p.controls.Spawn() }},
			{"Clear All", p.controls.ClearAll},
			{"Auto-spawn", func() { p.controls.SetAutoSpawn(!p.controls.Host().AutoSpawn) }},
			{"Go home", func() { p.controls.SetReturnToStart(!p.controls.Host().ReturnToStart) }},
			{"Close", p.Hide},
		},
		{
			{"Scale -", func() { p.controls.SetScale(p.controls.Host().Scale - scaleStep) }},
			{"Scale +", func() { p.controls.SetScale(p.controls.Host().Scale + scaleStep) }},
			{"Start X -", func() { h := p.controls.Host(); p.controls.SetStartPercent(h.StartXPercent-percentStep, h.StartYPercent) }},
			{"Start X +", func() { h := p.controls.Host(); p.controls.SetStartPercent(h.StartXPercent+percentStep, h.StartYPercent) }},
			{"Start Y -", func() { h := p.controls.Host(); p.controls.SetStartPercent(h.StartXPercent, h.StartYPercent-percentStep) }},
			{"Start Y +", func() { h := p.controls.Host(); p.controls.SetStartPercent(h.StartXPercent, h.StartYPercent+percentStep) }},
		},
		{
			{"Min -", func() { h := p.controls.Host(); p.controls.SetSpawnInterval(h.MinSpawnSeconds-intervalStep, h.MaxSpawnSeconds) }},
			{"Min +", func() { h := p.controls.Host(); p.controls.SetSpawnInterval(h.MinSpawnSeconds+intervalStep, h.MaxSpawnSeconds) }},
			{"Max -", func() { h := p.controls.Host(); p.controls.SetSpawnInterval(h.MinSpawnSeconds, h.MaxSpawnSeconds-intervalStep) }},
			{"Max +", func() { h := p.controls.Host(); p.controls.SetSpawnInterval(h.MinSpawnSeconds, h.MaxSpawnSeconds+intervalStep) }},
		},
	}

	p.buttons = p.buttons[:0]
	for row, defs := range rows {
		for col, d := range defs {
			x := panelMargin + 15 + col*(buttonWidth+buttonGap)
			y := panelMargin + 12 + row*(buttonHeight+buttonGap)
			b := NewButton(image.Rect(x, y, x+buttonWidth, y+buttonHeight), d.label, d.do)
			p.buttons = append(p.buttons, b)
			switch d.label {
			case "Auto-spawn":
				p.auto = b
			case "Go home":
				p.home = b
			}
		}
	}
}

// Show выдвигает панель.
func (p *ControlPanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

// Hide убирает панель.
func (p *ControlPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Toggle переключает видимость.
func (p *ControlPanel) Toggle() {
	if p.IsVisible && p.targetY < config.ScreenHeight {
		p.Hide()
		return
	}
	p.Show()
}

// Update двигает анимацию панели.
func (p *ControlPanel) Update() {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}
	host := p.controls.Host()
	p.auto.Active = host.AutoSpawn
	p.home.Active = host.ReturnToStart
}

// Contains сообщает, попадает ли точка в видимую часть панели.
func (p *ControlPanel) Contains(x, y int) bool {
	return p.IsVisible && y >= int(p.currentY)
}

// HandleClick нажимает кнопку под курсором. Возвращает true, если клик пришёлся на панель.
func (p *ControlPanel) HandleClick(x, y int, now time.Time) bool {
	if !p.Contains(x, y) {
		return false
	}
	local := y - int(p.currentY)
	for _, b := range p.buttons {
		if b.Contains(x, local) {
			b.Press(now)
			break
		}
	}
	return true
}

func (p *ControlPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	top := int(p.currentY)
	panelRect := image.Rect(
		panelMargin,
		top+panelMargin,
		config.ScreenWidth-panelMargin,
		top+panelHeight-panelMargin,
	)
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, config.PanelStroke, true)

	sub := screen.SubImage(image.Rect(0, top, config.ScreenWidth, top+panelHeight)).(*ebiten.Image)
	for _, b := range p.buttons {
		shifted := *b
		shifted.Rect = b.Rect.Add(image.Pt(0, top))
		shifted.Draw(sub, p.fontFace)
	}

	h := p.controls.Host()
	summary := fmt.Sprintf("scale %.1f   start %.0f%% / %.0f%%   spawn every %.0f-%.0f s",
		h.Scale, h.StartXPercent, h.StartYPercent, h.MinSpawnSeconds, h.MaxSpawnSeconds)
	text.Draw(screen, summary, p.fontFace, panelRect.Min.X+15, panelRect.Max.Y-12, config.TextDarkColor)
}
