// internal/state/widget_state.go
package state

import (
	"log/slog"
	"time"

	"go-owl-patrol/internal/app"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/ui"
	"go-owl-patrol/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// WidgetState — экран с одним смонтированным виджетом совы поверх "страницы".
type WidgetState struct {
	sm        *StateMachine
	ticker    app.Ticker
	widget    *app.Widget
	renderer  *render.OwlRenderer
	palette   render.Palette
	fontFace  font.Face
	xp        *ui.XPIndicator
	gear      *ui.GearToggle
	panel     *ui.ControlPanel
	prompt    *ui.StatPrompt
	showGear  bool
	onUnmount func()
}

// NewWidgetState связывает виджет с отрисовкой и элементами управления.
// ticker двигает симуляцию: обычно весь реестр, чтобы тикали и виджеты, смонтированные через мост.
// onUnmount вызывается, когда пользователь закрывает виджет (клавиша Escape).
func NewWidgetState(sm *StateMachine, ticker app.Ticker, widget *app.Widget, face font.Face, onUnmount func()) *WidgetState {
	palette := render.DefaultPalette()
	return &WidgetState{
		sm:       sm,
		ticker:   ticker,
		widget:   widget,
		renderer: render.NewOwlRenderer(face, palette),
		palette:  palette,
		fontFace: face,
		xp:       ui.NewXPIndicator(12, 12),
		gear: ui.NewGearToggle(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		panel:     ui.NewControlPanel(widget, face),
		prompt:    ui.NewStatPrompt(),
		showGear:  widget.Host().ControlsEnabled,
		onUnmount: onUnmount,
	}
}

func (s *WidgetState) Enter() {
	slog.Debug("widget state entered", "controls", s.showGear)
}

func (s *WidgetState) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))
	if s.widget.Closed() {
		s.ticker.Tick(dt)
		return
	}
	s.panel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.onUnmount != nil {
			s.onUnmount()
		}
		s.ticker.Tick(dt)
		return
	}

	now := time.Now()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !s.handleUIClick(x, y, now) {
			s.widget.PointerClick(types.Position{X: float64(x), Y: float64(y)})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		s.widget.PointerSecondary(types.Position{X: float64(x), Y: float64(y)})
	}

	s.ticker.Tick(dt)
}

// handleUIClick отдаёт клик элементам управления. Возвращает true, если клик поглощён.
func (s *WidgetState) handleUIClick(x, y int, now time.Time) bool {
	if snap := s.widget.Snapshot(); snap != nil && snap.Progression.PromptOpen && s.prompt.Contains(x, y) {
		if stat, ok := s.prompt.HandleClick(x, y, now); ok {
			if err := s.widget.ChooseStat(stat); err != nil {
				slog.Debug("stat choice rejected", "stat", stat, "err", err)
			}
		}
		return true
	}
	if !s.showGear {
		return false
	}
	if s.gear.IsClicked(x, y) {
		if s.gear.HandleClick(now) {
			s.panel.Toggle()
		}
		return true
	}
	return s.panel.HandleClick(x, y, now)
}

func (s *WidgetState) Draw(screen *ebiten.Image) {
	screen.Fill(s.palette.Background)

	cx, cy := ebiten.CursorPosition()
	cursor := types.Position{X: float64(cx), Y: float64(cy)}
	s.widget.View(func(store *entity.Store) {
		s.renderer.Draw(screen, store, cursor)
	})

	snap := s.widget.Snapshot()
	if snap == nil || snap.Closed {
		return
	}
	pr := snap.Progression
	s.xp.Draw(screen, s.fontFace, pr.Experience, [3]int{pr.Strength, pr.Agility, pr.Intellect})
	if pr.PromptOpen {
		s.prompt.Draw(screen, s.fontFace, pr.PromptRemaining/config.StatPromptTimeout.Seconds())
	}
	if s.showGear {
		s.gear.Draw(screen, s.panel.IsVisible)
		s.panel.Draw(screen)
	}
}

func (s *WidgetState) Exit() {}
