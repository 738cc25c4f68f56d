// internal/term/view.go
package term

import (
	"fmt"
	"strings"

	"go-owl-patrol/internal/app"
	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"

	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault  = tcell.StyleDefault
	styleBug      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSquashed = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleOwl      = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBubble   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	stylePrompt   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// Ячейка терминала покрывает CellWidth x CellHeight единиц области.

// ToCell переводит точку области в ячейку.
func ToCell(p types.Position) (col, row int) {
	return int(p.X / config.CellWidth), int(p.Y / config.CellHeight)
}

// FromCell — центр ячейки в координатах области.
func FromCell(col, row int) types.Position {
	return types.Position{
		X: (float64(col) + 0.5) * config.CellWidth,
		Y: (float64(row) + 0.5) * config.CellHeight,
	}
}

// ViewportFor — область, которую покрывает экран cols x rows (без строки состояния).
func ViewportFor(cols, rows int) types.Viewport {
	if rows > 1 {
		rows--
	}
	return types.Viewport{Width: float64(cols) * config.CellWidth, Height: float64(rows) * config.CellHeight}
}

// Draw рисует снимок виджета на экране.
func Draw(screen tcell.Screen, snap *app.Snapshot) {
	screen.Clear()
	if snap == nil {
		screen.Show()
		return
	}
	cols, rows := screen.Size()

	for _, b := range snap.Bugs {
		col, row := ToCell(types.Position{X: b.X, Y: b.Y})
		if b.Squashed {
			put(screen, col, row, "x", styleSquashed)
		} else {
			put(screen, col, row, "ж", styleBug)
		}
	}

	owl := owlGlyph(snap.Owl)
	col, row := ToCell(types.Position{X: snap.Owl.X, Y: snap.Owl.Y})
	for i, line := range owl {
		put(screen, col-len([]rune(line))/2, row-len(owl)+i, line, styleOwl)
	}

	if msg := bubbleText(snap.Owl); msg != "" {
		lines := utils.WrapText(msg, config.BubbleMaxChars)
		top := row - len(owl) - len(lines) - 1
		for i, line := range lines {
			put(screen, col-len([]rune(line))/2, top+i, " "+line+" ", styleBubble)
		}
	}

	p := snap.Progression
	if p.PromptOpen {
		prompt := fmt.Sprintf(" Level up! [1] strength  [2] agility  [3] intellect  (%.0fs) ", p.PromptRemaining)
		put(screen, (cols-len(prompt))/2, 1, prompt, stylePrompt)
	}

	auto := "off"
	if snap.AutoSpawn {
		auto = "on"
	}
	status := fmt.Sprintf(" XP %d/%d  STR %d  AGI %d  INT %d | %s | auto %s | s spawn  c clear  a auto  r home  j joke  b bug  q quit",
		p.Experience, config.XPPerStatPoint, p.Strength, p.Agility, p.Intellect, snap.Owl.Action, auto)
	put(screen, 0, rows-1, padRight(status, cols), styleStatus)

	screen.Show()
}

func owlGlyph(o app.OwlView) []string {
	eyes := "(o,o)"
	switch o.Action {
	case component.ActionSleeping.String():
		eyes = "(-,-)"
	case component.ActionAttacking.String():
		eyes = "(>,<)"
	case component.ActionCelebrating.String():
		eyes = "(^,^)"
	}
	body := "/)_)"
	if o.FacingRight {
		body = "(_(\\"
	}
	return []string{eyes, body, ` " "`}
}

func bubbleText(o app.OwlView) string {
	switch o.Action {
	case component.ActionTellingJoke.String():
		return o.Joke
	case component.ActionSleeping.String():
		return "Zzz"
	default:
		return ""
	}
}

func put(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}
