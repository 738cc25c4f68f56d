// internal/app/commands.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/types"
)

var (
	ErrQueueFull      = errors.New("widget command queue is full")
	ErrUnknownCommand = errors.New("unknown command")
)

// CommandKind — тип команды хоста.
type CommandKind string

const (
	CmdSpawn         CommandKind = "spawn"
	CmdClear         CommandKind = "clear"
	CmdSquash        CommandKind = "squash"
	CmdClick         CommandKind = "click"
	CmdSecondary     CommandKind = "secondary"
	CmdChoose        CommandKind = "choose"
	CmdAutoSpawn     CommandKind = "auto_spawn"
	CmdInterval      CommandKind = "interval"
	CmdReturnToStart CommandKind = "return_to_start"
	CmdScale         CommandKind = "scale"
	CmdStartPercent  CommandKind = "start_percent"
	CmdResize        CommandKind = "resize"
)

// Command — запрос от хоста или фронтенда, применяемый в начале следующего тика.
// Поля, не нужные конкретной команде, игнорируются.
type Command struct {
	Op      CommandKind `json:"op"`
	ID      string      `json:"id,omitempty"`
	Stat    string      `json:"stat,omitempty"`
	Enabled bool        `json:"enabled,omitempty"`
	Min     float64     `json:"min,omitempty"`
	Max     float64     `json:"max,omitempty"`
	Value   float64     `json:"value,omitempty"`
	X       float64     `json:"x,omitempty"`
	Y       float64     `json:"y,omitempty"`
}

// Validate проверяет команду до постановки в очередь.
func (c Command) Validate() error {
	switch c.Op {
	case CmdSpawn, CmdClear, CmdClick, CmdSecondary,
		CmdAutoSpawn, CmdInterval, CmdReturnToStart, CmdScale, CmdStartPercent:
		return nil
	case CmdSquash:
		if c.ID == "" {
			return errors.New("squash: empty bug id")
		}
		return nil
	case CmdChoose:
		if _, ok := component.ParseStat(c.Stat); !ok {
			return fmt.Errorf("choose %q: %w", c.Stat, ErrUnknownCommand)
		}
		return nil
	case CmdResize:
		if c.X <= 0 || c.Y <= 0 {
			return fmt.Errorf("resize: non-positive viewport %gx%g", c.X, c.Y)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", c.Op, ErrUnknownCommand)
	}
}

// Enqueue ставит команду в очередь; безопасно из любой горутины.
func (w *Widget) Enqueue(c Command) error {
	if w.closed.Load() {
		return ErrClosed
	}
	if err := c.Validate(); err != nil {
		return err
	}
	select {
	case w.commands <- c:
		return nil
	default:
		return ErrQueueFull
	}
}

// drainCommands применяет накопившиеся команды. Вызывается под замком в начале тика.
func (w *Widget) drainCommands() {
	for {
		select {
		case c := <-w.commands:
			w.apply(c)
		default:
			return
		}
	}
}

func (w *Widget) apply(c Command) {
	switch c.Op {
	case CmdSpawn:
		w.SpawnSystem.Spawn()
	case CmdClear:
		w.clearAll()
	case CmdSquash:
		w.squash(types.BugID(c.ID))
	case CmdClick:
		w.OwlSystem.Click()
	case CmdSecondary:
		w.OwlSystem.SecondaryClick()
	case CmdChoose:
		stat, _ := component.ParseStat(c.Stat)
		if err := w.PlayerSystem.Choose(stat); err != nil {
			slog.Debug("stat choice rejected", "stat", c.Stat, "err", err)
		}
	case CmdAutoSpawn:
		w.setAutoSpawn(c.Enabled)
	case CmdInterval:
		w.setSpawnInterval(c.Min, c.Max)
	case CmdReturnToStart:
		w.setReturnToStart(c.Enabled)
	case CmdScale:
		w.setScale(c.Value)
	case CmdStartPercent:
		w.setStartPercent(c.X, c.Y)
	case CmdResize:
		w.resize(types.Viewport{Width: c.X, Height: c.Y})
	}
}
