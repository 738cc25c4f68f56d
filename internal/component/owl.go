// internal/component/owl.go
package component

import (
	"fmt"
	"time"

	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/types"
)

// OwlAction — закрытое перечисление действий совы. Ровно одно активно в каждый момент.
type OwlAction uint8

const (
	ActionIdle OwlAction = iota
	ActionWalking
	ActionHunting
	ActionAttacking
	ActionCelebrating
	ActionSleeping
	ActionTellingJoke

	actionCount
)

var actionNames = [actionCount]string{
	ActionIdle:        "IDLE",
	ActionWalking:     "WALKING",
	ActionHunting:     "HUNTING",
	ActionAttacking:   "ATTACKING",
	ActionCelebrating: "CELEBRATING",
	ActionSleeping:    "SLEEPING",
	ActionTellingJoke: "TELLING_JOKE",
}

func (a OwlAction) String() string {
	if !a.Valid() {
		return fmt.Sprintf("OwlAction(%d)", uint8(a))
	}
	return actionNames[a]
}

// Valid сообщает, входит ли значение в перечисление.
func (a OwlAction) Valid() bool {
	return a < actionCount
}

// InFlight — фазы, которые доигрываются до конца независимо от изменений списка жуков.
func (a OwlAction) InFlight() bool {
	return a == ActionAttacking || a == ActionCelebrating
}

// Owl — единственный преследующий персонаж.
type Owl struct {
	Position    types.Position
	Home        types.Position
	Action      OwlAction
	FacingRight bool
	Scale       float64

	// Задержка реакции: на каждую новую цель свой случайный таймер.
	TargetID   types.BugID
	HasTarget  bool
	EligibleAt time.Duration // момент симулированных часов, с которого можно охотиться

	// Фазовый аккумулятор для ATTACKING/CELEBRATING.
	PhaseElapsed   time.Duration
	PhaseDuration  time.Duration // длительность текущей фазы CELEBRATING
	AttackTarget   types.BugID
	AttackResolved bool

	// Шутка держится своим таймером, независимо от охоты.
	Joke          string
	JokeRemaining time.Duration

	IdleElapsed time.Duration // сколько сова простояла без дела (для засыпания)
	LookAt      *types.Position
}

// SetAction меняет действие и сбрасывает фазовый аккумулятор, если действие изменилось.
// Возвращает true при реальной смене.
func (o *Owl) SetAction(a OwlAction) bool {
	if o.Action == a {
		return false
	}
	o.Action = a
	o.PhaseElapsed = 0
	if a != ActionIdle {
		o.IdleElapsed = 0
	}
	return true
}

// Face разворачивает сову по горизонтальной составляющей dx.
func (o *Owl) Face(dx float64) {
	if dx > 0 {
		o.FacingRight = true
	} else if dx < 0 {
		o.FacingRight = false
	}
}

// ClearReaction забывает текущую цель и её таймер.
func (o *Owl) ClearReaction() {
	o.TargetID = ""
	o.HasTarget = false
	o.EligibleAt = 0
}

// Bounds — прямоугольник тела совы с учётом масштаба. Position — точка между лапами.
func (o *Owl) Bounds() (minX, minY, maxX, maxY float64) {
	w := config.OwlBodyWidth * o.Scale
	h := config.OwlBodyHeight * o.Scale
	return o.Position.X - w/2, o.Position.Y - h, o.Position.X + w/2, o.Position.Y
}

// Contains сообщает, попадает ли точка в тело совы.
func (o *Owl) Contains(p types.Position) bool {
	minX, minY, maxX, maxY := o.Bounds()
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
