// internal/system/bug_movement.go
package system

import (
	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"
)

// MovementObserver получает позицию совы каждый тик.
// Единственная точка связи между правилами совы и жуков.
//
//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . MovementObserver
type MovementObserver interface {
	OnOwlMoved(pos types.Position)
}

// BugMovementSystem — правило движения жуков: паника рядом с совой, блуждание вдали, отскок от краёв.
type BugMovementSystem struct {
	store    *entity.Store
	rng      *utils.PRNGService
	viewport types.Viewport
	owlPos   types.Position
}

func NewBugMovementSystem(store *entity.Store, rng *utils.PRNGService, vp types.Viewport) *BugMovementSystem {
	return &BugMovementSystem{
		store:    store,
		rng:      rng,
		viewport: vp,
		owlPos:   store.Owl().Position,
	}
}

// OnOwlMoved запоминает последнюю сообщённую позицию совы.
func (s *BugMovementSystem) OnOwlMoved(pos types.Position) {
	s.owlPos = pos
}

// OwlPosition — позиция совы, от которой сейчас убегают жуки.
func (s *BugMovementSystem) OwlPosition() types.Position {
	return s.owlPos
}

// SetViewport обновляет границы отскока.
func (s *BugMovementSystem) SetViewport(vp types.Viewport) {
	s.viewport = vp
}

// Update двигает всех нераздавленных жуков относительно fleeFrom.
// Возвращает число жуков, состояние которых изменилось.
func (s *BugMovementSystem) Update(fleeFrom types.Position) int {
	changed := 0
	for _, bug := range s.store.Bugs() {
		if bug.IsSquashed {
			continue
		}
		if s.Step(bug, fleeFrom) {
			changed++
		}
	}
	return changed
}

// Step применяет правило к одному жуку. Запись в жука — только если что-то изменилось.
func (s *BugMovementSystem) Step(bug *component.Bug, owlPos types.Position) bool {
	pos := bug.Position()
	vel := bug.Velocity()

	away, dist := utils.Direction(owlPos, pos)
	if dist < config.PanicDistance {
		if dist == 0 {
			// Жук ровно под совой: направление бегства не определено, берём случайное.
			vel = s.rng.Heading(config.PanicSpeed)
		} else {
			vel = away.Scale(config.PanicSpeed)
		}
	} else if s.rng.Float64() < config.WanderChance {
		vel = s.rng.Heading(config.WanderSpeed)
	}

	next := pos.Add(vel)
	next, vel = s.bounce(next, vel)

	if next == pos && vel == bug.Velocity() {
		return false
	}
	bug.X, bug.Y = next.X, next.Y
	bug.VX, bug.VY = vel.X, vel.Y
	return true
}

// bounce зажимает точку в границах с отступом и разворачивает скорость наружу от стены.
func (s *BugMovementSystem) bounce(p, v types.Position) (types.Position, types.Position) {
	pad := config.BoundsPadding
	p.X, v.X = bounceAxis(p.X, v.X, pad, s.viewport.Width-pad)
	p.Y, v.Y = bounceAxis(p.Y, v.Y, pad, s.viewport.Height-pad)
	return p, v
}

// bounceAxis — отскок по одной оси. Если область уже двух отступов, жук стоит по центру оси.
func bounceAxis(p, v, lo, hi float64) (float64, float64) {
	if hi < lo {
		return (lo + hi) / 2, 0
	}
	if p <= lo {
		p, v = lo, abs(v)
	}
	if p >= hi {
		p, v = hi, -abs(v)
	}
	return p, v
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
