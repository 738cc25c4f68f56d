// internal/system/owl_behavior.go
package system

import (
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/defs"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/event"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"
)

// SpawnRequester — внешний спавнер жуков, которого сова дёргает по вторичному клику.
//
//go:generate go tool mockgen -destination=./mocks/spawner_mock.go -package=mocks . SpawnRequester
type SpawnRequester interface {
	RequestSpawn()
}

// OwlSettings — политика поведения, меняется из панели управления.
type OwlSettings struct {
	ReturnToStart bool
	SleepAfter    time.Duration // 0 — сова никогда не засыпает
}

// OwlBehaviorSystem — конечный автомат совы. Все ожидания (реакция, атака, празднование, шутка)
// считаются аккумуляторами симулированного времени, которые двигает Update.
type OwlBehaviorSystem struct {
	store      *entity.Store
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	jokes      defs.Jokes
	spawner    SpawnRequester
	observers  []MovementObserver
	Settings   OwlSettings
}

func NewOwlBehaviorSystem(store *entity.Store, rng *utils.PRNGService, dispatcher *event.Dispatcher, jokes defs.Jokes, spawner SpawnRequester) *OwlBehaviorSystem {
	return &OwlBehaviorSystem{
		store:      store,
		rng:        rng,
		dispatcher: dispatcher,
		jokes:      jokes,
		spawner:    spawner,
	}
}

// AddObserver подписывает наблюдателя на позицию совы.
func (s *OwlBehaviorSystem) AddObserver(o MovementObserver) {
	s.observers = append(s.observers, o)
}

// Update выполняет один тик автомата.
func (s *OwlBehaviorSystem) Update(dt time.Duration) {
	owl := s.store.Owl()

	// Шутка полностью замораживает движение и выбор цели.
	if owl.Action == component.ActionTellingJoke {
		owl.JokeRemaining -= dt
		if owl.JokeRemaining <= 0 {
			owl.Joke = ""
			owl.JokeRemaining = 0
			s.setAction(owl, component.ActionIdle)
			s.dispatcher.Dispatch(event.Event{Type: event.JokeEnded})
		}
		s.report(owl.Position)
		return
	}

	s.advancePhase(owl, dt)

	if target := s.store.FirstActive(); target != nil {
		s.pursue(owl, target)
	} else {
		s.rest(owl, dt)
	}

	s.report(owl.Position)
}

// advancePhase двигает фазы атаки и празднования. Остаток времени переносится в следующую фазу.
func (s *OwlBehaviorSystem) advancePhase(owl *component.Owl, dt time.Duration) {
	switch owl.Action {
	case component.ActionAttacking:
		owl.PhaseElapsed += dt
		if !owl.AttackResolved && owl.PhaseElapsed >= config.SquashDelay {
			s.resolveAttack(owl)
		}
		if owl.PhaseElapsed >= config.SquashDelay+config.CelebrateDelay {
			carry := owl.PhaseElapsed - (config.SquashDelay + config.CelebrateDelay)
			s.setAction(owl, component.ActionCelebrating)
			owl.PhaseDuration = config.CelebrateDuration
			owl.PhaseElapsed = carry
		}
		if owl.Action == component.ActionCelebrating && owl.PhaseElapsed >= owl.PhaseDuration {
			s.setAction(owl, component.ActionIdle)
		}
	case component.ActionCelebrating:
		owl.PhaseElapsed += dt
		if owl.PhaseElapsed >= owl.PhaseDuration {
			s.setAction(owl, component.ActionIdle)
		}
	case component.ActionIdle, component.ActionWalking, component.ActionHunting,
		component.ActionSleeping, component.ActionTellingJoke:
	default:
		panic("unknown owl action: " + owl.Action.String())
	}
}

func (s *OwlBehaviorSystem) pursue(owl *component.Owl, target *component.Bug) {
	now := s.store.Now

	if !owl.HasTarget || owl.TargetID != target.ID {
		owl.TargetID = target.ID
		owl.HasTarget = true
		owl.EligibleAt = now + s.rng.Duration(config.ReactionDelayMin, config.ReactionDelayMax)
	}

	targetPos := target.Position()
	owl.LookAt = &targetPos
	owl.Face(targetPos.X - owl.Position.X)

	if owl.Action.InFlight() {
		return
	}

	if now < owl.EligibleAt {
		// Сова заметила жука, но ещё не решилась: стоит и смотрит.
		switch owl.Action {
		case component.ActionHunting, component.ActionWalking, component.ActionSleeping:
			s.setAction(owl, component.ActionIdle)
		}
		return
	}

	dir, dist := utils.Direction(owl.Position, targetPos)
	if dist < config.AttackRange {
		s.startAttack(owl, target.ID)
		return
	}

	s.setAction(owl, component.ActionHunting)
	owl.Position = owl.Position.Add(dir.Scale(config.OwlSpeed))
}

func (s *OwlBehaviorSystem) rest(owl *component.Owl, dt time.Duration) {
	owl.ClearReaction()
	owl.LookAt = nil

	switch owl.Action {
	case component.ActionAttacking, component.ActionCelebrating, component.ActionSleeping:
		return
	}

	if s.Settings.ReturnToStart {
		dir, dist := utils.Direction(owl.Position, owl.Home)
		if dist > config.HomeThreshold {
			s.setAction(owl, component.ActionWalking)
			owl.Face(dir.X)
			owl.Position = owl.Position.Add(dir.Scale(config.OwlSpeed))
			return
		}
	}

	s.setAction(owl, component.ActionIdle)
	owl.IdleElapsed += dt
	if s.Settings.SleepAfter > 0 && owl.IdleElapsed >= s.Settings.SleepAfter {
		s.setAction(owl, component.ActionSleeping)
	}
}

func (s *OwlBehaviorSystem) startAttack(owl *component.Owl, id types.BugID) {
	s.setAction(owl, component.ActionAttacking)
	owl.AttackTarget = id
	owl.AttackResolved = false
	s.dispatcher.Dispatch(event.Event{Type: event.AttackStarted, Data: id})
}

// resolveAttack раздавливает цель атаки. Опыт начисляется только за реально раздавленного жука:
// цель могли стереть ClearAll или раздавить кликом за время замаха.
func (s *OwlBehaviorSystem) resolveAttack(owl *component.Owl) {
	owl.AttackResolved = true
	bug := s.store.Bug(owl.AttackTarget)
	if bug == nil || !s.store.Squash(owl.AttackTarget) {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: event.BugSquashed, Data: event.Squash{ID: bug.ID, Position: bug.Position()}})
	s.dispatcher.Dispatch(event.Event{Type: event.ExperienceGained, Data: config.XPPerSquash})
}

// Click — прямой клик по сове. Во время атаки и охоты игнорируется.
func (s *OwlBehaviorSystem) Click() bool {
	owl := s.store.Owl()
	if owl.Action == component.ActionAttacking || owl.Action == component.ActionHunting {
		return false
	}
	owl.Joke = s.jokes.Pick(s.rng)
	owl.JokeRemaining = config.JokeDuration
	s.setAction(owl, component.ActionTellingJoke)
	s.dispatcher.Dispatch(event.Event{Type: event.JokeStarted, Data: owl.Joke})
	return true
}

// SecondaryClick просит внешний спавнер добавить жука. Состояние совы не меняется.
func (s *OwlBehaviorSystem) SecondaryClick() {
	if s.spawner != nil {
		s.spawner.RequestSpawn()
	}
}

// Celebrate — короткий праздничный импульс (например, после выбора характеристики).
// Не прерывает атаку, празднование и шутку.
func (s *OwlBehaviorSystem) Celebrate(d time.Duration) bool {
	owl := s.store.Owl()
	switch owl.Action {
	case component.ActionIdle, component.ActionWalking, component.ActionSleeping:
		s.setAction(owl, component.ActionCelebrating)
		owl.PhaseDuration = d
		return true
	}
	return false
}

// Reset отменяет все отложенные фазы: шутку, атаку, празднование, задержку реакции.
func (s *OwlBehaviorSystem) Reset() {
	owl := s.store.Owl()
	owl.Joke = ""
	owl.JokeRemaining = 0
	owl.AttackTarget = ""
	owl.AttackResolved = false
	owl.PhaseDuration = 0
	owl.ClearReaction()
	s.setAction(owl, component.ActionIdle)
	owl.PhaseElapsed = 0
	owl.IdleElapsed = 0
}

func (s *OwlBehaviorSystem) setAction(owl *component.Owl, a component.OwlAction) {
	from := owl.Action
	if owl.SetAction(a) {
		s.dispatcher.Dispatch(event.Event{Type: event.ActionChanged, Data: event.ActionChange{From: from, To: a}})
	}
}

func (s *OwlBehaviorSystem) report(pos types.Position) {
	for _, o := range s.observers {
		o.OnOwlMoved(pos)
	}
}
