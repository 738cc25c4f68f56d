// internal/system/player_system.go
package system

import (
	"errors"
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/event"
)

var (
	ErrNoPrompt    = errors.New("no stat choice is open")
	ErrUnknownStat = errors.New("unknown stat")
)

// Celebrator — кто исполняет праздничный импульс после выбора характеристики.
//
//go:generate go tool mockgen -destination=./mocks/celebrator_mock.go -package=mocks . Celebrator
type Celebrator interface {
	Celebrate(d time.Duration) bool
}

// PlayerSystem отвечает за прогрессию совы: опыт за раздавленных жуков и выбор характеристик.
type PlayerSystem struct {
	store      *entity.Store
	dispatcher *event.Dispatcher
	celebrator Celebrator
}

func NewPlayerSystem(store *entity.Store, dispatcher *event.Dispatcher, celebrator Celebrator) *PlayerSystem {
	s := &PlayerSystem{store: store, dispatcher: dispatcher, celebrator: celebrator}
	dispatcher.Subscribe(event.ExperienceGained, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.ExperienceGained {
		return
	}
	amount, ok := e.Data.(int)
	if !ok || amount <= 0 {
		return
	}
	s.store.Progression().Experience += amount
}

// Update открывает окно выбора, когда накоплено достаточно опыта, и закрывает его по таймауту.
// После автозакрытия окно не открывается снова, пока опыт не изменится.
func (s *PlayerSystem) Update(dt time.Duration) {
	p := s.store.Progression()

	if p.Prompt != nil {
		p.Prompt.Remaining -= dt
		if p.Prompt.Remaining <= 0 {
			p.Prompt = nil
			p.DismissedAt = p.Experience
			s.dispatcher.Dispatch(event.Event{Type: event.StatPromptClosed, Data: true})
		}
		return
	}

	if p.Experience < config.XPPerStatPoint {
		return
	}
	if p.DismissedAt == p.Experience {
		return
	}
	p.DismissedAt = -1
	p.Prompt = &component.StatPrompt{Remaining: config.StatPromptTimeout}
	s.dispatcher.Dispatch(event.Event{Type: event.StatPromptOpened})
}

// Choose тратит очко опыта на характеристику.
func (s *PlayerSystem) Choose(stat component.Stat) error {
	p := s.store.Progression()
	if p.Prompt == nil {
		return ErrNoPrompt
	}
	counter := p.Counter(stat)
	if counter == nil {
		return ErrUnknownStat
	}
	*counter++
	p.Experience -= config.XPPerStatPoint
	p.Prompt = nil
	s.dispatcher.Dispatch(event.Event{Type: event.StatChosen, Data: stat})
	s.dispatcher.Dispatch(event.Event{Type: event.StatPromptClosed, Data: false})
	if s.celebrator != nil {
		s.celebrator.Celebrate(config.StatPulseDuration)
	}
	return nil
}

// Reset закрывает окно без начисления (разбор виджета).
func (s *PlayerSystem) Reset() {
	s.store.Progression().Prompt = nil
}
