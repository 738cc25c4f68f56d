package system

import (
	"errors"
	"testing"
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/event"
	"go-owl-patrol/internal/system/mocks"
	"go-owl-patrol/internal/types"

	"go.uber.org/mock/gomock"
)

func newPlayerFixture(t *testing.T, celebrator Celebrator) (*entity.Store, *event.Dispatcher, *PlayerSystem, *int) {
	t.Helper()
	store := entity.NewStore(types.Position{X: 100, Y: 100})
	dispatcher := event.NewDispatcher()
	opened := 0
	dispatcher.Subscribe(event.StatPromptOpened, event.ListenerFunc(func(event.Event) { opened++ }))
	return store, dispatcher, NewPlayerSystem(store, dispatcher, celebrator), &opened
}

func gainXP(d *event.Dispatcher, times int) {
	for i := 0; i < times; i++ {
		d.Dispatch(event.Event{Type: event.ExperienceGained, Data: config.XPPerSquash})
	}
}

func TestPlayerSystem_FiveSquashesOpenOnePrompt(t *testing.T) {
	store, dispatcher, sys, opened := newPlayerFixture(t, nil)

	gainXP(dispatcher, 4)
	sys.Update(frame)
	if store.Progression().Prompt != nil {
		t.Fatalf("prompt opened at %d XP", store.Progression().Experience)
	}

	gainXP(dispatcher, 1)
	for i := 0; i < 5; i++ {
		sys.Update(frame)
	}
	p := store.Progression()
	if p.Experience != 100 {
		t.Fatalf("experience = %d, want 100", p.Experience)
	}
	if p.Prompt == nil {
		t.Fatalf("prompt not open at 100 XP")
	}
	if *opened != 1 {
		t.Fatalf("StatPromptOpened dispatched %d times, want 1", *opened)
	}
}

func TestPlayerSystem_ChooseSpendsPointOnOneStat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	celebrator := mocks.NewMockCelebrator(ctrl)
	celebrator.EXPECT().Celebrate(config.StatPulseDuration).Return(true).Times(1)

	store, dispatcher, sys, _ := newPlayerFixture(t, celebrator)
	gainXP(dispatcher, 6)
	sys.Update(frame)

	if err := sys.Choose(component.StatAgility); err != nil {
		t.Fatalf("Choose: %v", err)
	}
	p := store.Progression()
	if p.Experience != 20 {
		t.Fatalf("experience = %d, want 20 after spending", p.Experience)
	}
	if p.Agility != 1 || p.Strength != 0 || p.Intellect != 0 {
		t.Fatalf("stats = %d/%d/%d, want only agility raised", p.Strength, p.Agility, p.Intellect)
	}
	if p.Prompt != nil {
		t.Fatalf("prompt still open after choice")
	}
}

func TestPlayerSystem_ChooseErrors(t *testing.T) {
	_, dispatcher, sys, _ := newPlayerFixture(t, nil)

	if err := sys.Choose(component.StatStrength); !errors.Is(err, ErrNoPrompt) {
		t.Fatalf("Choose without prompt = %v, want ErrNoPrompt", err)
	}

	gainXP(dispatcher, 5)
	sys.Update(frame)
	if err := sys.Choose(component.Stat(9)); !errors.Is(err, ErrUnknownStat) {
		t.Fatalf("Choose(unknown) = %v, want ErrUnknownStat", err)
	}
}

func TestPlayerSystem_AutoDismissWaitsForNewExperience(t *testing.T) {
	store, dispatcher, sys, opened := newPlayerFixture(t, nil)
	gainXP(dispatcher, 5)
	sys.Update(frame)

	for elapsed := time.Duration(0); elapsed < config.StatPromptTimeout; elapsed += frame {
		sys.Update(frame)
	}
	p := store.Progression()
	if p.Prompt != nil {
		t.Fatalf("prompt not dismissed after %v", config.StatPromptTimeout)
	}
	if p.Experience != 100 {
		t.Fatalf("dismissal changed experience to %d", p.Experience)
	}

	for i := 0; i < 50; i++ {
		sys.Update(frame)
	}
	if p.Prompt != nil || *opened != 1 {
		t.Fatalf("prompt reopened without new experience (opened %d times)", *opened)
	}

	gainXP(dispatcher, 1)
	sys.Update(frame)
	if p.Prompt == nil || *opened != 2 {
		t.Fatalf("prompt did not reopen after new experience (opened %d times)", *opened)
	}
}

func TestPlayerSystem_IgnoresMalformedExperience(t *testing.T) {
	store, dispatcher, _, _ := newPlayerFixture(t, nil)
	dispatcher.Dispatch(event.Event{Type: event.ExperienceGained, Data: "20"})
	dispatcher.Dispatch(event.Event{Type: event.ExperienceGained, Data: -5})
	if got := store.Progression().Experience; got != 0 {
		t.Fatalf("experience = %d, want 0", got)
	}
}
