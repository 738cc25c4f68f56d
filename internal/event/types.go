// internal/event/types.go
package event

import (
	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/types"
)

const (
	BugSpawned       EventType = "BugSpawned"       // Data: types.BugID
	BugSquashed      EventType = "BugSquashed"      // Data: Squash
	BugRemoved       EventType = "BugRemoved"       // Data: types.BugID
	BugsCleared      EventType = "BugsCleared"      // Data: int (сколько удалено)
	AttackStarted    EventType = "AttackStarted"    // Data: types.BugID
	ExperienceGained EventType = "ExperienceGained" // Data: int
	StatPromptOpened EventType = "StatPromptOpened"
	StatPromptClosed EventType = "StatPromptClosed" // Data: bool (true — закрыто по таймауту)
	StatChosen       EventType = "StatChosen"       // Data: component.Stat
	JokeStarted      EventType = "JokeStarted"      // Data: string
	JokeEnded        EventType = "JokeEnded"
	ActionChanged    EventType = "ActionChanged" // Data: ActionChange
)

// ActionChange — переход совы из одного действия в другое.
type ActionChange struct {
	From, To component.OwlAction
}

// Squash — полезная нагрузка для BugSquashed, когда нужна позиция.
type Squash struct {
	ID       types.BugID
	Position types.Position
}
