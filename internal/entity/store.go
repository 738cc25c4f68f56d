// internal/entity/store.go
package entity

import (
	"strings"
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"

	"github.com/google/uuid"
)

// Store — единственное авторитетное состояние виджета: жуки, сова и прогрессия.
// Порядок жуков — порядок появления; от него зависит выбор цели.
type Store struct {
	Now         time.Duration // симулированные часы, двигаются только тиками
	bugs        []*component.Bug
	index       map[types.BugID]int
	owl         *component.Owl
	progression *component.Progression
	Feedback    []*component.FloatingText
}

// NewStore создаёт пустое хранилище с совой в точке home.
func NewStore(home types.Position) *Store {
	return &Store{
		index: make(map[types.BugID]int),
		owl: &component.Owl{
			Position:    home,
			Home:        home,
			Action:      component.ActionIdle,
			FacingRight: true,
			Scale:       1,
		},
		progression: component.NewProgression(),
	}
}

// NewBugID генерирует непрозрачный идентификатор жука.
func NewBugID() types.BugID {
	return types.BugID(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Spawn добавляет жука в случайную точку внутренних 80% области
// с медленным начальным движением в случайную сторону.
func (s *Store) Spawn(rng *utils.PRNGService, vp types.Viewport) *component.Bug {
	lo, hi := config.SpawnMargin, 1-config.SpawnMargin
	v := rng.Heading(config.SpawnSpeed)
	bug := &component.Bug{
		ID: NewBugID(),
		X:  rng.Range(vp.Width*lo, vp.Width*hi),
		Y:  rng.Range(vp.Height*lo, vp.Height*hi),
		VX: v.X,
		VY: v.Y,
	}
	s.Add(bug)
	return bug
}

// Add кладёт готового жука в конец списка. Повторный id игнорируется.
func (s *Store) Add(bug *component.Bug) bool {
	if _, exists := s.index[bug.ID]; exists {
		return false
	}
	s.index[bug.ID] = len(s.bugs)
	s.bugs = append(s.bugs, bug)
	return true
}

// Squash помечает жука раздавленным и запускает отсчёт до удаления.
// Идемпотентно; неизвестный id — no-op. true только при первом раздавливании.
func (s *Store) Squash(id types.BugID) bool {
	bug := s.Bug(id)
	if bug == nil || bug.IsSquashed {
		return false
	}
	bug.IsSquashed = true
	bug.VX, bug.VY = 0, 0
	bug.RemoveIn = config.SquashRemoveDelay
	return true
}

// Remove удаляет жука, сохраняя относительный порядок остальных.
func (s *Store) Remove(id types.BugID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	copy(s.bugs[i:], s.bugs[i+1:])
	s.bugs[len(s.bugs)-1] = nil
	s.bugs = s.bugs[:len(s.bugs)-1]
	delete(s.index, id)
	for j := i; j < len(s.bugs); j++ {
		s.index[s.bugs[j].ID] = j
	}
	return true
}

// ClearAll мгновенно очищает список жуков.
func (s *Store) ClearAll() int {
	n := len(s.bugs)
	s.bugs = nil
	s.index = make(map[types.BugID]int)
	return n
}

// Bug возвращает жука по id или nil.
func (s *Store) Bug(id types.BugID) *component.Bug {
	if i, ok := s.index[id]; ok {
		return s.bugs[i]
	}
	return nil
}

// Bugs — жуки в порядке хранилища. Срез нельзя изменять снаружи.
func (s *Store) Bugs() []*component.Bug {
	return s.bugs
}

// FirstActive — первый нераздавленный жук в порядке хранилища, без поиска ближайшего.
func (s *Store) FirstActive() *component.Bug {
	for _, b := range s.bugs {
		if !b.IsSquashed {
			return b
		}
	}
	return nil
}

// BugAt — верхний (последний по порядку) нераздавленный жук в радиусе r от точки p.
func (s *Store) BugAt(p types.Position, r float64) *component.Bug {
	for i := len(s.bugs) - 1; i >= 0; i-- {
		b := s.bugs[i]
		if !b.IsSquashed && b.Position().DistanceTo(p) <= r {
			return b
		}
	}
	return nil
}

// Len — число жуков, включая раздавленных.
func (s *Store) Len() int {
	return len(s.bugs)
}

func (s *Store) Owl() *component.Owl {
	return s.owl
}

func (s *Store) Progression() *component.Progression {
	return s.progression
}
