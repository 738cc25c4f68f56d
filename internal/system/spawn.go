// internal/system/spawn.go
package system

import (
	"log/slog"
	"time"

	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/event"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"
)

// SpawnSystem — ручной и автоматический спавн жуков.
// Автоспавн ждёт случайную задержку в [min, max(min, max)] и запускает следующую.
type SpawnSystem struct {
	store      *entity.Store
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	viewport   types.Viewport

	auto       bool
	min, max   time.Duration
	spawnTimer time.Duration
	pending    bool
}

func NewSpawnSystem(store *entity.Store, rng *utils.PRNGService, dispatcher *event.Dispatcher, vp types.Viewport) *SpawnSystem {
	return &SpawnSystem{store: store, rng: rng, dispatcher: dispatcher, viewport: vp}
}

// Spawn немедленно добавляет жука.
func (s *SpawnSystem) Spawn() types.BugID {
	bug := s.store.Spawn(s.rng, s.viewport)
	slog.Debug("bug spawned", "id", bug.ID, "x", bug.X, "y", bug.Y)
	s.dispatcher.Dispatch(event.Event{Type: event.BugSpawned, Data: bug.ID})
	return bug.ID
}

// RequestSpawn реализует SpawnRequester для вторичного клика по сове.
func (s *SpawnSystem) RequestSpawn() {
	s.Spawn()
}

// SetViewport меняет область спавна.
func (s *SpawnSystem) SetViewport(vp types.Viewport) {
	s.viewport = vp
}

// Configure задаёт режим автоспавна. Любое изменение отменяет ожидающий таймер.
func (s *SpawnSystem) Configure(auto bool, min, max time.Duration) {
	s.auto = auto
	s.min, s.max = min, max
	s.Reset()
}

// Auto сообщает, включён ли автоспавн.
func (s *SpawnSystem) Auto() bool {
	return s.auto
}

// Interval возвращает текущие границы задержки.
func (s *SpawnSystem) Interval() (time.Duration, time.Duration) {
	return s.min, s.max
}

// Pending сообщает, ждёт ли автоспавнер срабатывания.
func (s *SpawnSystem) Pending() bool {
	return s.pending
}

// Reset отменяет ожидающий таймер автоспавна.
func (s *SpawnSystem) Reset() {
	s.pending = false
	s.spawnTimer = 0
}

func (s *SpawnSystem) Update(dt time.Duration) {
	if !s.auto {
		return
	}
	if !s.pending {
		s.schedule()
		return
	}
	s.spawnTimer -= dt
	if s.spawnTimer <= 0 {
		s.Spawn()
		s.schedule()
	}
}

func (s *SpawnSystem) schedule() {
	effectiveMax := s.max
	if effectiveMax < s.min {
		effectiveMax = s.min
	}
	s.spawnTimer = s.rng.Duration(s.min, effectiveMax)
	s.pending = true
}
