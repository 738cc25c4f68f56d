// internal/app/widget.go
package app

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/defs"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/event"
	"go-owl-patrol/internal/system"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"
)

// ErrClosed возвращается операциями над размонтированным виджетом.
var ErrClosed = errors.New("widget is closed")

const commandQueueSize = 256

// Options — всё, что нужно экземпляру виджета при создании.
type Options struct {
	Host     config.Host
	Viewport types.Viewport
	Jokes    defs.Jokes // nil — встроенный банк
}

// Widget — один экземпляр совы со своим хранилищем, часами и системами.
// Экземпляры не делят глобального состояния и могут сосуществовать.
// Публичные методы берут замок экземпляра; команды из других горутин идут через Enqueue.
type Widget struct {
	Store           *entity.Store
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	OwlSystem          *system.OwlBehaviorSystem
	BugSystem          *system.BugMovementSystem
	PlayerSystem       *system.PlayerSystem
	SpawnSystem        *system.SpawnSystem
	VisualEffectSystem *system.VisualEffectSystem

	host     config.Host
	viewport types.Viewport

	commands chan Command
	snapshot atomic.Pointer[Snapshot]
	closed   atomic.Bool
	mu       sync.Mutex
}

// NewWidget создаёт экземпляр и применяет начальную конфигурацию хоста.
func NewWidget(opts Options) *Widget {
	host := opts.Host
	host.Normalize()
	jokes := opts.Jokes
	if len(jokes) == 0 {
		jokes = defs.DefaultJokes()
	}

	home := opts.Viewport.At(host.StartXPercent, host.StartYPercent)
	store := entity.NewStore(home)
	store.Owl().Scale = host.Scale
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(host.Seed)

	w := &Widget{
		Store:           store,
		EventDispatcher: dispatcher,
		Rng:             rng,
		host:            host,
		viewport:        opts.Viewport,
		commands:        make(chan Command, commandQueueSize),
	}
	w.SpawnSystem = system.NewSpawnSystem(store, rng, dispatcher, opts.Viewport)
	w.BugSystem = system.NewBugMovementSystem(store, rng, opts.Viewport)
	w.OwlSystem = system.NewOwlBehaviorSystem(store, rng, dispatcher, jokes, w.SpawnSystem)
	w.OwlSystem.AddObserver(w.BugSystem)
	w.OwlSystem.Settings = system.OwlSettings{
		ReturnToStart: host.ReturnToStart,
		SleepAfter:    host.SleepAfter(),
	}
	w.PlayerSystem = system.NewPlayerSystem(store, dispatcher, w.OwlSystem)
	w.VisualEffectSystem = system.NewVisualEffectSystem(store, dispatcher)
	w.SpawnSystem.Configure(host.AutoSpawn, host.MinSpawn(), host.MaxSpawn())

	w.publish()
	return w
}

// Tick — один шаг планировщика кадров.
// Сова видит жуков такими, какими они были в начале тика, жуки убегают от позиции совы начала тика.
func (w *Widget) Tick(dt time.Duration) {
	w.locked(func() {
		w.drainCommands()

		w.Store.Now += dt
		fleeFrom := w.BugSystem.OwlPosition()

		w.OwlSystem.Update(dt)
		w.BugSystem.Update(fleeFrom)
		w.VisualEffectSystem.Update(dt)
		w.SpawnSystem.Update(dt)
		w.PlayerSystem.Update(dt)

		w.publish()
	})
}

// Spawn добавляет жука немедленно.
func (w *Widget) Spawn() (id types.BugID) {
	w.locked(func() { id = w.SpawnSystem.Spawn() })
	return id
}

// Squash помечает жука раздавленным; удаление через SquashRemoveDelay. Неизвестный id — no-op.
func (w *Widget) Squash(id types.BugID) (ok bool) {
	w.locked(func() { ok = w.squash(id) })
	return ok
}

// ClearAll мгновенно очищает хранилище жуков.
func (w *Widget) ClearAll() {
	w.locked(w.clearAll)
}

// ClickOwl — прямой клик по сове (шутка).
func (w *Widget) ClickOwl() (ok bool) {
	w.locked(func() { ok = w.OwlSystem.Click() })
	return ok
}

// SecondaryClick — вторичная кнопка по сове (спавн по запросу).
func (w *Widget) SecondaryClick() {
	w.locked(w.OwlSystem.SecondaryClick)
}

// ChooseStat тратит накопленный опыт на характеристику.
func (w *Widget) ChooseStat(stat component.Stat) error {
	err := ErrClosed
	w.locked(func() { err = w.PlayerSystem.Choose(stat) })
	return err
}

// SetAutoSpawn включает или выключает автоспавн; ожидающий таймер отменяется.
func (w *Widget) SetAutoSpawn(enabled bool) {
	w.locked(func() { w.setAutoSpawn(enabled) })
}

// SetSpawnInterval задаёт границы автоспавна в секундах.
// Если минимум поднят выше максимума, максимум поднимается вслед, и наоборот.
func (w *Widget) SetSpawnInterval(minSeconds, maxSeconds float64) {
	w.locked(func() { w.setSpawnInterval(minSeconds, maxSeconds) })
}

// SetReturnToStart меняет политику возвращения домой.
func (w *Widget) SetReturnToStart(enabled bool) {
	w.locked(func() { w.setReturnToStart(enabled) })
}

// SetScale меняет масштаб отрисовки совы.
func (w *Widget) SetScale(scale float64) {
	w.locked(func() { w.setScale(scale) })
}

// SetStartPercent переносит домашнюю точку. Сова не телепортируется.
func (w *Widget) SetStartPercent(xPercent, yPercent float64) {
	w.locked(func() { w.setStartPercent(xPercent, yPercent) })
}

// Resize обновляет область: границы отскока, область спавна и домашнюю точку.
func (w *Widget) Resize(vp types.Viewport) {
	w.locked(func() { w.resize(vp) })
}

// PointerClick — основной клик по точке области: живой жук под курсором давится, иначе клик по сове.
func (w *Widget) PointerClick(p types.Position) (hit bool) {
	w.locked(func() {
		if bug := w.Store.BugAt(p, config.BugRadius*1.5); bug != nil {
			hit = w.squash(bug.ID)
			return
		}
		if w.Store.Owl().Contains(p) {
			hit = w.OwlSystem.Click()
		}
	})
	return hit
}

// PointerSecondary — вторичная кнопка. Действует только по сове.
func (w *Widget) PointerSecondary(p types.Position) (hit bool) {
	w.locked(func() {
		if w.Store.Owl().Contains(p) {
			w.OwlSystem.SecondaryClick()
			hit = true
		}
	})
	return hit
}

// View вызывает fn под замком виджета, чтобы отрисовка не пересекалась с размонтированием.
func (w *Widget) View(fn func(store *entity.Store)) bool {
	return w.locked(func() { fn(w.Store) })
}

func (w *Widget) squash(id types.BugID) bool {
	bug := w.Store.Bug(id)
	if bug == nil || !w.Store.Squash(id) {
		return false
	}
	w.EventDispatcher.Dispatch(event.Event{Type: event.BugSquashed, Data: event.Squash{ID: id, Position: bug.Position()}})
	return true
}

func (w *Widget) clearAll() {
	n := w.Store.ClearAll()
	w.EventDispatcher.Dispatch(event.Event{Type: event.BugsCleared, Data: n})
}

func (w *Widget) setAutoSpawn(enabled bool) {
	w.host.AutoSpawn = enabled
	w.SpawnSystem.Configure(enabled, w.host.MinSpawn(), w.host.MaxSpawn())
}

func (w *Widget) setSpawnInterval(minSeconds, maxSeconds float64) {
	minSeconds = config.ClampSeconds(minSeconds, w.host.MinSpawnSeconds)
	maxSeconds = config.ClampSeconds(maxSeconds, w.host.MaxSpawnSeconds)
	switch {
	case minSeconds != w.host.MinSpawnSeconds && minSeconds > maxSeconds:
		maxSeconds = minSeconds
	case maxSeconds < minSeconds:
		minSeconds = maxSeconds
	}
	w.host.MinSpawnSeconds = minSeconds
	w.host.MaxSpawnSeconds = maxSeconds
	w.SpawnSystem.Configure(w.host.AutoSpawn, w.host.MinSpawn(), w.host.MaxSpawn())
}

func (w *Widget) setReturnToStart(enabled bool) {
	w.host.ReturnToStart = enabled
	w.OwlSystem.Settings.ReturnToStart = enabled
}

func (w *Widget) setScale(scale float64) {
	w.host.Scale = config.ClampScale(scale)
	w.Store.Owl().Scale = w.host.Scale
}

func (w *Widget) setStartPercent(xPercent, yPercent float64) {
	w.host.StartXPercent = config.ClampPercent(xPercent, w.host.StartXPercent)
	w.host.StartYPercent = config.ClampPercent(yPercent, w.host.StartYPercent)
	w.Store.Owl().Home = w.viewport.At(w.host.StartXPercent, w.host.StartYPercent)
}

func (w *Widget) resize(vp types.Viewport) {
	if vp == w.viewport {
		return
	}
	w.viewport = vp
	w.BugSystem.SetViewport(vp)
	w.SpawnSystem.SetViewport(vp)
	w.Store.Owl().Home = vp.At(w.host.StartXPercent, w.host.StartYPercent)
}

// locked выполняет fn под замком, если виджет ещё смонтирован.
func (w *Widget) locked(fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed.Load() {
		return false
	}
	fn()
	return true
}

// Host возвращает текущие настройки (для панели управления).
func (w *Widget) Host() config.Host {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.host
}

// Viewport возвращает текущую область.
func (w *Widget) Viewport() types.Viewport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewport
}

// Closed сообщает, размонтирован ли виджет.
func (w *Widget) Closed() bool {
	return w.closed.Load()
}

// Close размонтирует виджет: отменяет автоспавн, шутку, атаку, празднование, окно выбора и
// отсчёты удаления. После Close тики и команды ничего не меняют. Повторный вызов безопасен.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed.Swap(true) {
		return
	}
	w.SpawnSystem.Configure(false, 0, 0)
	w.OwlSystem.Reset()
	w.PlayerSystem.Reset()
	w.VisualEffectSystem.Reset()
	w.Store.ClearAll()
	w.EventDispatcher.Reset()
	w.publish()
	slog.Debug("widget closed")
}
