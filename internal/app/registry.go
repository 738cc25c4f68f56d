// internal/app/registry.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/defs"
	"go-owl-patrol/internal/types"
)

var (
	ErrContainerNotFound = errors.New("mount container not found")
	ErrAlreadyMounted    = errors.New("widget already mounted")
	ErrNotMounted        = errors.New("widget not mounted")
)

// Registry — контейнеры фронтенда и смонтированные в них виджеты.
// Глобального экземпляра нет: каждый фронтенд создаёт свой реестр.
type Registry struct {
	mu         sync.RWMutex
	containers map[string]types.Viewport
	widgets    map[string]*Widget
	jokes      defs.Jokes
}

func NewRegistry(jokes defs.Jokes) *Registry {
	return &Registry{
		containers: make(map[string]types.Viewport),
		widgets:    make(map[string]*Widget),
		jokes:      jokes,
	}
}

// RegisterContainer объявляет контейнер с его областью. Повторная регистрация меняет область
// и передаётся смонтированному виджету как Resize.
func (r *Registry) RegisterContainer(id string, vp types.Viewport) {
	r.mu.Lock()
	r.containers[id] = vp
	w := r.widgets[id]
	r.mu.Unlock()

	if w != nil {
		w.Resize(vp)
	}
}

// Mount создаёт виджет в контейнере id. Отсутствующий контейнер логируется, монтирование прерывается.
func (r *Registry) Mount(id string, host config.Host) (*Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vp, ok := r.containers[id]
	if !ok {
		slog.Error("mount aborted", "container", id, "err", ErrContainerNotFound)
		return nil, fmt.Errorf("mount %q: %w", id, ErrContainerNotFound)
	}
	if _, exists := r.widgets[id]; exists {
		return nil, fmt.Errorf("mount %q: %w", id, ErrAlreadyMounted)
	}

	w := NewWidget(Options{Host: host, Viewport: vp, Jokes: r.jokes})
	r.widgets[id] = w
	slog.Info("widget mounted", "container", id, "width", vp.Width, "height", vp.Height)
	return w, nil
}

// Unmount закрывает виджет и освобождает контейнер.
func (r *Registry) Unmount(id string) error {
	r.mu.Lock()
	w, ok := r.widgets[id]
	delete(r.widgets, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("unmount %q: %w", id, ErrNotMounted)
	}
	w.Close()
	slog.Info("widget unmounted", "container", id)
	return nil
}

// Get возвращает смонтированный виджет.
func (r *Registry) Get(id string) (*Widget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.widgets[id]
	return w, ok
}

// Widgets — смонтированные виджеты в порядке id.
func (r *Registry) Widgets() []*Widget {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.widgets))
	for id := range r.widgets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*Widget, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.widgets[id])
	}
	return out
}

// Tick двигает все смонтированные виджеты на dt.
func (r *Registry) Tick(dt time.Duration) {
	for _, w := range r.Widgets() {
		w.Tick(dt)
	}
}

// Close размонтирует всё.
func (r *Registry) Close() {
	r.mu.Lock()
	widgets := r.widgets
	r.widgets = make(map[string]*Widget)
	r.mu.Unlock()

	for _, w := range widgets {
		w.Close()
	}
}
