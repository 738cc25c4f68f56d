// internal/host/bridge.go
package host

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go-owl-patrol/internal/app"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/types"

	"gopkg.in/yaml.v3"
)

const maxBodyBytes = 64 << 10

// Bridge — HTTP/websocket поверхность хоста: объявление контейнеров, монтирование,
// размонтирование и поток команд/снимков для уже смонтированных виджетов.
type Bridge struct {
	registry *app.Registry
	interval time.Duration
	origins  []string
	mux      *http.ServeMux
}

// NewBridge создаёт мост. interval <= 0 означает config.SnapshotInterval.
// origins — шаблоны Origin, которым разрешено открывать websocket; без них только same-origin.
func NewBridge(registry *app.Registry, interval time.Duration, origins []string) *Bridge {
	if interval <= 0 {
		interval = config.SnapshotInterval
	}
	b := &Bridge{registry: registry, interval: interval, origins: origins, mux: http.NewServeMux()}
	b.mux.HandleFunc("GET /ws", b.handleSocket)
	b.mux.HandleFunc("PUT /containers/{id}", b.handleContainer)
	b.mux.HandleFunc("POST /widgets/{id}", b.handleMount)
	b.mux.HandleFunc("DELETE /widgets/{id}", b.handleUnmount)
	b.mux.HandleFunc("GET /widgets/{id}", b.handleSnapshot)
	return b
}

func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mux.ServeHTTP(w, r)
}

// handleContainer: PUT /containers/{id}?width=..&height=..
func (b *Bridge) handleContainer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	width, errW := strconv.ParseFloat(r.URL.Query().Get("width"), 64)
	height, errH := strconv.ParseFloat(r.URL.Query().Get("height"), 64)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		http.Error(w, "width and height must be positive numbers", http.StatusBadRequest)
		return
	}
	b.registry.RegisterContainer(id, types.Viewport{Width: width, Height: height})
	w.WriteHeader(http.StatusNoContent)
}

// handleMount: POST /widgets/{id}; тело — конфигурация хоста в YAML или JSON, может быть пустым.
func (b *Bridge) handleMount(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	host := config.DefaultHost()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := yaml.Unmarshal(body, &host); err != nil {
			http.Error(w, fmt.Sprintf("bad host config: %v", err), http.StatusBadRequest)
			return
		}
	}

	if _, err := b.registry.Mount(id, host); err != nil {
		switch {
		case errors.Is(err, app.ErrContainerNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, app.ErrAlreadyMounted):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (b *Bridge) handleUnmount(w http.ResponseWriter, r *http.Request) {
	if err := b.registry.Unmount(r.PathValue("id")); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Bridge) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	widget, ok := b.registry.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, app.ErrNotMounted.Error(), http.StatusNotFound)
		return
	}
	data, err := encodeFrame(Frame{Type: FrameSnapshot, Snapshot: widget.Snapshot()})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		slog.DebugContext(r.Context(), "snapshot write failed", "err", err)
	}
}
