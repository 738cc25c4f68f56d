// internal/host/session.go
package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go-owl-patrol/internal/app"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FrameType — тип исходящего кадра.
type FrameType string

const (
	FrameSnapshot FrameType = "snapshot"
	FrameError    FrameType = "error"
)

// Frame — исходящее сообщение моста.
type Frame struct {
	Type     FrameType     `json:"type"`
	Session  string        `json:"session,omitempty"`
	Snapshot *app.Snapshot `json:"snapshot,omitempty"`
	Error    string        `json:"error,omitempty"`
}

func encodeFrame(f Frame) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", f.Type, err)
	}
	return data, nil
}

// handleSocket: GET /ws?container=<id>. Входящие текстовые кадры — app.Command в JSON,
// исходящие — снимки раз в interval и кадры ошибок на отвергнутые команды.
func (b *Bridge) handleSocket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("container")
	widget, ok := b.registry.Get(id)
	if !ok {
		http.Error(w, fmt.Sprintf("%q: %v", id, app.ErrNotMounted), http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: b.origins,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}

	s := &session{
		id:       uuid.NewString(),
		conn:     conn,
		widget:   widget,
		interval: b.interval,
		errs:     make(chan string, 16),
	}
	slog.DebugContext(ctx, "bridge session opened", "session_id", s.id, "container", id)
	err = s.run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		conn.Close(websocket.StatusNormalClosure, "")
	case errors.Is(err, app.ErrClosed):
		conn.Close(websocket.StatusNormalClosure, "widget unmounted")
	case websocket.CloseStatus(err) != -1:
	default:
		slog.ErrorContext(ctx, "bridge session failed", "session_id", s.id, "err", err)
		conn.Close(websocket.StatusInternalError, "internal error")
	}
	slog.DebugContext(ctx, "bridge session closed", "session_id", s.id)
}

type session struct {
	id       string
	conn     *websocket.Conn
	widget   *app.Widget
	interval time.Duration
	errs     chan string
}

// run держит две горутины: чтение команд и запись кадров. Пишет только writeLoop.
func (s *session) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.readLoop(ctx) })
	g.Go(func() error { return s.writeLoop(ctx) })
	return g.Wait()
}

func (s *session) readLoop(ctx context.Context) error {
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}

		var cmd app.Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.reject(fmt.Sprintf("malformed command: %v", err))
			continue
		}
		if err := s.widget.Enqueue(cmd); err != nil {
			if errors.Is(err, app.ErrClosed) {
				return err
			}
			s.reject(err.Error())
		}
	}
}

// reject не блокирует чтение: при переполненной очереди ошибка теряется.
func (s *session) reject(msg string) {
	select {
	case s.errs <- msg:
	default:
		slog.Debug("bridge error frame dropped", "session_id", s.id, "err", msg)
	}
}

func (s *session) writeLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := s.send(ctx, Frame{Type: FrameSnapshot, Session: s.id, Snapshot: s.widget.Snapshot()}); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-s.errs:
			if err := s.send(ctx, Frame{Type: FrameError, Session: s.id, Error: msg}); err != nil {
				return err
			}
		case <-ticker.C:
			snap := s.widget.Snapshot()
			if err := s.send(ctx, Frame{Type: FrameSnapshot, Session: s.id, Snapshot: snap}); err != nil {
				return err
			}
			if snap.Closed {
				// Закрываем сами, пока читающая горутина жива и может принять ответ на close-кадр.
				s.conn.Close(websocket.StatusNormalClosure, "widget unmounted")
				return app.ErrClosed
			}
		}
	}
}

func (s *session) send(ctx context.Context, f Frame) error {
	data, err := encodeFrame(f)
	if err != nil {
		return err
	}
	return s.conn.Write(ctx, websocket.MessageText, data)
}
