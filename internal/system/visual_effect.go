// internal/system/visual_effect.go
package system

import (
	"fmt"
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/event"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const feedbackRise = 40.0

// VisualEffectSystem управляет отложенными визуальными эффектами:
// удалением раздавленных жуков и всплывающими надписями опыта.
type VisualEffectSystem struct {
	store      *entity.Store
	dispatcher *event.Dispatcher
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(store *entity.Store, dispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{store: store, dispatcher: dispatcher}
	dispatcher.Subscribe(event.ExperienceGained, s)
	return s
}

// OnEvent создаёт надпись "+N XP" над совой.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	amount, ok := e.Data.(int)
	if e.Type != event.ExperienceGained || !ok {
		return
	}
	owl := s.store.Owl()
	seconds := float32(config.FeedbackDuration.Seconds())
	s.store.Feedback = append(s.store.Feedback, &component.FloatingText{
		Text:  fmt.Sprintf("+%d XP", amount),
		X:     owl.Position.X,
		Y:     owl.Position.Y - config.OwlBodyHeight*owl.Scale,
		Alpha: 1,
		Rise:  gween.New(0, -feedbackRise, seconds, ease.OutQuad),
		Fade:  gween.New(1, 0, seconds, ease.InQuad),
	})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(dt time.Duration) {
	// Раздавленные жуки лежат SquashRemoveDelay, потом исчезают.
	var expired []*component.Bug
	for _, bug := range s.store.Bugs() {
		if !bug.IsSquashed {
			continue
		}
		bug.RemoveIn -= dt
		if bug.RemoveIn <= 0 {
			expired = append(expired, bug)
		}
	}
	for _, bug := range expired {
		if s.store.Remove(bug.ID) {
			s.dispatcher.Dispatch(event.Event{Type: event.BugRemoved, Data: bug.ID})
		}
	}

	step := float32(dt.Seconds())
	alive := s.store.Feedback[:0]
	for _, ft := range s.store.Feedback {
		offset, riseDone := ft.Rise.Update(step)
		alpha, fadeDone := ft.Fade.Update(step)
		ft.OffsetY = float64(offset)
		ft.Alpha = float64(alpha)
		ft.Done = riseDone && fadeDone
		if !ft.Done {
			alive = append(alive, ft)
		}
	}
	for i := len(alive); i < len(s.store.Feedback); i++ {
		s.store.Feedback[i] = nil
	}
	s.store.Feedback = alive
}

// Reset сбрасывает надписи. Отсчёты удаления живут в самих жуках и уходят вместе с ними.
func (s *VisualEffectSystem) Reset() {
	s.store.Feedback = nil
}
