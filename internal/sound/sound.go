// internal/sound/sound.go
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go-owl-patrol/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.25
)

// Cue — короткий звуковой сигнал на событие виджета.
type Cue struct {
	Notes    []float64 // частоты, проигрываются по очереди
	NoteTime time.Duration
}

var (
	SquashCue  = Cue{Notes: []float64{660, 440}, NoteTime: 70 * time.Millisecond}
	JokeCue    = Cue{Notes: []float64{523, 659, 784}, NoteTime: 60 * time.Millisecond}
	LevelUpCue = Cue{Notes: []float64{523, 784, 1046}, NoteTime: 90 * time.Millisecond}
)

// Player озвучивает события виджета. Без инициализации динамика молчит.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize открывает динамик. Ошибка не фатальна: виджет работает и без звука.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Subscribe вешает сигналы на события диспетчера.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.BugSquashed, event.ListenerFunc(func(event.Event) { p.Play(SquashCue) }))
	d.Subscribe(event.JokeStarted, event.ListenerFunc(func(event.Event) { p.Play(JokeCue) }))
	d.Subscribe(event.StatPromptOpened, event.ListenerFunc(func(event.Event) { p.Play(LevelUpCue) }))
}

// Play ставит сигнал в микшер. Не блокирует.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played++
	if !p.initialized {
		return
	}
	s, err := Render(c, sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Played — сколько сигналов запрошено, включая беззвучные.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close глушит микшер.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Render собирает сигнал из синусов с затуханием каждой ноты.
func Render(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(c.Notes))
	n := sr.N(c.NoteTime)
	for _, freq := range c.Notes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("tone %v Hz: %w", freq, err)
		}
		notes = append(notes, &decay{Streamer: beep.Take(n, tone), total: n})
	}
	return &effects.Volume{Streamer: beep.Seq(notes...), Base: 2, Volume: math.Log2(volume)}, nil
}

// decay линейно гасит ноту к её концу.
type decay struct {
	beep.Streamer
	pos, total int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.pos)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}
