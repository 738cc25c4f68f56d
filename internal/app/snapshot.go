// internal/app/snapshot.go
package app

import "time"

// BugView — жук в снимке.
type BugView struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Squashed bool    `json:"squashed"`
}

// OwlView — сова в снимке.
type OwlView struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Action      string  `json:"action"`
	FacingRight bool    `json:"facing_right"`
	Scale       float64 `json:"scale"`
	Joke        string  `json:"joke,omitempty"`
}

// ProgressionView — опыт, характеристики и открытое окно выбора.
type ProgressionView struct {
	Experience      int     `json:"experience"`
	Strength        int     `json:"strength"`
	Agility         int     `json:"agility"`
	Intellect       int     `json:"intellect"`
	PromptOpen      bool    `json:"prompt_open"`
	PromptRemaining float64 `json:"prompt_remaining_seconds,omitempty"`
}

// Snapshot — неизменяемая копия состояния, безопасная для чтения из любой горутины.
type Snapshot struct {
	Now         time.Duration   `json:"-"`
	Seconds     float64         `json:"t"`
	Owl         OwlView         `json:"owl"`
	Bugs        []BugView       `json:"bugs"`
	Progression ProgressionView `json:"progression"`
	AutoSpawn   bool            `json:"auto_spawn"`
	Closed      bool            `json:"closed"`
}

// Snapshot возвращает последний опубликованный снимок.
func (w *Widget) Snapshot() *Snapshot {
	return w.snapshot.Load()
}

// publish снимает копию хранилища. Вызывается под замком.
func (w *Widget) publish() {
	owl := w.Store.Owl()
	p := w.Store.Progression()

	snap := &Snapshot{
		Now:     w.Store.Now,
		Seconds: w.Store.Now.Seconds(),
		Owl: OwlView{
			X:           owl.Position.X,
			Y:           owl.Position.Y,
			Action:      owl.Action.String(),
			FacingRight: owl.FacingRight,
			Scale:       owl.Scale,
			Joke:        owl.Joke,
		},
		Bugs: make([]BugView, 0, w.Store.Len()),
		Progression: ProgressionView{
			Experience: p.Experience,
			Strength:   p.Strength,
			Agility:    p.Agility,
			Intellect:  p.Intellect,
		},
		AutoSpawn: w.SpawnSystem.Auto(),
		Closed:    w.closed.Load(),
	}
	for _, b := range w.Store.Bugs() {
		snap.Bugs = append(snap.Bugs, BugView{ID: string(b.ID), X: b.X, Y: b.Y, Squashed: b.IsSquashed})
	}
	if p.Prompt != nil {
		snap.Progression.PromptOpen = true
		snap.Progression.PromptRemaining = p.Prompt.Remaining.Seconds()
	}
	w.snapshot.Store(snap)
}
