package app

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/defs"
	"go-owl-patrol/internal/types"
)

const frame = 100 * time.Millisecond

func newTestWidget(t *testing.T) *Widget {
	t.Helper()
	host := config.DefaultHost()
	host.Seed = 1
	w := NewWidget(Options{
		Host:     host,
		Viewport: types.Viewport{Width: 1200, Height: 900},
		Jokes:    defs.Jokes{"why do programmers prefer dark mode"},
	})
	t.Cleanup(w.Close)
	return w
}

func TestWidget_SquashedBugRemovedAfterDelay(t *testing.T) {
	w := newTestWidget(t)
	id := w.Spawn()
	if !w.Squash(id) {
		t.Fatalf("Squash(%q) = false", id)
	}
	if w.Squash(id) {
		t.Fatalf("second Squash reported success")
	}

	for i := 0; i < 19; i++ {
		w.Tick(frame)
	}
	if w.Store.Bug(id) == nil {
		t.Fatalf("bug removed before %v", config.SquashRemoveDelay)
	}
	w.Tick(frame)
	if w.Store.Bug(id) != nil {
		t.Fatalf("bug still present after %v", config.SquashRemoveDelay)
	}
}

func TestWidget_UnknownIDsAreNoOps(t *testing.T) {
	w := newTestWidget(t)
	if w.Squash("missing") {
		t.Fatalf("Squash on unknown id reported success")
	}
	id := w.Spawn()
	w.Squash(id)
	w.ClearAll()
	for i := 0; i < 30; i++ {
		w.Tick(frame)
	}
	if w.Store.Len() != 0 {
		t.Fatalf("store has %d bugs after ClearAll", w.Store.Len())
	}
}

func TestWidget_CommandsApplyOnNextTick(t *testing.T) {
	w := newTestWidget(t)
	if err := w.Enqueue(Command{Op: CmdSpawn}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if w.Store.Len() != 0 {
		t.Fatalf("command applied before tick")
	}
	w.Tick(frame)
	if w.Store.Len() != 1 {
		t.Fatalf("bugs = %d after tick, want 1", w.Store.Len())
	}

	bug := w.Store.Bugs()[0]
	if err := w.Enqueue(Command{Op: CmdSquash, ID: string(bug.ID)}); err != nil {
		t.Fatalf("Enqueue squash: %v", err)
	}
	w.Tick(frame)
	if !bug.IsSquashed {
		t.Fatalf("squash command not applied")
	}
}

func TestWidget_EnqueueValidates(t *testing.T) {
	w := newTestWidget(t)
	if err := w.Enqueue(Command{Op: "dance"}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("unknown op: err = %v", err)
	}
	if err := w.Enqueue(Command{Op: CmdChoose, Stat: "charisma"}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("unknown stat: err = %v", err)
	}
	if err := w.Enqueue(Command{Op: CmdSquash}); err == nil {
		t.Fatalf("squash without id accepted")
	}
}

func TestWidget_QueueFull(t *testing.T) {
	w := newTestWidget(t)
	for i := 0; i < commandQueueSize; i++ {
		if err := w.Enqueue(Command{Op: CmdClick}); err != nil {
			t.Fatalf("Enqueue #%d: %v", i, err)
		}
	}
	if err := w.Enqueue(Command{Op: CmdClick}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}
}

func TestWidget_SpawnIntervalBoundsFollowEachOther(t *testing.T) {
	w := newTestWidget(t)

	w.SetSpawnInterval(400, 300)
	if h := w.Host(); h.MinSpawnSeconds != 400 || h.MaxSpawnSeconds != 400 {
		t.Fatalf("raising min: got %v-%v, want 400-400", h.MinSpawnSeconds, h.MaxSpawnSeconds)
	}
	if lo, hi := w.SpawnSystem.Interval(); lo != 400*time.Second || hi != 400*time.Second {
		t.Fatalf("spawner interval = %v-%v, want 400s-400s", lo, hi)
	}

	w.SetSpawnInterval(400, 100)
	if h := w.Host(); h.MinSpawnSeconds != 100 || h.MaxSpawnSeconds != 100 {
		t.Fatalf("lowering max: got %v-%v, want 100-100", h.MinSpawnSeconds, h.MaxSpawnSeconds)
	}
}

func TestWidget_AutoSpawnToggle(t *testing.T) {
	w := newTestWidget(t)
	w.SetSpawnInterval(1, 1)
	w.SetAutoSpawn(true)
	for i := 0; i < 11; i++ {
		w.Tick(frame)
	}
	if w.Store.Len() != 1 {
		t.Fatalf("bugs = %d after 1s of auto-spawn, want 1", w.Store.Len())
	}

	w.SetAutoSpawn(false)
	for i := 0; i < 30; i++ {
		w.Tick(frame)
	}
	if w.Store.Len() != 1 {
		t.Fatalf("auto-spawn kept running after disable: %d bugs", w.Store.Len())
	}
}

func TestWidget_CloseStopsEverything(t *testing.T) {
	w := newTestWidget(t)
	w.SetSpawnInterval(0, 0)
	w.SetAutoSpawn(true)
	w.Spawn()
	w.ClickOwl()
	w.Tick(frame)

	w.Close()
	w.Close()

	now := w.Store.Now
	w.Tick(frame)
	if w.Store.Now != now {
		t.Fatalf("clock advanced after Close")
	}
	if w.Store.Len() != 0 {
		t.Fatalf("bugs survived Close")
	}
	if id := w.Spawn(); id != "" {
		t.Fatalf("Spawn after Close returned %q", id)
	}
	if err := w.Enqueue(Command{Op: CmdSpawn}); !errors.Is(err, ErrClosed) {
		t.Fatalf("Enqueue after Close: err = %v", err)
	}
	if err := w.ChooseStat(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("ChooseStat after Close: err = %v", err)
	}
	if snap := w.Snapshot(); !snap.Closed || snap.Owl.Joke != "" {
		t.Fatalf("snapshot after Close = %+v", snap)
	}
}

func TestWidget_InstancesAreIndependent(t *testing.T) {
	a := newTestWidget(t)
	b := newTestWidget(t)

	a.Spawn()
	a.Spawn()
	a.Tick(frame)
	b.Tick(frame)
	b.Tick(frame)

	if a.Store.Len() != 2 || b.Store.Len() != 0 {
		t.Fatalf("bugs a=%d b=%d, want 2 and 0", a.Store.Len(), b.Store.Len())
	}
	if a.Store.Now == b.Store.Now {
		t.Fatalf("clocks are shared")
	}
	b.Close()
	a.Tick(frame)
	if a.Closed() || a.Store.Len() != 2 {
		t.Fatalf("closing b affected a")
	}
}

func TestWidget_StartPercentMovesHomeNotOwl(t *testing.T) {
	w := newTestWidget(t)
	before := w.Store.Owl().Position

	w.SetStartPercent(10, 20)
	owl := w.Store.Owl()
	if owl.Home != (types.Position{X: 120, Y: 180}) {
		t.Fatalf("home = %v, want (120,180)", owl.Home)
	}
	if owl.Position != before {
		t.Fatalf("owl teleported to %v", owl.Position)
	}

	w.Resize(types.Viewport{Width: 600, Height: 450})
	if owl.Home != (types.Position{X: 60, Y: 90}) {
		t.Fatalf("home after resize = %v, want (60,90)", owl.Home)
	}
}

func TestWidget_ScaleIsClamped(t *testing.T) {
	w := newTestWidget(t)
	w.SetScale(10)
	if got := w.Store.Owl().Scale; got != config.MaxScale {
		t.Fatalf("scale = %v, want %v", got, config.MaxScale)
	}
}

func TestWidget_NaNSettingsKeepOwlOnScreen(t *testing.T) {
	host := config.DefaultHost()
	host.Scale = math.NaN()
	host.StartXPercent = math.NaN()
	host.MinSpawnSeconds = math.NaN()
	w := NewWidget(Options{Host: host, Viewport: types.Viewport{Width: 1000, Height: 800}})
	t.Cleanup(w.Close)

	owl := w.Store.Owl()
	if owl.Position != (types.Position{X: 900, Y: 720}) {
		t.Fatalf("owl = %+v, want (900,720)", owl.Position)
	}
	if owl.Scale != config.DefaultScale {
		t.Fatalf("scale = %v, want %v", owl.Scale, config.DefaultScale)
	}

	w.SetStartPercent(math.NaN(), 50)
	w.SetScale(math.NaN())
	w.SetSpawnInterval(math.NaN(), math.NaN())
	if owl.Home != (types.Position{X: 900, Y: 400}) {
		t.Fatalf("home = %+v, want (900,400)", owl.Home)
	}
	if owl.Scale != config.DefaultScale {
		t.Fatalf("scale after NaN = %v", owl.Scale)
	}
	if h := w.Host(); h.MinSpawnSeconds != 60 || h.MaxSpawnSeconds != 300 {
		t.Fatalf("spawn interval = %v-%v, want 60-300", h.MinSpawnSeconds, h.MaxSpawnSeconds)
	}
}

func TestWidget_SnapshotJSON(t *testing.T) {
	w := newTestWidget(t)
	w.Spawn()
	w.Tick(frame)

	data, err := json.Marshal(w.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Owl struct {
			Action string `json:"action"`
		} `json:"owl"`
		Bugs []BugView `json:"bugs"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Owl.Action != "IDLE" || len(decoded.Bugs) != 1 {
		t.Fatalf("snapshot = %s", data)
	}
}

func TestWidget_PointerClickSquashesBugBeforeOwl(t *testing.T) {
	w := newTestWidget(t)
	w.Store.Add(&component.Bug{ID: "near-cursor", X: 200, Y: 200})

	if !w.PointerClick(types.Position{X: 205, Y: 200}) {
		t.Fatal("click on a bug reported no hit")
	}
	if bug := w.Store.Bug("near-cursor"); bug == nil || !bug.IsSquashed {
		t.Fatalf("bug not squashed by pointer: %+v", bug)
	}
	if xp := w.Store.Progression().Experience; xp != 0 {
		t.Fatalf("experience = %d, pointer squash must not award XP", xp)
	}
	if w.PointerClick(types.Position{X: 600, Y: 100}) {
		t.Fatal("click on empty space reported a hit")
	}
}

func TestWidget_PointerClickOnOwlTellsJoke(t *testing.T) {
	w := newTestWidget(t)
	home := w.Store.Owl().Position

	if !w.PointerClick(types.Position{X: home.X, Y: home.Y - 20}) {
		t.Fatal("click on the owl reported no hit")
	}
	if got := w.Store.Owl().Action; got != component.ActionTellingJoke {
		t.Fatalf("action = %v, want %v", got, component.ActionTellingJoke)
	}
}

func TestWidget_PointerSecondaryOnlyOnOwl(t *testing.T) {
	w := newTestWidget(t)
	home := w.Store.Owl().Position

	if w.PointerSecondary(types.Position{X: 10, Y: 10}) {
		t.Fatal("secondary click away from the owl reported a hit")
	}
	if w.Store.Len() != 0 {
		t.Fatalf("bugs = %d, want 0", w.Store.Len())
	}
	if !w.PointerSecondary(types.Position{X: home.X, Y: home.Y - 20}) {
		t.Fatal("secondary click on the owl reported no hit")
	}
	if w.Store.Len() != 1 {
		t.Fatalf("bugs = %d, want 1 spawned by secondary click", w.Store.Len())
	}
}
