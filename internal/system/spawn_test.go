package system

import (
	"testing"
	"time"

	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/event"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"
)

func newSpawnFixture() (*entity.Store, *SpawnSystem, *int) {
	vp := types.Viewport{Width: 1000, Height: 800}
	store := entity.NewStore(vp.At(90, 90))
	dispatcher := event.NewDispatcher()
	spawned := 0
	dispatcher.Subscribe(event.BugSpawned, event.ListenerFunc(func(event.Event) { spawned++ }))
	return store, NewSpawnSystem(store, utils.NewPRNGService(11), dispatcher, vp), &spawned
}

func TestSpawnSystem_ManualSpawnInsideInnerArea(t *testing.T) {
	store, sys, spawned := newSpawnFixture()
	id := sys.Spawn()

	bug := store.Bug(id)
	if bug == nil {
		t.Fatalf("spawned bug %q not in store", id)
	}
	if bug.X < 1000*config.SpawnMargin || bug.X > 1000*(1-config.SpawnMargin) ||
		bug.Y < 800*config.SpawnMargin || bug.Y > 800*(1-config.SpawnMargin) {
		t.Fatalf("bug spawned outside inner area at (%v,%v)", bug.X, bug.Y)
	}
	if *spawned != 1 {
		t.Fatalf("BugSpawned dispatched %d times", *spawned)
	}
}

func TestSpawnSystem_AutoSpawnFiresWithinInterval(t *testing.T) {
	store, sys, _ := newSpawnFixture()
	sys.Configure(true, time.Second, 2*time.Second)

	sys.Update(frame)
	if !sys.Pending() {
		t.Fatalf("auto-spawn did not schedule a timer")
	}
	var elapsed time.Duration
	for store.Len() == 0 && elapsed < 3*time.Second {
		sys.Update(frame)
		elapsed += frame
	}
	if store.Len() != 1 {
		t.Fatalf("no bug after %v", elapsed)
	}
	if elapsed < time.Second || elapsed > 2*time.Second+frame {
		t.Fatalf("spawned after %v, want within [1s, 2s]", elapsed)
	}
	if !sys.Pending() {
		t.Fatalf("next spawn not scheduled")
	}
}

func TestSpawnSystem_MaxBelowMinUsesMin(t *testing.T) {
	store, sys, _ := newSpawnFixture()
	sys.Configure(true, time.Second, 0)

	sys.Update(frame)
	for i := 0; i < 9; i++ {
		sys.Update(frame)
	}
	if store.Len() != 0 {
		t.Fatalf("spawned before min interval")
	}
	sys.Update(frame)
	if store.Len() != 1 {
		t.Fatalf("no spawn at exactly min interval")
	}
}

func TestSpawnSystem_DisablingCancelsTimer(t *testing.T) {
	store, sys, _ := newSpawnFixture()
	sys.Configure(true, 500*time.Millisecond, 500*time.Millisecond)
	sys.Update(frame)

	sys.Configure(false, 500*time.Millisecond, 500*time.Millisecond)
	if sys.Pending() {
		t.Fatalf("timer survived disabling")
	}
	for i := 0; i < 20; i++ {
		sys.Update(frame)
	}
	if store.Len() != 0 {
		t.Fatalf("disabled auto-spawn produced %d bugs", store.Len())
	}
}
