package system

import (
	"math"
	"testing"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"

	"pgregory.net/rapid"
)

const eps = 1e-9

func newBugFixture(vp types.Viewport, seed int64) (*entity.Store, *BugMovementSystem) {
	store := entity.NewStore(vp.At(50, 50))
	return store, NewBugMovementSystem(store, utils.NewPRNGService(seed), vp)
}

func TestBugStep_PanicFleesAtFixedSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// Большая область, чтобы отскок не вмешивался.
		vp := types.Viewport{Width: 10000, Height: 10000}
		_, sys := newBugFixture(vp, 1)
		owl := types.Position{X: 5000, Y: 5000}

		angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle")
		dist := rapid.Float64Range(0.01, config.PanicDistance-0.01).Draw(t, "dist")
		offset := utils.FromAngle(angle, dist)
		bug := &component.Bug{ID: "b", X: owl.X + offset.X, Y: owl.Y + offset.Y}

		sys.Step(bug, owl)

		v := bug.Velocity()
		if got := v.Len(); math.Abs(got-config.PanicSpeed) > 1e-6 {
			t.Fatalf("panic speed = %v, want %v", got, config.PanicSpeed)
		}
		if dot := v.X*offset.X + v.Y*offset.Y; dot <= 0 {
			t.Fatalf("velocity %v does not point away from owl (offset %v)", v, offset)
		}
	})
}

func TestBugStep_FarBugKeepsOrWanders(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := types.Viewport{Width: 10000, Height: 10000}
		_, sys := newBugFixture(vp, rapid.Int64Range(1, 1<<40).Draw(t, "seed"))
		owl := types.Position{X: 5000, Y: 5000}

		angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle")
		dist := rapid.Float64Range(config.PanicDistance, 3000).Draw(t, "dist")
		offset := utils.FromAngle(angle, dist)
		vx := rapid.Float64Range(-1, 1).Draw(t, "vx")
		vy := rapid.Float64Range(-1, 1).Draw(t, "vy")
		bug := &component.Bug{ID: "b", X: owl.X + offset.X, Y: owl.Y + offset.Y, VX: vx, VY: vy}

		sys.Step(bug, owl)

		kept := math.Abs(bug.VX-vx) < eps && math.Abs(bug.VY-vy) < eps
		wandered := math.Abs(bug.Velocity().Len()-config.WanderSpeed) < 1e-6
		if !kept && !wandered {
			t.Fatalf("far bug velocity %v: neither kept (%v,%v) nor wander speed", bug.Velocity(), vx, vy)
		}
	})
}

func TestBugStep_StaysInsidePaddedBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.Float64Range(200, 2000).Draw(t, "w")
		h := rapid.Float64Range(200, 2000).Draw(t, "h")
		vp := types.Viewport{Width: w, Height: h}
		_, sys := newBugFixture(vp, 3)
		pad := config.BoundsPadding

		bug := &component.Bug{
			ID: "b",
			X:  rapid.Float64Range(pad, w-pad).Draw(t, "x"),
			Y:  rapid.Float64Range(pad, h-pad).Draw(t, "y"),
			VX: rapid.Float64Range(-10, 10).Draw(t, "vx"),
			VY: rapid.Float64Range(-10, 10).Draw(t, "vy"),
		}
		owl := types.Position{
			X: rapid.Float64Range(0, w).Draw(t, "ox"),
			Y: rapid.Float64Range(0, h).Draw(t, "oy"),
		}

		for i := 0; i < 50; i++ {
			sys.Step(bug, owl)
			if bug.X < pad-eps || bug.X > w-pad+eps || bug.Y < pad-eps || bug.Y > h-pad+eps {
				t.Fatalf("step %d: bug at (%v,%v) outside [%v,%v]x[%v,%v]", i, bug.X, bug.Y, pad, w-pad, pad, h-pad)
			}
			if bug.X == pad && bug.VX < 0 || bug.X == w-pad && bug.VX > 0 {
				t.Fatalf("step %d: x velocity %v still points into the wall", i, bug.VX)
			}
			if bug.Y == pad && bug.VY < 0 || bug.Y == h-pad && bug.VY > 0 {
				t.Fatalf("step %d: y velocity %v still points into the wall", i, bug.VY)
			}
		}
	})
}

func TestBugStep_WallReflectsVelocity(t *testing.T) {
	vp := types.Viewport{Width: 1000, Height: 1000}
	_, sys := newBugFixture(vp, 1)
	bug := &component.Bug{ID: "b", X: 51, Y: 500, VX: -3, VY: 0}

	sys.Step(bug, types.Position{X: 900, Y: 900})

	if bug.X != config.BoundsPadding {
		t.Fatalf("x = %v, want clamped to %v", bug.X, config.BoundsPadding)
	}
	if bug.VX <= 0 {
		t.Fatalf("vx = %v, want reflected to positive", bug.VX)
	}
}

func TestBugStep_NarrowViewportPinsToCentre(t *testing.T) {
	vp := types.Viewport{Width: 60, Height: 300}
	_, sys := newBugFixture(vp, 3)
	bug := &component.Bug{ID: "b", X: 10, Y: 150, VX: -3, VY: 1}

	for i := 0; i < 20; i++ {
		sys.Step(bug, types.Position{X: 1000, Y: 1000})
		if bug.X != 30 || bug.VX != 0 {
			t.Fatalf("step %d: x=%v vx=%v, want x=30 vx=0", i, bug.X, bug.VX)
		}
		if bug.Y < config.BoundsPadding || bug.Y > vp.Height-config.BoundsPadding {
			t.Fatalf("step %d: y=%v left padded bounds", i, bug.Y)
		}
	}
}

func TestBugStep_ZeroDistanceDoesNotProduceNaN(t *testing.T) {
	vp := types.Viewport{Width: 1000, Height: 1000}
	_, sys := newBugFixture(vp, 9)
	owl := types.Position{X: 500, Y: 500}
	bug := &component.Bug{ID: "b", X: 500, Y: 500}

	sys.Step(bug, owl)

	if math.IsNaN(bug.X) || math.IsNaN(bug.Y) || math.IsNaN(bug.VX) || math.IsNaN(bug.VY) {
		t.Fatalf("NaN in bug state: %+v", bug)
	}
	if got := bug.Velocity().Len(); math.Abs(got-config.PanicSpeed) > 1e-6 {
		t.Fatalf("speed = %v, want %v", got, config.PanicSpeed)
	}
}

func TestBugStep_WanderRate(t *testing.T) {
	vp := types.Viewport{Width: 100000, Height: 100000}
	_, sys := newBugFixture(vp, 42)
	owl := types.Position{X: 0, Y: 0}

	const steps = 20000
	changes := 0
	for i := 0; i < steps; i++ {
		bug := &component.Bug{ID: "b", X: 50000, Y: 50000, VX: 0.1, VY: 0}
		sys.Step(bug, owl)
		if bug.VX != 0.1 || bug.VY != 0 {
			changes++
		}
	}
	rate := float64(changes) / steps
	if rate < 0.015 || rate > 0.025 {
		t.Fatalf("wander rate = %.4f, want about %.2f", rate, config.WanderChance)
	}
}

func TestBugMovementSystem_SkipsSquashedBugs(t *testing.T) {
	vp := types.Viewport{Width: 1000, Height: 1000}
	store, sys := newBugFixture(vp, 1)
	store.Add(&component.Bug{ID: "alive", X: 500, Y: 500, VX: 1})
	store.Add(&component.Bug{ID: "dead", X: 300, Y: 300})
	store.Squash("dead")

	sys.Update(types.Position{X: 520, Y: 500})

	dead := store.Bug("dead")
	if dead.X != 300 || dead.Y != 300 || dead.VX != 0 || dead.VY != 0 {
		t.Fatalf("squashed bug moved: %+v", dead)
	}
	if alive := store.Bug("alive"); alive.X == 500 {
		t.Fatalf("panicking bug did not move")
	}
}

func TestBugStep_ReportsChanges(t *testing.T) {
	vp := types.Viewport{Width: 1000, Height: 1000}
	_, sys := newBugFixture(vp, 1)
	bug := &component.Bug{ID: "b", X: 500, Y: 500, VX: 1, VY: 0}

	if !sys.Step(bug, types.Position{X: 520, Y: 500}) {
		t.Fatalf("Step reported no change for a panicking bug")
	}
}
