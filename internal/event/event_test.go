package event

import "testing"

type countingListener struct{ n int }

func (c *countingListener) OnEvent(Event) { c.n++ }

func TestDispatcher_SubscribeDispatchUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(BugSpawned, l)

	d.Dispatch(Event{Type: BugSpawned})
	d.Dispatch(Event{Type: BugRemoved})
	if l.n != 1 {
		t.Fatalf("n = %d, want 1", l.n)
	}

	d.Unsubscribe(BugSpawned, l)
	d.Dispatch(Event{Type: BugSpawned})
	if l.n != 1 {
		t.Fatalf("listener still called after unsubscribe")
	}
}

// sliceListener — слушатель-значение с несравнимым полем.
type sliceListener struct {
	seen *[]EventType
	tags []string
}

func (s sliceListener) OnEvent(e Event) { *s.seen = append(*s.seen, e.Type) }

func TestDispatcher_UnsubscribeSkipsNonComparable(t *testing.T) {
	d := NewDispatcher()
	var seen []EventType
	byValue := sliceListener{seen: &seen, tags: []string{"a"}}
	counter := &countingListener{}
	d.Subscribe(BugSpawned, byValue)
	d.Subscribe(BugSpawned, counter)

	d.Unsubscribe(BugSpawned, byValue)
	d.Unsubscribe(BugSpawned, counter)
	d.Dispatch(Event{Type: BugSpawned})

	if len(seen) != 1 {
		t.Fatalf("value listener calls = %d, want 1", len(seen))
	}
	if counter.n != 0 {
		t.Fatalf("pointer listener still called after unsubscribe")
	}
}

func TestDispatcher_ListenerFuncAndReset(t *testing.T) {
	d := NewDispatcher()
	var got []interface{}
	fn := ListenerFunc(func(e Event) { got = append(got, e.Data) })
	d.Subscribe(ExperienceGained, fn)
	d.Unsubscribe(ExperienceGained, fn) // no-op для функций, без паники

	d.Dispatch(Event{Type: ExperienceGained, Data: 20})
	if len(got) != 1 || got[0] != 20 {
		t.Fatalf("got %v", got)
	}

	d.Reset()
	d.Dispatch(Event{Type: ExperienceGained, Data: 20})
	if len(got) != 1 {
		t.Fatal("listener called after Reset")
	}
}
