package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell"

	"ContribPong/core"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyboard() (*Keyboard, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	k := NewKeyboard(DefaultHold)
	k.now = clock.Now
	return k, clock
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyboardMapsKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Input
	}{
		{"w", runeKey('w'), core.Input{LeftUp: true}},
		{"S", runeKey('S'), core.Input{LeftDown: true}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.Input{RightUp: true}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.Input{RightDown: true}},
		{"r", runeKey('r'), core.Input{Reset: true}},
		{"q", runeKey('q'), core.Input{Quit: true}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.Input{Quit: true}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.Input{Quit: true}},
		{"unbound", runeKey('x'), core.Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, _ := newTestKeyboard()
			k.Handle(tt.ev)
			if got := k.Snapshot(); got != tt.want {
				t.Errorf("snapshot = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyboardHoldWindow(t *testing.T) {
	k, clock := newTestKeyboard()
	k.Handle(runeKey('w'))

	clock.Advance(DefaultHold / 2)
	if !k.Snapshot().LeftUp {
		t.Fatal("key released before the hold window ended")
	}

	// Auto-repeat extends the hold.
	k.Handle(runeKey('w'))
	clock.Advance(DefaultHold - time.Millisecond)
	if !k.Snapshot().LeftUp {
		t.Fatal("repeated key not held")
	}

	clock.Advance(time.Millisecond)
	if k.Snapshot().LeftUp {
		t.Fatal("key still held after the hold window")
	}
}

func TestKeyboardEdgeTriggersClearAfterSnapshot(t *testing.T) {
	k, _ := newTestKeyboard()
	k.Handle(runeKey('R'))

	if !k.Snapshot().Reset {
		t.Fatal("reset not reported")
	}
	if k.Snapshot().Reset {
		t.Fatal("reset reported twice")
	}
}

func TestKeyboardBothPlayersAtOnce(t *testing.T) {
	k, _ := newTestKeyboard()
	k.Handle(runeKey('s'))
	k.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))

	want := core.Input{LeftDown: true, RightUp: true}
	if got := k.Snapshot(); got != want {
		t.Errorf("snapshot = %+v, want %+v", got, want)
	}
}

func TestKeyboardDrainsQueuedEvents(t *testing.T) {
	k, _ := newTestKeyboard()
	k.events <- runeKey('w')
	k.events <- tcell.NewEventResize(80, 24)
	k.events <- runeKey('q')

	got := k.Snapshot()
	if !got.LeftUp || !got.Quit {
		t.Errorf("snapshot = %+v, want left up and quit", got)
	}
	if len(k.events) != 0 {
		t.Errorf("%d events left in queue", len(k.events))
	}
}

func TestKeyboardListen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	k := NewKeyboard(time.Hour)
	k.Listen(screen)
	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if k.Snapshot().LeftUp {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("injected key never reached the snapshot")
}

func TestKeyboardKeepsTriggersWhenQueueIsFull(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	k := NewKeyboard(time.Hour)
	k.Listen(screen)

	// Nobody drains the queue while these arrive, so most presses overflow it.
	for i := 0; i < 100; i++ {
		screen.PostEventWait(runeKey('w'))
	}
	screen.PostEventWait(runeKey('r'))
	screen.PostEventWait(runeKey('q'))

	deadline := time.Now().Add(2 * time.Second)
	for !k.quit.Load() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if len(k.events) != cap(k.events) {
		t.Fatalf("queue holds %d of %d events, expected it to fill up", len(k.events), cap(k.events))
	}

	got := k.Snapshot()
	if !got.Quit || !got.Reset {
		t.Errorf("snapshot = %+v, want quit and reset after overflow", got)
	}
	if !got.LeftUp {
		t.Error("queued presses lost")
	}
}
