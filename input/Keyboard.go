// Package input turns tcell key events into per-frame held-key snapshots.
package input

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell"

	"ContribPong/core"
)

// DefaultHold is how long a key counts as held after its last press event.
// Terminals only report presses (plus auto-repeat), never releases.
const DefaultHold = 150 * time.Millisecond

type key int

const (
	leftUp key = iota
	leftDown
	rightUp
	rightDown
	keyCount
)

// Keyboard collects events from a polling goroutine and answers Snapshot
// once per frame on the game loop's goroutine. Held keys go through a
// bounded queue and may be dropped when it is full; auto-repeat refreshes
// them. Reset and quit are flags set directly, so they are never lost.
type Keyboard struct {
	events chan tcell.Event
	hold   time.Duration
	now    func() time.Time

	pressed [keyCount]time.Time
	reset   atomic.Bool
	quit    atomic.Bool
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		events: make(chan tcell.Event, 64),
		hold:   hold,
		now:    time.Now,
	}
}

// Listen starts the goroutine that blocks on screen.PollEvent. It exits when
// the screen is finalized.
func (k *Keyboard) Listen(screen tcell.Screen) {
	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if k.trigger(ev) {
				continue
			}
			select {
			case k.events <- ev:
			default:
			}
		}
	}()
}

// Snapshot drains pending events and reports what is held right now. Reset
// and Quit are edge triggers and are cleared once reported.
func (k *Keyboard) Snapshot() core.Input {
	for drained := false; !drained; {
		select {
		case ev := <-k.events:
			k.Handle(ev)
		default:
			drained = true
		}
	}

	now := k.now()
	in := core.Input{
		LeftUp:    k.held(leftUp, now),
		LeftDown:  k.held(leftDown, now),
		RightUp:   k.held(rightUp, now),
		RightDown: k.held(rightDown, now),
		Reset:     k.reset.Swap(false),
		Quit:      k.quit.Swap(false),
	}
	return in
}

// Handle records a single event.
func (k *Keyboard) Handle(ev tcell.Event) {
	if k.trigger(ev) {
		return
	}
	if ev, ok := ev.(*tcell.EventKey); ok {
		k.handleKey(ev)
	}
}

// trigger latches reset and quit. It is safe to call from any goroutine and
// reports whether ev was one of them.
func (k *Keyboard) trigger(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit.Store(true)
		return true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'r', 'R':
			k.reset.Store(true)
			return true
		case 'q', 'Q':
			k.quit.Store(true)
			return true
		}
	}
	return false
}

func (k *Keyboard) handleKey(ev *tcell.EventKey) {
	now := k.now()

	switch ev.Key() {
	case tcell.KeyUp:
		k.pressed[rightUp] = now
	case tcell.KeyDown:
		k.pressed[rightDown] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.pressed[leftUp] = now
		case 's', 'S':
			k.pressed[leftDown] = now
		}
	}
}

func (k *Keyboard) held(which key, now time.Time) bool {
	last := k.pressed[which]
	return !last.IsZero() && now.Sub(last) < k.hold
}
