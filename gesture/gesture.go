// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the pointer gestures of a side menu.

Gestures accept low level pointer Events from an input Source
and detect higher level actions: Pan follows a pointer from
press to release in the manner of a touch responder, Tap detects
short presses.
*/
package gesture

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
)

// Pan tracks a single pointer from press to release and reports
// its displacement from the press position. A Pan must be claimed
// before it blocks other handlers from the pointer.
type Pan struct {
	pid     pointer.ID
	pressed bool
	claimed bool
	start   f32.Point
	last    f32.Point
}

// PanEvent describes the progress of a pan.
type PanEvent struct {
	Kind PanKind
	// Start is the press position.
	Start f32.Point
	// Position is the current position.
	Position f32.Point
	// Delta is the cumulative movement, Position minus Start.
	Delta f32.Point
	// Claimed reports whether the pan was claimed before the event.
	Claimed bool
	Source  pointer.Source
}

type PanKind uint8

// Tap detects taps: presses released without moving more than the
// touch slop.
type Tap struct {
	pid     pointer.ID
	pressed bool
	start   f32.Point
}

// TapEvent is a completed tap.
type TapEvent struct {
	Position f32.Point
	Source   pointer.Source
}

const (
	// KindPress is reported when a pointer is pressed.
	KindPress PanKind = iota
	// KindMove is reported for movements of the pressed pointer.
	KindMove
	// KindRelease is reported when the pointer is lifted.
	KindRelease
	// KindCancel is reported when the pointer is cancelled, for
	// example because another handler grabbed it.
	KindCancel
)

var touchSlop = unit.Dp(3)

// Add the handler to the operation list to receive pan events.
func (p *Pan) Add(ops *op.Ops) {
	event.Op(ops, p)
}

// Pressed reports whether a pointer is being tracked.
func (p *Pan) Pressed() bool {
	return p.pressed
}

// Claimed reports whether the tracked pointer was claimed.
func (p *Pan) Claimed() bool {
	return p.claimed
}

// Claim grabs the tracked pointer. Other handlers receive a cancel
// event and the pan receives the rest of the pointer events
// exclusively.
func (p *Pan) Claim(q input.Source) {
	if !p.pressed || p.claimed {
		return
	}
	p.claimed = true
	q.Execute(pointer.GrabCmd{Tag: p, ID: p.pid})
}

// Update returns the next pan event, if any.
func (p *Pan) Update(q input.Source) (PanEvent, bool) {
	for {
		evt, ok := q.Event(pointer.Filter{
			Target: p,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if p.pressed {
				break
			}
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
				break
			}
			p.pressed = true
			p.claimed = false
			p.pid = e.PointerID
			p.start = e.Position
			p.last = e.Position
			return p.event(KindPress, e), true
		case pointer.Drag:
			if !p.pressed || e.PointerID != p.pid {
				break
			}
			p.last = e.Position
			return p.event(KindMove, e), true
		case pointer.Release:
			if !p.pressed || e.PointerID != p.pid {
				break
			}
			ev := p.event(KindRelease, e)
			p.pressed, p.claimed = false, false
			return ev, true
		case pointer.Cancel:
			if !p.pressed {
				break
			}
			// Cancel events don't carry a position; report the
			// last known one.
			ev := PanEvent{
				Kind:     KindCancel,
				Start:    p.start,
				Position: p.last,
				Delta:    p.last.Sub(p.start),
				Claimed:  p.claimed,
				Source:   e.Source,
			}
			p.pressed, p.claimed = false, false
			return ev, true
		}
	}
	return PanEvent{}, false
}

func (p *Pan) event(k PanKind, e pointer.Event) PanEvent {
	return PanEvent{
		Kind:     k,
		Start:    p.start,
		Position: e.Position,
		Delta:    e.Position.Sub(p.start),
		Claimed:  p.claimed,
		Source:   e.Source,
	}
}

// Add the handler to the operation list to receive tap events.
func (t *Tap) Add(ops *op.Ops) {
	event.Op(ops, t)
}

// Pressed reports whether a pointer is pressed over the handler.
func (t *Tap) Pressed() bool {
	return t.pressed
}

// Update returns the next tap, if any.
func (t *Tap) Update(cfg unit.Metric, q input.Source) (TapEvent, bool) {
	for {
		evt, ok := q.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Press | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if t.pressed {
				break
			}
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
				break
			}
			t.pressed = true
			t.pid = e.PointerID
			t.start = e.Position
		case pointer.Release:
			if !t.pressed || e.PointerID != t.pid {
				break
			}
			t.pressed = false
			d := e.Position.Sub(t.start)
			slop := float32(cfg.Dp(touchSlop))
			if d.X*d.X+d.Y*d.Y > slop*slop {
				break
			}
			return TapEvent{Position: e.Position, Source: e.Source}, true
		case pointer.Cancel:
			t.pressed = false
		}
	}
	return TapEvent{}, false
}

func (k PanKind) String() string {
	switch k {
	case KindPress:
		return "KindPress"
	case KindMove:
		return "KindMove"
	case KindRelease:
		return "KindRelease"
	case KindCancel:
		return "KindCancel"
	default:
		panic("invalid PanKind")
	}
}
