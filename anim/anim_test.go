// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"testing"
	"time"
)

func TestImmediate(t *testing.T) {
	a := Immediate{}.Animate(10, 300)
	v, done := a.Advance(0)
	if !done || v != 300 {
		t.Errorf("got (%v, %v), want (300, true)", v, done)
	}
}

func TestTween(t *testing.T) {
	a := Tween{Duration: 100 * time.Millisecond, Easing: Linear}.Animate(0, 100)
	if v, done := a.Advance(0); done || v != 0 {
		t.Errorf("start: got (%v, %v)", v, done)
	}
	if v, done := a.Advance(50 * time.Millisecond); done || v < 49 || v > 51 {
		t.Errorf("halfway: got (%v, %v)", v, done)
	}
	if v, done := a.Advance(60 * time.Millisecond); !done || v != 100 {
		t.Errorf("end: got (%v, %v), want (100, true)", v, done)
	}
	// Negative steps don't rewind.
	if v, done := a.Advance(-time.Second); !done || v != 100 {
		t.Errorf("after end: got (%v, %v)", v, done)
	}
}

func TestTweenDefaults(t *testing.T) {
	a := Tween{}.Animate(1, 0.9)
	if _, done := a.Advance(defaultDuration / 2); done {
		t.Error("default tween finished early")
	}
	if v, done := a.Advance(defaultDuration); !done || v != 0.9 {
		t.Errorf("got (%v, %v), want (0.9, true)", v, done)
	}
}

func TestSpringSettlesExactly(t *testing.T) {
	for _, tc := range []struct{ from, to float32 }{
		{0, 300},
		{300, 0},
		{-300, 0},
		{1, 0.9},
		{0, 30},
	} {
		a := DefaultSpring().Animate(tc.from, tc.to)
		var (
			v    float32
			done bool
		)
		for i := 0; i < 600 && !done; i++ {
			v, done = a.Advance(springStep)
		}
		if !done {
			t.Errorf("%v -> %v: spring did not settle", tc.from, tc.to)
			continue
		}
		if v != tc.to {
			t.Errorf("%v -> %v: settled at %v", tc.from, tc.to, v)
		}
	}
}

func TestSpringMoves(t *testing.T) {
	a := DefaultSpring().Animate(0, 100)
	v0, _ := a.Advance(0)
	if v0 != 0 {
		t.Errorf("spring moved without time passing: %v", v0)
	}
	// Less than a step accumulates without moving.
	if v, _ := a.Advance(springStep / 2); v != 0 {
		t.Errorf("spring moved on a partial step: %v", v)
	}
	v1, done := a.Advance(100 * time.Millisecond)
	if done || v1 <= 0 || v1 >= 100 {
		t.Errorf("got (%v, %v) after 100ms", v1, done)
	}
}

func TestSpringNoop(t *testing.T) {
	a := DefaultSpring().Animate(42, 42)
	if v, done := a.Advance(0); !done || v != 42 {
		t.Errorf("got (%v, %v), want (42, true)", v, done)
	}
}

func TestEaseInOutCubic(t *testing.T) {
	for _, tc := range []struct{ in, out float32 }{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	} {
		if got := EaseInOutCubic(tc.in); got != tc.out {
			t.Errorf("EaseInOutCubic(%v) = %v, want %v", tc.in, got, tc.out)
		}
	}
}
