// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim implements strategies for driving a single value toward
a target over time.

An Animator starts an Animation from a current value to a target.
The owner of the value steps the Animation with the time elapsed
since the previous frame and applies the reported value; animations
never write to the value on their own.
*/
package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Animator starts animations.
type Animator interface {
	Animate(from, to float32) Animation
}

// Animation interpolates toward a target.
type Animation interface {
	// Advance moves the animation forward by dt and reports the
	// current value and whether the target has been reached. A
	// finished animation reports its target exactly.
	Advance(dt time.Duration) (value float32, done bool)
}

// Immediate jumps to the target without interpolation.
type Immediate struct{}

// Spring animates with a damped spring.
type Spring struct {
	// Frequency is the angular frequency of the spring. Higher
	// values settle faster.
	Frequency float64
	// Damping is the damping ratio. Values below 1 overshoot.
	Damping float64
}

// Tween animates over a fixed duration.
type Tween struct {
	Duration time.Duration
	// Easing maps linear progress in [0, 1] to eased progress.
	// Nil means EaseInOutCubic.
	Easing func(t float32) float32
}

type immediate struct {
	to float32
}

type spring struct {
	s        harmonica.Spring
	pos, vel float64
	to       float64
	rest     float64
	acc      time.Duration
	done     bool
}

type tween struct {
	from, to float32
	duration time.Duration
	easing   func(t float32) float32
	elapsed  time.Duration
}

const (
	defaultFrequency = 8.0
	defaultDamping   = 0.7
	defaultDuration  = 300 * time.Millisecond

	springFPS = 60
	// maxSpringSteps bounds the work done for a single large time step,
	// for example after the window was hidden.
	maxSpringSteps = 4 * springFPS
)

var springStep = time.Second / springFPS

// DefaultSpring returns the spring used when nothing else is configured.
func DefaultSpring() Spring {
	return Spring{Frequency: defaultFrequency, Damping: defaultDamping}
}

func (Immediate) Animate(from, to float32) Animation {
	return &immediate{to: to}
}

func (a *immediate) Advance(time.Duration) (float32, bool) {
	return a.to, true
}

func (s Spring) Animate(from, to float32) Animation {
	freq, damp := s.Frequency, s.Damping
	if freq <= 0 {
		freq = defaultFrequency
	}
	if damp <= 0 {
		damp = defaultDamping
	}
	rest := math.Abs(float64(to-from)) * 1e-3
	if rest < 1e-4 {
		rest = 1e-4
	}
	return &spring{
		s:    harmonica.NewSpring(harmonica.FPS(springFPS), freq, damp),
		pos:  float64(from),
		to:   float64(to),
		rest: rest,
		done: from == to,
	}
}

func (a *spring) Advance(dt time.Duration) (float32, bool) {
	if a.done {
		return float32(a.to), true
	}
	if dt > 0 {
		a.acc += dt
	}
	for n := 0; a.acc >= springStep; n++ {
		a.acc -= springStep
		if n == maxSpringSteps {
			a.acc = 0
			break
		}
		a.pos, a.vel = a.s.Update(a.pos, a.vel, a.to)
		if math.Abs(a.pos-a.to) < a.rest && math.Abs(a.vel) < a.rest {
			a.pos, a.vel = a.to, 0
			a.done = true
			break
		}
	}
	return float32(a.pos), a.done
}

func (t Tween) Animate(from, to float32) Animation {
	d := t.Duration
	if d <= 0 {
		d = defaultDuration
	}
	e := t.Easing
	if e == nil {
		e = EaseInOutCubic
	}
	return &tween{from: from, to: to, duration: d, easing: e}
}

func (a *tween) Advance(dt time.Duration) (float32, bool) {
	if dt > 0 {
		a.elapsed += dt
	}
	if a.elapsed >= a.duration || a.from == a.to {
		return a.to, true
	}
	t := float32(a.elapsed.Seconds() / a.duration.Seconds())
	return a.from + (a.to-a.from)*a.easing(t), false
}

// Linear is the identity easing.
func Linear(t float32) float32 { return t }

// EaseInOutCubic maps a linear value to a ease-in-out-cubic easing function.
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}
