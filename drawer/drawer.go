// SPDX-License-Identifier: Unlicense OR MIT

/*
Package drawer implements the state machine of a slide-out side menu.

A Controller owns the horizontal offset of the content view. It
decides whether a drag gesture belongs to the menu, tracks admitted
drags, and on release settles the menu open or closed through an
animation. Offsets are signed: positive values reveal a left menu,
negative values a right menu.

The Controller is not safe for concurrent use; feed it events from
the goroutine that lays out the user interface.
*/
package drawer

import (
	"math"
	"time"

	"gioui.org/f32"

	"git.sr.ht/~gioui/sidemenu/anim"
)

// Controller is the drag offset state machine of a drawer.
type Controller struct {
	cfg Config

	// Layout size and the offsets derived from it.
	width, height float32
	resized       bool
	openFrac      float32
	hiddenFrac    float32
	openOffset    float32
	hiddenOffset  float32

	offset float32
	scale  float32
	radius float32
	// dragFrac is the signed fraction of the open offset reached by
	// the latest drag update.
	dragFrac float32

	// target is the state being settled toward; settled is the
	// state of the last completed transition.
	target  bool
	settled bool

	drag       dragState
	transition *transition
}

// State is the discrete state of a Controller.
type State uint8

// Gesture is the progress of a touch sequence.
type Gesture struct {
	// Start is where the pointer was pressed.
	Start f32.Point
	// Delta is the cumulative movement since Start.
	Delta f32.Point
}

type dragState struct {
	active bool
	start  float32
}

type transition struct {
	open                  bool
	offset, scale, radius anim.Animation
	last                  time.Time
}

const (
	// StateClosed is a settled closed drawer.
	StateClosed State = iota
	// StateOpen is a settled open drawer.
	StateOpen
	// StateOpening is a transition toward open.
	StateOpening
	// StateClosing is a transition toward closed.
	StateClosing
)

// New returns a controller for a screen of the given width, with
// the defaults of DefaultConfig modified by options. The
// configuration is validated before use.
func New(screenWidth float32, options ...Option) (*Controller, error) {
	cfg := DefaultConfig(screenWidth)
	for _, o := range options {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		target:  cfg.InitialOpen,
		settled: cfg.InitialOpen,
	}
	c.setConfig(cfg)
	c.offset = c.restingOffset(c.target)
	c.scale, c.radius = c.restingStyle(c.target)
	if c.target {
		c.dragFrac = 1
	}
	return c, nil
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Reconfigure applies options to the active configuration. Invalid
// results are reported and leave the controller untouched. An idle
// drawer moves to the resting position of its state under the new
// configuration.
func (c *Controller) Reconfigure(options ...Option) error {
	cfg := c.cfg
	for _, o := range options {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.setConfig(cfg)
	c.rest()
	return nil
}

func (c *Controller) setConfig(cfg Config) {
	c.cfg = cfg
	if !c.resized {
		c.width = cfg.ScreenWidth
	}
	c.openFrac = cfg.OpenOffset / cfg.ScreenWidth
	c.hiddenFrac = cfg.HiddenOffset / cfg.ScreenWidth
	c.updateOffsets()
}

func (c *Controller) updateOffsets() {
	c.openOffset = c.width * c.openFrac
	c.hiddenOffset = c.width * c.hiddenFrac
}

// Resize notifies the controller of a new layout size. The open and
// hidden offsets keep their proportion of the width.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w, h := float32(width), float32(height)
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.resized = true
	c.updateOffsets()
	c.rest()
}

// Size returns the layout size last passed to Resize. Before the
// first Resize the width is the configured screen width.
func (c *Controller) Size() (width, height float32) {
	return c.width, c.height
}

// rest brings a drawer that isn't dragged to the resting values of
// its target state.
func (c *Controller) rest() {
	if c.drag.active {
		return
	}
	if c.transition != nil {
		c.settle(c.target)
		return
	}
	scale, radius := c.restingStyle(c.target)
	c.scale, c.radius = scale, radius
	c.setOffset(c.restingOffset(c.target))
}

// Offset returns the live offset of the content.
func (c *Controller) Offset() float32 {
	return c.offset
}

// Scale returns the live scale of the content.
func (c *Controller) Scale() float32 {
	return c.scale
}

// Radius returns the live corner radius of the content.
func (c *Controller) Radius() float32 {
	return c.radius
}

// OpenOffset returns the magnitude of the open offset for the
// current width.
func (c *Controller) OpenOffset() float32 {
	return c.openOffset
}

// HiddenOffset returns the magnitude of the hidden offset for the
// current width.
func (c *Controller) HiddenOffset() float32 {
	return c.hiddenOffset
}

// Progress returns the offset normalized to [0, 1], 0 being hidden
// and 1 open.
func (c *Controller) Progress() float32 {
	dir := c.cfg.Side.multiplier()
	p := abs(c.offset-dir*c.hiddenOffset) / abs(dir*c.openOffset-dir*c.hiddenOffset)
	return clamp01(p)
}

// DragProgress returns the fraction of the open offset reached by
// the latest drag update. It is not clamped; overdraw exceeds 1.
func (c *Controller) DragProgress() float32 {
	return c.dragFrac
}

// IsOpen reports whether the drawer is open or opening.
func (c *Controller) IsOpen() bool {
	return c.target
}

// Dragging reports whether a drag gesture is admitted.
func (c *Controller) Dragging() bool {
	return c.drag.active
}

// Animating reports whether a settle transition is in flight.
func (c *Controller) Animating() bool {
	return c.transition != nil
}

// State reports the discrete state.
func (c *Controller) State() State {
	switch {
	case c.transition != nil && c.target:
		return StateOpening
	case c.transition != nil:
		return StateClosing
	case c.settled:
		return StateOpen
	default:
		return StateClosed
	}
}

// Barrier is the distance a release must exceed, in the opening
// direction, to settle open.
func (c *Controller) Barrier() float32 {
	return c.width / 4
}

func (c *Controller) gesturesEnabled() bool {
	if c.cfg.GesturesDisabled {
		return false
	}
	if f := c.cfg.DisableGestures; f != nil {
		return !f()
	}
	return true
}

// ShouldCapture decides whether a pointer pressed at pos is tracked.
func (c *Controller) ShouldCapture(pos f32.Point) bool {
	if f := c.cfg.StartShouldCapture; f != nil {
		return f(pos)
	}
	return true
}

// Admit decides whether the gesture g is a drag of the drawer. An
// admitted gesture captures the current offset as its start and
// stops any settle transition in flight.
func (c *Controller) Admit(g Gesture) bool {
	if c.drag.active {
		return true
	}
	if !c.gesturesEnabled() {
		return false
	}
	x := float32(math.Round(math.Abs(float64(g.Delta.X))))
	y := float32(math.Round(math.Abs(float64(g.Delta.Y))))
	moved := x > c.cfg.ToleranceX && y < c.cfg.ToleranceY
	if !moved {
		return false
	}
	if !c.target {
		var withinEdge bool
		if c.cfg.Side == Right {
			withinEdge = g.Start.X > c.width-c.cfg.EdgeHitWidth
		} else {
			withinEdge = g.Start.X < c.cfg.EdgeHitWidth
		}
		opening := c.cfg.Side.multiplier()*g.Delta.X > 0
		if !withinEdge || !opening {
			return false
		}
	}
	c.transition = nil
	c.drag = dragState{active: true, start: c.offset}
	return true
}

// Move tracks an admitted gesture. Moves without an admitted
// gesture are ignored.
func (c *Controller) Move(g Gesture) {
	if !c.drag.active {
		return
	}
	dir := c.cfg.Side.multiplier()
	if c.offset*dir < 0 {
		return
	}
	off := c.drag.start + g.Delta.X
	if !c.cfg.BounceBackOnOverdraw && abs(off) > c.openOffset {
		off = dir * c.openOffset
	}
	c.dragFrac = dir * off / c.openOffset
	c.radius = clamp01(c.dragFrac) * c.cfg.Style.OpenRadius
	c.setOffset(off)
}

// Release ends an admitted gesture and settles the drawer.
func (c *Controller) Release(g Gesture) {
	if !c.drag.active {
		return
	}
	start := c.drag.start
	c.drag = dragState{}
	projected := c.cfg.Side.multiplier() * (start + g.Delta.X)
	c.settle(projected > c.Barrier())
}

// Terminate ends an admitted gesture taken over by another handler.
// It settles like Release.
func (c *Controller) Terminate(g Gesture) {
	c.Release(g)
}

// Open requests the open state. It reports whether the request was
// honored.
func (c *Controller) Open() bool {
	return c.SetOpen(true)
}

// Close requests the closed state. Closing an open drawer requires
// Config.AutoClosing. It reports whether the request was honored.
func (c *Controller) Close() bool {
	return c.SetOpen(false)
}

// SetOpen requests a state from outside the drawer. Requests that
// don't change the target state are ignored, as are requests to
// leave the open state when AutoClosing is disabled. A request
// during a transition redirects it.
func (c *Controller) SetOpen(open bool) bool {
	if open == c.target {
		return false
	}
	if c.target && !c.cfg.AutoClosing {
		return false
	}
	c.drag = dragState{}
	c.settle(open)
	return true
}

// Dismiss closes the drawer on behalf of the user, for example
// after a tap outside the menu. Unlike Close it is not subject to
// AutoClosing.
func (c *Controller) Dismiss() {
	if !c.target {
		return
	}
	c.drag = dragState{}
	c.settle(false)
}

// Tick advances the settle transition to now. It reports whether a
// transition is still in flight and another frame is needed.
func (c *Controller) Tick(now time.Time) bool {
	t := c.transition
	if t == nil {
		return false
	}
	var dt time.Duration
	if !t.last.IsZero() {
		dt = now.Sub(t.last)
	}
	t.last = now
	c.step(dt)
	return c.transition != nil
}

// settle starts a transition toward the resting values of open,
// superseding any transition in flight.
func (c *Controller) settle(open bool) {
	c.target = open
	a := c.cfg.Animator
	scale, radius := c.restingStyle(open)
	c.transition = &transition{
		open:   open,
		offset: a.Animate(c.offset, c.restingOffset(open)),
		scale:  a.Animate(c.scale, scale),
		radius: a.Animate(c.radius, radius),
	}
	c.step(0)
}

func (c *Controller) step(dt time.Duration) {
	t := c.transition
	scale, sdone := t.scale.Advance(dt)
	radius, rdone := t.radius.Advance(dt)
	off, odone := t.offset.Advance(dt)
	c.scale, c.radius = scale, radius
	if odone && sdone && rdone {
		c.transition = nil
		if t.open {
			c.dragFrac = 1
		} else {
			c.dragFrac = 0
		}
	}
	c.setOffset(off)
	if c.transition == nil && c.settled != t.open {
		c.settled = t.open
		if f := c.cfg.OnChange; f != nil {
			f(t.open)
		}
	}
}

// setOffset updates the live offset and notifies the observers.
func (c *Controller) setOffset(off float32) {
	if off == c.offset {
		return
	}
	c.offset = off
	if f := c.cfg.OnMove; f != nil {
		f(off)
	}
	if f := c.cfg.OnSliding; f != nil {
		f(c.Progress())
	}
}

func (c *Controller) restingOffset(open bool) float32 {
	dir := c.cfg.Side.multiplier()
	if open {
		return dir * c.openOffset
	}
	return dir * c.hiddenOffset
}

func (c *Controller) restingStyle(open bool) (scale, radius float32) {
	st := c.cfg.Style
	if open {
		return st.OpenScale, st.OpenRadius
	}
	return st.ClosedScale, st.ClosedRadius
}

func (s State) String() string {
	switch s {
	case StateClosed:
		return "StateClosed"
	case StateOpen:
		return "StateOpen"
	case StateOpening:
		return "StateOpening"
	case StateClosing:
		return "StateClosing"
	default:
		panic("invalid State")
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
