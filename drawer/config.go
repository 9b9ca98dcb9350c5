// SPDX-License-Identifier: Unlicense OR MIT

package drawer

import (
	"errors"
	"fmt"
	"math"

	"gioui.org/f32"

	"git.sr.ht/~gioui/sidemenu/anim"
)

// Side is the screen edge the menu is mounted on.
type Side uint8

const (
	Left Side = iota
	Right
)

// Config describes a drawer. Distances are in pixels.
type Config struct {
	// ScreenWidth is the width the open and hidden offsets are
	// relative to. The offsets scale with the layout width when it
	// changes.
	ScreenWidth float32
	// EdgeHitWidth is the width of the strip along the menu edge
	// where a closed drawer accepts drags.
	EdgeHitWidth float32
	// ToleranceX and ToleranceY bound the movement before a drag
	// is claimed: at least ToleranceX horizontally, less than
	// ToleranceY vertically.
	ToleranceX, ToleranceY float32
	Side                   Side
	// OpenOffset is the displacement of the content when open.
	OpenOffset float32
	// HiddenOffset is the displacement of the content when closed.
	HiddenOffset float32
	// BounceBackOnOverdraw lets drags pull the content past
	// OpenOffset; the settle animation brings it back. When false,
	// drags are clamped to OpenOffset.
	BounceBackOnOverdraw bool
	// AutoClosing allows Close and SetOpen(false) to close an open
	// drawer.
	AutoClosing bool
	InitialOpen bool
	// GesturesDisabled and DisableGestures reject all drags. The
	// predicate is consulted for every admission decision.
	GesturesDisabled bool
	DisableGestures  func() bool
	Style            Style
	Animator         anim.Animator

	// OnChange is called with the new state when a transition
	// settles in a state different from the previous one.
	OnChange func(open bool)
	// OnMove is called with every new offset.
	OnMove func(offset float32)
	// OnSliding is called with every new offset, normalized to
	// [0, 1] between the hidden and open offsets.
	OnSliding func(progress float32)
	// StartShouldCapture decides whether a pointer pressed at pos
	// is tracked at all. Nil means every press is tracked.
	StartShouldCapture func(pos f32.Point) bool
}

// Style is the content scale and corner radius of the two resting
// states. The three animated values always settle together.
type Style struct {
	OpenScale    float32
	OpenRadius   float32
	ClosedScale  float32
	ClosedRadius float32
}

// Option changes a Config.
type Option func(c *Config)

// ConfigError describes an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

// ErrInvalidConfig matches every ConfigError.
var ErrInvalidConfig = errors.New("drawer: invalid configuration")

const (
	defaultEdgeHitWidth = 60
	defaultTolerance    = 10
	defaultOpenFraction = 0.75
)

// DefaultStyle returns the receded look: the open drawer shrinks the
// content and rounds its corners.
func DefaultStyle() Style {
	return Style{
		OpenScale:    0.9,
		OpenRadius:   30,
		ClosedScale:  1,
		ClosedRadius: 0,
	}
}

// DefaultConfig returns the configuration of a left drawer opening
// to three quarters of screenWidth.
func DefaultConfig(screenWidth float32) Config {
	return Config{
		ScreenWidth:          screenWidth,
		EdgeHitWidth:         defaultEdgeHitWidth,
		ToleranceX:           defaultTolerance,
		ToleranceY:           defaultTolerance,
		Side:                 Left,
		OpenOffset:           screenWidth * defaultOpenFraction,
		HiddenOffset:         0,
		BounceBackOnOverdraw: true,
		AutoClosing:          true,
		Style:                DefaultStyle(),
		Animator:             anim.DefaultSpring(),
	}
}

// EdgeHitWidth sets Config.EdgeHitWidth.
func EdgeHitWidth(w float32) Option {
	return func(c *Config) {
		c.EdgeHitWidth = w
	}
}

// Tolerance sets the drag tolerances.
func Tolerance(x, y float32) Option {
	return func(c *Config) {
		c.ToleranceX, c.ToleranceY = x, y
	}
}

// MenuSide sets the edge the menu is mounted on.
func MenuSide(s Side) Option {
	return func(c *Config) {
		c.Side = s
	}
}

// OpenOffset sets Config.OpenOffset.
func OpenOffset(off float32) Option {
	return func(c *Config) {
		c.OpenOffset = off
	}
}

// HiddenOffset sets Config.HiddenOffset.
func HiddenOffset(off float32) Option {
	return func(c *Config) {
		c.HiddenOffset = off
	}
}

// BounceBackOnOverdraw lets drags pass the open offset and spring
// back on release. Disabled, the offset is clamped.
func BounceBackOnOverdraw(enable bool) Option {
	return func(c *Config) {
		c.BounceBackOnOverdraw = enable
	}
}

// AutoClosing sets whether Close and SetOpen may close an open drawer.
func AutoClosing(enable bool) Option {
	return func(c *Config) {
		c.AutoClosing = enable
	}
}

// InitiallyOpen sets the state at construction. It has no effect
// on Reconfigure.
func InitiallyOpen(open bool) Option {
	return func(c *Config) {
		c.InitialOpen = open
	}
}

// DisableGestures rejects every drag gesture.
func DisableGestures(disable bool) Option {
	return func(c *Config) {
		c.GesturesDisabled = disable
	}
}

// DisableGesturesFunc rejects drag gestures while f returns true.
func DisableGesturesFunc(f func() bool) Option {
	return func(c *Config) {
		c.DisableGestures = f
	}
}

// WithStyle sets the content scale and corner radius of the two states.
func WithStyle(s Style) Option {
	return func(c *Config) {
		c.Style = s
	}
}

// WithAnimator sets the animation of settle transitions.
func WithAnimator(a anim.Animator) Option {
	return func(c *Config) {
		c.Animator = a
	}
}

// OnChange sets the function called when the drawer settles in a
// new state.
func OnChange(f func(open bool)) Option {
	return func(c *Config) {
		c.OnChange = f
	}
}

// OnMove sets the function called with every new offset.
func OnMove(f func(offset float32)) Option {
	return func(c *Config) {
		c.OnMove = f
	}
}

// OnSliding sets the function called with the progress of every
// new offset.
func OnSliding(f func(progress float32)) Option {
	return func(c *Config) {
		c.OnSliding = f
	}
}

// StartShouldCapture overrides whether a press at pos is tracked.
func StartShouldCapture(f func(pos f32.Point) bool) Option {
	return func(c *Config) {
		c.StartShouldCapture = f
	}
}

// Validate reports the first invalid field of c, if any.
func (c Config) Validate() error {
	if !finite(c.ScreenWidth) || c.ScreenWidth <= 0 {
		return &ConfigError{Field: "ScreenWidth", Reason: fmt.Sprintf("%v is not a positive width", c.ScreenWidth)}
	}
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"EdgeHitWidth", c.EdgeHitWidth},
		{"ToleranceX", c.ToleranceX},
		{"ToleranceY", c.ToleranceY},
		{"OpenOffset", c.OpenOffset},
		{"HiddenOffset", c.HiddenOffset},
	} {
		if !finite(f.v) || f.v < 0 {
			return &ConfigError{Field: f.name, Reason: fmt.Sprintf("%v is not a non-negative distance", f.v)}
		}
	}
	if c.Side != Left && c.Side != Right {
		return &ConfigError{Field: "Side", Reason: fmt.Sprintf("unknown side %d", c.Side)}
	}
	if c.OpenOffset == 0 {
		return &ConfigError{Field: "OpenOffset", Reason: "zero width menu"}
	}
	if c.OpenOffset == c.HiddenOffset {
		return &ConfigError{Field: "OpenOffset", Reason: "equals HiddenOffset"}
	}
	st := c.Style
	if !finite(st.OpenScale) || st.OpenScale <= 0 || !finite(st.ClosedScale) || st.ClosedScale <= 0 {
		return &ConfigError{Field: "Style", Reason: "scales must be positive"}
	}
	if !finite(st.OpenRadius) || st.OpenRadius < 0 || !finite(st.ClosedRadius) || st.ClosedRadius < 0 {
		return &ConfigError{Field: "Style", Reason: "radii must be non-negative"}
	}
	if c.Animator == nil {
		return &ConfigError{Field: "Animator", Reason: "missing"}
	}
	return nil
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("drawer: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("invalid Side")
	}
}

// ParseSide parses "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left", "Left":
		return Left, nil
	case "right", "Right":
		return Right, nil
	default:
		return 0, &ConfigError{Field: "Side", Reason: fmt.Sprintf("unknown side %q", s)}
	}
}

// multiplier is +1 for a left menu and -1 for a right menu: the sign
// of offsets that reveal the menu.
func (s Side) multiplier() float32 {
	if s == Right {
		return -1
	}
	return 1
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
