// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"git.sr.ht/~gioui/sidemenu/drawer"
	"git.sr.ht/~gioui/sidemenu/gesture"
)

// SideMenu lays out a menu beneath a content view that slides aside
// to reveal it. The offset is owned by a drawer.Controller; SideMenu
// feeds it pointer events and frame times.
type SideMenu struct {
	ctrl    *drawer.Controller
	pan     gesture.Pan
	overlay gesture.Tap

	// tracking is set when the current pointer was accepted by
	// the capture decision.
	tracking bool
	wasOpen  bool
	changed  bool
}

// NewSideMenu returns a side menu driven by ctrl.
func NewSideMenu(ctrl *drawer.Controller) *SideMenu {
	return &SideMenu{ctrl: ctrl, wasOpen: ctrl.IsOpen()}
}

// Controller returns the controller of the side menu.
func (s *SideMenu) Controller() *drawer.Controller {
	return s.ctrl
}

// Changed reports whether the open state has changed since the last
// call to Changed.
func (s *SideMenu) Changed() bool {
	changed := s.changed
	s.changed = false
	return changed
}

// Update processes pointer events and advances the settle animation.
func (s *SideMenu) Update(gtx layout.Context) {
	size := gtx.Constraints.Max
	s.ctrl.Resize(size.X, size.Y)
	for {
		e, ok := s.pan.Update(gtx.Source)
		if !ok {
			break
		}
		g := drawer.Gesture{Start: e.Start, Delta: e.Delta}
		switch e.Kind {
		case gesture.KindPress:
			s.tracking = s.ctrl.ShouldCapture(e.Start)
		case gesture.KindMove:
			if !s.tracking {
				break
			}
			if !e.Claimed {
				if !s.ctrl.Admit(g) {
					break
				}
				s.pan.Claim(gtx.Source)
			}
			s.ctrl.Move(g)
		case gesture.KindRelease:
			if e.Claimed {
				s.ctrl.Release(g)
			}
			s.tracking = false
		case gesture.KindCancel:
			if e.Claimed {
				s.ctrl.Terminate(g)
			}
			s.tracking = false
		}
	}
	for {
		if _, ok := s.overlay.Update(gtx.Metric, gtx.Source); !ok {
			break
		}
		if s.ctrl.IsOpen() && !s.ctrl.Dragging() {
			s.ctrl.Dismiss()
		}
	}
	if s.ctrl.Tick(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	if open := s.ctrl.IsOpen(); open != s.wasOpen {
		s.wasOpen = open
		s.changed = true
	}
}

// Layout the menu and the content. The menu is as wide as the open
// offset and anchored to the menu edge; the content fills the
// constraints and follows the live offset.
func (s *SideMenu) Layout(gtx layout.Context, menu, content layout.Widget) layout.Dimensions {
	return s.LayoutFrame(gtx, menu, nil, content)
}

// LayoutFrame is like Layout but also lays out frame beneath the
// content. The frame follows the content transform and is not
// clipped to the content, which suits shadows and borders.
func (s *SideMenu) LayoutFrame(gtx layout.Context, menu, frame, content layout.Widget) layout.Dimensions {
	s.Update(gtx)
	size := gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	s.pan.Add(gtx.Ops)

	s.layoutMenu(gtx, size, menu)
	s.layoutContent(gtx, size, frame, content)
	return layout.Dimensions{Size: size}
}

// MenuBounds returns the area of the menu layer within size.
func (s *SideMenu) MenuBounds(size image.Point) image.Rectangle {
	w := int(math.Round(float64(s.ctrl.OpenOffset())))
	if w > size.X {
		w = size.X
	}
	r := image.Rectangle{Max: image.Pt(w, size.Y)}
	if s.ctrl.Config().Side == drawer.Right {
		r = r.Add(image.Pt(size.X-w, 0))
	}
	return r
}

// ContentTransform returns the transformation of the content layer
// for a content of the given size: scaled about its centre and
// displaced by the live offset.
func (s *SideMenu) ContentTransform(size image.Point) f32.Affine2D {
	scale := s.ctrl.Scale()
	center := f32.Pt(float32(size.X)/2, float32(size.Y)/2)
	return f32.Affine2D{}.
		Scale(center, f32.Pt(scale, scale)).
		Offset(f32.Pt(s.ctrl.Offset(), 0))
}

// ContentRadius returns the live corner radius of the content, in
// pixels.
func (s *SideMenu) ContentRadius() int {
	return int(math.Round(float64(s.ctrl.Radius())))
}

func (s *SideMenu) layoutMenu(gtx layout.Context, size image.Point, menu layout.Widget) {
	if menu == nil {
		return
	}
	r := s.MenuBounds(size)
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	defer clip.Rect(image.Rectangle{Max: r.Size()}).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	menu(gtx)
}

func (s *SideMenu) layoutContent(gtx layout.Context, size image.Point, frame, content layout.Widget) {
	defer op.Affine(s.ContentTransform(size)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(size)
	if frame != nil {
		frame(gtx)
	}
	defer clip.UniformRRect(image.Rectangle{Max: size}, s.ContentRadius()).Push(gtx.Ops).Pop()
	if content != nil {
		content(gtx)
	}
	if s.ctrl.IsOpen() {
		// Catch taps on the displaced content.
		area := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
		s.overlay.Add(gtx.Ops)
		area.Pop()
	}
}
