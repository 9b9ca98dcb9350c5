// SPDX-License-Identifier: Unlicense OR MIT

// Package component provides Material styles for the side menu.
package component

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~gioui/sidemenu/widget"
)

// SideMenuStyle draws a side menu with Material colours and a shadow
// beneath the content.
type SideMenuStyle struct {
	State             *widget.SideMenu
	MenuBackground    color.NRGBA
	ContentBackground color.NRGBA
	// ShadowColor is the colour of the shadow at its darkest, drawn
	// while the menu is revealed.
	ShadowColor  color.NRGBA
	ShadowRadius unit.Dp
	// ShadowOffset displaces the shadow downwards.
	ShadowOffset unit.Dp
}

// shadowLayers is the number of rounded rectangles stacked to
// approximate a blurred shadow.
const shadowLayers = 6

// SideMenu returns a style for s with colours from th.
func SideMenu(th *material.Theme, s *widget.SideMenu) SideMenuStyle {
	return SideMenuStyle{
		State:             s,
		MenuBackground:    th.Palette.ContrastBg,
		ContentBackground: th.Palette.Bg,
		ShadowColor:       color.NRGBA{A: 0x59},
		ShadowRadius:      30,
		ShadowOffset:      4,
	}
}

// Layout the menu and the content with the backgrounds and shadow of
// the style.
func (s SideMenuStyle) Layout(gtx layout.Context, menu, content layout.Widget) layout.Dimensions {
	return s.State.LayoutFrame(gtx,
		func(gtx layout.Context) layout.Dimensions {
			paint.Fill(gtx.Ops, s.MenuBackground)
			if menu != nil {
				menu(gtx)
			}
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		s.layoutShadow,
		func(gtx layout.Context) layout.Dimensions {
			paint.Fill(gtx.Ops, s.ContentBackground)
			if content != nil {
				content(gtx)
			}
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
	)
}

func (s SideMenuStyle) layoutShadow(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Min
	p := s.State.Controller().Progress()
	if p <= 0 || s.ShadowColor.A == 0 {
		return layout.Dimensions{Size: size}
	}
	spread := gtx.Dp(s.ShadowRadius)
	off := image.Pt(0, gtx.Dp(s.ShadowOffset))
	rr := s.State.ContentRadius()
	c := s.ShadowColor
	c.A = uint8(float32(c.A) * p / shadowLayers)
	for i := shadowLayers; i > 0; i-- {
		d := spread * i / shadowLayers
		r := image.Rectangle{
			Min: image.Pt(-d, -d),
			Max: size.Add(image.Pt(d, d)),
		}.Add(off)
		paint.FillShape(gtx.Ops, c, clip.UniformRRect(r, rr+d).Op(gtx.Ops))
	}
	return layout.Dimensions{Size: size}
}
