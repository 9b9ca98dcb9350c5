// SPDX-License-Identifier: Unlicense OR MIT

package component_test

import (
	"image"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget/material"

	"git.sr.ht/~gioui/sidemenu/anim"
	"git.sr.ht/~gioui/sidemenu/component"
	"git.sr.ht/~gioui/sidemenu/drawer"
	"git.sr.ht/~gioui/sidemenu/widget"
)

func TestSideMenuStyle(t *testing.T) {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	ctrl, err := drawer.New(400, drawer.WithAnimator(anim.Immediate{}), drawer.InitiallyOpen(true))
	if err != nil {
		t.Fatal(err)
	}
	style := component.SideMenu(th, widget.NewSideMenu(ctrl))
	if style.MenuBackground != th.Palette.ContrastBg || style.ContentBackground != th.Palette.Bg {
		t.Errorf("backgrounds don't follow the theme palette")
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(400, 800)),
		Now:         time.Unix(0, 0),
	}
	var menuSize, contentSize image.Point
	dims := style.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			menuSize = gtx.Constraints.Min
			return layout.Dimensions{Size: menuSize}
		},
		func(gtx layout.Context) layout.Dimensions {
			contentSize = gtx.Constraints.Min
			return layout.Dimensions{Size: contentSize}
		},
	)
	if dims.Size != image.Pt(400, 800) {
		t.Errorf("dimensions %v", dims.Size)
	}
	if menuSize != image.Pt(300, 800) {
		t.Errorf("menu laid out at %v, want 300x800", menuSize)
	}
	if contentSize != image.Pt(400, 800) {
		t.Errorf("content laid out at %v, want 400x800", contentSize)
	}
}
