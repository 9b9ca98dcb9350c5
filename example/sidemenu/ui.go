// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"log/slog"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"

	"git.sr.ht/~gioui/sidemenu/component"
	"git.sr.ht/~gioui/sidemenu/drawer"
	menuwidget "git.sr.ht/~gioui/sidemenu/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// UI is the demo user interface: a menu of colours beneath a content
// view painted with the selected colour.
type UI struct {
	th       *material.Theme
	menu     *menuwidget.SideMenu
	toggle   widget.Clickable
	icon     *widget.Icon
	list     widget.List
	entries  []entry
	selected int
}

type entry struct {
	name  string
	color color.NRGBA
	btn   widget.Clickable
}

var palette = []struct {
	name  string
	color color.RGBA
}{
	{"Tomato", colornames.Tomato},
	{"Gold", colornames.Gold},
	{"Sea green", colornames.Seagreen},
	{"Steel blue", colornames.Steelblue},
	{"Orchid", colornames.Orchid},
	{"Slate gray", colornames.Slategray},
}

// NewUI returns the user interface for a window of the given width.
func NewUI(s Settings, width float32) (*UI, error) {
	opts, err := s.Options(width)
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		drawer.OnChange(func(open bool) {
			slog.Debug("Menu settled", slog.Bool("open", open))
		}),
		drawer.OnSliding(func(progress float32) {
			if progress == 0 || progress == 1 {
				slog.Debug("Menu slid", slog.Float64("progress", float64(progress)))
			}
		}),
	)
	ctrl, err := drawer.New(width, opts...)
	if err != nil {
		return nil, err
	}
	icon, err := widget.NewIcon(icons.NavigationMenu)
	if err != nil {
		return nil, err
	}
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	ui := &UI{
		th:   th,
		menu: menuwidget.NewSideMenu(ctrl),
		icon: icon,
	}
	ui.list.Axis = layout.Vertical
	for _, p := range palette {
		ui.entries = append(ui.entries, entry{
			name:  p.name,
			color: color.NRGBA{R: p.color.R, G: p.color.G, B: p.color.B, A: p.color.A},
		})
	}
	return ui, nil
}

// Run the window event loop until the window is closed. Settings
// received from reloads reconfigure the menu.
func (u *UI) Run(w *app.Window, reloads <-chan Settings) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			select {
			case s := <-reloads:
				u.Reconfigure(s)
			default:
			}
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// Reconfigure applies new settings. Invalid settings are logged and
// leave the menu as it was.
func (u *UI) Reconfigure(s Settings) {
	ctrl := u.menu.Controller()
	opts, err := s.Options(ctrl.Config().ScreenWidth)
	if err == nil {
		err = ctrl.Reconfigure(opts...)
	}
	if err != nil {
		slog.Error("Rejected settings", slog.String("error", err.Error()))
		return
	}
	slog.Info("Settings reloaded")
}

func (u *UI) Layout(gtx C) D {
	ctrl := u.menu.Controller()
	if u.toggle.Clicked(gtx) {
		if !ctrl.SetOpen(!ctrl.IsOpen()) {
			slog.Debug("Menu toggle ignored", slog.String("state", ctrl.State().String()))
		}
	}
	for i := range u.entries {
		if u.entries[i].btn.Clicked(gtx) {
			u.selected = i
			ctrl.Dismiss()
		}
	}
	if u.menu.Changed() {
		slog.Info("Menu changed", slog.Bool("open", ctrl.IsOpen()))
	}
	return component.SideMenu(u.th, u.menu).Layout(gtx, u.layoutMenu, u.layoutContent)
}

func (u *UI) layoutMenu(gtx C) D {
	return material.List(u.th, &u.list).Layout(gtx, len(u.entries), func(gtx C, i int) D {
		e := &u.entries[i]
		return material.Clickable(gtx, &e.btn, func(gtx C) D {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						sz := gtx.Dp(unit.Dp(20))
						r := image.Rectangle{Max: image.Pt(sz, sz)}
						paint.FillShape(gtx.Ops, e.color, clip.Ellipse(r).Op(gtx.Ops))
						return D{Size: r.Max}
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
					layout.Rigid(func(gtx C) D {
						l := material.Body1(u.th, e.name)
						l.Color = u.th.Palette.ContrastFg
						return l.Layout(gtx)
					}),
				)
			})
		})
	})
}

func (u *UI) layoutContent(gtx C) D {
	e := u.entries[u.selected]
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.IconButton(u.th, &u.toggle, u.icon, "Menu").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
					layout.Rigid(material.H6(u.th, e.name).Layout),
				)
			})
		}),
		layout.Flexed(1, func(gtx C) D {
			size := gtx.Constraints.Max
			paint.FillShape(gtx.Ops, e.color, clip.Rect{Max: size}.Op())
			return D{Size: size}
		}),
	)
}
