package ui

import (
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/charmbracelet/bubbles/key"
)

// Area decides where a popup goes inside the space left for menus.
type Area struct {
	width    int
	height   int
	position geometry.Position
	dynamic  func(geometry.Rect) geometry.Rect
}

// Absolute places a fixed-size popup at an anchor position.
func Absolute(width, height int, pos geometry.Position) Area {
	return Area{width: width, height: height, position: pos}
}

// Dynamic computes the popup rectangle from the available area.
func Dynamic(fn func(geometry.Rect) geometry.Rect) Area {
	return Area{dynamic: fn}
}

// DefaultArea covers 60% of the width and 40% of the height, centred.
func DefaultArea() Area {
	return Dynamic(func(base geometry.Rect) geometry.Rect {
		return geometry.CenterPercentage(60, 40, base)
	})
}

// Rect resolves the placement against base. The result never leaves base.
func (a Area) Rect(base geometry.Rect) geometry.Rect {
	if a.dynamic != nil {
		return a.dynamic(base).Intersect(base.Normalize())
	}
	return geometry.Anchor(a.width, a.height, a.position, base)
}

// Popup wraps a menu with a placement policy. It is drawn above the base
// menu and receives all key and mouse input while shown.
type Popup struct {
	menu Menu
	area Area
}

// NewPopup wraps menu. A zero Area selects DefaultArea.
func NewPopup(menu Menu, area Area) *Popup {
	if area.dynamic == nil && area.width == 0 && area.height == 0 {
		area = DefaultArea()
	}
	return &Popup{menu: menu, area: area}
}

// Menu returns the wrapped menu.
func (p *Popup) Menu() Menu { return p.menu }

// Area returns the placement policy.
func (p *Popup) Area() Area { return p.area }

// Rect returns the popup's inner rectangle within base.
func (p *Popup) Rect(base geometry.Rect) geometry.Rect {
	return p.area.Rect(base)
}

func (p *Popup) HandleEvent(ev event.Event, ctx *Context) {
	p.menu.HandleEvent(ev, ctx)
}

func (p *Popup) Draw(f *render.Frame, area geometry.Rect, ctx *Context) {
	p.menu.Draw(f, area, ctx)
}

func (p *Popup) HelpMessage(ctx *Context) []key.Binding {
	return p.menu.HelpMessage(ctx)
}

func (p *Popup) MinimumSize() (int, int) {
	return p.menu.MinimumSize()
}

func (p *Popup) Name() string {
	return "popup:" + MenuName(p.menu)
}
