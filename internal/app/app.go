package app

import (
	"strings"

	"github.com/atomicstack/matui/internal/bus"
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/logging/events"
	"github.com/atomicstack/matui/internal/menu"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/theme"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	helpTitle          = "Help"
	helpSeparator      = ", "
	errorTitle         = "Error"
	resizeMessage      = "Please resize your screen so there is more space to draw!"
	quitConfirmMessage = "Are you sure you want to exit?"
)

// EventSource yields terminal and tick events without blocking.
type EventSource interface {
	TryRecv() (event.Event, bool)
}

// Options configures New.
type Options struct {
	Settings ui.Settings
	Keys     ui.KeyMap
	Starter  ui.SessionStarter
	Styles   *theme.Styles
	// Menu is the initial base menu. Nil selects the login form.
	Menu ui.Menu
}

// App owns the base menu, the optional popup and the shared context. All of
// its methods run on the UI goroutine.
type App struct {
	ctx     *ui.Context
	menu    ui.Menu
	popup   *ui.Popup
	events  EventSource
	notes   *bus.Mailbox[ui.Notification]
	session ui.SessionHandle

	undersized bool
}

// New returns an App reading events from source.
func New(source EventSource, opts Options) *App {
	notes := bus.New[ui.Notification]()
	base := opts.Menu
	if base == nil {
		base = menu.NewAuthenticationMenu()
	}
	return &App{
		ctx: ui.NewContext(notes, ui.ContextOptions{
			Settings: opts.Settings,
			Keys:     opts.Keys,
			Starter:  opts.Starter,
			Styles:   opts.Styles,
		}),
		menu:   base,
		events: source,
		notes:  notes,
	}
}

func (a *App) Context() *ui.Context { return a.ctx }

// Menu returns the base menu.
func (a *App) Menu() ui.Menu { return a.menu }

// Popup returns the popup on top of the base menu, or nil.
func (a *App) Popup() *ui.Popup { return a.popup }

// Session returns the handle of the last session started, or nil.
func (a *App) Session() ui.SessionHandle { return a.session }

// Notifications returns the sender feeding HandleNotification.
func (a *App) Notifications() bus.Sender[ui.Notification] { return a.notes }

// Pending reports the number of queued notifications.
func (a *App) Pending() int { return a.notes.Len() }

// Quit reports whether the application should exit.
func (a *App) Quit() bool { return a.ctx.Settings().QuitApplication }

// active returns the layer that receives keys and mouse input.
func (a *App) active() ui.Menu {
	if a.popup != nil {
		return a.popup
	}
	return a.menu
}

// Step runs one frame of the main loop: at most one event and at most one
// notification. It returns true once the application should exit.
func (a *App) Step() bool {
	if a.events != nil {
		if ev, ok := a.events.TryRecv(); ok {
			a.HandleEvent(ev)
		}
	}
	if n, ok := a.notes.TryRecv(); ok {
		a.HandleNotification(n)
	}
	return a.Quit()
}

func (a *App) HandleEvent(ev event.Event) {
	switch ev.Kind {
	case event.KindKey:
		a.HandleKey(ev.Key)
	case event.KindMouse:
		a.HandleMouse(ev.Mouse)
	case event.KindTick:
		a.HandleTick()
	}
}

// HandleKey intercepts the global chords, then routes msg to the popup if
// one is shown and to the base menu otherwise.
func (a *App) HandleKey(msg tea.KeyMsg) {
	keys := a.ctx.Keys()
	switch {
	case key.Matches(msg, keys.ToggleHelp):
		a.ctx.ToggleHelp()
		return
	case key.Matches(msg, keys.Quit):
		a.ctx.SendNotification(ui.QuitRequest{Confirm: true})
		return
	case key.Matches(msg, keys.Resync) && a.ctx.HasSession():
		a.ctx.SendBackendCommand(ui.SyncRequest{})
		return
	}
	a.active().HandleEvent(event.Key(msg), a.ctx)
}

func (a *App) HandleMouse(msg tea.MouseMsg) {
	a.active().HandleEvent(event.Mouse(msg), a.ctx)
}

// HandleTick animates both layers; the base menu keeps ticking under a popup.
func (a *App) HandleTick() {
	if a.popup != nil {
		a.popup.HandleEvent(event.Tick(), a.ctx)
	}
	a.menu.HandleEvent(event.Tick(), a.ctx)
}

func (a *App) HandleNotification(n ui.Notification) {
	switch n := n.(type) {
	case ui.QuitRequest:
		events.UI.QuitRequest(n.Confirm)
		if n.Confirm {
			a.showPopup(menu.NewConfirmPopup(quitConfirmMessage, ui.QuitRequest{Confirm: false}))
			return
		}
		a.ctx.SetQuit()
	case ui.SetLogin:
		a.ctx.SetLoginDetails(n.Credentials)
		if handle := a.ctx.StartSession(n.Credentials); handle != nil {
			a.session = handle
		}
	case ui.ShowPopup:
		a.showPopup(n.Popup)
	case ui.HidePopup:
		a.hidePopup()
	case ui.SwitchMenu:
		if n.Menu == nil {
			return
		}
		events.UI.MenuSwitch(ui.MenuName(n.Menu))
		a.menu = n.Menu
	case ui.ClientError:
		popup := menu.NewMessage(n.Message).Title(errorTitle).Popup()
		a.ctx.SendNotification(ui.ShowPopup{Popup: popup})
	}
}

func (a *App) showPopup(p *ui.Popup) {
	if p == nil {
		a.hidePopup()
		return
	}
	events.UI.PopupShow(ui.MenuName(p.Menu()))
	a.popup = p
}

func (a *App) hidePopup() {
	if a.popup == nil {
		return
	}
	events.UI.PopupHide()
	a.popup = nil
}

// MenuArea returns the part of area left for menus once the help footer, if
// visible, has been laid out.
func (a *App) MenuArea(area geometry.Rect) geometry.Rect {
	rest, _, _ := a.helpLayout(area)
	return rest
}

func (a *App) helpLayout(area geometry.Rect) (rest, foot geometry.Rect, lines []string) {
	area = area.Normalize()
	if a.ctx.Settings().HideHelp {
		return area, geometry.Rect{X: area.X, Y: area.Bottom()}, nil
	}
	lines = geometry.Wrap(a.helpText(), helpSeparator, area.Width-4)
	rest, foot = geometry.SplitBottom(len(lines)+2, area)
	return rest, foot, lines
}

func (a *App) helpText() string {
	bindings := append(a.ctx.Keys().Global(), a.active().HelpMessage(a.ctx)...)
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, ui.HintText(b))
	}
	return strings.Join(hints, helpSeparator)
}

// Draw paints the whole screen into f.
func (a *App) Draw(f *render.Frame) {
	styles := a.ctx.Styles()
	area, foot, lines := a.helpLayout(f.Area())
	if len(lines) > 0 {
		inner := f.DrawBlock(foot, render.Block{
			Title:       helpTitle,
			BorderStyle: styles.HelpBorder,
			TitleStyle:  styles.Title,
		})
		for i, line := range lines {
			f.DrawLine(inner, inner.Y+i, line, render.AlignCenter, styles.HelpText)
		}
	}

	minWidth, minHeight := a.menu.MinimumSize()
	if minWidth > area.Width || minHeight > area.Height {
		if !a.undersized {
			events.UI.Undersized(area.Width, area.Height, minWidth, minHeight)
		}
		a.undersized = true
		inner := f.DrawBlock(area, render.Block{Title: errorTitle, BorderStyle: styles.Error})
		f.DrawParagraph(inner, render.Paragraph{Text: resizeMessage, Style: styles.Text, Wrap: true})
	} else {
		a.undersized = false
		a.menu.Draw(f, area, a.ctx)
	}

	if a.popup == nil {
		return
	}
	r := a.PopupRect(area)
	border := geometry.Expand(r, geometry.Uniform(1))
	f.Clear(border)
	f.DrawBlock(border, render.Block{Border: render.BorderRounded, BorderStyle: styles.PopupBorder})
	a.popup.Draw(f, r, a.ctx)
}

// PopupRect returns where the popup content goes within area. Placement
// happens one cell inside area so the border drawn around it stays on
// screen.
func (a *App) PopupRect(area geometry.Rect) geometry.Rect {
	if a.popup == nil {
		return geometry.Rect{}
	}
	return a.popup.Rect(geometry.Shrink(area, geometry.Uniform(1)))
}
