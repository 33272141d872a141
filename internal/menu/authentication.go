package menu

import (
	"regexp"

	"github.com/atomicstack/matui/internal/backend"
	"github.com/atomicstack/matui/internal/event"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/logging/events"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/atomicstack/matui/internal/ui/widget"
	"github.com/charmbracelet/bubbles/key"
)

var usernamePattern = regexp.MustCompile(`^@?(?P<username>[a-zA-Z0-9_\-\.=/]{2,16}):(?P<homeserver>([a-zA-Z\d-]+\.)+[a-z]+)$`)

const (
	authTitle     = "Login to Matrix"
	authWidth     = 40
	authHeight    = 5
	authMinWidth  = 42
	authRowWidth  = 36
	helpBandRows  = 3
	buttonSplitAt = 40

	invalidCredentialsTitle = "Invalid Credentials"
	invalidUsernameMessage  = "Username should match '@user:domain'."
	missingPasswordMessage  = "No password specified."
)

const (
	focusUsername = iota
	focusPassword
	focusSubmit
	authWidgetCount
)

// AuthenticationMenu is the login form: username, password and a Login
// button.
type AuthenticationMenu struct {
	focus    int
	username *widget.LabeledInput
	password *widget.LabeledInput
	submit   *widget.Button
}

func NewAuthenticationMenu() *AuthenticationMenu {
	username := widget.NewLabeledInput("Username")
	username.Input.SetValidation(widget.Func(usernamePattern.MatchString))

	password := widget.NewLabeledInput("Password")
	password.Input.SetMask('*')
	password.Input.SetValidation(widget.Func(func(s string) bool { return s != "" }))

	m := &AuthenticationMenu{
		username: username,
		password: password,
		submit:   widget.NewButton("Login", nil),
	}
	m.setFocus(focusUsername)
	return m
}

// NewAuthenticationMenuWith returns a form pre-filled with creds, used to
// bring the user back after a failed login.
func NewAuthenticationMenuWith(creds backend.Credentials) *AuthenticationMenu {
	m := NewAuthenticationMenu()
	m.username.Input.SetValue(creds.UserID())
	m.password.Input.SetValue(creds.Password)
	return m
}

// ParseUsername splits "@name:domain" into its parts.
func ParseUsername(s string) (name, homeserver string, ok bool) {
	match := usernamePattern.FindStringSubmatch(s)
	if match == nil {
		return "", "", false
	}
	return match[usernamePattern.SubexpIndex("username")], match[usernamePattern.SubexpIndex("homeserver")], true
}

func (m *AuthenticationMenu) Name() string { return "authentication" }

// Username returns the raw text of the username field.
func (m *AuthenticationMenu) Username() string { return m.username.Input.Value() }

// Password returns the raw text of the password field.
func (m *AuthenticationMenu) Password() string { return m.password.Input.Value() }

// Focus returns the index of the focused widget: username, password, button.
func (m *AuthenticationMenu) Focus() int { return m.focus }

func (m *AuthenticationMenu) widgets() [authWidgetCount]ui.Widget {
	return [authWidgetCount]ui.Widget{m.username, m.password, m.submit}
}

func (m *AuthenticationMenu) setFocus(index int) {
	m.focus = index
	for i, w := range m.widgets() {
		w.SetFocused(i == index)
	}
}

func (m *AuthenticationMenu) HandleEvent(ev event.Event, ctx *ui.Context) {
	switch ev.Kind {
	case event.KindTick:
		for _, w := range m.widgets() {
			w.Tick(ctx)
		}
	case event.KindKey:
		m.handleKey(ev, ctx)
	}
}

func (m *AuthenticationMenu) handleKey(ev event.Event, ctx *ui.Context) {
	msg := ev.Key
	switch {
	case matches(msg, keyUp):
		m.setFocus(cycle(m.focus, -1, authWidgetCount))
	case matches(msg, keyDown):
		m.setFocus(cycle(m.focus, 1, authWidgetCount))
	case matches(msg, keySubmit):
		if m.focus == focusSubmit {
			m.Submit(ctx)
			return
		}
		m.setFocus(m.focus + 1)
	default:
		m.widgets()[m.focus].HandleKey(ctx, msg)
	}
}

// Submit validates the form. Invalid input opens a popup explaining the
// problem; valid input posts SetLogin.
func (m *AuthenticationMenu) Submit(ctx *ui.Context) {
	var problem string
	switch {
	case !m.username.Input.Valid():
		problem = invalidUsernameMessage
	case !m.password.Input.Valid():
		problem = missingPasswordMessage
	}
	if problem != "" {
		events.Auth.Invalid(problem)
		popup := NewMessage(problem).
			Title(invalidCredentialsTitle).
			MessageAlign(render.AlignCenter).
			Popup()
		ctx.SendNotification(ui.ShowPopup{Popup: popup})
		return
	}

	name, homeserver, _ := ParseUsername(m.username.Input.Value())
	events.Auth.Submit(name, homeserver)
	ctx.SendNotification(ui.SetLogin{Credentials: backend.Credentials{
		Username:   name,
		Homeserver: homeserver,
		Password:   m.password.Input.Value(),
	}})
}

func (m *AuthenticationMenu) Draw(f *render.Frame, area geometry.Rect, ctx *ui.Context) {
	if !ctx.Settings().HideHelp && area.Height >= authHeight+helpBandRows {
		// Keep the form where it is when the help footer appears, unless the
		// band would push the form out of the area.
		_, area = geometry.SplitTop(helpBandRows, area)
	}
	box := geometry.CenterAbsoluteInner(authWidth, authHeight, area)
	f.DrawBlock(box, render.Block{
		Title:       authTitle,
		BorderStyle: ctx.Styles().Border,
		TitleStyle:  ctx.Styles().Title,
	})

	styles := ctx.Styles()
	m.username.Render(f, geometry.CenteredLine(authRowWidth, 1, 1, box), styles)
	m.password.Render(f, geometry.CenteredLine(authRowWidth, 1, 2, box), styles)
	buttonRow := geometry.CenteredLine(authRowWidth, 1, 3, box)
	m.submit.Render(f, geometry.Split(buttonSplitAt, geometry.Horizontal, buttonRow)[1], styles)
}

func (m *AuthenticationMenu) HelpMessage(*ui.Context) []key.Binding {
	return []key.Binding{keyUp, keyDown, keySubmit}
}

func (m *AuthenticationMenu) MinimumSize() (int, int) {
	return authMinWidth, authHeight
}
