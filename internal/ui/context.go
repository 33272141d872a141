package ui

import (
	"github.com/atomicstack/matui/internal/backend"
	"github.com/atomicstack/matui/internal/bus"
	"github.com/atomicstack/matui/internal/logging/events"
	"github.com/atomicstack/matui/internal/theme"
)

// Settings is the state shared by every component. Only the App changes it;
// components read a copy through Context.Settings.
type Settings struct {
	HideHelp        bool
	QuitApplication bool
	LoginDetails    *backend.Credentials
	// Verbose appends underlying errors to user-facing failure messages.
	Verbose bool
}

// SessionHandle identifies a running session task.
type SessionHandle interface {
	ID() string
	// Done is closed when the task has finished.
	Done() <-chan struct{}
}

// SessionStarter launches the background task that logs in and syncs. The
// task reports progress by sending notifications; the returned sender carries
// commands back to it.
type SessionStarter interface {
	Start(creds backend.Credentials, settings Settings, notify bus.Sender[Notification]) (SessionHandle, bus.Sender[BackendCommand])
}

// Context is handed to every menu and widget callback.
type Context struct {
	settings Settings
	notify   bus.Sender[Notification]
	commands bus.Sender[BackendCommand]
	session  SessionHandle
	starter  SessionStarter
	keys     KeyMap
	styles   *theme.Styles
}

// ContextOptions configures NewContext.
type ContextOptions struct {
	Settings Settings
	Keys     KeyMap
	Starter  SessionStarter
	Styles   *theme.Styles
}

// NewContext returns a context that posts notifications to notify.
func NewContext(notify bus.Sender[Notification], opts ContextOptions) *Context {
	keys := opts.Keys
	if len(keys.ToggleHelp.Keys()) == 0 || len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	return &Context{
		settings: opts.Settings,
		notify:   notify,
		starter:  opts.Starter,
		keys:     keys,
		styles:   styles,
	}
}

// Settings returns a copy of the current settings.
func (c *Context) Settings() Settings {
	s := c.settings
	if s.LoginDetails != nil {
		creds := *s.LoginDetails
		s.LoginDetails = &creds
	}
	return s
}

func (c *Context) Keys() KeyMap { return c.keys }

func (c *Context) Styles() *theme.Styles { return c.styles }

// ToggleHelp flips help footer visibility.
func (c *Context) ToggleHelp() {
	c.settings.HideHelp = !c.settings.HideHelp
	events.UI.HelpToggle(c.settings.HideHelp)
}

// SetQuit marks the application for exit after the current frame.
func (c *Context) SetQuit() {
	c.settings.QuitApplication = true
}

// SetLoginDetails records the credentials of the session being started.
func (c *Context) SetLoginDetails(creds backend.Credentials) {
	c.settings.LoginDetails = &creds
}

// SendNotification posts n to the App. Failures are traced and dropped.
func (c *Context) SendNotification(n Notification) {
	if c.notify == nil {
		events.Bus.SendDropped(n.String(), nil)
		return
	}
	if err := c.notify.Send(n); err != nil {
		events.Bus.SendDropped(n.String(), err)
	}
}

// SendBackendCommand forwards cmd to the running session. Without a session
// it does nothing.
func (c *Context) SendBackendCommand(cmd BackendCommand) {
	if !c.HasSession() {
		return
	}
	if err := c.commands.Send(cmd); err != nil {
		events.Bus.SendDropped(cmd.String(), err)
	}
}

// HasSession reports whether a session task is running. A task that has
// finished, for example after a failed login, is forgotten here.
func (c *Context) HasSession() bool {
	if c.commands == nil {
		return false
	}
	if c.session != nil {
		select {
		case <-c.session.Done():
			c.commands, c.session = nil, nil
			return false
		default:
		}
	}
	return true
}

// StartSession launches a session task for creds and keeps its command
// sender for SendBackendCommand. It returns nil without a starter.
func (c *Context) StartSession(creds backend.Credentials) SessionHandle {
	if c.starter == nil {
		return nil
	}
	handle, commands := c.starter.Start(creds, c.Settings(), c.notify)
	c.commands, c.session = commands, handle
	return handle
}
