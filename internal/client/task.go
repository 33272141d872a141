// Package client runs the background session task: it finds the home
// server, logs in, performs the first sync and then serves commands from the
// UI. Progress is reported to the App as notifications.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/atomicstack/matui/internal/backend"
	"github.com/atomicstack/matui/internal/bus"
	"github.com/atomicstack/matui/internal/logging/events"
	"github.com/atomicstack/matui/internal/menu"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/google/uuid"
)

// DefaultSyncInterval is the minimum spacing between two sync passes.
const DefaultSyncInterval = 250 * time.Millisecond

const (
	stageDiscover = "Fetching home server"
	stageLogin    = "Logging in"
	stageSync     = "Syncing data"
)

const (
	msgUnreachable  = "Unable to connect to home server."
	msgBadResponse  = "Unable to parse home server response."
	msgMalformedURL = "Home server returned malformed URL."
	msgLoginFailed  = "Unable to login with provided credentials."
	msgSyncFailed   = "Unable to sync with home server."
)

var errIncompleteURL = errors.New("missing scheme or host")

// Starter launches session tasks against a backend. It satisfies
// ui.SessionStarter.
type Starter struct {
	backend      backend.Backend
	syncInterval time.Duration
}

// NewStarter returns a starter for b. A non-positive interval selects
// DefaultSyncInterval.
func NewStarter(b backend.Backend, syncInterval time.Duration) *Starter {
	if syncInterval <= 0 {
		syncInterval = DefaultSyncInterval
	}
	return &Starter{backend: b, syncInterval: syncInterval}
}

// Start spawns a task for creds. The task runs until it fails or its command
// mailbox is closed; it is never cancelled from outside.
func (s *Starter) Start(creds backend.Credentials, settings ui.Settings, notify bus.Sender[ui.Notification]) (ui.SessionHandle, bus.Sender[ui.BackendCommand]) {
	t := newTask(s.backend, creds, settings.Verbose, notify, s.syncInterval)
	go t.run()
	return t, t.commands
}

// Task is one login attempt and, if it succeeds, the session that follows.
type Task struct {
	id       string
	creds    backend.Credentials
	verbose  bool
	backend  backend.Backend
	notify   bus.Sender[ui.Notification]
	commands *bus.Mailbox[ui.BackendCommand]
	throttle *throttle

	ctx  context.Context
	done chan struct{}
	err  error
}

func newTask(b backend.Backend, creds backend.Credentials, verbose bool, notify bus.Sender[ui.Notification], interval time.Duration) *Task {
	return &Task{
		id:       uuid.NewString(),
		creds:    creds,
		verbose:  verbose,
		backend:  b,
		notify:   notify,
		commands: bus.New[ui.BackendCommand](),
		throttle: newThrottle(interval),
		ctx:      context.Background(),
		done:     make(chan struct{}),
	}
}

func (t *Task) ID() string { return t.id }

func (t *Task) Done() <-chan struct{} { return t.done }

// Err returns the failure that ended the task, if any. Only meaningful once
// Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Close stops accepting commands. The task exits after the command in
// flight, if any.
func (t *Task) Close() {
	t.commands.Close()
}

func (t *Task) run() {
	defer close(t.done)

	session, err := t.connect()
	if err != nil {
		t.err = err
		return
	}
	t.serve(session)
}

// connect walks through discovery, login and the first sync, switching the
// base menu to a loading screen for each stage.
func (t *Task) connect() (backend.Session, error) {
	t.enter(stageDiscover)
	baseURL, err := t.backend.Discover(t.ctx, t.creds.Homeserver)
	if err != nil {
		message := msgUnreachable
		if errors.Is(err, backend.ErrBadResponse) {
			message = msgBadResponse
		}
		return nil, t.fail(stageDiscover, message, err)
	}

	t.enter(stageLogin)
	if err := checkBaseURL(baseURL); err != nil {
		return nil, t.fail(stageLogin, msgMalformedURL, err)
	}
	session, err := t.backend.Login(t.ctx, baseURL, t.creds)
	if err != nil {
		return nil, t.fail(stageLogin, msgLoginFailed, err)
	}

	t.enter(stageSync)
	if err := session.Sync(t.ctx); err != nil {
		return nil, t.fail(stageSync, msgSyncFailed, err)
	}
	events.Client.Synced(t.id)
	return session, nil
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base url %q: %w", raw, errIncompleteURL)
	}
	return nil
}

// serve handles commands until the mailbox is closed.
func (t *Task) serve(session backend.Session) {
	for {
		cmd, err := t.commands.Recv(t.ctx)
		if err != nil {
			return
		}
		events.Client.Command(t.id, cmd.String())
		switch cmd.(type) {
		case ui.SyncRequest:
			if err := t.throttle.wait(t.ctx); err != nil {
				return
			}
			if err := session.Sync(t.ctx); err != nil {
				events.Client.Error(t.id, stageSync, err)
				t.send(ui.ClientError{Message: t.userMessage(msgSyncFailed, err)})
				continue
			}
			events.Client.Synced(t.id)
		}
	}
}

func (t *Task) enter(stage string) {
	events.Client.Stage(t.id, stage)
	t.send(ui.SwitchMenu{Menu: menu.NewLoadingMenu(stage)})
}

// fail sends the user back to a pre-filled login form and reports message.
func (t *Task) fail(stage, message string, err error) error {
	events.Client.Error(t.id, stage, err)
	t.send(ui.SwitchMenu{Menu: menu.NewAuthenticationMenuWith(t.creds)})
	t.send(ui.ClientError{Message: t.userMessage(message, err)})
	return fmt.Errorf("%s: %w", stage, err)
}

func (t *Task) userMessage(message string, err error) string {
	if t.verbose && err != nil {
		return message + "\n" + err.Error()
	}
	return message
}

func (t *Task) send(n ui.Notification) {
	if err := t.notify.Send(n); err != nil {
		events.Bus.SendDropped(n.String(), err)
	}
}
