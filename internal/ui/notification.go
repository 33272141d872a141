package ui

import (
	"fmt"

	"github.com/atomicstack/matui/internal/backend"
)

// Notification is a request sent to the App over the notification bus.
type Notification interface {
	notification()
	fmt.Stringer
}

// QuitRequest asks the App to exit. With Confirm set the user is asked first.
type QuitRequest struct{ Confirm bool }

// SetLogin starts a session with the given credentials.
type SetLogin struct{ Credentials backend.Credentials }

// ShowPopup replaces the current popup, if any.
type ShowPopup struct{ Popup *Popup }

// HidePopup closes the current popup.
type HidePopup struct{}

// SwitchMenu replaces the base menu.
type SwitchMenu struct{ Menu Menu }

// ClientError reports a backend failure to the user.
type ClientError struct{ Message string }

func (QuitRequest) notification() {}
func (SetLogin) notification()    {}
func (ShowPopup) notification()   {}
func (HidePopup) notification()   {}
func (SwitchMenu) notification()  {}
func (ClientError) notification() {}

func (n QuitRequest) String() string { return fmt.Sprintf("quit(confirm=%t)", n.Confirm) }
func (n SetLogin) String() string    { return "login(" + n.Credentials.String() + ")" }
func (n ShowPopup) String() string {
	if n.Popup == nil {
		return "show-popup(nil)"
	}
	return "show-popup(" + MenuName(n.Popup.Menu()) + ")"
}
func (HidePopup) String() string     { return "hide-popup" }
func (n SwitchMenu) String() string  { return "switch-menu(" + MenuName(n.Menu) + ")" }
func (n ClientError) String() string { return "client-error" }

// BackendCommand is a request from the UI to a running session.
type BackendCommand interface {
	backendCommand()
	fmt.Stringer
}

// SyncRequest asks the session to run another sync pass.
type SyncRequest struct{}

func (SyncRequest) backendCommand() {}
func (SyncRequest) String() string  { return "sync" }
