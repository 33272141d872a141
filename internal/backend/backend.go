// Package backend is the chat-network collaborator. The UI only ever sees the
// Backend and Session interfaces; the Matrix implementation lives in
// matrix.go.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnreachable means the home server could not be contacted.
	ErrUnreachable = errors.New("home server unreachable")
	// ErrBadResponse means the home server answered with something that is
	// not a usable discovery document.
	ErrBadResponse = errors.New("home server response invalid")
	// ErrLoginRejected means the server refused the credentials.
	ErrLoginRejected = errors.New("login rejected")
)

// Credentials are what the authentication form produces.
type Credentials struct {
	Username   string
	Homeserver string
	Password   string
}

// UserID returns the fully qualified Matrix user ID.
func (c Credentials) UserID() string {
	return fmt.Sprintf("@%s:%s", c.Username, c.Homeserver)
}

// String never includes the password.
func (c Credentials) String() string {
	return c.UserID()
}

// LoginName is the localpart sent to the server.
func (c Credentials) LoginName() string {
	return strings.ToLower(c.Username)
}

// Backend performs the network steps of starting a session.
type Backend interface {
	// Discover resolves serverName to the base URL of its client API.
	Discover(ctx context.Context, serverName string) (string, error)
	// Login authenticates against baseURL.
	Login(ctx context.Context, baseURL string, creds Credentials) (Session, error)
}

// Session is an authenticated connection.
type Session interface {
	UserID() string
	// Sync runs one sync pass with the home server.
	Sync(ctx context.Context) error
}
