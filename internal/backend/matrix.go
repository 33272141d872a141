package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"maunium.net/go/mautrix"
)

// Matrix talks to a Matrix home server through mautrix.
type Matrix struct {
	clientID string
}

// NewMatrix returns a backend that announces itself as clientID when
// registering a device.
func NewMatrix(clientID string) *Matrix {
	return &Matrix{clientID: clientID}
}

func (m *Matrix) Discover(ctx context.Context, serverName string) (string, error) {
	wellKnown, err := mautrix.DiscoverClientAPI(ctx, serverName)
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if wellKnown == nil || wellKnown.Homeserver.BaseURL == "" {
		// No well-known document: the server name is the API host.
		return "https://" + serverName, nil
	}
	return wellKnown.Homeserver.BaseURL, nil
}

func (m *Matrix) Login(ctx context.Context, baseURL string, creds Credentials) (Session, error) {
	client, err := mautrix.NewClient(baseURL, "", "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	_, err = client.Login(ctx, &mautrix.ReqLogin{
		Type: mautrix.AuthTypePassword,
		Identifier: mautrix.UserIdentifier{
			Type: mautrix.IdentifierTypeUser,
			User: creds.LoginName(),
		},
		Password:                 creds.Password,
		InitialDeviceDisplayName: m.clientID,
		StoreCredentials:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginRejected, err)
	}
	return &matrixSession{client: client}, nil
}

type matrixSession struct {
	client *mautrix.Client
	since  string
}

func (s *matrixSession) UserID() string {
	return s.client.UserID.String()
}

// Sync runs one sync pass and remembers the batch token for the next one.
func (s *matrixSession) Sync(ctx context.Context) error {
	resp, err := s.client.FullSyncRequest(ctx, mautrix.ReqSync{Since: s.since})
	if err != nil {
		return err
	}
	s.since = resp.NextBatch
	return nil
}
