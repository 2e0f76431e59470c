// Package console holds the per-session state shared by every screen of the
// floor console: the modal broker, the role sessions and the backend client.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/odyssey-erp/floorconsole/internal/apiclient"
	"github.com/odyssey-erp/floorconsole/internal/modal"
	"github.com/odyssey-erp/floorconsole/internal/session"
)

// ErrNoAPI is returned by operations that need a backend client when none was configured.
var ErrNoAPI = errors.New("console: api client not configured")

// Options wires a Context.
type Options struct {
	API       *apiclient.Client
	Persister session.Persister
	Logger    *slog.Logger
}

// Context is built once per console session and passed to whatever needs it.
type Context struct {
	Modal    *modal.Broker
	Sessions *session.Registry
	API      *apiclient.Client

	logger *slog.Logger
}

// New builds a Context and restores persisted sessions.
func New(ctx context.Context, opts Options) (*Context, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Context{
		Modal:    modal.NewBroker(),
		Sessions: session.NewRegistry(opts.Persister),
		API:      opts.API,
		logger:   logger,
	}
	if err := c.Sessions.Load(ctx); err != nil {
		return nil, fmt.Errorf("console: restore sessions: %w", err)
	}
	return c, nil
}

// Client returns the backend client or ErrNoAPI.
func (c *Context) Client() (*apiclient.Client, error) {
	if c.API == nil {
		return nil, ErrNoAPI
	}
	return c.API, nil
}

// Login records the identity for role.
func (c *Context) Login(ctx context.Context, role session.Role, id session.ID, name string) error {
	store, err := c.Sessions.Role(role)
	if err != nil {
		return err
	}
	if err := store.SetIdentity(ctx, id, name); err != nil {
		return err
	}
	c.logger.Info("role login", slog.String("role", string(role)), slog.String("id", id.String()))
	return nil
}

// Logout clears one role. The other roles stay signed in.
func (c *Context) Logout(ctx context.Context, role session.Role) error {
	store, err := c.Sessions.Role(role)
	if err != nil {
		return err
	}
	if err := store.Clear(ctx); err != nil {
		return err
	}
	c.logger.Info("role logout", slog.String("role", string(role)))
	return nil
}

// Reset signs every role out, clears the worker and closes every prompt.
func (c *Context) Reset(ctx context.Context) error {
	c.Modal.Reset()
	if err := c.Sessions.ResetAll(ctx); err != nil {
		return fmt.Errorf("console: reset sessions: %w", err)
	}
	return nil
}
