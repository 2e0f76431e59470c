package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/odyssey-erp/floorconsole/internal/modal"
	"github.com/odyssey-erp/floorconsole/internal/session"
)

func newContext(t *testing.T, persister session.Persister) *Context {
	t.Helper()
	c, err := New(context.Background(), Options{Persister: persister})
	require.NoError(t, err)
	return c
}

func TestLogoutClearsOneRole(t *testing.T) {
	ctx := context.Background()
	c := newContext(t, nil)

	require.NoError(t, c.Login(ctx, session.RoleSupervisor, session.IntID(7), "Alice"))
	require.NoError(t, c.Login(ctx, session.RoleCoordinator, session.IntID(8), "Budi"))
	require.NoError(t, c.Logout(ctx, session.RoleSupervisor))

	supervisor, err := c.Sessions.Role(session.RoleSupervisor)
	require.NoError(t, err)
	require.False(t, supervisor.Identity().Authenticated)

	coordinator, err := c.Sessions.Role(session.RoleCoordinator)
	require.NoError(t, err)
	require.True(t, coordinator.Identity().Authenticated)
	require.Equal(t, "Budi", coordinator.Identity().Name)
}

func TestLogoutUnknownRole(t *testing.T) {
	c := newContext(t, nil)
	require.ErrorIs(t, c.Logout(context.Background(), session.Role("operator")), session.ErrUnknownRole)
}

func TestResetSettlesPromptsAndSessions(t *testing.T) {
	ctx := context.Background()
	c := newContext(t, nil)
	require.NoError(t, c.Login(ctx, session.RoleSuperadmin, session.StringID("root"), "Root"))
	first := c.Modal.ShowInfo("satu")
	second := c.Modal.ShowConfirm("dua")

	require.NoError(t, c.Reset(ctx))

	for _, p := range []*modal.Pending{first, second} {
		outcome, ok := p.Outcome()
		require.True(t, ok)
		require.Equal(t, modal.OutcomeClose, outcome)
	}
	require.False(t, c.Modal.State().IsOpen)
	for _, snap := range c.Sessions.Snapshots() {
		require.False(t, snap.Identity.Authenticated)
	}
}

func TestSessionsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	persister := session.NewRedisPersister(client, "test", 0)

	first := newContext(t, persister)
	require.NoError(t, first.Login(ctx, session.RoleAdminProduksi, session.IntID(3), "Citra"))

	second := newContext(t, persister)
	store, err := second.Sessions.Role(session.RoleAdminProduksi)
	require.NoError(t, err)
	require.Equal(t, "Citra", store.Identity().Name)
	require.True(t, store.Identity().Authenticated)
}

func TestClientRequiresAPI(t *testing.T) {
	_, err := newContext(t, nil).Client()
	require.ErrorIs(t, err, ErrNoAPI)
}

func TestPresenterConfirm(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "ya", input: "Ya\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line closes", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
		{name: "unknown answer asks again", input: "maybe\ny\n", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)
			broker := modal.NewBroker()
			out := new(bytes.Buffer)
			presenter := NewTerminalPresenter(broker, strings.NewReader(tc.input), out)

			ok, err := presenter.Confirm(context.Background(), "Hapus worker 4?")
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
			require.False(t, broker.State().IsOpen)
			require.Contains(t, out.String(), "Konfirmasi")
			require.Contains(t, out.String(), "Hapus worker 4?")
			require.Contains(t, out.String(), "[n] Tidak")
		})
	}
}

func TestPresenterDrainsQueueInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	broker := modal.NewBroker()
	notice := broker.ShowSuccess("Data tersimpan")
	out := new(bytes.Buffer)
	presenter := NewTerminalPresenter(broker, strings.NewReader("\ny\n"), out)

	ok, err := presenter.Confirm(context.Background(), "Lanjut?")
	require.NoError(t, err)
	require.True(t, ok)

	outcome, settled := notice.Outcome()
	require.True(t, settled)
	require.Equal(t, modal.OutcomeConfirm, outcome)
	require.Less(t, strings.Index(out.String(), "Data tersimpan"), strings.Index(out.String(), "Lanjut?"))
}

func TestPresenterStopsOnCancelledContext(t *testing.T) {
	broker := modal.NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	presenter := NewTerminalPresenter(broker, strings.NewReader("y\n"), new(bytes.Buffer))
	ok, err := presenter.Confirm(ctx, "Hapus?")
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, ok)
	require.False(t, broker.State().IsOpen)
}
