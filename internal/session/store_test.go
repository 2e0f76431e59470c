package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/floorconsole/internal/session"
)

func TestSupervisorSetAndClear(t *testing.T) {
	ctx := context.Background()
	registry := session.NewRegistry(nil)
	store, err := registry.Role(session.RoleSupervisor)
	require.NoError(t, err)

	require.NoError(t, store.SetIdentity(ctx, session.IntID(7), "Alice"))
	data, err := json.Marshal(store.Snapshot())
	require.NoError(t, err)
	require.JSONEq(t, `{"supervisorId":7,"supervisorName":"Alice","isAuthenticated":true}`, string(data))

	require.NoError(t, store.Clear(ctx))
	data, err = json.Marshal(store.Snapshot())
	require.NoError(t, err)
	require.JSONEq(t, `{"supervisorId":null,"supervisorName":"","isAuthenticated":false}`, string(data))
}

func TestRolesAreIndependent(t *testing.T) {
	ctx := context.Background()
	registry := session.NewRegistry(nil)
	supervisor, _ := registry.Role(session.RoleSupervisor)
	coordinator, _ := registry.Role(session.RoleCoordinator)

	require.NoError(t, supervisor.SetIdentity(ctx, session.IntID(1), "Budi"))
	require.NoError(t, coordinator.SetIdentity(ctx, session.StringID("K-02"), "Sari"))
	require.NoError(t, registry.Worker().Update(ctx, func(w *session.Worker) {
		w.WorkerID = session.IntID(33)
		w.WorkerName = "Dewi"
	}))

	require.NoError(t, supervisor.Clear(ctx))
	require.False(t, supervisor.Identity().Authenticated)
	require.True(t, coordinator.Identity().Authenticated)
	require.Equal(t, "K-02", coordinator.Identity().ID.String())
	require.Equal(t, "Dewi", registry.Worker().Get().WorkerName)

	require.NoError(t, registry.ResetAll(ctx))
	for _, snap := range registry.Snapshots() {
		require.False(t, snap.Identity.Authenticated, snap.Role)
	}
	require.Equal(t, session.Worker{}, registry.Worker().Get())
}

func TestSetIdentityRejectsIncompleteIdentity(t *testing.T) {
	registry := session.NewRegistry(nil)
	store, _ := registry.Role(session.RoleSuperadmin)

	err := store.SetIdentity(context.Background(), session.ID{}, "Root")
	require.ErrorIs(t, err, session.ErrInvalidIdentity)
	require.False(t, store.Identity().Authenticated)

	require.NoError(t, store.SetIdentity(context.Background(), session.IntID(1), ""))
	require.True(t, store.Identity().Authenticated)
	require.Empty(t, store.Identity().Name)
}

type failingPersister struct {
	session.MemoryPersister
	err error
}

func (p failingPersister) Save(context.Context, string, []byte) error { return p.err }

func (p failingPersister) Delete(context.Context, string) error { return p.err }

func TestFailedPersistKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	persister := &switchablePersister{}
	registry := session.NewRegistry(persister)
	store, err := registry.Role(session.RoleSupervisor)
	require.NoError(t, err)
	require.NoError(t, store.SetIdentity(ctx, session.IntID(7), "Alice"))
	require.NoError(t, registry.Worker().Update(ctx, func(w *session.Worker) { w.WorkerName = "Dewi" }))

	persister.failing = failingPersister{err: errors.New("redis down")}

	err = store.SetIdentity(ctx, session.IntID(8), "Budi")
	require.ErrorContains(t, err, "redis down")
	require.Equal(t, "Alice", store.Identity().Name)

	require.Error(t, store.Clear(ctx))
	require.True(t, store.Identity().Authenticated)

	require.Error(t, registry.Worker().Update(ctx, func(w *session.Worker) { w.WorkerName = "Eko" }))
	require.Equal(t, "Dewi", registry.Worker().Get().WorkerName)
	require.Error(t, registry.Worker().Clear(ctx))
	require.Equal(t, "Dewi", registry.Worker().Get().WorkerName)
}

func TestLoginFailsWhenPersisterDown(t *testing.T) {
	registry := session.NewRegistry(failingPersister{err: errors.New("redis down")})
	store, err := registry.Role(session.RoleSupervisor)
	require.NoError(t, err)

	require.Error(t, store.SetIdentity(context.Background(), session.IntID(7), "Alice"))
	require.False(t, store.Identity().Authenticated)
	require.True(t, store.Identity().ID.IsZero())
}

// switchablePersister succeeds until failing is set.
type switchablePersister struct {
	session.MemoryPersister
	failing session.Persister
}

func (p *switchablePersister) Save(ctx context.Context, key string, data []byte) error {
	if p.failing != nil {
		return p.failing.Save(ctx, key, data)
	}
	return nil
}

func (p *switchablePersister) Delete(ctx context.Context, key string) error {
	if p.failing != nil {
		return p.failing.Delete(ctx, key)
	}
	return nil
}

func TestParseRole(t *testing.T) {
	role, err := session.ParseRole("Koordinator")
	require.NoError(t, err)
	require.Equal(t, session.RoleCoordinator, role)

	role, err = session.ParseRole("master-data")
	require.NoError(t, err)
	require.Equal(t, session.RoleSuperadmin, role)

	_, err = session.ParseRole("operator")
	require.ErrorIs(t, err, session.ErrUnknownRole)
}

func TestIDJSON(t *testing.T) {
	var decoded struct {
		A session.ID `json:"a"`
		B session.ID `json:"b"`
		C session.ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"W-9","c":null}`), &decoded))
	require.Equal(t, session.IntID(12), decoded.A)
	require.Equal(t, "W-9", decoded.B.String())
	require.True(t, decoded.C.IsZero())
	require.Equal(t, session.IntID(5), session.ParseID("5"))
	require.Equal(t, session.StringID("abc"), session.ParseID("abc"))
	require.Equal(t, session.StringID("007"), session.ParseID("007"))
	require.Equal(t, "007", session.ParseID("007").String())
	require.Equal(t, session.StringID("+5"), session.ParseID("+5"))

	var bad session.ID
	require.Error(t, json.Unmarshal([]byte(`true`), &bad))
}

func TestRedisPersisterSharesLogin(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	persister := session.NewRedisPersister(client, "line-1", time.Hour)
	first := session.NewRegistry(persister)
	admin, _ := first.Role(session.RoleAdminProduksi)
	require.NoError(t, admin.SetIdentity(ctx, session.IntID(4), "Rina"))
	require.NoError(t, first.Worker().Update(ctx, func(w *session.Worker) {
		w.PositionCode = "SEW"
	}))

	require.True(t, mr.Exists("floor:session:line-1:role:admin-produksi"))
	require.Equal(t, time.Hour, mr.TTL("floor:session:line-1:role:admin-produksi"))

	second := session.NewRegistry(persister)
	require.NoError(t, second.Load(ctx))
	restored, _ := second.Role(session.RoleAdminProduksi)
	require.Equal(t, admin.Identity(), restored.Identity())
	require.Equal(t, "SEW", second.Worker().Get().PositionCode)

	require.NoError(t, restored.Clear(ctx))
	require.False(t, mr.Exists("floor:session:line-1:role:admin-produksi"))
}
