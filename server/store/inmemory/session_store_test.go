package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	t "github.com/onionmesh/controller/server/store/types"
)

func TestSessionStore_SetGetSession(t2 *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	ctx := context.Background()
	session := t.Session{AccessKey: "ak-1", Uid: "uid-1", Kind: t.KindClient}
	require.NoError(t2, store.SetSession(ctx, session))

	got, found, err := store.GetSession(ctx, "ak-1")
	require.NoError(t2, err)
	require.True(t2, found)
	assert.Equal(t2, "uid-1", got.Uid)
}

func TestSessionStore_GetSession_Missing(t2 *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	_, found, err := store.GetSession(context.Background(), "nope")
	require.NoError(t2, err)
	assert.False(t2, found)
}

func TestSessionStore_GetProxies_ExcludesCaller(t2 *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t2, store.SetSession(ctx, t.Session{AccessKey: "p1", Uid: "proxy-1", Kind: t.KindProxy}))
	require.NoError(t2, store.SetSession(ctx, t.Session{AccessKey: "p2", Uid: "proxy-2", Kind: t.KindProxy}))

	proxies, err := store.GetProxies(ctx, "p1")
	require.NoError(t2, err)
	require.Len(t2, proxies, 1)
	assert.Equal(t2, "proxy-2", proxies[0].Uid)
}

func TestSessionStore_GetClient(t2 *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t2, store.SetSession(ctx, t.Session{AccessKey: "c1", Uid: "client-1", Kind: t.KindClient}))

	client, found, err := store.GetClient(ctx, "client-1")
	require.NoError(t2, err)
	require.True(t2, found)
	assert.Equal(t2, "c1", client.AccessKey)

	_, found, err = store.GetClient(ctx, "unknown")
	require.NoError(t2, err)
	assert.False(t2, found)
}

func TestSessionStore_RemoveSession(t2 *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t2, store.SetSession(ctx, t.Session{AccessKey: "c1", Uid: "client-1", Kind: t.KindClient}))
	require.NoError(t2, store.RemoveSession(ctx, "c1"))

	_, found, err := store.GetSession(ctx, "c1")
	require.NoError(t2, err)
	assert.False(t2, found)

	_, found, err = store.GetClient(ctx, "client-1")
	require.NoError(t2, err)
	assert.False(t2, found)
}

func TestSessionStore_Counts(t2 *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t2, store.SetSession(ctx, t.Session{AccessKey: "ctrl1", Uid: "ctrl-1", Kind: t.KindController}))
	require.NoError(t2, store.SetSession(ctx, t.Session{AccessKey: "p1", Uid: "proxy-1", Kind: t.KindProxy}))
	require.NoError(t2, store.SetSession(ctx, t.Session{AccessKey: "c1", Uid: "client-1", Kind: t.KindClient}))

	controllers, err := store.CountControllers(ctx)
	require.NoError(t2, err)
	assert.Equal(t2, 1, controllers)

	proxies, err := store.CountProxies(ctx)
	require.NoError(t2, err)
	assert.Equal(t2, 1, proxies)

	clients, err := store.CountClients(ctx)
	require.NoError(t2, err)
	assert.Equal(t2, 1, clients)
}
