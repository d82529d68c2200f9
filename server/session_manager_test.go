package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionmesh/controller/server/store/inmemory"
	t "github.com/onionmesh/controller/server/store/types"
)

func newTestSessionManager(t2 *testing.T) (*SessionManager, func()) {
	store := inmemory.NewSessionStore()
	return NewSessionManager(store), store.Close
}

func TestSessionManager_SetSession_MintsAccessKey(t2 *testing.T) {
	manager, closer := newTestSessionManager(t2)
	defer closer()

	ctx := context.Background()
	accessKey, err := manager.SetSession(ctx, t.KindClient, "uid-1", "1.2.3.4:9000", t.Endpoint{})
	require.NoError(t2, err)
	require.NotEmpty(t2, accessKey)

	session, found, err := manager.GetSession(ctx, accessKey)
	require.NoError(t2, err)
	require.True(t2, found)
	assert.Equal(t2, "uid-1", session.Uid)
}

func TestSessionManager_RemoveSession(t2 *testing.T) {
	manager, closer := newTestSessionManager(t2)
	defer closer()

	ctx := context.Background()
	accessKey, err := manager.SetSession(ctx, t.KindClient, "uid-1", "peer", t.Endpoint{})
	require.NoError(t2, err)

	require.NoError(t2, manager.RemoveSession(ctx, accessKey))

	_, found, err := manager.GetSession(ctx, accessKey)
	require.NoError(t2, err)
	assert.False(t2, found)
}

func TestSessionManager_Counts(t2 *testing.T) {
	manager, closer := newTestSessionManager(t2)
	defer closer()

	ctx := context.Background()
	_, err := manager.SetSession(ctx, t.KindProxy, "proxy-1", "peer", t.Endpoint{})
	require.NoError(t2, err)

	count, err := manager.CountProxies(ctx)
	require.NoError(t2, err)
	assert.Equal(t2, 1, count)
}
