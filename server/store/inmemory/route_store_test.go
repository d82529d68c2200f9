package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	t "github.com/onionmesh/controller/server/store/types"
)

func TestRouteStore_SetConversation_RejectsDuplicateID(t2 *testing.T) {
	store := NewRouteStore()
	defer store.Close()

	ctx := context.Background()
	conversation := t.Conversation{ID: "conv-1", FromUid: "a", ToUid: "b"}
	stored, err := store.SetConversation(ctx, conversation)
	require.NoError(t2, err)
	assert.True(t2, stored)

	stored, err = store.SetConversation(ctx, conversation)
	require.NoError(t2, err)
	assert.False(t2, stored)
}

func TestRouteStore_SetRoute_AppendsToConversation(t2 *testing.T) {
	store := NewRouteStore()
	defer store.Close()

	ctx := context.Background()
	conversation := t.Conversation{ID: "conv-1", FromUid: "a", ToUid: "b"}
	stored, err := store.SetConversation(ctx, conversation)
	require.NoError(t2, err)
	require.True(t2, stored)

	route := t.Route{Nonce: "nonce-1", Endpoint: t.Endpoint{IPAddress: "10.0.0.1", Port: 9000}}
	stored, err = store.SetRoute(ctx, "conv-1", route)
	require.NoError(t2, err)
	require.True(t2, stored)

	got, found, err := store.GetConversation(ctx, "conv-1")
	require.NoError(t2, err)
	require.True(t2, found)
	require.Len(t2, got.Routes, 1)
	assert.Equal(t2, "nonce-1", got.Routes[0].Nonce)
}

func TestRouteStore_SetRoute_UnknownConversation(t2 *testing.T) {
	store := NewRouteStore()
	defer store.Close()

	stored, err := store.SetRoute(context.Background(), "missing", t.Route{Nonce: "nonce-1"})
	require.NoError(t2, err)
	assert.False(t2, stored)
}

func TestRouteStore_GetRoute_IsGlobalByNonce(t2 *testing.T) {
	store := NewRouteStore()
	defer store.Close()

	ctx := context.Background()
	require.True(t2, mustStore(t2, store.SetConversation(ctx, t.Conversation{ID: "conv-1"})))
	require.True(t2, mustStore(t2, store.SetRoute(ctx, "conv-1", t.Route{Nonce: "nonce-1"})))

	// GetRoute/RemoveRoute ignore the conversation id argument by design.
	route, found, err := store.GetRoute(ctx, "some-other-conversation", "nonce-1")
	require.NoError(t2, err)
	require.True(t2, found)
	assert.Equal(t2, "nonce-1", route.Nonce)
}

func TestRouteStore_RedeemOnceSemantics(t2 *testing.T) {
	store := NewRouteStore()
	defer store.Close()

	ctx := context.Background()
	require.True(t2, mustStore(t2, store.SetConversation(ctx, t.Conversation{ID: "conv-1"})))
	require.True(t2, mustStore(t2, store.SetRoute(ctx, "conv-1", t.Route{Nonce: "nonce-1"})))

	require.NoError(t2, store.RemoveRoute(ctx, "conv-1", "nonce-1"))

	_, found, err := store.GetRoute(ctx, "conv-1", "nonce-1")
	require.NoError(t2, err)
	assert.False(t2, found)
}

func mustStore(t2 *testing.T, stored bool, err error) bool {
	t2.Helper()
	require.NoError(t2, err)
	return stored
}
