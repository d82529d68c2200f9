package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/onionmesh/controller/pbx"
	"github.com/onionmesh/controller/server/store/inmemory"
	t "github.com/onionmesh/controller/server/store/types"
)

func newTestRouteServer(t2 *testing.T) (*RouteServer, *SessionManager, func()) {
	sessionStore := inmemory.NewSessionStore()
	routeStore := inmemory.NewRouteStore()
	sessions := NewSessionManager(sessionStore)
	routes := NewRouteManager(routeStore)
	return NewRouteServer(sessions, routes), sessions, func() {
		sessionStore.Close()
		routeStore.Close()
	}
}

func TestRouteServer_Initialize_DefaultsToController(t2 *testing.T) {
	server, sessions, closer := newTestRouteServer(t2)
	defer closer()

	ctx := context.Background()
	accessKey, err := sessions.SetSession(ctx, t.KindClient, "uid-1", "peer", t.Endpoint{})
	require.NoError(t2, err)

	resp, err := server.Initialize(ctx, &pbx.InitRequest{AccessKey: accessKey})
	require.NoError(t2, err)
	require.NotEmpty(t2, resp.ConversationId)

	conversation, found, err := server.routes.GetConversation(ctx, resp.ConversationId)
	require.NoError(t2, err)
	require.True(t2, found)
	assert.Equal(t2, controllerUID, conversation.ToUid)
}

func TestRouteServer_Route_NoProxies(t2 *testing.T) {
	server, sessions, closer := newTestRouteServer(t2)
	defer closer()

	ctx := context.Background()
	accessKey, err := sessions.SetSession(ctx, t.KindClient, "uid-1", "peer", t.Endpoint{})
	require.NoError(t2, err)

	initResp, err := server.Initialize(ctx, &pbx.InitRequest{AccessKey: accessKey})
	require.NoError(t2, err)

	_, err = server.Route(ctx, &pbx.RouteRequest{AccessKey: accessKey, ConversationId: initResp.ConversationId})
	assertGRPCError(t2, err, codes.NotFound, "No proxies found")
}

func TestRouteServer_Route_ReachesClientOnFinalRoute(t2 *testing.T) {
	sessionStore := inmemory.NewSessionStore()
	routeStore := inmemory.NewRouteStore()
	defer sessionStore.Close()
	defer routeStore.Close()

	sessions := NewSessionManager(sessionStore)
	routes := NewRouteManager(routeStore)
	server := NewRouteServer(sessions, routes)

	ctx := context.Background()
	fromKey, err := sessions.SetSession(ctx, t.KindClient, "from-uid", "peer", t.Endpoint{})
	require.NoError(t2, err)
	_, err = sessions.SetSession(ctx, t.KindClient, "to-uid", "peer2", t.Endpoint{IPAddress: "10.0.0.9", Port: 7000})
	require.NoError(t2, err)

	// Build a conversation directly under DirectStrategy with its one
	// expected route already recorded, so CheckForFinalRoute is true and
	// Route must resolve straight to the addressed Client's endpoint.
	stored, err := routeStore.SetConversation(ctx, t.Conversation{
		ID:         "conv-1",
		FromUid:    "from-uid",
		ToUid:      "to-uid",
		StrategyID: DirectStrategy{}.ID(),
		Routes:     []t.Route{{Nonce: "n1"}},
	})
	require.NoError(t2, err)
	require.True(t2, stored)

	routeResp, err := server.Route(ctx, &pbx.RouteRequest{AccessKey: fromKey, ConversationId: "conv-1"})
	require.NoError(t2, err)
	assert.Equal(t2, "10.0.0.9", routeResp.IpAddress)
	assert.Equal(t2, uint32(7000), routeResp.PortNumber)
	assert.True(t2, routeResp.EndRoute)
}

func TestRouteServer_Redeem_UnknownConversation(t2 *testing.T) {
	server, sessions, closer := newTestRouteServer(t2)
	defer closer()

	ctx := context.Background()
	accessKey, err := sessions.SetSession(ctx, t.KindClient, "uid-1", "peer", t.Endpoint{})
	require.NoError(t2, err)

	_, err = server.Redeem(ctx, &pbx.RedeemRequest{AccessKey: accessKey, ConversationId: "missing", Nonce: "n"})
	assertGRPCError(t2, err, codes.NotFound, invalidConversation)
}
