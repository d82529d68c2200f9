package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/onionmesh/controller/server/store/inmemory"
	t "github.com/onionmesh/controller/server/store/types"
)

func TestCheckSession_Unauthenticated(t2 *testing.T) {
	manager, closer := newTestSessionManager(t2)
	defer closer()

	err := checkSession(context.Background(), manager, "missing")
	assertGRPCError(t2, err, codes.Unauthenticated, invalidAccessKey)
}

func TestCheckSession_Found(t2 *testing.T) {
	manager, closer := newTestSessionManager(t2)
	defer closer()

	accessKey, err := manager.SetSession(context.Background(), t.KindClient, "uid-1", "peer", t.Endpoint{})
	assert.NoError(t2, err)

	assert.NoError(t2, checkSession(context.Background(), manager, accessKey))
}

func TestCheckConversation_NotFound(t2 *testing.T) {
	store := inmemory.NewRouteStore()
	defer store.Close()
	manager := NewRouteManager(store)

	err := checkConversation(context.Background(), manager, "missing")
	assertGRPCError(t2, err, codes.NotFound, invalidConversation)
}

func TestCheckConversation_Found(t2 *testing.T) {
	store := inmemory.NewRouteStore()
	defer store.Close()
	manager := NewRouteManager(store)

	ctx := context.Background()
	id, ok, err := manager.Initialize(ctx, "a", "b")
	assert.NoError(t2, err)
	assert.True(t2, ok)

	assert.NoError(t2, checkConversation(ctx, manager, id))
}

func assertGRPCError(t2 *testing.T, err error, code codes.Code, message string) {
	t2.Helper()
	s, ok := status.FromError(err)
	if !ok {
		t2.Fatalf("expected a gRPC status error, got %v", err)
	}
	assert.Equal(t2, code, s.Code())
	assert.Equal(t2, message, s.Message())
}
