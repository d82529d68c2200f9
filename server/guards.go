package main

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Exact guard failure messages, kept stable since clients may match on them.
const (
	invalidAccessKey    = "Invalid access key"
	invalidConnection   = "Invalid connection"
	invalidConversation = "Invalid conversation"
)

// checkSession resolves accessKey to a live session or fails with
// Unauthenticated.
func checkSession(ctx context.Context, sessions *SessionManager, accessKey string) error {
	_, found, err := sessions.GetSession(ctx, accessKey)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	if !found {
		return status.Error(codes.Unauthenticated, invalidAccessKey)
	}
	return nil
}

// checkConversation resolves conversationID to a live conversation or fails
// with NotFound.
func checkConversation(ctx context.Context, routes *RouteManager, conversationID string) error {
	_, found, err := routes.GetConversation(ctx, conversationID)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	if !found {
		return status.Error(codes.NotFound, invalidConversation)
	}
	return nil
}
