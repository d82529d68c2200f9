package main

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/onionmesh/controller/pbx"
)

// InfoServer implements pbx.InfoServiceServer: a snapshot of this
// Controller's connected principals.
type InfoServer struct {
	pbx.UnimplementedInfoServiceServer
	sessions *SessionManager
	version  string
}

// NewInfoServer wires an InfoServer against the given SessionManager.
func NewInfoServer(sessions *SessionManager, version string) *InfoServer {
	return &InfoServer{sessions: sessions, version: version}
}

// Status implements pbx.InfoServiceServer.
func (s *InfoServer) Status(ctx context.Context, req *pbx.StatusRequest) (*pbx.StatusResponse, error) {
	if err := checkSession(ctx, s.sessions, req.AccessKey); err != nil {
		return nil, err
	}

	proxies, err := s.sessions.CountProxies(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	clients, err := s.sessions.CountClients(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	controllers, err := s.sessions.CountControllers(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pbx.StatusResponse{
		Version:              s.version,
		ConnectedClients:     uint32(clients),
		ConnectedProxies:     uint32(proxies),
		ConnectedControllers: uint32(controllers),
	}, nil
}
