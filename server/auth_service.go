package main

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/onionmesh/controller/pbx"
	t "github.com/onionmesh/controller/server/store/types"
)

// AuthServer implements pbx.AuthServiceServer: login, keep-alive ping and
// logout for Controllers, Proxies and Clients.
type AuthServer struct {
	pbx.UnimplementedAuthServiceServer
	sessions *SessionManager
	members  *MembershipManager
}

// NewAuthServer wires an AuthServer against the given managers.
func NewAuthServer(sessions *SessionManager, members *MembershipManager) *AuthServer {
	return &AuthServer{sessions: sessions, members: members}
}

func componentKindFromProto(kind pbx.ComponentType) (t.ComponentKind, bool) {
	switch kind {
	case pbx.ComponentType_CONTROLLER:
		return t.KindController, true
	case pbx.ComponentType_PROXY:
		return t.KindProxy, true
	case pbx.ComponentType_CLIENT:
		return t.KindClient, true
	default:
		return 0, false
	}
}

func peerAddressFrom(ctx context.Context) (string, bool) {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "", false
	}
	return p.Addr.String(), true
}

// Login implements pbx.AuthServiceServer.
func (s *AuthServer) Login(ctx context.Context, req *pbx.LoginRequest) (*pbx.LoginResponse, error) {
	peerAddr, ok := peerAddressFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "Could not get client IP address")
	}

	if req.Uid == "" || req.Pwd == "" {
		log.Printf("auth: login rejected, uid or pwd empty")
		return nil, status.Error(codes.InvalidArgument, "UID and PWD cannot be empty")
	}

	kind, ok := componentKindFromProto(req.ComponentType)
	if !ok || kind == t.KindController {
		return nil, status.Error(codes.InvalidArgument, "Invalid component type")
	}

	authenticated, err := s.members.Authenticate(ctx, req.Uid, req.Pwd)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !authenticated {
		return nil, status.Error(codes.Unauthenticated, "Invalid credentials")
	}

	endpoint := t.Endpoint{IPAddress: req.OnIp, Port: req.OnPort, PublicKey: req.PublicKey, DomainName: req.DomainName}
	accessKey, err := s.sessions.SetSession(ctx, kind, req.Uid, peerAddr, endpoint)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	log.Printf("auth: accepted connection from %s: %s", kind, accessKey)
	return &pbx.LoginResponse{AccessKey: accessKey, Message: "Login successful"}, nil
}

// Ping implements pbx.AuthServiceServer. It renews the caller's session and
// confirms its peer address still matches the one recorded at login.
func (s *AuthServer) Ping(ctx context.Context, req *pbx.PingRequest) (*pbx.PingResponse, error) {
	peerAddr, ok := peerAddressFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "Could not get client IP address")
	}

	if err := checkSession(ctx, s.sessions, req.AccessKey); err != nil {
		return nil, err
	}
	session, _, err := s.sessions.GetSession(ctx, req.AccessKey)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if session.PeerAddr != peerAddr {
		log.Printf("auth: session IP mismatch: expected %s, got %s", session.PeerAddr, peerAddr)
		return nil, status.Error(codes.Unauthenticated, invalidConnection)
	}

	return &pbx.PingResponse{Status: "PONG", Timestamp: time.Now().UnixMicro()}, nil
}

// Logout implements pbx.AuthServiceServer.
func (s *AuthServer) Logout(ctx context.Context, req *pbx.LogoutRequest) (*pbx.LogoutResponse, error) {
	if err := checkSession(ctx, s.sessions, req.AccessKey); err != nil {
		return nil, err
	}
	if err := s.sessions.RemoveSession(ctx, req.AccessKey); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	log.Printf("auth: session dropped: %s", req.AccessKey)
	return &pbx.LogoutResponse{}, nil
}
