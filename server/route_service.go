package main

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/onionmesh/controller/pbx"
	t "github.com/onionmesh/controller/server/store/types"
)

// controllerUID is the implicit target of a Conversation whose caller did
// not name one: messages addressed to the Controller itself.
const controllerUID = "controller_uid"

// RouteServer implements pbx.RouteServiceServer: conversation lifecycle and
// hop-by-hop route negotiation.
type RouteServer struct {
	pbx.UnimplementedRouteServiceServer
	sessions *SessionManager
	routes   *RouteManager
}

// NewRouteServer wires a RouteServer against the given managers.
func NewRouteServer(sessions *SessionManager, routes *RouteManager) *RouteServer {
	return &RouteServer{sessions: sessions, routes: routes}
}

// Initialize implements pbx.RouteServiceServer.
func (s *RouteServer) Initialize(ctx context.Context, req *pbx.InitRequest) (*pbx.InitResponse, error) {
	if err := checkSession(ctx, s.sessions, req.AccessKey); err != nil {
		return nil, err
	}
	session, _, err := s.sessions.GetSession(ctx, req.AccessKey)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	to := req.To
	if to == "" {
		to = controllerUID
	}

	conversationID, ok, err := s.routes.Initialize(ctx, session.Uid, to)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !ok {
		return nil, status.Error(codes.Internal, "Failed to initialize conversation")
	}

	return &pbx.InitResponse{ConversationId: conversationID}, nil
}

// Route implements pbx.RouteServiceServer. It either hands back the
// terminal Client's endpoint, if the Conversation has reached its final
// hop, or the next Proxy chosen by the Conversation's routing strategy.
func (s *RouteServer) Route(ctx context.Context, req *pbx.RouteRequest) (*pbx.RouteResponse, error) {
	if err := checkSession(ctx, s.sessions, req.AccessKey); err != nil {
		return nil, err
	}
	if err := checkConversation(ctx, s.routes, req.ConversationId); err != nil {
		return nil, err
	}

	conversation, _, err := s.routes.GetConversation(ctx, req.ConversationId)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	final, err := s.routes.CheckForFinalRoute(*conversation)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	if final {
		client, found, err := s.sessions.GetClient(ctx, conversation.ToUid)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		if !found {
			return nil, status.Error(codes.NotFound, "Reached final route, no more routes available as no client found")
		}
		return s.handleRoute(ctx, req.ConversationId, client.Endpoint, true)
	}

	proxies, err := s.sessions.GetProxies(ctx, req.AccessKey)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if len(proxies) == 0 {
		return nil, status.Error(codes.NotFound, "No proxies found")
	}

	proxy, ok, err := s.routes.GetNextRoute(*conversation, proxies)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !ok {
		return nil, status.Error(codes.NotFound, "Next route wasn't found, no more routes available")
	}

	return s.handleRoute(ctx, req.ConversationId, proxy.Endpoint, false)
}

// handleRoute mints a nonce for endpoint under conversationID and builds the
// wire response for it.
func (s *RouteServer) handleRoute(ctx context.Context, conversationID string, endpoint t.Endpoint, endRoute bool) (*pbx.RouteResponse, error) {
	nonce, ok, err := s.routes.StoreRoute(ctx, conversationID, endpoint, endRoute)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !ok {
		return nil, status.Error(codes.Internal, "Failed to store route")
	}

	return &pbx.RouteResponse{
		IpAddress:  endpoint.IPAddress,
		PortNumber: endpoint.Port,
		Nonce:      nonce,
		EndRoute:   endRoute,
		PublicKey:  endpoint.PublicKey,
		DomainName: endpoint.DomainName,
	}, nil
}

// Redeem implements pbx.RouteServiceServer.
func (s *RouteServer) Redeem(ctx context.Context, req *pbx.RedeemRequest) (*pbx.RedeemResponse, error) {
	if err := checkSession(ctx, s.sessions, req.AccessKey); err != nil {
		return nil, err
	}
	if err := checkConversation(ctx, s.routes, req.ConversationId); err != nil {
		return nil, err
	}

	route, ok, err := s.routes.RedeemRoute(ctx, req.ConversationId, req.Nonce)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !ok {
		return nil, status.Error(codes.Internal, "Failed to redeem route")
	}

	response := &pbx.RedeemResponse{}
	if route.EndRoute {
		conversation, _, err := s.routes.GetConversation(ctx, req.ConversationId)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		response.SourceInfo = &pbx.SourceInfo{From: conversation.FromUid}
		if err := s.routes.Finalize(ctx, req.ConversationId); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
	}

	return response, nil
}
