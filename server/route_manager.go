package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/onionmesh/controller/server/store/adapter"
	t "github.com/onionmesh/controller/server/store/types"
)

// RouteManager owns the lifecycle of Conversations and the Routes minted
// within them, delegating storage to a pluggable adapter.RouteStore and
// hop selection to a registered RouteStrategy.
type RouteManager struct {
	store      adapter.RouteStore
	strategies *routeStrategyRegistry
}

// NewRouteManager wraps a RouteStore backend as a RouteManager.
func NewRouteManager(store adapter.RouteStore) *RouteManager {
	return &RouteManager{store: store, strategies: newRouteStrategyRegistry()}
}

// Initialize starts a new Conversation from "from" to "to" and returns its
// id.
func (m *RouteManager) Initialize(ctx context.Context, from, to string) (string, bool, error) {
	conversation := t.Conversation{
		ID:         newConversationID(),
		FromUid:    from,
		ToUid:      to,
		StrategyID: m.strategies.defaultRoutingID(from, to),
	}
	stored, err := m.store.SetConversation(ctx, conversation)
	if err != nil {
		return "", false, err
	}
	if !stored {
		return "", false, nil
	}
	return conversation.ID, true, nil
}

// Finalize removes a Conversation once its final route has been redeemed.
func (m *RouteManager) Finalize(ctx context.Context, conversationID string) error {
	return m.store.RemoveConversation(ctx, conversationID)
}

// GetConversation returns a Conversation by id, if it still exists.
func (m *RouteManager) GetConversation(ctx context.Context, conversationID string) (*t.Conversation, bool, error) {
	return m.store.GetConversation(ctx, conversationID)
}

// StoreRoute mints a nonce for the given endpoint under a Conversation and
// stores it, returning the nonce.
func (m *RouteManager) StoreRoute(ctx context.Context, conversationID string, endpoint t.Endpoint, endRoute bool) (string, bool, error) {
	route := t.Route{
		Nonce:    newNonce(),
		Endpoint: endpoint,
		EndRoute: endRoute,
	}
	stored, err := m.store.SetRoute(ctx, conversationID, route)
	if err != nil {
		return "", false, err
	}
	if !stored {
		return "", false, nil
	}
	return route.Nonce, true, nil
}

// RedeemRoute looks up a Route by nonce and, on a hit, removes it so it
// cannot be redeemed again.
func (m *RouteManager) RedeemRoute(ctx context.Context, conversationID, nonce string) (*t.Route, bool, error) {
	route, found, err := m.store.GetRoute(ctx, conversationID, nonce)
	if err != nil || !found {
		return nil, false, err
	}
	if err := m.store.RemoveRoute(ctx, conversationID, nonce); err != nil {
		return nil, false, err
	}
	return route, true, nil
}

// GetNextRoute asks the Conversation's strategy to pick the next hop among
// the given candidate proxies.
func (m *RouteManager) GetNextRoute(conversation t.Conversation, proxies []t.Session) (t.Session, bool, error) {
	strategy, ok := m.strategies.strategyFor(conversation.StrategyID)
	if !ok {
		return t.Session{}, false, errUnknownRoutingStrategy{id: conversation.StrategyID}
	}
	session, ok := strategy.NextRoute(conversation, proxies)
	return session, ok, nil
}

// CheckForFinalRoute reports whether the Conversation's strategy considers
// its route list complete.
func (m *RouteManager) CheckForFinalRoute(conversation t.Conversation) (bool, error) {
	strategy, ok := m.strategies.strategyFor(conversation.StrategyID)
	if !ok {
		return false, errUnknownRoutingStrategy{id: conversation.StrategyID}
	}
	return strategy.HasReachedFinalRoute(conversation), nil
}

func newConversationID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func newNonce() string {
	return uuid.NewString()
}

// errUnknownRoutingStrategy is returned when a Conversation carries a
// strategy id no registered RouteStrategy claims.
type errUnknownRoutingStrategy struct {
	id uint8
}

func (e errUnknownRoutingStrategy) Error() string {
	return fmt.Sprintf("route manager: no strategy registered for routing id %d", e.id)
}
