package main

import (
	"math/rand"

	t "github.com/onionmesh/controller/server/store/types"
)

// RouteStrategy decides how a Conversation picks its next hop and when it
// has reached the last one. Each strategy is registered under a stable id
// carried on the Conversation record, so a Conversation started under one
// strategy keeps using it for its whole lifetime even if the Controller's
// default changes later.
type RouteStrategy interface {
	ID() uint8
	HasReachedFinalRoute(conversation t.Conversation) bool
	NextRoute(conversation t.Conversation, proxies []t.Session) (t.Session, bool)
}

// RandomStrategy is the default strategy: it bounces a message through
// exactly three hops, picking each intermediate proxy at random.
type RandomStrategy struct{}

// ID implements RouteStrategy.
func (RandomStrategy) ID() uint8 { return 1 }

// HasReachedFinalRoute implements RouteStrategy.
func (RandomStrategy) HasReachedFinalRoute(conversation t.Conversation) bool {
	return len(conversation.Routes) == 3
}

// NextRoute implements RouteStrategy. It picks uniformly among proxies
// [0, len(proxies)-1) - deliberately excluding the last proxy in the slice,
// carried over unchanged from the routing behavior this Controller was
// modeled on. With exactly one proxy available, that range is empty and
// index 0 is used instead, so the lone proxy is still selected rather than
// treated as absent.
func (RandomStrategy) NextRoute(_ t.Conversation, proxies []t.Session) (t.Session, bool) {
	if len(proxies) == 0 {
		return t.Session{}, false
	}
	if len(proxies) == 1 {
		return proxies[0], true
	}
	index := rand.Intn(len(proxies) - 1)
	return proxies[index], true
}

// DirectStrategy routes a Conversation through exactly one hop, for callers
// that want to reach a single proxy without onion-style bouncing.
type DirectStrategy struct{}

// ID implements RouteStrategy.
func (DirectStrategy) ID() uint8 { return 2 }

// HasReachedFinalRoute implements RouteStrategy.
func (DirectStrategy) HasReachedFinalRoute(conversation t.Conversation) bool {
	return len(conversation.Routes) == 1
}

// NextRoute implements RouteStrategy. It always picks the first available
// proxy.
func (DirectStrategy) NextRoute(_ t.Conversation, proxies []t.Session) (t.Session, bool) {
	if len(proxies) == 0 {
		return t.Session{}, false
	}
	return proxies[0], true
}

// routeStrategyRegistry holds every known RouteStrategy, keyed by id.
type routeStrategyRegistry struct {
	strategies []RouteStrategy
}

// newRouteStrategyRegistry builds the registry with every known strategy.
func newRouteStrategyRegistry() *routeStrategyRegistry {
	return &routeStrategyRegistry{
		strategies: []RouteStrategy{RandomStrategy{}, DirectStrategy{}},
	}
}

// defaultRoutingID returns the id a freshly-initialized Conversation should
// carry. Always RandomStrategy's id, matching the stated "currently
// constant" selection behavior; a future revision could branch on from/to.
func (r *routeStrategyRegistry) defaultRoutingID(_, _ string) uint8 {
	return r.strategies[0].ID()
}

// strategyFor returns the RouteStrategy registered under id, if any.
func (r *routeStrategyRegistry) strategyFor(id uint8) (RouteStrategy, bool) {
	for _, strategy := range r.strategies {
		if strategy.ID() == id {
			return strategy, true
		}
	}
	return nil, false
}
