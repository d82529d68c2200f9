package inmemory

import (
	"context"
	"log"
	"sync"
	"time"

	t "github.com/onionmesh/controller/server/store/types"
)

const (
	// routeTTL and conversationTTL bound how long an un-redeemed route or an
	// unfinalized conversation is kept before the sweeper reaps it.
	routeTTL        = 60 * time.Second
	conversationTTL = 60 * time.Second
	// routeSweepInterval is how often the sweeper scans for expired routes
	// and conversations.
	routeSweepInterval = 30 * time.Second
)

// RouteStore is the in-memory RouteStore backend. Routes are keyed globally
// by nonce - a nonce is a single-use secret minted by store_route and spent
// exactly once by redeem_route, so no component ever needs to qualify a
// lookup by conversation id to find it.
type RouteStore struct {
	mu            sync.RWMutex
	conversations map[string]expiring[t.Conversation]
	routes        map[string]expiring[t.Route]
	sweepCancel   context.CancelFunc
	sweepStopped  chan struct{}
}

// NewRouteStore builds an in-memory RouteStore and starts its sweeper
// goroutine. Call Close to stop the sweeper.
func NewRouteStore() *RouteStore {
	ctx, cancel := context.WithCancel(context.Background())
	s := &RouteStore{
		conversations: make(map[string]expiring[t.Conversation]),
		routes:        make(map[string]expiring[t.Route]),
		sweepCancel:   cancel,
		sweepStopped:  make(chan struct{}),
	}
	go s.sweep(ctx)
	return s
}

// Close stops the sweeper goroutine.
func (s *RouteStore) Close() {
	s.sweepCancel()
	<-s.sweepStopped
}

func (s *RouteStore) sweep(ctx context.Context) {
	defer close(s.sweepStopped)
	ticker := time.NewTicker(routeSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.reapExpired(now)
		}
	}
}

func (s *RouteStore) reapExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, wrapped := range s.conversations {
		if wrapped.expired(now) {
			delete(s.conversations, id)
			log.Printf("store/inmemory: reaped expired conversation %s", id)
		}
	}
	for nonce, wrapped := range s.routes {
		if wrapped.expired(now) {
			delete(s.routes, nonce)
			log.Printf("store/inmemory: reaped expired route %s", nonce)
		}
	}
}

// SetConversation implements adapter.RouteStore.
func (s *RouteStore) SetConversation(_ context.Context, conversation t.Conversation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.conversations[conversation.ID]; exists {
		return false, nil
	}
	s.conversations[conversation.ID] = newExpiring(conversation, conversationTTL)
	return true, nil
}

// GetConversation implements adapter.RouteStore.
func (s *RouteStore) GetConversation(_ context.Context, id string) (*t.Conversation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wrapped, ok := s.conversations[id]
	if !ok {
		return nil, false, nil
	}
	conversation := wrapped.value
	return &conversation, true, nil
}

// RemoveConversation implements adapter.RouteStore.
func (s *RouteStore) RemoveConversation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, id)
	return nil
}

// SetRoute implements adapter.RouteStore. It stores the route keyed by
// nonce and, atomically with respect to other store calls, appends it to
// the named conversation's route list.
func (s *RouteStore) SetRoute(_ context.Context, conversationID string, route t.Route) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.routes[route.Nonce]; exists {
		return false, nil
	}
	wrappedConv, ok := s.conversations[conversationID]
	if !ok {
		return false, nil
	}
	conversation := wrappedConv.value
	conversation.Routes = append(conversation.Routes, route)
	wrappedConv.value = conversation
	wrappedConv.renew()
	s.conversations[conversationID] = wrappedConv
	s.routes[route.Nonce] = newExpiring(route, routeTTL)
	return true, nil
}

// GetRoute implements adapter.RouteStore. conversationID is accepted for
// interface symmetry with SetRoute but routes are looked up by nonce alone.
func (s *RouteStore) GetRoute(_ context.Context, _ string, nonce string) (*t.Route, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wrapped, ok := s.routes[nonce]
	if !ok {
		return nil, false, nil
	}
	route := wrapped.value
	return &route, true, nil
}

// RemoveRoute implements adapter.RouteStore.
func (s *RouteStore) RemoveRoute(_ context.Context, _ string, nonce string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.routes, nonce)
	return nil
}
