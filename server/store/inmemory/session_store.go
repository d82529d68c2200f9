package inmemory

import (
	"context"
	"log"
	"sync"
	"time"

	t "github.com/onionmesh/controller/server/store/types"
)

const (
	// sessionTTL is how long a session survives without being renewed by a
	// fresh login, ping, or lookup.
	sessionTTL = 10 * time.Second
	// sessionSweepInterval is how often the sweeper scans for expired
	// sessions.
	sessionSweepInterval = 5 * time.Second
)

// SessionStore is the in-memory SessionStore backend. It keeps one primary
// map keyed by access key plus three secondary indexes - one per component
// kind - so GetProxies, GetClient and the Count* methods don't need to scan
// every live session.
type SessionStore struct {
	mu           sync.RWMutex
	sessions     map[string]expiring[t.Session]
	clients      map[string]string // uid -> access key
	proxies      map[string]struct{}
	controllers  map[string]struct{}
	sweepCancel  context.CancelFunc
	sweepStopped chan struct{}
}

// NewSessionStore builds an in-memory SessionStore and starts its sweeper
// goroutine. Call Close to stop the sweeper.
func NewSessionStore() *SessionStore {
	ctx, cancel := context.WithCancel(context.Background())
	s := &SessionStore{
		sessions:     make(map[string]expiring[t.Session]),
		clients:      make(map[string]string),
		proxies:      make(map[string]struct{}),
		controllers:  make(map[string]struct{}),
		sweepCancel:  cancel,
		sweepStopped: make(chan struct{}),
	}
	go s.sweep(ctx)
	return s
}

// Close stops the sweeper goroutine. It does not block on in-flight calls.
func (s *SessionStore) Close() {
	s.sweepCancel()
	<-s.sweepStopped
}

func (s *SessionStore) sweep(ctx context.Context) {
	defer close(s.sweepStopped)
	ticker := time.NewTicker(sessionSweepInterval)
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

func (s *SessionStore) reapExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, wrapped := range s.sessions {
		if !wrapped.expired(now) {
			continue
		}
		session := wrapped.value
		delete(s.sessions, key)
		switch session.Kind {
		case t.KindClient:
			if s.clients[session.Uid] == key {
				delete(s.clients, session.Uid)
			}
		case t.KindProxy:
			delete(s.proxies, key)
		case t.KindController:
			delete(s.controllers, key)
		}
		log.Printf("store/inmemory: reaped expired session %s (%s)", key, session.Kind)
	}
	// Proxy and Controller index entries whose session was removed by
	// RemoveSession are no longer in s.sessions; drop them here.
	for key := range s.proxies {
		if _, live := s.sessions[key]; !live {
			delete(s.proxies, key)
		}
	}
	for key := range s.controllers {
		if _, live := s.sessions[key]; !live {
			delete(s.controllers, key)
		}
	}
}

// SetSession implements adapter.SessionStore.
func (s *SessionStore) SetSession(_ context.Context, session t.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.AccessKey] = newExpiring(session, sessionTTL)
	switch session.Kind {
	case t.KindClient:
		s.clients[session.Uid] = session.AccessKey
	case t.KindProxy:
		s.proxies[session.AccessKey] = struct{}{}
	case t.KindController:
		s.controllers[session.AccessKey] = struct{}{}
	}
	return nil
}

// GetSession implements adapter.SessionStore. A hit renews the session's
// expiration.
func (s *SessionStore) GetSession(_ context.Context, accessKey string) (*t.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wrapped, ok := s.sessions[accessKey]
	if !ok {
		return nil, false, nil
	}
	wrapped.renew()
	s.sessions[accessKey] = wrapped
	session := wrapped.value
	return &session, true, nil
}

// RemoveSession implements adapter.SessionStore. Only the Client uid index
// is cleared here; Proxy and Controller index entries are left for the
// sweeper, matching the expectation that those components keep renewing
// their own session until they actually disconnect.
func (s *SessionStore) RemoveSession(_ context.Context, accessKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wrapped, ok := s.sessions[accessKey]
	if !ok {
		return nil
	}
	delete(s.sessions, accessKey)
	if wrapped.value.Kind == t.KindClient && s.clients[wrapped.value.Uid] == accessKey {
		delete(s.clients, wrapped.value.Uid)
	}
	return nil
}

// GetProxies implements adapter.SessionStore.
func (s *SessionStore) GetProxies(_ context.Context, excludeAccessKey string) ([]t.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]t.Session, 0, len(s.proxies))
	for key := range s.proxies {
		if key == excludeAccessKey {
			continue
		}
		wrapped, ok := s.sessions[key]
		if !ok {
			continue
		}
		sessions = append(sessions, wrapped.value)
	}
	return sessions, nil
}

// GetClient implements adapter.SessionStore.
func (s *SessionStore) GetClient(_ context.Context, uid string) (*t.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.clients[uid]
	if !ok {
		return nil, false, nil
	}
	wrapped, live := s.sessions[key]
	if !live {
		return nil, false, nil
	}
	session := wrapped.value
	return &session, true, nil
}

// CountProxies implements adapter.SessionStore.
func (s *SessionStore) CountProxies(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.proxies), nil
}

// CountClients implements adapter.SessionStore.
func (s *SessionStore) CountClients(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients), nil
}

// CountControllers implements adapter.SessionStore.
func (s *SessionStore) CountControllers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.controllers), nil
}
