package main

import (
	"context"

	"github.com/google/uuid"

	"github.com/onionmesh/controller/server/store/adapter"
	t "github.com/onionmesh/controller/server/store/types"
)

// SessionManager tracks the live presence of every Controller, Proxy and
// Client talking to this Controller, delegating all storage to a
// pluggable adapter.SessionStore.
type SessionManager struct {
	store adapter.SessionStore
}

// NewSessionManager wraps a SessionStore backend as a SessionManager.
func NewSessionManager(store adapter.SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

// SetSession mints a fresh access key for the given principal and records
// its session, returning the access key.
func (m *SessionManager) SetSession(ctx context.Context, kind t.ComponentKind, uid, peerAddr string, endpoint t.Endpoint) (string, error) {
	accessKey := uuid.NewString()
	session := t.Session{
		AccessKey: accessKey,
		Uid:       uid,
		Kind:      kind,
		PeerAddr:  peerAddr,
		Endpoint:  endpoint,
	}
	if err := m.store.SetSession(ctx, session); err != nil {
		return "", err
	}
	return accessKey, nil
}

// GetSession returns the session for the given access key, if it is still
// live.
func (m *SessionManager) GetSession(ctx context.Context, accessKey string) (*t.Session, bool, error) {
	return m.store.GetSession(ctx, accessKey)
}

// RemoveSession deletes a session, logging the principal out.
func (m *SessionManager) RemoveSession(ctx context.Context, accessKey string) error {
	return m.store.RemoveSession(ctx, accessKey)
}

// GetProxies returns the live sessions of every Proxy other than the one
// identified by excludeAccessKey.
func (m *SessionManager) GetProxies(ctx context.Context, excludeAccessKey string) ([]t.Session, error) {
	return m.store.GetProxies(ctx, excludeAccessKey)
}

// GetClient returns the live Client session for uid, if any.
func (m *SessionManager) GetClient(ctx context.Context, uid string) (*t.Session, bool, error) {
	return m.store.GetClient(ctx, uid)
}

// CountProxies, CountClients and CountControllers report the number of live
// sessions of each kind, for the Info service's status report.
func (m *SessionManager) CountProxies(ctx context.Context) (int, error) {
	return m.store.CountProxies(ctx)
}

func (m *SessionManager) CountClients(ctx context.Context) (int, error) {
	return m.store.CountClients(ctx)
}

func (m *SessionManager) CountControllers(ctx context.Context) (int, error) {
	return m.store.CountControllers(ctx)
}
