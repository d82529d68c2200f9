package inmemory

import (
	"context"
	"sync"

	t "github.com/onionmesh/controller/server/store/types"
)

// MemberStore is the in-memory MemberStore backend: a plain map, since
// member credentials are seeded once at startup and rarely change.
type MemberStore struct {
	mu      sync.RWMutex
	members map[string]t.Member
}

// NewMemberStore builds an empty in-memory MemberStore.
func NewMemberStore() *MemberStore {
	return &MemberStore{members: make(map[string]t.Member)}
}

// SetMember implements adapter.MemberStore.
func (s *MemberStore) SetMember(_ context.Context, member t.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[member.Uid] = member
	return nil
}

// GetMember implements adapter.MemberStore.
func (s *MemberStore) GetMember(_ context.Context, uid string) (*t.Member, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	member, ok := s.members[uid]
	if !ok {
		return nil, false, nil
	}
	return &member, true, nil
}
