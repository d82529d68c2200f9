package redisstore

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	t "github.com/onionmesh/controller/server/store/types"
)

// memberHashKey is a single Redis hash holding every member, keyed by uid.
// Memberships are a small, rarely-changing set seeded at startup, so one
// hash is simpler than one key per member.
const memberHashKey = "mb"

// MemberStore is the Redis-backed adapter.MemberStore implementation.
type MemberStore struct {
	client *redis.Client
}

// NewMemberStore wraps an existing go-redis client as a MemberStore.
func NewMemberStore(client *redis.Client) *MemberStore {
	return &MemberStore{client: client}
}

// SetMember implements adapter.MemberStore.
func (s *MemberStore) SetMember(ctx context.Context, member t.Member) error {
	payload, err := json.Marshal(member)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, memberHashKey, member.Uid, payload).Err()
}

// GetMember implements adapter.MemberStore.
func (s *MemberStore) GetMember(ctx context.Context, uid string) (*t.Member, bool, error) {
	payload, err := s.client.HGet(ctx, memberHashKey, uid).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var member t.Member
	if err := json.Unmarshal(payload, &member); err != nil {
		return nil, false, err
	}
	return &member, true, nil
}
