package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	t "github.com/onionmesh/controller/server/store/types"
)

const (
	conversationKeyPrefix = "cs:"
	routeKeyPrefix        = "rs:"
	routeTTL              = 60 * time.Second
	conversationTTL       = 60 * time.Second
)

func conversationKey(id string) string { return conversationKeyPrefix + id }
func routeKey(nonce string) string     { return routeKeyPrefix + nonce }

// RouteStore is the Redis-backed adapter.RouteStore implementation. Like its
// in-memory counterpart, routes are keyed globally by nonce: a nonce is
// single-use and unique across the whole Controller, so no caller needs to
// qualify a lookup by conversation id.
type RouteStore struct {
	client *redis.Client
}

// NewRouteStore wraps an existing go-redis client as a RouteStore.
func NewRouteStore(client *redis.Client) *RouteStore {
	return &RouteStore{client: client}
}

// SetConversation implements adapter.RouteStore.
func (s *RouteStore) SetConversation(ctx context.Context, conversation t.Conversation) (bool, error) {
	payload, err := json.Marshal(conversation)
	if err != nil {
		return false, err
	}
	ok, err := s.client.SetNX(ctx, conversationKey(conversation.ID), payload, conversationTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// GetConversation implements adapter.RouteStore.
func (s *RouteStore) GetConversation(ctx context.Context, id string) (*t.Conversation, bool, error) {
	payload, err := s.client.Get(ctx, conversationKey(id)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var conversation t.Conversation
	if err := json.Unmarshal(payload, &conversation); err != nil {
		return nil, false, err
	}
	return &conversation, true, nil
}

// RemoveConversation implements adapter.RouteStore.
func (s *RouteStore) RemoveConversation(ctx context.Context, id string) error {
	return s.client.Del(ctx, conversationKey(id)).Err()
}

// SetRoute implements adapter.RouteStore. The route is written under its own
// nonce-keyed entry and also appended to the conversation's route list; the
// two writes are not transactional.
func (s *RouteStore) SetRoute(ctx context.Context, conversationID string, route t.Route) (bool, error) {
	exists, err := s.client.Exists(ctx, routeKey(route.Nonce)).Result()
	if err != nil {
		return false, err
	}
	if exists > 0 {
		return false, nil
	}
	conversation, found, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	conversation.Routes = append(conversation.Routes, route)
	payload, err := json.Marshal(conversation)
	if err != nil {
		return false, err
	}
	routePayload, err := json.Marshal(route)
	if err != nil {
		return false, err
	}
	pipe := s.client.Pipeline()
	pipe.Set(ctx, conversationKey(conversationID), payload, conversationTTL)
	pipe.Set(ctx, routeKey(route.Nonce), routePayload, routeTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// GetRoute implements adapter.RouteStore. conversationID is accepted for
// interface symmetry with SetRoute but routes are looked up by nonce alone.
func (s *RouteStore) GetRoute(ctx context.Context, _ string, nonce string) (*t.Route, bool, error) {
	payload, err := s.client.Get(ctx, routeKey(nonce)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var route t.Route
	if err := json.Unmarshal(payload, &route); err != nil {
		return nil, false, err
	}
	return &route, true, nil
}

// RemoveRoute implements adapter.RouteStore.
func (s *RouteStore) RemoveRoute(ctx context.Context, _ string, nonce string) error {
	return s.client.Del(ctx, routeKey(nonce)).Err()
}
