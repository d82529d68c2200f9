package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	t "github.com/onionmesh/controller/server/store/types"
)

const (
	sessionKeyPrefix      = "ss:"
	clientIndexPrefix     = "c_ss:"
	proxyIndexPrefix      = "p_ss:"
	controllerIndexPrefix = "ctrl_ss:"
	sessionTTL            = 10 * time.Second
)

func sessionKey(accessKey string) string        { return sessionKeyPrefix + accessKey }
func clientIndexKey(uid string) string          { return clientIndexPrefix + uid }
func proxyIndexKey(accessKey string) string     { return proxyIndexPrefix + accessKey }
func controllerIndexKey(accessKey string) string { return controllerIndexPrefix + accessKey }

// SessionStore is the Redis-backed adapter.SessionStore implementation.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps an existing go-redis client as a SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SetSession implements adapter.SessionStore. The session record and its
// per-kind index entry are written together in one MULTI/EXEC transaction so
// a reader never observes one without the other.
func (s *SessionStore) SetSession(ctx context.Context, session t.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.AccessKey), payload, sessionTTL)
	switch session.Kind {
	case t.KindClient:
		pipe.Set(ctx, clientIndexKey(session.Uid), session.AccessKey, sessionTTL)
	case t.KindProxy:
		pipe.Set(ctx, proxyIndexKey(session.AccessKey), session.Uid, sessionTTL)
	case t.KindController:
		pipe.Set(ctx, controllerIndexKey(session.AccessKey), session.Uid, sessionTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// GetSession implements adapter.SessionStore, refreshing the TTL of the
// session key and of its per-kind index entry on a hit.
func (s *SessionStore) GetSession(ctx context.Context, accessKey string) (*t.Session, bool, error) {
	payload, err := s.client.GetEx(ctx, sessionKey(accessKey), sessionTTL).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var session t.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, false, err
	}
	indexKey := ""
	switch session.Kind {
	case t.KindClient:
		indexKey = clientIndexKey(session.Uid)
	case t.KindProxy:
		indexKey = proxyIndexKey(session.AccessKey)
	case t.KindController:
		indexKey = controllerIndexKey(session.AccessKey)
	}
	if indexKey != "" {
		if err := s.client.Expire(ctx, indexKey, sessionTTL).Err(); err != nil {
			return nil, false, err
		}
	}
	return &session, true, nil
}

// RemoveSession implements adapter.SessionStore. The session key is deleted
// and, for a Client, so is its uid index entry if it still points at this
// access key. A Proxy or Controller index entry is left to expire on its
// own TTL.
func (s *SessionStore) RemoveSession(ctx context.Context, accessKey string) error {
	session, found, err := s.GetSession(ctx, accessKey)
	if err != nil || !found {
		return err
	}
	if session.Kind == t.KindClient {
		indexed, err := s.client.Get(ctx, clientIndexKey(session.Uid)).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if indexed == accessKey {
			if err := s.client.Del(ctx, clientIndexKey(session.Uid)).Err(); err != nil {
				return err
			}
		}
	}
	return s.client.Del(ctx, sessionKey(accessKey)).Err()
}

// GetProxies implements adapter.SessionStore by scanning the proxy index.
func (s *SessionStore) GetProxies(ctx context.Context, excludeAccessKey string) ([]t.Session, error) {
	keys, err := s.scanIndexKeys(ctx, proxyIndexPrefix)
	if err != nil {
		return nil, err
	}
	result := make([]t.Session, 0, len(keys))
	for _, accessKey := range keys {
		if accessKey == excludeAccessKey {
			continue
		}
		session, found, err := s.GetSession(ctx, accessKey)
		if err != nil {
			return nil, err
		}
		if found {
			result = append(result, *session)
		}
	}
	return result, nil
}

// GetClient implements adapter.SessionStore.
func (s *SessionStore) GetClient(ctx context.Context, uid string) (*t.Session, bool, error) {
	accessKey, err := s.client.Get(ctx, clientIndexKey(uid)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return s.GetSession(ctx, accessKey)
}

// CountProxies implements adapter.SessionStore.
func (s *SessionStore) CountProxies(ctx context.Context) (int, error) {
	keys, err := s.scanIndexKeys(ctx, proxyIndexPrefix)
	return len(keys), err
}

// CountClients implements adapter.SessionStore.
func (s *SessionStore) CountClients(ctx context.Context) (int, error) {
	keys, err := s.scanIndexKeys(ctx, clientIndexPrefix)
	return len(keys), err
}

// CountControllers implements adapter.SessionStore.
func (s *SessionStore) CountControllers(ctx context.Context) (int, error) {
	keys, err := s.scanIndexKeys(ctx, controllerIndexPrefix)
	return len(keys), err
}

func (s *SessionStore) scanIndexKeys(ctx context.Context, prefix string) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			out = append(out, key[len(prefix):])
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}
