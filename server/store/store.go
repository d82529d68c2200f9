// Package store wires the Repository Layer: it picks a backend based on
// adapter.RepositoryType and hands back the three store interfaces the
// domain managers depend on.
package store

import (
	"fmt"

	"github.com/onionmesh/controller/server/store/adapter"
	"github.com/onionmesh/controller/server/store/inmemory"
	"github.com/onionmesh/controller/server/store/redisstore"
)

// Stores bundles the three Repository Layer backends a Controller needs.
// Closer releases the backend on shutdown: it stops the in-memory sweeper
// goroutines, or closes the Redis client.
type Stores struct {
	Sessions adapter.SessionStore
	Routes   adapter.RouteStore
	Members  adapter.MemberStore
	Closer   func()
}

// Open builds a Stores bundle for the given repository type.
func Open(repoType adapter.RepositoryType) (*Stores, error) {
	switch repoType {
	case adapter.RepositoryInMemory:
		sessions := inmemory.NewSessionStore()
		routes := inmemory.NewRouteStore()
		return &Stores{
			Sessions: sessions,
			Routes:   routes,
			Members:  inmemory.NewMemberStore(),
			Closer: func() {
				sessions.Close()
				routes.Close()
			},
		}, nil
	case adapter.RepositoryRedis:
		client, err := redisstore.NewClient()
		if err != nil {
			return nil, fmt.Errorf("store: open redis backend: %w", err)
		}
		return &Stores{
			Sessions: redisstore.NewSessionStore(client),
			Routes:   redisstore.NewRouteStore(client),
			Members:  redisstore.NewMemberStore(client),
			Closer:   func() { _ = client.Close() },
		}, nil
	default:
		return nil, adapter.ErrUnknownRepositoryType{Type: repoType}
	}
}
