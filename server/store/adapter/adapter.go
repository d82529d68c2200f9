// Package adapter contains the interfaces to be implemented by a Repository
// Layer backend, plus the factory that picks one at startup.
package adapter

import (
	"context"
	"fmt"
	"os"

	t "github.com/onionmesh/controller/server/store/types"
)

// SessionStore is the interface that must be implemented by a backend that
// tracks the live presence of Controllers, Proxies and Clients.
type SessionStore interface {
	// SetSession records a session, keyed by its access key, and indexes it
	// by uid under its component kind.
	SetSession(ctx context.Context, session t.Session) error
	// GetSession returns the session for a given access key, renewing its
	// expiration on a hit.
	GetSession(ctx context.Context, accessKey string) (*t.Session, bool, error)
	// RemoveSession deletes a session and, if it belongs to a Client, clears
	// the uid index used by GetClient. Proxy and Controller index entries
	// are left for the sweeper to reap once they expire.
	RemoveSession(ctx context.Context, accessKey string) error
	// GetProxies returns the live sessions of all Proxies other than the one
	// identified by excludeAccessKey.
	GetProxies(ctx context.Context, excludeAccessKey string) ([]t.Session, error)
	// GetClient returns the live Client session for uid, if any.
	GetClient(ctx context.Context, uid string) (*t.Session, bool, error)
	// CountProxies, CountClients and CountControllers report the number of
	// live sessions of each kind.
	CountProxies(ctx context.Context) (int, error)
	CountClients(ctx context.Context) (int, error)
	CountControllers(ctx context.Context) (int, error)
}

// RouteStore is the interface that must be implemented by a backend that
// tracks conversations and the routes minted within them.
type RouteStore interface {
	// SetConversation stores a new conversation keyed by its id. It returns
	// false without error if the id already exists.
	SetConversation(ctx context.Context, conversation t.Conversation) (bool, error)
	// GetConversation returns the conversation for id, if it still exists.
	GetConversation(ctx context.Context, id string) (*t.Conversation, bool, error)
	// RemoveConversation deletes a conversation once it has been finalized.
	RemoveConversation(ctx context.Context, id string) error
	// SetRoute stores a route keyed by its nonce and appends it to the
	// named conversation's route list. It returns false without error if the
	// nonce already exists.
	SetRoute(ctx context.Context, conversationID string, route t.Route) (bool, error)
	// GetRoute returns a stored route by nonce.
	GetRoute(ctx context.Context, conversationID, nonce string) (*t.Route, bool, error)
	// RemoveRoute deletes a route once it has been redeemed.
	RemoveRoute(ctx context.Context, conversationID, nonce string) error
}

// MemberStore is the interface that must be implemented by a backend holding
// the credentials of principals allowed to log in.
type MemberStore interface {
	// SetMember upserts a member credential record.
	SetMember(ctx context.Context, member t.Member) error
	// GetMember returns a member credential record by uid.
	GetMember(ctx context.Context, uid string) (*t.Member, bool, error)
}

// RepositoryType selects which Repository Layer backend the Controller runs
// against. It mirrors the "REPOSITORY" environment variable's numeric value.
type RepositoryType uint8

const (
	// RepositoryInMemory is the default: process-local maps with sweeper
	// goroutines, suitable for a single Controller instance.
	RepositoryInMemory RepositoryType = iota
	// RepositoryRedis backs the Repository Layer with an external Redis
	// instance, suitable for a fleet of Controllers sharing state.
	RepositoryRedis
)

// RepositoryTypeFromEnv reads the "REPOSITORY" environment variable and
// returns the corresponding RepositoryType, defaulting to RepositoryInMemory
// when unset or unrecognized.
func RepositoryTypeFromEnv() RepositoryType {
	switch os.Getenv("REPOSITORY") {
	case "1":
		return RepositoryRedis
	default:
		return RepositoryInMemory
	}
}

// String renders the repository type the way it's logged at startup.
func (r RepositoryType) String() string {
	switch r {
	case RepositoryRedis:
		return "redis"
	default:
		return "in-memory"
	}
}

// ErrUnknownRepositoryType is returned by the store constructors when asked
// to build a backend for a RepositoryType they don't recognize.
type ErrUnknownRepositoryType struct {
	Type RepositoryType
}

func (e ErrUnknownRepositoryType) Error() string {
	return fmt.Sprintf("adapter: unknown repository type %d", e.Type)
}
