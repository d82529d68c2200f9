package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	t "github.com/onionmesh/controller/server/store/types"
)

func TestMemberStore_SetGetMember(t2 *testing.T) {
	store := NewMemberStore()
	ctx := context.Background()

	require.NoError(t2, store.SetMember(ctx, t.Member{Uid: "uid-1", Secret: "hashed"}))

	member, found, err := store.GetMember(ctx, "uid-1")
	require.NoError(t2, err)
	require.True(t2, found)
	assert.Equal(t2, "hashed", member.Secret)
}

func TestMemberStore_GetMember_Missing(t2 *testing.T) {
	store := NewMemberStore()
	_, found, err := store.GetMember(context.Background(), "nope")
	require.NoError(t2, err)
	assert.False(t2, found)
}

func TestMemberStore_SetMember_Overwrites(t2 *testing.T) {
	store := NewMemberStore()
	ctx := context.Background()

	require.NoError(t2, store.SetMember(ctx, t.Member{Uid: "uid-1", Secret: "old"}))
	require.NoError(t2, store.SetMember(ctx, t.Member{Uid: "uid-1", Secret: "new"}))

	member, found, err := store.GetMember(ctx, "uid-1")
	require.NoError(t2, err)
	require.True(t2, found)
	assert.Equal(t2, "new", member.Secret)
}
