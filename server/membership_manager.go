package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/onionmesh/controller/server/store/adapter"
	t "github.com/onionmesh/controller/server/store/types"
)

// MembershipManager holds the credentials of principals allowed to log in,
// delegating storage to a pluggable adapter.MemberStore. Secrets are never
// kept in the clear: SeedMembersFromCSV and SetMembers both hash the secret
// with bcrypt before it reaches the store, and Authenticate compares against
// the hash.
type MembershipManager struct {
	store adapter.MemberStore
}

// NewMembershipManager wraps a MemberStore backend as a MembershipManager.
func NewMembershipManager(store adapter.MemberStore) *MembershipManager {
	return &MembershipManager{store: store}
}

// GetMember returns the member record for uid, if any.
func (m *MembershipManager) GetMember(ctx context.Context, uid string) (*t.Member, bool, error) {
	return m.store.GetMember(ctx, uid)
}

// Authenticate reports whether secret matches the stored, hashed secret for
// uid.
func (m *MembershipManager) Authenticate(ctx context.Context, uid, secret string) (bool, error) {
	member, found, err := m.store.GetMember(ctx, uid)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.Secret), []byte(secret)); err != nil {
		return false, nil
	}
	return true, nil
}

// SetMembers hashes and stores every given member, overwriting any existing
// record for the same uid.
func (m *MembershipManager) SetMembers(ctx context.Context, members []t.Member) error {
	for _, member := range members {
		hashed, err := hashSecret(member.Secret)
		if err != nil {
			return err
		}
		member.Secret = hashed
		if err := m.store.SetMember(ctx, member); err != nil {
			return err
		}
	}
	return nil
}

// SeedMembersFromCSV reads "uid;secret" records (no header row) from the
// file at path and stores them as members.
func (m *MembershipManager) SeedMembersFromCSV(ctx context.Context, path string) error {
	members, err := readMembersFromCSV(path)
	if err != nil {
		return err
	}
	return m.SetMembers(ctx, members)
}

func readMembersFromCSV(path string) ([]t.Member, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("membership: open members file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = 2

	var members []t.Member
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("membership: read members file: %w", err)
		}
		members = append(members, t.Member{Uid: record[0], Secret: record[1]})
	}
	return members, nil
}

func hashSecret(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
