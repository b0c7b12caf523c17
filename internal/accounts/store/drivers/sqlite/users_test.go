package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/contabr/accounts/internal/accounts/domain"
	"github.com/contabr/accounts/internal/accounts/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(document, email string) domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.User{
		Name:         "Maria Silva",
		Document:     document,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, testUser("52998224725", "maria@example.com"))
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "Maria Silva", got.Name)
	require.Equal(t, "52998224725", got.Document)
	require.Equal(t, "maria@example.com", got.Email)
	require.NotEmpty(t, got.PasswordHash)
	require.False(t, got.CreatedAt.IsZero())
}

func TestGetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().GetUserByID(ctx, 9999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUser_DuplicateDocument(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().CreateUser(ctx, testUser("52998224725", "first@example.com"))
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, testUser("52998224725", "second@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().CreateUser(ctx, testUser("52998224725", "same@example.com"))
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, testUser("11144477735", "same@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	_, err = s.Users().CreateUser(ctx, testUser("52998224725", "a@example.com"))
	require.NoError(t, err)
	_, err = s.Users().CreateUser(ctx, testUser("11144477735", "b@example.com"))
	require.NoError(t, err)

	users, err = s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Less(t, users[0].ID, users[1].ID, "listing is ordered by id")
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, testUser("52998224725", "maria@example.com"))
	require.NoError(t, err)

	u, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)

	u.Name = "Maria Souza"
	u.Email = "souza@example.com"
	u.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.Users().UpdateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Maria Souza", got.Name)
	require.Equal(t, "souza@example.com", got.Email)
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().CreateUser(ctx, testUser("52998224725", "taken@example.com"))
	require.NoError(t, err)

	id, err := s.Users().CreateUser(ctx, testUser("11144477735", "mine@example.com"))
	require.NoError(t, err)

	u, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)

	u.Email = "taken@example.com"
	require.ErrorIs(t, s.Users().UpdateUser(ctx, u), store.ErrAlreadyExists)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, testUser("52998224725", "maria@example.com"))
	require.NoError(t, err)

	require.NoError(t, s.Users().DeleteUser(ctx, id))

	_, err = s.Users().GetUserByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	// deleting again is a silent no-op at this layer
	require.NoError(t, s.Users().DeleteUser(ctx, id))
}

func TestInUseProbes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, testUser("52998224725", "maria@example.com"))
	require.NoError(t, err)

	taken, err := s.Users().DocumentInUse(ctx, "52998224725", 0)
	require.NoError(t, err)
	require.True(t, taken)

	// the owning row is excluded, so keeping your own document is fine
	taken, err = s.Users().DocumentInUse(ctx, "52998224725", id)
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = s.Users().EmailInUse(ctx, "maria@example.com", 0)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = s.Users().EmailInUse(ctx, "other@example.com", 0)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sentinel := context.Canceled
	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, testUser("52998224725", "maria@example.com"))
		require.NoError(t, err)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users, "rolled back writes must not be visible")
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, testUser("52998224725", "maria@example.com"))
		return err
	})
	require.NoError(t, err)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}
