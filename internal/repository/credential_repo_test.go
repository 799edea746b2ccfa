package repository

import (
	"context"
	"testing"

	"github.com/dandyZicky/wfh-attendance/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepo_CreateAndFind(t *testing.T) {
	db := setupTestDB(t, &model.Credential{})
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	cred := &model.Credential{
		UserKey:      "key-1",
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "hashed",
	}
	require.NoError(t, repo.Create(ctx, cred))

	t.Run("lookup is case-insensitive on email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "Alice@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "key-1", found.UserKey)
		assert.Equal(t, "alice", found.Username)
	})

	t.Run("unknown email errors", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.Error(t, err)
	})

	t.Run("duplicate email rejected by unique index", func(t *testing.T) {
		err := repo.Create(ctx, &model.Credential{
			UserKey:      "key-2",
			Email:        "alice@example.com",
			Username:     "alice2",
			PasswordHash: "hashed",
		})
		assert.Error(t, err)
	})
}

func TestCredentialRepo_ExistsByEmailOrUsername(t *testing.T) {
	db := setupTestDB(t, &model.Credential{})
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Credential{
		UserKey: "key-1", Email: "alice@example.com", Username: "alice", PasswordHash: "h",
	}))

	for _, tc := range []struct {
		name, email, username string
		want                  bool
	}{
		{"email taken", "alice@example.com", "someoneelse", true},
		{"username taken", "other@example.com", "alice", true},
		{"both free", "other@example.com", "bob", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.ExistsByEmailOrUsername(ctx, tc.email, tc.username)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCredentialRepo_DeleteByUserKey(t *testing.T) {
	db := setupTestDB(t, &model.Credential{})
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Credential{
		UserKey: "key-1", Email: "alice@example.com", Username: "alice", PasswordHash: "h",
	}))

	affected, err := repo.DeleteByUserKey(ctx, "key-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DeleteByUserKey(ctx, "key-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected, "second delete finds nothing")
}
