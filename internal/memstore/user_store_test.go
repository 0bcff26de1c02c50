package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tehl/bank-api/internal/core"
)

func TestUserStore_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("assigns_sequential_identities", func(t *testing.T) {
		t.Parallel()

		store := NewUserStore()
		ctx := context.Background()

		first, err := store.CreateUser(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, int64(1), first.ID)

		second, err := store.CreateUser(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, int64(2), second.ID)
	})

	t.Run("duplicate_username_is_rejected", func(t *testing.T) {
		t.Parallel()

		store := NewUserStore()
		ctx := context.Background()

		_, err := store.CreateUser(ctx, "alice")
		require.NoError(t, err)

		_, err = store.CreateUser(ctx, "alice")
		require.ErrorIs(t, err, core.ErrUserExists)
	})

	t.Run("concurrent_creates_receive_unique_identities", func(t *testing.T) {
		t.Parallel()

		store := NewUserStore()
		ctx := context.Background()

		const workers = 50

		var wg sync.WaitGroup
		ids := make(chan int64, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				user, err := store.CreateUser(ctx, fmt.Sprintf("user-%d", n))
				if err == nil {
					ids <- user.ID
				}
			}(i)
		}

		wg.Wait()
		close(ids)

		seen := make(map[int64]bool)
		for id := range ids {
			require.Positive(t, id)
			require.False(t, seen[id], "identity %d assigned twice", id)
			seen[id] = true
		}
		require.Len(t, seen, workers)
	})
}

func TestUserStore_Lookups(t *testing.T) {
	t.Parallel()

	store := NewUserStore()
	ctx := context.Background()

	created, err := store.CreateUser(ctx, "alice")
	require.NoError(t, err)

	t.Run("by_id", func(t *testing.T) {
		user, err := store.GetUserByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Equal(t, created, *user)
	})

	t.Run("by_id_absent", func(t *testing.T) {
		user, err := store.GetUserByID(ctx, 999)
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("by_username", func(t *testing.T) {
		user, err := store.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Equal(t, created, *user)
	})

	t.Run("by_username_absent", func(t *testing.T) {
		user, err := store.GetUserByUsername(ctx, "nobody")
		require.NoError(t, err)
		require.Nil(t, user)
	})
}

func TestUserStore_GetAllUsers_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	store := NewUserStore()
	ctx := context.Background()

	_, err := store.CreateUser(ctx, "alice")
	require.NoError(t, err)

	snapshot, err := store.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// later writes must not show up in an already-taken snapshot
	_, err = store.CreateUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	all, err := store.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
