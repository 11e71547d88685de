package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsCatalog(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	ctx := context.Background()

	products, err := store.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(repositories.SampleProducts()))

	for i, p := range products {
		assert.Equal(t, uint(i+1), p.ID)
	}

	watch, err := store.Products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Premium Leather Watch", watch.Name)
	assert.Equal(t, 29999, watch.Price)

	_, err = store.Products.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartRepository(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	first := &models.CartItem{UserID: 1, ProductID: 3, Quantity: 1}
	second := &models.CartItem{UserID: 2, ProductID: 4, Quantity: 2}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	items, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{*first}, items)

	updated, err := repo.UpdateQuantity(ctx, first.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = repo.UpdateQuantity(ctx, 42, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Delete(ctx, first.ID))
	items, err = repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMessageRepositoryAssignsIDAndTimestamp(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMessageRepository(func() time.Time { return fixed })
	ctx := context.Background()

	msg := &models.Message{FromID: 1, ToID: 2, Content: "hi"}
	require.NoError(t, repo.Create(ctx, msg))
	assert.Equal(t, uint(1), msg.ID)
	assert.Equal(t, fixed, msg.Timestamp)

	require.NoError(t, repo.Create(ctx, &models.Message{FromID: 3, ToID: 4, Content: "other"}))
	require.NoError(t, repo.Create(ctx, &models.Message{FromID: 2, ToID: 1, Content: "hello back"}))

	for _, userID := range []uint{1, 2} {
		history, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "hi", history[0].Content)
		assert.Equal(t, "hello back", history[1].Content)
	}

	history, err := repo.FindByUserID(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestMessageRepositoryStoresMillisecondTimestamps(t *testing.T) {
	local := time.FixedZone("UTC-5", -5*60*60)
	repo := NewMessageRepository(func() time.Time {
		return time.Date(2024, 3, 1, 7, 0, 0, 123456789, local)
	})
	ctx := context.Background()

	msg := &models.Message{FromID: 1, ToID: 2, Content: "hi"}
	require.NoError(t, repo.Create(ctx, msg))
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 123000000, time.UTC), msg.Timestamp)

	history, err := repo.FindByUserID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, msg.Timestamp, history[0].Timestamp)
}

func TestMessageRepositoryConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewMessageRepository(time.Now)
	ctx := context.Background()

	const workers = 50
	ids := make(chan uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := &models.Message{FromID: 1, ToID: 2, Content: "ping"}
			if err := repo.Create(ctx, msg); err == nil {
				ids <- msg.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestUserRepositoryUniqueUsername(t *testing.T) {
	repo := NewUserRepository(time.Now)
	ctx := context.Background()

	alice := &models.User{Username: "alice", Password: "hash"}
	require.NoError(t, repo.Create(ctx, alice))
	assert.Equal(t, uint(1), alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	err := repo.Create(ctx, &models.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, repositories.ErrUsernameTaken)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = repo.FindByID(ctx, 7)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
