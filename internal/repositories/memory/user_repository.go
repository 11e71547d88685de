package memory

import (
	"context"
	"sync"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repositories"
)

type UserRepository struct {
	mu         sync.RWMutex
	users      map[uint]models.User
	byUsername map[string]uint
	nextID     uint
	now        func() time.Time
}

func NewUserRepository(now func() time.Time) *UserRepository {
	return &UserRepository{
		users:      make(map[uint]models.User),
		byUsername: make(map[string]uint),
		nextID:     1,
		now:        now,
	}
}

func (r *UserRepository) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	u := r.users[id]
	return &u, nil
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return repositories.ErrUsernameTaken
	}

	user.ID = r.nextID
	user.CreatedAt = repositories.StoredTime(r.now())
	r.nextID++
	r.users[user.ID] = *user
	r.byUsername[user.Username] = user.ID
	return nil
}
