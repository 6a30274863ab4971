package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aniketSingh0310/user-dash/internal/domain/entity"
	"github.com/aniketSingh0310/user-dash/internal/domain/repository"
)

// UserRepository is an in-memory implementation of UserRepository.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		store:  make(map[int64]*entity.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.store {
		if existing.Email == user.Email {
			return nil, errors.New("email already exists")
		}
	}

	userCopy := *user
	userCopy.ID = r.nextID
	r.nextID++
	r.store[userCopy.ID] = &userCopy

	result := userCopy
	return &result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, errors.New("user not found")
	}

	result := *user
	return &result, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.store))
	for _, user := range r.store {
		result := *user
		users = append(users, &result)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.ID]; !ok {
		return nil, errors.New("user not found")
	}

	userCopy := *user
	r.store[userCopy.ID] = &userCopy

	result := userCopy
	return &result, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return errors.New("user not found")
	}

	delete(r.store, id)
	return nil
}
