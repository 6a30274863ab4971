package user

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrNameEmailRequired = errors.New("name and email are required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmailExists       = errors.New("email already exists")
	ErrInvalidDate       = errors.New("dateOfBirth must be in YYYY-MM-DD format")
)

type Repository interface {
	List() ([]User, error)
	GetByID(id int) (User, error)
	GetByEmail(email string) (User, error)
	Create(user User) (User, error)
	Update(id int, user User) (User, error)
	Delete(id int) error
}

type edge struct {
	followerID  int
	followingID int
}

// InMemoryRepository is used for tests and local scenarios. It stores follow
// edges alongside users so it can back the follow package as well, mirroring
// what the cascading delete on the follows table does in Postgres.
type InMemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	edges  []edge
	nextID int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{users: make([]User, 0, len(seed))}

	maxID := 0
	for _, user := range seed {
		repo.users = append(repo.users, user)
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	// newest first; seeded users carry ascending ids
	sort.SliceStable(users, func(i, j int) bool {
		if users[i].CreatedAt != users[j].CreatedAt {
			return users[i].CreatedAt > users[j].CreatedAt
		}
		return users[i].ID > users[j].ID
	})
	for i := range users {
		r.annotate(&users[i])
	}
	return users, nil
}

func (r *InMemoryRepository) GetByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			r.annotate(&user)
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}

	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) Update(id int, userUpdate User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			userUpdate.ID = id
			r.users[i] = userUpdate
			r.annotate(&userUpdate)
			return userUpdate, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			// referential cleanup: drop edges touching the user on either side
			kept := r.edges[:0]
			for _, e := range r.edges {
				if e.followerID != id && e.followingID != id {
					kept = append(kept, e)
				}
			}
			r.edges = kept
			return nil
		}
	}

	return ErrNotFound
}

// FollowExists, AddFollow and RemoveFollow satisfy follow.Repository so the
// in-memory store can serve both handlers in tests.

func (r *InMemoryRepository) FollowExists(followerID, followingID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.edges {
		if e.followerID == followerID && e.followingID == followingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) AddFollow(followerID, followingID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.edges {
		if e.followerID == followerID && e.followingID == followingID {
			return nil
		}
	}
	r.edges = append(r.edges, edge{followerID: followerID, followingID: followingID})
	return nil
}

func (r *InMemoryRepository) RemoveFollow(followerID, followingID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.edges {
		if e.followerID == followerID && e.followingID == followingID {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) annotate(user *User) {
	followers := make([]Ref, 0)
	following := make([]Ref, 0)
	for _, e := range r.edges {
		if e.followingID == user.ID {
			if ref, ok := r.ref(e.followerID); ok {
				followers = append(followers, ref)
			}
		}
		if e.followerID == user.ID {
			if ref, ok := r.ref(e.followingID); ok {
				following = append(following, ref)
			}
		}
	}
	sort.Slice(followers, func(i, j int) bool { return followers[i].ID < followers[j].ID })
	sort.Slice(following, func(i, j int) bool { return following[i].ID < following[j].ID })
	user.Followers = followers
	user.Following = following
}

func (r *InMemoryRepository) ref(id int) (Ref, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return Ref{ID: u.ID, Name: u.Name}, true
		}
	}
	return Ref{}, false
}
