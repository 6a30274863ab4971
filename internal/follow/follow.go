package follow

import "errors"

var (
	ErrSelfFollow       = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

// Repository provides access to the directed follow edges between users.
// The user package's in-memory repository implements it as well, so both
// handlers can run against one store in tests.
type Repository interface {
	FollowExists(followerID, followingID int) (bool, error)
	AddFollow(followerID, followingID int) error
	RemoveFollow(followerID, followingID int) error
}
