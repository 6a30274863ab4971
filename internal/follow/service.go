package follow

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Follow creates the (follower, following) edge. The explicit existence
// check exists to return a meaningful error instead of silently ignoring a
// duplicate; the repository still reports ErrAlreadyFollowing if a
// concurrent caller wins the insert.
func (s *Service) Follow(followerID, followingID int) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	exists, err := s.repo.FollowExists(followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFollowing
	}

	return s.repo.AddFollow(followerID, followingID)
}

func (s *Service) Unfollow(followerID, followingID int) error {
	exists, err := s.repo.FollowExists(followerID, followingID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFollowing
	}

	return s.repo.RemoveFollow(followerID, followingID)
}
