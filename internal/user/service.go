package user

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]User, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(user User) (User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)

	if user.Name == "" || user.Email == "" {
		return User{}, ErrNameEmailRequired
	}
	if !emailPattern.MatchString(user.Email) {
		return User{}, ErrInvalidEmail
	}
	if user.DateOfBirth != nil && !validDate(*user.DateOfBirth) {
		return User{}, ErrInvalidDate
	}

	// the unique constraint on users.email still backs this check against
	// concurrent creates
	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user.CreatedAt = now
	user.UpdatedAt = now
	return s.repo.Create(user)
}

func (s *Service) Update(id int, changes Update) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)
		if name == "" {
			return User{}, ErrNameEmailRequired
		}
		existing.Name = name
	}
	if changes.Email != nil {
		email := strings.TrimSpace(*changes.Email)
		if email == "" {
			return User{}, ErrNameEmailRequired
		}
		if !emailPattern.MatchString(email) {
			return User{}, ErrInvalidEmail
		}
		if email != existing.Email {
			if other, err := s.repo.GetByEmail(email); err == nil && other.ID != id {
				return User{}, ErrEmailExists
			} else if err != nil && err != ErrNotFound {
				return User{}, err
			}
		}
		existing.Email = email
	}
	if changes.Phone != nil {
		existing.Phone = *changes.Phone
	}
	if changes.DateOfBirth != nil {
		if !validDate(*changes.DateOfBirth) {
			return User{}, ErrInvalidDate
		}
		existing.DateOfBirth = changes.DateOfBirth
	}
	if changes.ProfilePicture != nil {
		existing.ProfilePicture = changes.ProfilePicture
	}

	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
