package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aniketSingh0310/user-dash/internal/domain/entity"
	"github.com/aniketSingh0310/user-dash/internal/domain/repository"
)

// UserService implements UserUsecase with repository dependency.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}

	user := &entity.User{
		Name:           name,
		Email:          email,
		Phone:          strings.TrimSpace(input.Phone),
		DateOfBirth:    strings.TrimSpace(input.DateOfBirth),
		ProfilePicture: strings.TrimSpace(input.ProfilePicture),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error) {
	if id <= 0 {
		return nil, errors.New("invalid user id")
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) != "" {
		user.Name = strings.TrimSpace(input.Name)
	}
	if strings.TrimSpace(input.Email) != "" {
		user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	}
	if strings.TrimSpace(input.Phone) != "" {
		user.Phone = strings.TrimSpace(input.Phone)
	}
	if strings.TrimSpace(input.DateOfBirth) != "" {
		user.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	}
	if strings.TrimSpace(input.ProfilePicture) != "" {
		user.ProfilePicture = strings.TrimSpace(input.ProfilePicture)
	}

	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.New("invalid user id")
	}
	return s.repo.Delete(ctx, id)
}
