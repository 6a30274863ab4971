package usecase

import (
	"context"

	"github.com/aniketSingh0310/user-dash/internal/domain/entity"
)

// UserUsecase exposes application-level operations for User.
type UserUsecase interface {
	Create(ctx context.Context, input CreateUserInput) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

// CreateUserInput carries data required to create a user.
type CreateUserInput struct {
	Name           string
	Email          string
	Phone          string
	DateOfBirth    string
	ProfilePicture string
}

// UpdateUserInput carries data required to update a user. Empty fields are
// left unchanged.
type UpdateUserInput struct {
	Name           string
	Email          string
	Phone          string
	DateOfBirth    string
	ProfilePicture string
}
