package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aniketSingh0310/user-dash/internal/domain/entity"
	"github.com/aniketSingh0310/user-dash/internal/domain/repository"
)

// UserRepository is a database/sql implementation of UserRepository sharing
// the users table owned by the main application's migrations.
type UserRepository struct {
	db *sql.DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	const query = `
		INSERT INTO users (name, email, phone, "dateOfBirth", "profilePicture", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		nullable(user.DateOfBirth),
		nullable(user.ProfilePicture),
		user.CreatedAt.Format(time.RFC3339),
		user.UpdatedAt.Format(time.RFC3339),
	).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	result := *user
	return &result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
		SELECT id, name, email, phone, "dateOfBirth", "profilePicture", "createdAt", "updatedAt"
		FROM users
		WHERE id = $1
	`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
		SELECT id, name, email, phone, "dateOfBirth", "profilePicture", "createdAt", "updatedAt"
		FROM users
		ORDER BY "createdAt" DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	const query = `
		UPDATE users
		SET name = $1, email = $2, phone = $3, "dateOfBirth" = $4, "profilePicture" = $5, "updatedAt" = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		nullable(user.DateOfBirth),
		nullable(user.ProfilePicture),
		user.UpdatedAt.Format(time.RFC3339),
		user.ID,
	)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errors.New("user not found")
	}

	userCopy := *user
	return &userCopy, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("user not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(scanner rowScanner) (*entity.User, error) {
	var user entity.User
	var phone, dateOfBirth, picture, createdAt, updatedAt sql.NullString

	if err := scanner.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&phone,
		&dateOfBirth,
		&picture,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	user.Phone = phone.String
	user.DateOfBirth = dateOfBirth.String
	user.ProfilePicture = picture.String
	if createdAt.Valid {
		user.CreatedAt, _ = time.Parse(time.RFC3339, createdAt.String)
	}
	if updatedAt.Valid {
		user.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt.String)
	}

	return &user, nil
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
