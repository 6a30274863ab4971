package user

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT id, name, email, phone, "dateOfBirth", "profilePicture", "createdAt", "updatedAt"
		FROM users
		ORDER BY "createdAt" DESC, id DESC
	`
	getUserByIDQuery = `
		SELECT id, name, email, phone, "dateOfBirth", "profilePicture", "createdAt", "updatedAt"
		FROM users
		WHERE id = $1
	`
	getUserByEmailQuery = `
		SELECT id, name, email, phone, "dateOfBirth", "profilePicture", "createdAt", "updatedAt"
		FROM users
		WHERE email = $1
	`

	insertUserQuery = `
		INSERT INTO users (name, email, phone, "dateOfBirth", "profilePicture", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	updateUserQuery = `
		UPDATE users
		SET name = $1,
			email = $2,
			phone = $3,
			"dateOfBirth" = $4,
			"profilePicture" = $5,
			"updatedAt" = $6
		WHERE id = $7
	`
	// follows rows cascade via the foreign keys on the follows table
	deleteUserQuery = `DELETE FROM users WHERE id = $1`

	followerIDsQuery = `
		SELECT coalesce(array_agg("followerId" ORDER BY "followerId"), ARRAY[]::integer[])
		FROM follows
		WHERE "followingId" = $1
	`
	followingIDsQuery = `
		SELECT coalesce(array_agg("followingId" ORDER BY "followingId"), ARRAY[]::integer[])
		FROM follows
		WHERE "followerId" = $1
	`
	refsByIDQuery = `
		SELECT id, name
		FROM users
		WHERE id = ANY($1::int[])
		ORDER BY array_position($1::int[], id)
	`
	listFollowsQuery = `SELECT "followerId", "followingId" FROM follows`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]User, error) {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	byID := make(map[int]int)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		byID[user.ID] = len(users)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// one pass over the join table annotates every listed user
	edges, err := r.db.Query(listFollowsQuery)
	if err != nil {
		return nil, err
	}
	defer edges.Close()

	for edges.Next() {
		var followerID, followingID int
		if err := edges.Scan(&followerID, &followingID); err != nil {
			return nil, err
		}
		fi, fok := byID[followerID]
		gi, gok := byID[followingID]
		if !fok || !gok {
			continue
		}
		users[gi].Followers = append(users[gi].Followers, Ref{ID: users[fi].ID, Name: users[fi].Name})
		users[fi].Following = append(users[fi].Following, Ref{ID: users[gi].ID, Name: users[gi].Name})
	}
	if err := edges.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(getUserByIDQuery, id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	if user.Followers, err = r.refs(followerIDsQuery, id); err != nil {
		return User{}, err
	}
	if user.Following, err = r.refs(followingIDsQuery, id); err != nil {
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	row := r.db.QueryRow(getUserByEmailQuery, email)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		user.Name,
		user.Email,
		user.Phone,
		user.DateOfBirth,
		user.ProfilePicture,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	user.ID = id
	user.Followers = []Ref{}
	user.Following = []Ref{}
	return user, nil
}

func (r *PostgresRepository) Update(id int, userUpdate User) (User, error) {
	result, err := r.db.Exec(
		updateUserQuery,
		userUpdate.Name,
		userUpdate.Email,
		userUpdate.Phone,
		userUpdate.DateOfBirth,
		userUpdate.ProfilePicture,
		userUpdate.UpdatedAt,
		id,
	)
	if err != nil {
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// refs resolves one annotation direction for a user: collect the ids from
// the join table, then load id+name pairs preserving that order.
func (r *PostgresRepository) refs(idsQuery string, id int) ([]Ref, error) {
	var ids pq.Int64Array
	if err := r.db.QueryRow(idsQuery, id).Scan(&ids); err != nil {
		return nil, err
	}

	out := make([]Ref, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(refsByIDQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}

	return out, rows.Err()
}

func scanUser(scanner rowScanner) (User, error) {
	user := User{Followers: []Ref{}, Following: []Ref{}}
	var phone sql.NullString
	var dateOfBirth sql.NullString
	var picture sql.NullString
	var createdAt sql.NullString
	var updatedAt sql.NullString

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
		return User{}, err
	}

	if phone.Valid {
		user.Phone = phone.String
	}
	if dateOfBirth.Valid {
		user.DateOfBirth = &dateOfBirth.String
	}
	if picture.Valid {
		user.ProfilePicture = &picture.String
	}
	if createdAt.Valid {
		user.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.String
	}

	return user, nil
}
