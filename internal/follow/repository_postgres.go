package follow

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	followExistsQuery = `SELECT 1 FROM follows WHERE "followerId" = $1 AND "followingId" = $2`
	// ON CONFLICT makes the composite primary key absorb the race between
	// the existence check and the insert; the loser just sees zero rows.
	addFollowQuery    = `INSERT INTO follows ("followerId", "followingId") VALUES ($1, $2) ON CONFLICT DO NOTHING`
	removeFollowQuery = `DELETE FROM follows WHERE "followerId" = $1 AND "followingId" = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FollowExists(followerID, followingID int) (bool, error) {
	var one int
	err := r.db.QueryRow(followExistsQuery, followerID, followingID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) AddFollow(followerID, followingID int) error {
	result, err := r.db.Exec(addFollowQuery, followerID, followingID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyFollowing
	}
	return nil
}

func (r *PostgresRepository) RemoveFollow(followerID, followingID int) error {
	_, err := r.db.Exec(removeFollowQuery, followerID, followingID)
	return err
}
