package sqlite

import (
	"context"
	"database/sql"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type followsRepo struct {
	db dbtx
}

func (r *followsRepo) CreateFollow(ctx context.Context, e domain.FollowEdge) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES (?, ?, ?)`,
		e.FollowerID, e.FollowedID, e.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *followsRepo) DeleteFollow(ctx context.Context, followerID, followedID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM follows WHERE follower_id = ? AND followed_id = ?`,
		followerID, followedID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *followsRepo) FollowExists(ctx context.Context, followerID, followedID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM follows WHERE follower_id = ? AND followed_id = ?`,
		followerID, followedID)

	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *followsRepo) ListFollowers(ctx context.Context, userID string, limit, offset int) ([]domain.UserRef, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followed_id = ?
		ORDER BY f.created_at, f.follower_id
		LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanUserRefs(rows)
}

func (r *followsRepo) ListFollowing(ctx context.Context, userID string, limit, offset int) ([]domain.UserRef, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username
		FROM follows f
		JOIN users u ON u.id = f.followed_id
		WHERE f.follower_id = ?
		ORDER BY f.created_at, f.followed_id
		LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanUserRefs(rows)
}

func scanUserRefs(rows *sql.Rows) ([]domain.UserRef, error) {
	defer rows.Close()

	var users []domain.UserRef
	for rows.Next() {
		var u domain.UserRef
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
