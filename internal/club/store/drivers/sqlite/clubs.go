package sqlite

import (
	"context"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type clubsRepo struct {
	db dbtx
}

func (r *clubsRepo) CreateClub(ctx context.Context, c domain.BookClub) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO book_clubs (id, name, synopsis, owner_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Synopsis, c.OwnerID, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *clubsRepo) GetClubByID(ctx context.Context, id string) (domain.BookClub, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, synopsis, owner_id, status, created_at, updated_at
		FROM book_clubs WHERE id = ?`, id)

	var c domain.BookClub
	var status string
	if err := row.Scan(&c.ID, &c.Name, &c.Synopsis, &c.OwnerID, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.BookClub{}, mapNotFound(err)
	}
	c.Status = domain.ClubStatus(status)
	return c, nil
}

func (r *clubsRepo) UpdateClubStatus(ctx context.Context, clubID string, status domain.ClubStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE book_clubs SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), clubID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *clubsRepo) UpdateClubOwner(ctx context.Context, clubID, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE book_clubs SET owner_id = ?, updated_at = ? WHERE id = ?`,
		ownerID, time.Now().UTC(), clubID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *clubsRepo) DeleteClub(ctx context.Context, clubID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM book_clubs WHERE id = ?`, clubID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
