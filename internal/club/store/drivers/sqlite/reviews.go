package sqlite

import (
	"context"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type reviewsRepo struct {
	db dbtx
}

func (r *reviewsRepo) CreateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (id, user_id, book_id, rating, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rv.ID, rv.UserID, rv.BookID, rv.Rating, rv.Content, rv.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *reviewsRepo) GetReviewByID(ctx context.Context, id string) (domain.Review, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, book_id, rating, content, created_at
		FROM reviews WHERE id = ?`, id)

	var rv domain.Review
	if err := row.Scan(&rv.ID, &rv.UserID, &rv.BookID, &rv.Rating, &rv.Content, &rv.CreatedAt); err != nil {
		return domain.Review{}, mapNotFound(err)
	}
	return rv, nil
}

func (r *reviewsRepo) ListReviewsByBook(ctx context.Context, bookID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, book_id, rating, content, created_at
		FROM reviews
		WHERE book_id = ?
		ORDER BY created_at DESC, id DESC`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.BookID, &rv.Rating, &rv.Content, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *reviewsRepo) DeleteReview(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
