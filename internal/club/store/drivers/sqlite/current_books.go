package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type currentBooksRepo struct {
	db dbtx
}

func (r *currentBooksRepo) CreateCurrentBook(ctx context.Context, cb domain.CurrentBook) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO current_books (id, club_id, book_id, start_date, end_date)
		VALUES (?, ?, ?, ?, ?)`,
		cb.ID, cb.ClubID, cb.BookID, cb.StartDate, mapOptionalTime(cb.EndDate),
	)
	return mapConstraint(err)
}

func (r *currentBooksRepo) CloseCurrentBook(ctx context.Context, clubID string, end time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE current_books SET end_date = ?
		WHERE club_id = ? AND end_date IS NULL`,
		end, clubID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *currentBooksRepo) GetOpenCurrentBook(ctx context.Context, clubID string) (domain.ReadingEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT cb.id, cb.club_id, cb.book_id, cb.start_date, cb.end_date, b.title, b.author
		FROM current_books cb
		JOIN books b ON b.id = cb.book_id
		WHERE cb.club_id = ? AND cb.end_date IS NULL`, clubID)

	var e domain.ReadingEntry
	var end sql.NullTime
	err := row.Scan(&e.ID, &e.ClubID, &e.BookID, &e.StartDate, &end, &e.Title, &e.Author)
	if err != nil {
		return domain.ReadingEntry{}, mapNotFound(err)
	}
	e.EndDate = mapNullTimePtr(end)
	return e, nil
}

func (r *currentBooksRepo) ListReadingHistory(ctx context.Context, clubID string) ([]domain.ReadingEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cb.id, cb.club_id, cb.book_id, cb.start_date, cb.end_date, b.title, b.author
		FROM current_books cb
		JOIN books b ON b.id = cb.book_id
		WHERE cb.club_id = ?
		ORDER BY cb.start_date DESC, cb.id DESC`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ReadingEntry
	for rows.Next() {
		var e domain.ReadingEntry
		var end sql.NullTime
		err := rows.Scan(&e.ID, &e.ClubID, &e.BookID, &e.StartDate, &end, &e.Title, &e.Author)
		if err != nil {
			return nil, err
		}
		e.EndDate = mapNullTimePtr(end)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
