package sqlite

import (
	"context"
	"database/sql"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type booksRepo struct {
	db dbtx
}

func (r *booksRepo) CreateBook(ctx context.Context, b domain.Book) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO books (id, title, author, isbn, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Author, mapStringNull(b.ISBN), b.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *booksRepo) GetBookByID(ctx context.Context, id string) (domain.Book, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, author, isbn, created_at
		FROM books WHERE id = ?`, id)

	var b domain.Book
	var isbn sql.NullString
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &isbn, &b.CreatedAt); err != nil {
		return domain.Book{}, mapNotFound(err)
	}
	b.ISBN = mapNullString(isbn)
	return b, nil
}
