package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var ErrInvalidBook = errors.New("book title and author are required")

// BookService manages the shared book catalogue.
type BookService struct {
	Store store.Store
}

// AddBook adds a book to the catalogue. Duplicate titles are allowed;
// editions differ and the catalogue is append-only.
func (s *BookService) AddBook(ctx context.Context, title, author, isbn string) (domain.Book, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" || len(title) > 500 || len(author) > 200 {
		return domain.Book{}, ErrInvalidBook
	}

	book := domain.Book{
		ID:        idx.New().String(),
		Title:     title,
		Author:    author,
		ISBN:      strings.TrimSpace(isbn),
		CreatedAt: nowUTC(),
	}

	if err := s.Store.Books().CreateBook(ctx, book); err != nil {
		log.Error("failed to create book", slog.Any("error", err))
		return domain.Book{}, err
	}

	log.Debug("book added",
		slog.String("book_id", book.ID),
		slog.String("title", book.Title),
	)
	return book, nil
}

// GetBook returns a book by id.
func (s *BookService) GetBook(ctx context.Context, bookID string) (domain.Book, error) {
	book, err := s.Store.Books().GetBookByID(ctx, bookID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Book{}, ErrBookNotFound
	}
	return book, err
}
