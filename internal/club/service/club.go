package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrNoCurrentBook = errors.New("club has no current book")
)

// ClubService owns the current-book aggregate: the series of reading
// intervals per club, with at most one open interval (the current book)
// at any time. The partial unique index on open intervals is the final
// authority; the close-then-open transition runs in one transaction.
type ClubService struct {
	Store store.Store
}

// SetCurrentBook closes the club's open interval, if any, and opens a new
// one for bookID. Owners and admins only. Setting the same book again
// still closes and reopens, which records a fresh start date.
func (s *ClubService) SetCurrentBook(ctx context.Context, actorID, clubID, bookID string) (domain.ReadingEntry, error) {
	log := slogx.FromContext(ctx)

	book, err := s.Store.Books().GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ReadingEntry{}, ErrBookNotFound
		}
		return domain.ReadingEntry{}, err
	}

	now := nowUTC()
	entry := domain.CurrentBook{
		ID:        idx.New().String(),
		ClubID:    clubID,
		BookID:    bookID,
		StartDate: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := memberOf(ctx, tx, actorID, clubID)
		if err != nil {
			return err
		}
		if !actor.Role.CanManageMembers() {
			return ErrForbidden
		}

		club, err := tx.Clubs().GetClubByID(ctx, clubID)
		if err != nil {
			return err
		}
		if club.Status == domain.ClubArchived {
			return ErrClubArchived
		}

		if err := tx.CurrentBooks().CloseCurrentBook(ctx, clubID, now); err != nil {
			// No open interval is fine; this is the club's first book.
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}
		return tx.CurrentBooks().CreateCurrentBook(ctx, entry)
	})
	if err != nil {
		return domain.ReadingEntry{}, err
	}

	log.Info("current book set",
		slog.String("club_id", clubID),
		slog.String("book_id", bookID),
		slog.String("actor_id", actorID),
	)

	return domain.ReadingEntry{
		CurrentBook: entry,
		Title:       book.Title,
		Author:      book.Author,
	}, nil
}

// CurrentBook returns the club's open reading interval.
func (s *ClubService) CurrentBook(ctx context.Context, clubID string) (domain.ReadingEntry, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return domain.ReadingEntry{}, err
	}

	entry, err := s.Store.CurrentBooks().GetOpenCurrentBook(ctx, clubID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ReadingEntry{}, ErrNoCurrentBook
		}
		return domain.ReadingEntry{}, err
	}
	return entry, nil
}

// ReadingHistory returns the club's reading intervals, most recent first.
// The open interval, when present, is the first entry.
func (s *ClubService) ReadingHistory(ctx context.Context, clubID string) ([]domain.ReadingEntry, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, err
	}
	return s.Store.CurrentBooks().ListReadingHistory(ctx, clubID)
}

func (s *ClubService) requireClub(ctx context.Context, clubID string) error {
	_, err := s.Store.Clubs().GetClubByID(ctx, clubID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrClubNotFound
	}
	return err
}

// memberOf fetches the actor's membership inside a transaction,
// distinguishing a missing club from a missing membership.
func memberOf(ctx context.Context, tx store.Tx, userID, clubID string) (domain.Membership, error) {
	m, err := tx.Memberships().GetMembership(ctx, userID, clubID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Membership{}, err
	}
	if _, cerr := tx.Clubs().GetClubByID(ctx, clubID); cerr != nil {
		if errors.Is(cerr, store.ErrNotFound) {
			return domain.Membership{}, ErrClubNotFound
		}
		return domain.Membership{}, cerr
	}
	return domain.Membership{}, ErrNotMember
}
