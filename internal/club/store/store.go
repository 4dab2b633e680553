package store

import (
	"context"
	"errors"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and to stop callers from accidentally nesting
// transactions.
type Store interface {
	Users() Users
	Books() Books
	Clubs() Clubs
	Memberships() Memberships
	Invites() Invites
	Follows() Follows
	CurrentBooks() CurrentBooks
	Reviews() Reviews
	Meetings() Meetings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle multi-step operations that
	// must be atomic (e.g., invite acceptance).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during password login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// DeactivateUser flips active=0 and bumps updated_at. The row is kept
	// so historical memberships and invites stay resolvable.
	DeactivateUser(ctx context.Context, userID string) error
}

type Books interface {
	// CreateBook inserts a new catalogue entry (id is ULID).
	CreateBook(ctx context.Context, b domain.Book) error

	// GetBookByID returns a book by id.
	GetBookByID(ctx context.Context, id string) (domain.Book, error)
}

type Clubs interface {
	// CreateClub inserts a new club (id is ULID).
	CreateClub(ctx context.Context, c domain.BookClub) error

	// GetClubByID returns a club by id.
	GetClubByID(ctx context.Context, id string) (domain.BookClub, error)

	// UpdateClubOwner sets the denormalised owner_id and bumps updated_at.
	UpdateClubOwner(ctx context.Context, clubID, ownerID string) error

	// UpdateClubStatus flips a club between active and archived.
	UpdateClubStatus(ctx context.Context, clubID string, status domain.ClubStatus) error

	// DeleteClub removes the club; memberships, invites and reading
	// intervals cascade per schema.
	DeleteClub(ctx context.Context, clubID string) error
}

type Memberships interface {
	// CreateMembership inserts a membership row. Returns ErrAlreadyExists
	// if the user is already in the club (unique user+club constraint).
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership returns the membership for a user+club pair.
	GetMembership(ctx context.Context, userID, clubID string) (domain.Membership, error)

	// ListClubMembers returns the roster with usernames, owner first then
	// by join date.
	ListClubMembers(ctx context.Context, clubID string) ([]domain.ClubMember, error)

	// ListClubsForUser returns every club the user belongs to, with the
	// user's role, ordered by join date.
	ListClubsForUser(ctx context.Context, userID string) ([]domain.UserClub, error)

	// UpdateMembershipRole sets the role for a user+club pair.
	UpdateMembershipRole(ctx context.Context, userID, clubID string, role domain.Role) error

	// DeleteMembership removes a user from a club. Returns ErrNotFound if
	// no membership existed.
	DeleteMembership(ctx context.Context, userID, clubID string) error
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is the SHA-256
	// fingerprint of the signed token). Returns ErrAlreadyExists when a
	// pending invite for the same sender+recipient+club already exists.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByTokenHash returns the invite matching a token fingerprint.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// UpdateInviteStatusFromPending transitions an invite out of pending.
	// Returns ErrNotFound if the invite is missing or no longer pending,
	// which makes accept/decline single-shot under concurrency.
	UpdateInviteStatusFromPending(ctx context.Context, inviteID string, status domain.InviteStatus) error

	// ListInvitesBySender returns invites sent by a user, newest first.
	ListInvitesBySender(ctx context.Context, senderID string) ([]domain.Invite, error)

	// ListInvitesByRecipient returns invites addressed to a user, newest
	// first. A non-empty status restricts the listing to that state.
	ListInvitesByRecipient(ctx context.Context, recipientID string, status domain.InviteStatus) ([]domain.Invite, error)

	// DeleteExpiredInvites removes pending invites whose expiry has passed.
	DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error)

	// DeleteProcessedInvitesBefore removes accepted/declined invites whose
	// last update is older than the cutoff (audit retention housekeeping).
	DeleteProcessedInvitesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Follows interface {
	// CreateFollow inserts a follow edge. Returns ErrAlreadyExists if the
	// edge is already present.
	CreateFollow(ctx context.Context, e domain.FollowEdge) error

	// DeleteFollow removes a follow edge. Returns ErrNotFound if the edge
	// did not exist.
	DeleteFollow(ctx context.Context, followerID, followedID string) error

	// FollowExists reports whether follower follows followed.
	FollowExists(ctx context.Context, followerID, followedID string) (bool, error)

	// ListFollowers returns one page of users following userID, oldest
	// edge first with edge id as tiebreak.
	ListFollowers(ctx context.Context, userID string, limit, offset int) ([]domain.UserRef, error)

	// ListFollowing returns one page of users userID follows, oldest edge
	// first with edge id as tiebreak.
	ListFollowing(ctx context.Context, userID string, limit, offset int) ([]domain.UserRef, error)
}

type Reviews interface {
	// CreateReview inserts a review (id is ULID).
	CreateReview(ctx context.Context, rv domain.Review) error

	// GetReviewByID returns a review by id.
	GetReviewByID(ctx context.Context, id string) (domain.Review, error)

	// ListReviewsByBook returns a book's reviews, newest first.
	ListReviewsByBook(ctx context.Context, bookID string) ([]domain.Review, error)

	// DeleteReview removes a review. Returns ErrNotFound if it did not exist.
	DeleteReview(ctx context.Context, id string) error
}

type Meetings interface {
	// CreateMeeting inserts a meeting (id is ULID).
	CreateMeeting(ctx context.Context, m domain.Meeting) error

	// GetMeetingByID returns a meeting by id.
	GetMeetingByID(ctx context.Context, id string) (domain.Meeting, error)

	// ListMeetingsByClub returns a club's meetings, soonest meeting date
	// first.
	ListMeetingsByClub(ctx context.Context, clubID string) ([]domain.Meeting, error)

	// DeleteMeeting removes a meeting. Returns ErrNotFound if it did not
	// exist.
	DeleteMeeting(ctx context.Context, id string) error
}

type CurrentBooks interface {
	// CreateCurrentBook opens a new reading interval. Returns
	// ErrAlreadyExists if the club already has an open interval (partial
	// unique index on end_date IS NULL).
	CreateCurrentBook(ctx context.Context, cb domain.CurrentBook) error

	// CloseCurrentBook stamps end_date on the club's open interval.
	// Returns ErrNotFound if no interval is open.
	CloseCurrentBook(ctx context.Context, clubID string, end time.Time) error

	// GetOpenCurrentBook returns the club's open interval with book details.
	GetOpenCurrentBook(ctx context.Context, clubID string) (domain.ReadingEntry, error)

	// ListReadingHistory returns all of a club's intervals, most recent first.
	ListReadingHistory(ctx context.Context, clubID string) ([]domain.ReadingEntry, error)
}
