package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var (
	ErrClubNotFound    = errors.New("club not found")
	ErrClubArchived    = errors.New("club is archived")
	ErrInvalidClubName = errors.New("club name must be 1-100 chars")
	ErrInvalidRole     = errors.New("role must be admin or member")
	ErrNotMember       = errors.New("user is not a member of this club")
	ErrAlreadyMember   = errors.New("user is already a member of this club")
	ErrForbidden       = errors.New("operation not permitted for this role")
	ErrDeletionFailed  = errors.New("club deletion failed")
)

// MembershipService manages clubs and the membership ledger. Every club
// has exactly one owner; the memberships table is the authority on who
// belongs where, with the unique user+club constraint preventing
// duplicate joins even under concurrent requests.
type MembershipService struct {
	Store store.Store
}

// CreateClub creates a club and its owner membership atomically.
func (s *MembershipService) CreateClub(ctx context.Context, ownerID, name, synopsis string) (domain.BookClub, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return domain.BookClub{}, ErrInvalidClubName
	}

	now := nowUTC()
	club := domain.BookClub{
		ID:        idx.New().String(),
		Name:      name,
		Synopsis:  strings.TrimSpace(synopsis),
		OwnerID:   ownerID,
		Status:    domain.ClubActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clubs().CreateClub(ctx, club); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:       idx.New().String(),
			UserID:   ownerID,
			ClubID:   club.ID,
			Role:     domain.RoleOwner,
			JoinedAt: now,
		})
	})
	if err != nil {
		log.Error("failed to create club", slog.Any("error", err))
		return domain.BookClub{}, err
	}

	log.Info("club created",
		slog.String("club_id", club.ID),
		slog.String("owner_id", ownerID),
	)
	return club, nil
}

// AddMember inserts a member-role membership for userID in clubID. The
// unique user+club constraint is the authority on duplicates, so two
// concurrent adds collapse into one row and one ErrAlreadyMember.
func (s *MembershipService) AddMember(ctx context.Context, clubID, userID string) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Clubs().GetClubByID(ctx, clubID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrClubNotFound
		}
		return domain.Membership{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrUserNotFound
		}
		return domain.Membership{}, err
	}
	if !user.Active {
		return domain.Membership{}, ErrUserNotFound
	}

	m := domain.Membership{
		ID:       idx.New().String(),
		UserID:   userID,
		ClubID:   clubID,
		Role:     domain.RoleMember,
		JoinedAt: nowUTC(),
	}
	if err := s.Store.Memberships().CreateMembership(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Membership{}, ErrAlreadyMember
		}
		return domain.Membership{}, err
	}

	log.Info("member added",
		slog.String("club_id", clubID),
		slog.String("user_id", userID),
	)
	return m, nil
}

// ArchiveClub marks the club archived. History stays readable, but new
// invites and current-book changes are refused. Owner only.
func (s *MembershipService) ArchiveClub(ctx context.Context, actorID, clubID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := memberOf(ctx, tx, actorID, clubID)
		if err != nil {
			return err
		}
		if actor.Role != domain.RoleOwner {
			return ErrForbidden
		}

		club, err := tx.Clubs().GetClubByID(ctx, clubID)
		if err != nil {
			return err
		}
		if club.Status == domain.ClubArchived {
			return ErrClubArchived
		}
		return tx.Clubs().UpdateClubStatus(ctx, clubID, domain.ClubArchived)
	})
	if err != nil {
		return err
	}

	log.Info("club archived",
		slog.String("club_id", clubID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// GetClub returns a club by id.
func (s *MembershipService) GetClub(ctx context.Context, clubID string) (domain.BookClub, error) {
	club, err := s.Store.Clubs().GetClubByID(ctx, clubID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.BookClub{}, ErrClubNotFound
	}
	return club, err
}

// ListClubs returns every club the user belongs to, with their role in
// each, ordered by join date.
func (s *MembershipService) ListClubs(ctx context.Context, userID string) ([]domain.UserClub, error) {
	return s.Store.Memberships().ListClubsForUser(ctx, userID)
}

// ListMembers returns the club roster, owner first.
func (s *MembershipService) ListMembers(ctx context.Context, clubID string) ([]domain.ClubMember, error) {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return nil, err
	}
	return s.Store.Memberships().ListClubMembers(ctx, clubID)
}

// ChangeRole moves a member between admin and member. Owners and admins
// may re-role anyone but the owner, whose role is out of reach; ownership
// moves only via TransferOwnership.
func (s *MembershipService) ChangeRole(ctx context.Context, actorID, clubID, targetID string, role domain.Role) error {
	log := slogx.FromContext(ctx)

	if role != domain.RoleAdmin && role != domain.RoleMember {
		return ErrInvalidRole
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := memberOf(ctx, tx, actorID, clubID)
		if err != nil {
			return err
		}
		if !actor.Role.CanManageMembers() {
			return ErrForbidden
		}

		target, err := tx.Memberships().GetMembership(ctx, targetID, clubID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}
		if target.Role == domain.RoleOwner {
			return ErrForbidden
		}
		if target.Role == role {
			return nil
		}

		return tx.Memberships().UpdateMembershipRole(ctx, targetID, clubID, role)
	})
	if err != nil {
		return err
	}

	log.Info("member role changed",
		slog.String("club_id", clubID),
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.String("role", string(role)),
	)
	return nil
}

// RemoveMember removes targetID from the club. Any member may remove
// themselves (leave) except the owner, who must transfer ownership first.
// Owners and admins may remove anyone but the owner.
func (s *MembershipService) RemoveMember(ctx context.Context, actorID, clubID, targetID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := tx.Memberships().GetMembership(ctx, targetID, clubID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}

		if actorID == targetID {
			// Leaving. The owner can never leave their own club; the club
			// would be left headless.
			if target.Role == domain.RoleOwner {
				return ErrForbidden
			}
			return tx.Memberships().DeleteMembership(ctx, targetID, clubID)
		}

		actor, err := memberOf(ctx, tx, actorID, clubID)
		if err != nil {
			return err
		}
		if !actor.Role.CanManageMembers() {
			return ErrForbidden
		}
		// The owner can only leave via transfer, never be removed.
		if target.Role == domain.RoleOwner {
			return ErrForbidden
		}

		return tx.Memberships().DeleteMembership(ctx, targetID, clubID)
	})
	if err != nil {
		return err
	}

	log.Info("member removed",
		slog.String("club_id", clubID),
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
	)
	return nil
}

// TransferOwnership hands the club to another existing member. The old
// owner steps down to admin; both membership rows and the denormalised
// owner_id move in one transaction so there is never a moment with zero
// or two owners.
func (s *MembershipService) TransferOwnership(ctx context.Context, actorID, clubID, newOwnerID string) error {
	log := slogx.FromContext(ctx)

	if actorID == newOwnerID {
		return ErrForbidden
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := memberOf(ctx, tx, actorID, clubID)
		if err != nil {
			return err
		}
		if actor.Role != domain.RoleOwner {
			return ErrForbidden
		}

		if _, err := tx.Memberships().GetMembership(ctx, newOwnerID, clubID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}

		if err := tx.Memberships().UpdateMembershipRole(ctx, actorID, clubID, domain.RoleAdmin); err != nil {
			return err
		}
		if err := tx.Memberships().UpdateMembershipRole(ctx, newOwnerID, clubID, domain.RoleOwner); err != nil {
			return err
		}
		return tx.Clubs().UpdateClubOwner(ctx, clubID, newOwnerID)
	})
	if err != nil {
		return err
	}

	log.Info("club ownership transferred",
		slog.String("club_id", clubID),
		slog.String("old_owner_id", actorID),
		slog.String("new_owner_id", newOwnerID),
	)
	return nil
}

// DeleteClub removes the club with its memberships, invites and reading
// history (schema cascades). Owner only.
func (s *MembershipService) DeleteClub(ctx context.Context, actorID, clubID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := memberOf(ctx, tx, actorID, clubID)
		if err != nil {
			return err
		}
		if actor.Role != domain.RoleOwner {
			return ErrForbidden
		}
		if err := tx.Clubs().DeleteClub(ctx, clubID); err != nil {
			return fmt.Errorf("%w: %v", ErrDeletionFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("club deleted",
		slog.String("club_id", clubID),
		slog.String("actor_id", actorID),
	)
	return nil
}
