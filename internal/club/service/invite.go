package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/cryptox"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/jwtx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var (
	ErrRecipientNotFound   = errors.New("recipient not found")
	ErrSelfInvite          = errors.New("cannot invite yourself")
	ErrDuplicatePending    = errors.New("a pending invite for this user and club already exists")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrAlreadyProcessed    = errors.New("invite has already been accepted or declined")
	ErrInvalidToken        = errors.New("invite token is invalid")
	ErrExpiredToken        = errors.New("invite token has expired")
	ErrInvalidStatusFilter = errors.New("unknown invite status filter")
)

// InviteService drives the invite state machine. An invite is born
// pending with an Ed25519-signed token; accept and decline are the only
// transitions and both are single-shot, enforced by a guarded UPDATE on
// the pending status.
type InviteService struct {
	Store store.Store

	Codec  *jwtx.Codec
	Issuer string
	TTL    time.Duration // invite token lifetime, 7 days by default
}

// Send invites recipientID to clubID. Any member of the club may invite.
// The partial unique index on pending invites makes concurrent duplicate
// sends collapse into one invite and one ErrDuplicatePending.
func (s *InviteService) Send(ctx context.Context, senderID, recipientID, clubID string) (domain.Invite, string, error) {
	log := slogx.FromContext(ctx)

	if senderID == recipientID {
		return domain.Invite{}, "", ErrSelfInvite
	}

	// 1. The club must exist and still be active.
	club, err := s.Store.Clubs().GetClubByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, "", ErrClubNotFound
		}
		return domain.Invite{}, "", err
	}
	if club.Status == domain.ClubArchived {
		return domain.Invite{}, "", ErrClubArchived
	}

	// 2. Sender must belong to the club.
	if _, err := s.Store.Memberships().GetMembership(ctx, senderID, clubID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, "", ErrNotMember
		}
		return domain.Invite{}, "", err
	}

	// 3. Recipient must exist and be active.
	recipient, err := s.Store.Users().GetUserByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, "", ErrRecipientNotFound
		}
		return domain.Invite{}, "", err
	}
	if !recipient.Active {
		return domain.Invite{}, "", ErrRecipientNotFound
	}

	// 4. Recipient must not already be a member.
	_, err = s.Store.Memberships().GetMembership(ctx, recipientID, clubID)
	if err == nil {
		return domain.Invite{}, "", ErrAlreadyMember
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Invite{}, "", err
	}

	// 5. Mint and sign the invite token, then store its fingerprint.
	// The raw token is returned once and never persisted.
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultInviteTokenTTL
	}
	now := nowUTC()
	claims := jwtx.NewInviteClaims(senderID, recipientID, clubID, s.Issuer, ttl, now)
	token, err := s.Codec.SignInvite(claims)
	if err != nil {
		log.Error("failed to sign invite token", slog.Any("error", err))
		return domain.Invite{}, "", err
	}

	invite := domain.Invite{
		ID:          idx.New().String(),
		SenderID:    senderID,
		RecipientID: recipientID,
		ClubID:      clubID,
		Status:      domain.InvitePending,
		TokenHash:   cryptox.FingerprintToken(token),
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invite{}, "", ErrDuplicatePending
		}
		log.Error("failed to create invite", slog.Any("error", err))
		return domain.Invite{}, "", err
	}

	log.Info("invite sent",
		slog.String("invite_id", invite.ID),
		slog.String("sender_id", senderID),
		slog.String("recipient_id", recipientID),
		slog.String("club_id", clubID),
	)
	return invite, token, nil
}

// Accept redeems an invite token for actorID, creating a member-role
// membership. The signature is verified before any database access, so a
// forged or expired token never touches the invites table.
func (s *InviteService) Accept(ctx context.Context, actorID, token string) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	claims, invite, err := s.resolve(ctx, actorID, token)
	if err != nil {
		return domain.Membership{}, err
	}

	membership := domain.Membership{
		ID:       idx.New().String(),
		UserID:   claims.RecipientID,
		ClubID:   claims.ClubID,
		Role:     domain.RoleMember,
		JoinedAt: nowUTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Guarded transition: exactly one of two concurrent accepts wins.
		if err := tx.Invites().UpdateInviteStatusFromPending(ctx, invite.ID, domain.InviteAccepted); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAlreadyProcessed
			}
			return err
		}

		err := tx.Memberships().CreateMembership(ctx, membership)
		if errors.Is(err, store.ErrAlreadyExists) {
			// Joined through another invite in the meantime; the accept
			// still stands.
			return nil
		}
		return err
	})
	if err != nil {
		return domain.Membership{}, err
	}

	log.Info("invite accepted",
		slog.String("invite_id", invite.ID),
		slog.String("user_id", actorID),
		slog.String("club_id", claims.ClubID),
	)
	return membership, nil
}

// Decline marks the invite declined. The row is kept for audit; the token
// can no longer be redeemed.
func (s *InviteService) Decline(ctx context.Context, actorID, token string) error {
	log := slogx.FromContext(ctx)

	_, invite, err := s.resolve(ctx, actorID, token)
	if err != nil {
		return err
	}

	if err := s.Store.Invites().UpdateInviteStatusFromPending(ctx, invite.ID, domain.InviteDeclined); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAlreadyProcessed
		}
		return err
	}

	log.Info("invite declined",
		slog.String("invite_id", invite.ID),
		slog.String("user_id", actorID),
	)
	return nil
}

// ListSent returns invites sent by userID, newest first.
func (s *InviteService) ListSent(ctx context.Context, userID string) ([]domain.Invite, error) {
	return s.Store.Invites().ListInvitesBySender(ctx, userID)
}

// ListReceived returns invites addressed to userID, newest first. A
// non-empty status narrows the listing to that state.
func (s *InviteService) ListReceived(ctx context.Context, userID string, status domain.InviteStatus) ([]domain.Invite, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatusFilter
	}
	return s.Store.Invites().ListInvitesByRecipient(ctx, userID, status)
}

// resolve verifies the token signature and expiry, checks the actor is
// the addressed recipient, then loads the stored invite by fingerprint.
func (s *InviteService) resolve(ctx context.Context, actorID, token string) (*jwtx.InviteClaims, domain.Invite, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.Codec.VerifyInvite(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return nil, domain.Invite{}, ErrExpiredToken
		}
		log.Warn("invite token verification failed", slog.Any("error", err))
		return nil, domain.Invite{}, ErrInvalidToken
	}

	// Only the addressed recipient may act on the invite.
	if claims.RecipientID != actorID {
		return nil, domain.Invite{}, ErrForbidden
	}

	invite, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Valid signature but no row: the invite was pruned or its
			// club was deleted.
			return nil, domain.Invite{}, ErrInviteNotFound
		}
		return nil, domain.Invite{}, err
	}

	return claims, invite, nil
}
