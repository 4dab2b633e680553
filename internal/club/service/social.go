package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrUserNotFound     = errors.New("user not found")
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// SocialService manages the asymmetric follow graph. Edges are
// one-directional; following someone never creates a reciprocal edge.
type SocialService struct {
	Store store.Store
}

// Follow makes follower follow followed. The primary key on the follows
// table is the authority on duplicates, so a concurrent double-follow
// resolves to a single edge and one ErrAlreadyFollowing.
func (s *SocialService) Follow(ctx context.Context, followerID, followedID string) error {
	log := slogx.FromContext(ctx)

	if followerID == followedID {
		return ErrSelfFollow
	}

	target, err := s.Store.Users().GetUserByID(ctx, followedID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch follow target", slog.Any("error", err))
		return err
	}
	if !target.Active {
		return ErrUserNotFound
	}

	err = s.Store.Follows().CreateFollow(ctx, domain.FollowEdge{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  nowUTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrAlreadyFollowing
		}
		log.Error("failed to create follow edge", slog.Any("error", err))
		return err
	}

	log.Debug("follow edge created",
		slog.String("follower_id", followerID),
		slog.String("followed_id", followedID),
	)
	return nil
}

// Unfollow removes the follower→followed edge.
func (s *SocialService) Unfollow(ctx context.Context, followerID, followedID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.Follows().DeleteFollow(ctx, followerID, followedID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFollowing
		}
		log.Error("failed to delete follow edge", slog.Any("error", err))
		return err
	}

	log.Debug("follow edge removed",
		slog.String("follower_id", followerID),
		slog.String("followed_id", followedID),
	)
	return nil
}

// IsFollowing reports whether follower follows followed.
func (s *SocialService) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.Store.Follows().FollowExists(ctx, followerID, followedID)
}

// Followers returns one page of users following userID, oldest edge first.
func (s *SocialService) Followers(ctx context.Context, userID string, limit, offset int) ([]domain.UserRef, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	limit, offset = ClampPage(limit, offset)
	return s.Store.Follows().ListFollowers(ctx, userID, limit, offset)
}

// Following returns one page of users userID follows, oldest edge first.
func (s *SocialService) Following(ctx context.Context, userID string, limit, offset int) ([]domain.UserRef, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	limit, offset = ClampPage(limit, offset)
	return s.Store.Follows().ListFollowing(ctx, userID, limit, offset)
}

func (s *SocialService) requireUser(ctx context.Context, userID string) error {
	_, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// ClampPage normalises paging parameters: a non-positive limit falls back to
// the default page size and limits above the cap are truncated.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
