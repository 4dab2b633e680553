package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/cryptox"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/jwtx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var (
	ErrInvalidUsername    = errors.New("username must be 3-32 chars, alphanumeric with _ or -")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPassword    = errors.New("password must be 8-128 chars")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is deactivated")
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

// UserService handles registration, login and account lifecycle.
type UserService struct {
	Store store.Store

	// Codec signs access tokens; Issuer and AccessTTL feed the claims.
	Codec     *jwtx.Codec
	Issuer    string
	AccessTTL time.Duration
}

// Register creates a new account. Username and email uniqueness is
// enforced by the database; a duplicate surfaces as ErrUserExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if !usernameRe.MatchString(username) {
		return domain.User{}, ErrInvalidUsername
	}
	if !validEmail(email) {
		return domain.User{}, ErrInvalidEmail
	}
	if len(password) < 8 || len(password) > 128 {
		return domain.User{}, ErrInvalidPassword
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := nowUTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with taken username or email",
				slog.String("username", username),
			)
			return domain.User{}, ErrUserExists
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// Login verifies the password and mints a signed access token.
// Deactivated accounts cannot log in.
func (s *UserService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login failed", slog.String("username", username))
		return domain.User{}, "", ErrInvalidCredentials
	}

	if !user.Active {
		log.Warn("login attempted on deactivated account",
			slog.String("user_id", user.ID),
		)
		return domain.User{}, "", ErrAccountDisabled
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Username, s.Issuer, s.AccessTTL, nowUTC())
	token, err := s.Codec.SignAccess(claims)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

// GetUser returns a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

// Deactivate disables the account. The row is kept so memberships and
// invite history stay resolvable, but login and invite acceptance stop
// working.
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.Users().DeactivateUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to deactivate user", slog.Any("error", err))
		return err
	}

	log.Info("user deactivated", slog.String("user_id", userID))
	return nil
}

// validEmail applies the same loose shape check the web signup form does.
// Real validation happens when mail actually gets delivered.
func validEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
