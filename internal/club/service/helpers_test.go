package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/internal/club/store/drivers/sqlite"
	"github.com/chapterhouse/pageturn/pkg/cryptox"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "pageturn-test"

func TestMain(m *testing.M) {
	cryptox.SetPepperPath(filepath.Join(os.TempDir(), "pageturn-service-test-pepper"))
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestCodec(t *testing.T) *jwtx.Codec {
	t.Helper()

	codec, err := jwtx.NewEphemeralCodec(testIssuer)
	require.NoError(t, err)
	return codec
}

func seedUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "argon2:dummy",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedClub(t *testing.T, st store.Store, owner domain.User) domain.BookClub {
	t.Helper()

	svc := &MembershipService{Store: st}
	club, err := svc.CreateClub(context.Background(), owner.ID, owner.Username+"'s club", "")
	require.NoError(t, err)
	return club
}

func seedMember(t *testing.T, st store.Store, club domain.BookClub, user domain.User, role domain.Role) {
	t.Helper()

	require.NoError(t, st.Memberships().CreateMembership(context.Background(), domain.Membership{
		ID:       idx.New().String(),
		UserID:   user.ID,
		ClubID:   club.ID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}))
}

func seedBook(t *testing.T, st store.Store, title string) domain.Book {
	t.Helper()

	b := domain.Book{
		ID:        idx.New().String(),
		Title:     title,
		Author:    "Test Author",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Books().CreateBook(context.Background(), b))
	return b
}
