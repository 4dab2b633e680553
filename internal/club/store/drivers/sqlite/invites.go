package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, sender_id, recipient_id, club_id, status, token_hash, expires_at, created_at, updated_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invites (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.SenderID, inv.RecipientID, inv.ClubID, string(inv.Status),
		inv.TokenHash, inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM invites WHERE token_hash = ?`, hash)
	return scanInvite(row)
}

func (r *invitesRepo) UpdateInviteStatusFromPending(ctx context.Context, inviteID string, status domain.InviteStatus) error {
	// Guarded transition: only a pending invite moves, so concurrent
	// accept/decline attempts resolve to exactly one winner.
	res, err := r.db.ExecContext(ctx, `
		UPDATE invites SET status = ?, updated_at = ?
		WHERE id = ? AND status = 'pending'`,
		string(status), time.Now().UTC(), inviteID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *invitesRepo) ListInvitesBySender(ctx context.Context, senderID string) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+inviteColumns+` FROM invites
		WHERE sender_id = ? ORDER BY created_at DESC, id DESC`, senderID)
	if err != nil {
		return nil, err
	}
	return scanInvites(rows)
}

func (r *invitesRepo) ListInvitesByRecipient(ctx context.Context, recipientID string, status domain.InviteStatus) ([]domain.Invite, error) {
	query := `
		SELECT ` + inviteColumns + ` FROM invites
		WHERE recipient_id = ?`
	args := []any{recipientID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanInvites(rows)
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM invites WHERE status = 'pending' AND expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invitesRepo) DeleteProcessedInvitesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM invites WHERE status IN ('accepted', 'declined') AND updated_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanInvite(row *sql.Row) (domain.Invite, error) {
	var inv domain.Invite
	var status string
	err := row.Scan(&inv.ID, &inv.SenderID, &inv.RecipientID, &inv.ClubID, &status,
		&inv.TokenHash, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	inv.Status = domain.InviteStatus(status)
	return inv, nil
}

func scanInvites(rows *sql.Rows) ([]domain.Invite, error) {
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		var inv domain.Invite
		var status string
		err := rows.Scan(&inv.ID, &inv.SenderID, &inv.RecipientID, &inv.ClubID, &status,
			&inv.TokenHash, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return nil, err
		}
		inv.Status = domain.InviteStatus(status)
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}
