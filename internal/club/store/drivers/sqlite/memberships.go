package sqlite

import (
	"context"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type membershipsRepo struct {
	db dbtx
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (id, user_id, club_id, role, joined_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.ClubID, string(m.Role), m.JoinedAt,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, userID, clubID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, club_id, role, joined_at
		FROM memberships WHERE user_id = ? AND club_id = ?`, userID, clubID)

	var m domain.Membership
	var role string
	if err := row.Scan(&m.ID, &m.UserID, &m.ClubID, &role, &m.JoinedAt); err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.Role = domain.Role(role)
	return m, nil
}

func (r *membershipsRepo) ListClubMembers(ctx context.Context, clubID string) ([]domain.ClubMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.user_id, u.username, m.role, m.joined_at
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.club_id = ?
		ORDER BY CASE m.role WHEN 'owner' THEN 0 WHEN 'admin' THEN 1 ELSE 2 END, m.joined_at, m.id`,
		clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.ClubMember
	for rows.Next() {
		var cm domain.ClubMember
		var role string
		if err := rows.Scan(&cm.UserID, &cm.Username, &role, &cm.JoinedAt); err != nil {
			return nil, err
		}
		cm.Role = domain.Role(role)
		members = append(members, cm)
	}
	return members, rows.Err()
}

func (r *membershipsRepo) ListClubsForUser(ctx context.Context, userID string) ([]domain.UserClub, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.club_id, c.name, c.synopsis, m.role, m.joined_at
		FROM memberships m
		JOIN book_clubs c ON c.id = m.club_id
		WHERE m.user_id = ?
		ORDER BY m.joined_at, m.id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []domain.UserClub
	for rows.Next() {
		var uc domain.UserClub
		var role string
		if err := rows.Scan(&uc.ClubID, &uc.Name, &uc.Synopsis, &role, &uc.JoinedAt); err != nil {
			return nil, err
		}
		uc.Role = domain.Role(role)
		clubs = append(clubs, uc)
	}
	return clubs, rows.Err()
}

func (r *membershipsRepo) UpdateMembershipRole(ctx context.Context, userID, clubID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE memberships SET role = ? WHERE user_id = ? AND club_id = ?`,
		string(role), userID, clubID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, userID, clubID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM memberships WHERE user_id = ? AND club_id = ?`, userID, clubID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
