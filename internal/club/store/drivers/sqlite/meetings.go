package sqlite

import (
	"context"

	"github.com/chapterhouse/pageturn/internal/club/domain"
)

type meetingsRepo struct {
	db dbtx
}

func (r *meetingsRepo) CreateMeeting(ctx context.Context, m domain.Meeting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meetings (id, club_id, creator_id, meeting_date, agenda, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ClubID, m.CreatorID, m.MeetingDate, m.Agenda, m.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *meetingsRepo) GetMeetingByID(ctx context.Context, id string) (domain.Meeting, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, club_id, creator_id, meeting_date, agenda, created_at
		FROM meetings WHERE id = ?`, id)

	var m domain.Meeting
	if err := row.Scan(&m.ID, &m.ClubID, &m.CreatorID, &m.MeetingDate, &m.Agenda, &m.CreatedAt); err != nil {
		return domain.Meeting{}, mapNotFound(err)
	}
	return m, nil
}

func (r *meetingsRepo) ListMeetingsByClub(ctx context.Context, clubID string) ([]domain.Meeting, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, club_id, creator_id, meeting_date, agenda, created_at
		FROM meetings
		WHERE club_id = ?
		ORDER BY meeting_date ASC, id ASC`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Meeting
	for rows.Next() {
		var m domain.Meeting
		if err := rows.Scan(&m.ID, &m.ClubID, &m.CreatorID, &m.MeetingDate, &m.Agenda, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *meetingsRepo) DeleteMeeting(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
