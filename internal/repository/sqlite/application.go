package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/underdog-devs/mentorship-api/pkg/models"
)

const applicationColumns = `application_id, position, profile_id, approved, application_notes, created, updated`

var applicationUpdatable = []string{"position", "approved", "application_notes"}

func (r *SQLiteRepo) CreateApplication(ctx context.Context, a *models.ApplicationTicket) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("application ticket is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx,
		`INSERT INTO application_tickets (position, profile_id, approved, application_notes, created, updated) VALUES (?, ?, ?, ?, ?, ?)`,
		a.Position, a.ProfileID, a.Approved, a.Notes, ts, ts)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetApplication(ctx context.Context, id int64) (*models.ApplicationTicket, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+applicationColumns+` FROM application_tickets WHERE application_id = ?`, id)
	var a models.ApplicationTicket
	if err := row.Scan(&a.ApplicationID, &a.Position, &a.ProfileID, &a.Approved, &a.Notes, &a.Created, &a.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &a, nil
}

func (r *SQLiteRepo) ListApplications(ctx context.Context) ([]models.ApplicationTicket, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+applicationColumns+` FROM application_tickets ORDER BY application_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ApplicationTicket
	for rows.Next() {
		var a models.ApplicationTicket
		if err := rows.Scan(&a.ApplicationID, &a.Position, &a.ProfileID, &a.Approved, &a.Notes, &a.Created, &a.Updated); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateApplication(ctx context.Context, id int64, changes map[string]any) (int64, error) {
	set, args := buildSet(changes, applicationUpdatable)
	if set == "" {
		a, err := r.GetApplication(ctx, id)
		if err != nil {
			return 0, err
		}
		if a != nil {
			return 1, nil
		}
		return 0, nil
	}

	args = append(args, now(), id)
	res, err := r.conn.Exec(ctx, `UPDATE application_tickets SET `+set+`, updated = ? WHERE application_id = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
