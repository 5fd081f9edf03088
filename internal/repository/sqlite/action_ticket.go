package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/underdog-devs/mentorship-api/pkg/models"
)

const actionColumns = `action_ticket_id, submitted_by, subject_id, issue, pending, resolved, strike, comments`

var actionUpdatable = []string{"issue", "pending", "resolved", "strike", "comments"}

func (r *SQLiteRepo) CreateAction(ctx context.Context, a *models.ActionTicket) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("action ticket is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO action_tickets (submitted_by, subject_id, issue, pending, resolved, strike, comments) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.SubmittedBy, a.SubjectID, a.Issue, a.Pending, a.Resolved, a.Strike, a.Comments)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetAction(ctx context.Context, id int64) (*models.ActionTicket, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+actionColumns+` FROM action_tickets WHERE action_ticket_id = ?`, id)
	a, err := scanAction(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return a, nil
}

func (r *SQLiteRepo) ListActions(ctx context.Context) ([]models.ActionTicket, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+actionColumns+` FROM action_tickets ORDER BY action_ticket_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ActionTicket
	for rows.Next() {
		a, err := scanAction(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateAction(ctx context.Context, id int64, changes map[string]any) (int64, error) {
	set, args := buildSet(changes, actionUpdatable)
	if set == "" {
		a, err := r.GetAction(ctx, id)
		if err != nil {
			return 0, err
		}
		if a != nil {
			return 1, nil
		}
		return 0, nil
	}

	args = append(args, id)
	res, err := r.conn.Exec(ctx, `UPDATE action_tickets SET `+set+` WHERE action_ticket_id = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepo) DeleteAction(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM action_tickets WHERE action_ticket_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanAction(scan func(dest ...any) error) (*models.ActionTicket, error) {
	var (
		a        models.ActionTicket
		comments sql.NullString
	)
	if err := scan(&a.ActionTicketID, &a.SubmittedBy, &a.SubjectID, &a.Issue, &a.Pending, &a.Resolved, &a.Strike, &comments); err != nil {
		return nil, err
	}
	if comments.Valid {
		a.Comments = &comments.String
	}
	return &a, nil
}
