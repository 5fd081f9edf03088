package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/underdog-devs/mentorship-api/pkg/models"
)

var assignmentUpdatable = []string{"mentor_id", "mentee_id"}

func (r *SQLiteRepo) CreateAssignment(ctx context.Context, a *models.Assignment) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("assignment is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO assignments (mentor_id, mentee_id) VALUES (?, ?)`, a.MentorID, a.MenteeID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	row := r.conn.QueryRow(ctx, `SELECT assignment_id, mentor_id, mentee_id FROM assignments WHERE assignment_id = ?`, id)
	var a models.Assignment
	if err := row.Scan(&a.AssignmentID, &a.MentorID, &a.MenteeID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &a, nil
}

func (r *SQLiteRepo) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return r.listAssignments(ctx, `SELECT assignment_id, mentor_id, mentee_id FROM assignments ORDER BY assignment_id`)
}

func (r *SQLiteRepo) ListByMentor(ctx context.Context, mentorID string) ([]models.Assignment, error) {
	return r.listAssignments(ctx, `SELECT assignment_id, mentor_id, mentee_id FROM assignments WHERE mentor_id = ? ORDER BY assignment_id`, mentorID)
}

func (r *SQLiteRepo) ListByMentee(ctx context.Context, menteeID string) ([]models.Assignment, error) {
	return r.listAssignments(ctx, `SELECT assignment_id, mentor_id, mentee_id FROM assignments WHERE mentee_id = ? ORDER BY assignment_id`, menteeID)
}

func (r *SQLiteRepo) UpdateAssignment(ctx context.Context, id int64, changes map[string]any) (int64, error) {
	set, args := buildSet(changes, assignmentUpdatable)
	if set == "" {
		a, err := r.GetAssignment(ctx, id)
		if err != nil {
			return 0, err
		}
		if a != nil {
			return 1, nil
		}
		return 0, nil
	}

	args = append(args, id)
	res, err := r.conn.Exec(ctx, `UPDATE assignments SET `+set+` WHERE assignment_id = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepo) DeleteAssignment(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM assignments WHERE assignment_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLiteRepo) listAssignments(ctx context.Context, query string, args ...any) ([]models.Assignment, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.AssignmentID, &a.MentorID, &a.MenteeID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
