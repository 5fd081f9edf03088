package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/underdog-devs/mentorship-api/pkg/models"
)

const profileColumns = `profile_id, first_name, last_name, email, role_id, is_active, progress_id, progress_status, updated`

// profileUpdatable lists the columns a partial update may touch, in the order
// the SET clause is assembled.
var profileUpdatable = []string{"first_name", "last_name", "email", "role_id", "is_active", "progress_id", "progress_status"}

func (r *SQLiteRepo) CreateProfile(ctx context.Context, p *models.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO profiles (profile_id, first_name, last_name, email, role_id, is_active, progress_id, progress_status, updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProfileID, p.FirstName, p.LastName, p.Email, p.RoleID, p.IsActive, p.ProgressID, p.ProgressStatus, now())
	return err
}

func (r *SQLiteRepo) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE profile_id = ?`, id)
	p, err := scanProfile(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return p, nil
}

func (r *SQLiteRepo) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY profile_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// UpdateProfile applies the supplied columns only and returns the number of
// rows affected. A zero count means the id matched nothing.
func (r *SQLiteRepo) UpdateProfile(ctx context.Context, id string, changes map[string]any) (int64, error) {
	set, args := buildSet(changes, profileUpdatable)
	if set == "" {
		// nothing to change; report whether the row exists
		exists, err := r.ProfileExists(ctx, id)
		if err != nil {
			return 0, err
		}
		if exists {
			return 1, nil
		}
		return 0, nil
	}

	args = append(args, now(), id)
	res, err := r.conn.Exec(ctx, `UPDATE profiles SET `+set+`, updated = ? WHERE profile_id = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepo) DeleteProfile(ctx context.Context, id string) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM profiles WHERE profile_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLiteRepo) ProfileExists(ctx context.Context, id string) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM profiles WHERE profile_id = ?`, id)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ProfileReferenced reports whether any dependent row still points at the
// profile. Deleting such a profile would trip the RESTRICT constraints, so
// callers check here first to answer with a clean conflict.
func (r *SQLiteRepo) ProfileReferenced(ctx context.Context, id string) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `
		SELECT (SELECT COUNT(1) FROM assignments WHERE mentor_id = ? OR mentee_id = ?)
		     + (SELECT COUNT(1) FROM action_tickets WHERE submitted_by = ? OR subject_id = ?)
		     + (SELECT COUNT(1) FROM application_tickets WHERE profile_id = ?)
		     + (SELECT COUNT(1) FROM mentor_intake WHERE profile_id = ?)`,
		id, id, id, id, id, id)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SQLiteRepo) RoleExists(ctx context.Context, roleID int64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM roles WHERE role_id = ?`, roleID)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanProfile(scan func(dest ...any) error) (*models.Profile, error) {
	var (
		p        models.Profile
		roleID   sql.NullInt64
		isActive sql.NullBool
		progID   sql.NullInt64
		progStat sql.NullString
	)
	if err := scan(&p.ProfileID, &p.FirstName, &p.LastName, &p.Email, &roleID, &isActive, &progID, &progStat, &p.Updated); err != nil {
		return nil, err
	}
	if roleID.Valid {
		p.RoleID = &roleID.Int64
	}
	if isActive.Valid {
		p.IsActive = &isActive.Bool
	}
	if progID.Valid {
		p.ProgressID = &progID.Int64
	}
	if progStat.Valid {
		p.ProgressStatus = &progStat.String
	}
	return &p, nil
}
