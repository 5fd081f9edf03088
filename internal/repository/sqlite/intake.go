package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/underdog-devs/mentorship-api/pkg/models"
)

const intakeColumns = `mentor_intake_id, profile_id, email, location, first_name, last_name, current_comp, other_tech, front_end, back_end, full_stack, android_mobile, ios_mobile, experience_level, mentor_commitment, other_info`

func (r *SQLiteRepo) CreateIntake(ctx context.Context, m *models.MentorIntake) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("mentor intake is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO mentor_intake (profile_id, email, location, first_name, last_name, current_comp, other_tech, front_end, back_end, full_stack, android_mobile, ios_mobile, experience_level, mentor_commitment, other_info)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ProfileID, m.Email, m.Location, m.FirstName, m.LastName, m.CurrentComp, m.OtherTech,
		m.FrontEnd, m.BackEnd, m.FullStack, m.AndroidMobile, m.IOSMobile,
		m.ExperienceLevel, m.MentorCommitment, m.OtherInfo)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetIntake(ctx context.Context, id int64) (*models.MentorIntake, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+intakeColumns+` FROM mentor_intake WHERE mentor_intake_id = ?`, id)
	m, err := scanIntake(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return m, nil
}

func (r *SQLiteRepo) ListIntakes(ctx context.Context) ([]models.MentorIntake, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+intakeColumns+` FROM mentor_intake ORDER BY mentor_intake_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MentorIntake
	for rows.Next() {
		m, err := scanIntake(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func scanIntake(scan func(dest ...any) error) (*models.MentorIntake, error) {
	var (
		m           models.MentorIntake
		currentComp sql.NullString
		otherTech   sql.NullBool
		otherInfo   sql.NullString
	)
	if err := scan(&m.MentorIntakeID, &m.ProfileID, &m.Email, &m.Location, &m.FirstName, &m.LastName,
		&currentComp, &otherTech, &m.FrontEnd, &m.BackEnd, &m.FullStack, &m.AndroidMobile, &m.IOSMobile,
		&m.ExperienceLevel, &m.MentorCommitment, &otherInfo); err != nil {
		return nil, err
	}
	if currentComp.Valid {
		m.CurrentComp = &currentComp.String
	}
	if otherTech.Valid {
		m.OtherTech = &otherTech.Bool
	}
	if otherInfo.Valid {
		m.OtherInfo = &otherInfo.String
	}
	return &m, nil
}
