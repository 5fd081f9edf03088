package mock

import (
	"context"

	"github.com/underdog-devs/mentorship-api/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Profiles    *ProfileRepo
	Assignments *AssignmentRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Profiles:    &ProfileRepo{},
		Assignments: &AssignmentRepo{},
	}
}

// ProfileRepo is an in-memory ProfileRepo. Any of the Err fields, when set,
// is returned by the corresponding method to simulate storage failures.
type ProfileRepo struct {
	Stored     map[string]*models.Profile
	Referenced map[string]bool
	CreateErr  error
	GetErr     error
	ListErr    error
	UpdateErr  error
	DeleteErr  error
}

func (m *ProfileRepo) store() map[string]*models.Profile {
	if m.Stored == nil {
		m.Stored = make(map[string]*models.Profile)
	}
	return m.Stored
}

func (m *ProfileRepo) CreateProfile(ctx context.Context, p *models.Profile) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	cp := *p
	m.store()[p.ProfileID] = &cp
	return nil
}

func (m *ProfileRepo) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if p, ok := m.store()[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *ProfileRepo) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Profile, 0, len(m.store()))
	for _, p := range m.store() {
		out = append(out, *p)
	}
	return out, nil
}

func (m *ProfileRepo) UpdateProfile(ctx context.Context, id string, changes map[string]any) (int64, error) {
	if m.UpdateErr != nil {
		return 0, m.UpdateErr
	}
	p, ok := m.store()[id]
	if !ok {
		return 0, nil
	}
	if v, ok := changes["first_name"].(string); ok {
		p.FirstName = v
	}
	if v, ok := changes["last_name"].(string); ok {
		p.LastName = v
	}
	if v, ok := changes["email"].(string); ok {
		p.Email = v
	}
	return 1, nil
}

func (m *ProfileRepo) DeleteProfile(ctx context.Context, id string) (bool, error) {
	if m.DeleteErr != nil {
		return false, m.DeleteErr
	}
	if _, ok := m.store()[id]; !ok {
		return false, nil
	}
	delete(m.store(), id)
	return true, nil
}

func (m *ProfileRepo) ProfileExists(ctx context.Context, id string) (bool, error) {
	if m.GetErr != nil {
		return false, m.GetErr
	}
	_, ok := m.store()[id]
	return ok, nil
}

func (m *ProfileRepo) ProfileReferenced(ctx context.Context, id string) (bool, error) {
	return m.Referenced[id], nil
}

func (m *ProfileRepo) RoleExists(ctx context.Context, roleID int64) (bool, error) {
	return roleID >= 1 && roleID <= 5, nil
}

// AssignmentRepo is an in-memory AssignmentRepo.
type AssignmentRepo struct {
	Stored  map[int64]*models.Assignment
	nextID  int64
	ListErr error
}

func (m *AssignmentRepo) store() map[int64]*models.Assignment {
	if m.Stored == nil {
		m.Stored = make(map[int64]*models.Assignment)
	}
	return m.Stored
}

func (m *AssignmentRepo) CreateAssignment(ctx context.Context, a *models.Assignment) (int64, error) {
	m.nextID++
	cp := *a
	cp.AssignmentID = m.nextID
	m.store()[m.nextID] = &cp
	return m.nextID, nil
}

func (m *AssignmentRepo) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	if a, ok := m.store()[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (m *AssignmentRepo) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Assignment, 0, len(m.store()))
	for _, a := range m.store() {
		out = append(out, *a)
	}
	return out, nil
}

func (m *AssignmentRepo) ListByMentor(ctx context.Context, mentorID string) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range m.store() {
		if a.MentorID == mentorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *AssignmentRepo) ListByMentee(ctx context.Context, menteeID string) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range m.store() {
		if a.MenteeID == menteeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *AssignmentRepo) UpdateAssignment(ctx context.Context, id int64, changes map[string]any) (int64, error) {
	a, ok := m.store()[id]
	if !ok {
		return 0, nil
	}
	if v, ok := changes["mentor_id"].(string); ok {
		a.MentorID = v
	}
	if v, ok := changes["mentee_id"].(string); ok {
		a.MenteeID = v
	}
	return 1, nil
}

func (m *AssignmentRepo) DeleteAssignment(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.store()[id]; !ok {
		return false, nil
	}
	delete(m.store(), id)
	return true, nil
}
