package repository

import (
	"context"

	"github.com/underdog-devs/mentorship-api/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
// Lookups return (nil, nil) when no record matches.

type ProfileRepo interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, id string, changes map[string]any) (int64, error)
	DeleteProfile(ctx context.Context, id string) (bool, error)
	ProfileExists(ctx context.Context, id string) (bool, error)
	ProfileReferenced(ctx context.Context, id string) (bool, error)
	RoleExists(ctx context.Context, roleID int64) (bool, error)
}

type AssignmentRepo interface {
	CreateAssignment(ctx context.Context, a *models.Assignment) (int64, error)
	GetAssignment(ctx context.Context, id int64) (*models.Assignment, error)
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	ListByMentor(ctx context.Context, mentorID string) ([]models.Assignment, error)
	ListByMentee(ctx context.Context, menteeID string) ([]models.Assignment, error)
	UpdateAssignment(ctx context.Context, id int64, changes map[string]any) (int64, error)
	DeleteAssignment(ctx context.Context, id int64) (bool, error)
}

type ActionRepo interface {
	CreateAction(ctx context.Context, a *models.ActionTicket) (int64, error)
	GetAction(ctx context.Context, id int64) (*models.ActionTicket, error)
	ListActions(ctx context.Context) ([]models.ActionTicket, error)
	UpdateAction(ctx context.Context, id int64, changes map[string]any) (int64, error)
	DeleteAction(ctx context.Context, id int64) (bool, error)
}

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, a *models.ApplicationTicket) (int64, error)
	GetApplication(ctx context.Context, id int64) (*models.ApplicationTicket, error)
	ListApplications(ctx context.Context) ([]models.ApplicationTicket, error)
	UpdateApplication(ctx context.Context, id int64, changes map[string]any) (int64, error)
}

type IntakeRepo interface {
	CreateIntake(ctx context.Context, m *models.MentorIntake) (int64, error)
	GetIntake(ctx context.Context, id int64) (*models.MentorIntake, error)
	ListIntakes(ctx context.Context) ([]models.MentorIntake, error)
}
