package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Role is an entry in the role enumeration (superadmin through mentee).
type Role struct {
	RoleID   int64  `json:"role_id" db:"role_id"`
	RoleName string `json:"role_name" db:"role_name"`
}

// Profile is a person participating in the program, keyed by the external
// identity string supplied by the SSO provider.
type Profile struct {
	ProfileID      string  `json:"profile_id" db:"profile_id" validate:"required"`
	FirstName      string  `json:"first_name" db:"first_name" validate:"required,min=2,max=50"`
	LastName       string  `json:"last_name" db:"last_name" validate:"required,min=2,max=50"`
	Email          string  `json:"email" db:"email" validate:"required,email"`
	RoleID         *int64  `json:"role_id" db:"role_id"`
	IsActive       *bool   `json:"is_active" db:"is_active"`
	ProgressID     *int64  `json:"progress_id" db:"progress_id"`
	ProgressStatus *string `json:"progress_status" db:"progress_status"`
	Updated        int64   `json:"updated" db:"updated"`
}

// Assignment pairs one mentor with one mentee.
type Assignment struct {
	AssignmentID int64  `json:"assignment_id" db:"assignment_id"`
	MentorID     string `json:"mentor_id" db:"mentor_id" validate:"required"`
	MenteeID     string `json:"mentee_id" db:"mentee_id" validate:"required"`
}

// ActionTicket is an escalation/issue report filed by or about a profile.
type ActionTicket struct {
	ActionTicketID int64   `json:"action_ticket_id" db:"action_ticket_id"`
	SubmittedBy    string  `json:"submitted_by" db:"submitted_by" validate:"required"`
	SubjectID      string  `json:"subject_id" db:"subject_id" validate:"required"`
	Issue          string  `json:"issue" db:"issue" validate:"required"`
	Pending        bool    `json:"pending" db:"pending"`
	Resolved       bool    `json:"resolved" db:"resolved"`
	Strike         bool    `json:"strike" db:"strike"`
	Comments       *string `json:"comments" db:"comments"`
}

// ApplicationTicket tracks a mentor/mentee application through approval.
type ApplicationTicket struct {
	ApplicationID int64  `json:"application_id" db:"application_id"`
	Position      int64  `json:"position" db:"position" validate:"required,min=1"`
	ProfileID     string `json:"profile_id" db:"profile_id" validate:"required"`
	Approved      bool   `json:"approved" db:"approved"`
	Notes         string `json:"application_notes" db:"application_notes" validate:"max=255"`
	Created       int64  `json:"created" db:"created"`
	Updated       int64  `json:"updated" db:"updated"`
}

// MentorIntake is the mentor onboarding form.
type MentorIntake struct {
	MentorIntakeID   int64   `json:"mentor_intake_id" db:"mentor_intake_id"`
	ProfileID        string  `json:"profile_id" db:"profile_id"`
	Email            string  `json:"email" db:"email"`
	Location         string  `json:"location" db:"location"`
	FirstName        string  `json:"first_name" db:"first_name"`
	LastName         string  `json:"last_name" db:"last_name"`
	CurrentComp      *string `json:"current_comp" db:"current_comp"`
	OtherTech        *bool   `json:"other_tech" db:"other_tech"`
	FrontEnd         bool    `json:"front_end" db:"front_end"`
	BackEnd          bool    `json:"back_end" db:"back_end"`
	FullStack        bool    `json:"full_stack" db:"full_stack"`
	AndroidMobile    bool    `json:"android_mobile" db:"android_mobile"`
	IOSMobile        bool    `json:"ios_mobile" db:"ios_mobile"`
	ExperienceLevel  string  `json:"experience_level" db:"experience_level"`
	MentorCommitment string  `json:"mentor_commitment" db:"mentor_commitment"`
	OtherInfo        *string `json:"other_info" db:"other_info"`
}
