package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/underdog-devs/mentorship-api/internal/validation"
)

func TestNewProfile(t *testing.T) {
	tests := []struct {
		name                                   string
		profileID, firstName, lastName, email string
		want                                   string
	}{
		{"valid", "00u13oned0U8XP8Mb4x7", "User", "Person", "user@example.com", ""},
		{"missing profile id", "", "User", "Person", "user@example.com", "profile_id is required"},
		{"missing first name", "abc", "", "Person", "user@example.com", "first_name is required"},
		{"first name too short", "abc", "U", "Person", "user@example.com", "first_name must be between 2-50 chars"},
		{"first name too long", "abc", strings.Repeat("a", 51), "Person", "user@example.com", "first_name must be between 2-50 chars"},
		{"missing last name", "abc", "User", "", "user@example.com", "last_name is required"},
		{"last name too short", "abc", "User", "P", "user@example.com", "last_name must be between 2-50 chars"},
		{"missing email", "abc", "User", "Person", "", "email is required"},
		{"malformed email", "abc", "User", "Person", "not-an-email", "email must be validly formatted"},
		{"first failure wins", "", "", "", "", "profile_id is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.NewProfile(tc.profileID, tc.firstName, tc.lastName, tc.email)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "", validation.Name("first_name", "Al"))
	assert.Equal(t, "", validation.Name("first_name", strings.Repeat("a", 50)))
	assert.Equal(t, "first_name is required", validation.Name("first_name", ""))
	assert.Equal(t, "first_name must be between 2-50 chars", validation.Name("first_name", "A"))

	// bounds count runes, not bytes
	assert.Equal(t, "", validation.Name("last_name", "Zoë"))
	assert.Equal(t, "last_name must be between 2-50 chars", validation.Name("last_name", "é"))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "", validation.Email("user@example.com"))
	assert.Equal(t, "", validation.Email("first.last+tag@sub.example.co"))
	assert.Equal(t, "email is required", validation.Email(""))
	assert.Equal(t, "email must be validly formatted", validation.Email("user@"))
	assert.Equal(t, "email must be validly formatted", validation.Email("@example.com"))
	assert.Equal(t, "email must be validly formatted", validation.Email("user example@example.com"))
}

func TestProfileChanges(t *testing.T) {
	// absent fields are not validated
	assert.Equal(t, "", validation.ProfileChanges(map[string]any{"is_active": false}))

	assert.Equal(t, "first_name must be between 2-50 chars",
		validation.ProfileChanges(map[string]any{"first_name": "A"}))
	assert.Equal(t, "last_name is required",
		validation.ProfileChanges(map[string]any{"last_name": ""}))
	assert.Equal(t, "email must be validly formatted",
		validation.ProfileChanges(map[string]any{"email": "nope"}))

	// non-string values fail the rule for that field
	assert.Equal(t, "first_name is required",
		validation.ProfileChanges(map[string]any{"first_name": 42}))

	// ordering matches full-payload validation
	assert.Equal(t, "first_name is required",
		validation.ProfileChanges(map[string]any{"first_name": "", "email": "nope"}))
}

func TestNewAssignment(t *testing.T) {
	assert.Equal(t, "Missing Assignment Data", validation.NewAssignment(nil))
	assert.Equal(t, "Missing Assignment Data", validation.NewAssignment(map[string]any{}))
	assert.Equal(t, "Missing mentor_id field",
		validation.NewAssignment(map[string]any{"mentee_id": "10"}))
	assert.Equal(t, "Missing mentee_id field",
		validation.NewAssignment(map[string]any{"mentor_id": "7"}))
	assert.Equal(t, "Missing mentor_id field",
		validation.NewAssignment(map[string]any{"mentor_id": 7, "mentee_id": "10"}))
	assert.Equal(t, "",
		validation.NewAssignment(map[string]any{"mentor_id": "7", "mentee_id": "10"}))
}

func TestNewAction(t *testing.T) {
	assert.Equal(t, "", validation.NewAction("7", "10", "late to session"))
	assert.Equal(t, "submitted_by is required", validation.NewAction("", "10", "x"))
	assert.Equal(t, "subject_id is required", validation.NewAction("7", "", "x"))
	assert.Equal(t, "issue is required", validation.NewAction("7", "10", ""))
}
