// Package validation holds the ordered field rules for profile and assignment
// payloads. Rules are applied first-failure-wins and return the exact message
// the HTTP layer must surface, so they can be unit tested without a server.
package validation

import (
	"regexp"
	"unicode/utf8"
)

// EmailRX is a sane baseline email pattern; the database does not enforce
// email format, so this check is the contract.
var EmailRX = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

const (
	nameMin = 2
	nameMax = 50
)

// NewProfile validates a full profile-creation payload. It returns the empty
// string when the payload passes, otherwise the message for the first rule
// that failed.
func NewProfile(profileID, firstName, lastName, email string) string {
	if profileID == "" {
		return "profile_id is required"
	}
	if msg := Name("first_name", firstName); msg != "" {
		return msg
	}
	if msg := Name("last_name", lastName); msg != "" {
		return msg
	}
	return Email(email)
}

// Name checks presence and the 2-50 character bound for a name field.
func Name(field, value string) string {
	if value == "" {
		return field + " is required"
	}
	if n := utf8.RuneCountInString(value); n < nameMin || n > nameMax {
		return field + " must be between 2-50 chars"
	}
	return ""
}

// Email checks presence and format.
func Email(value string) string {
	if value == "" {
		return "email is required"
	}
	if !EmailRX.MatchString(value) {
		return "email must be validly formatted"
	}
	return ""
}

// ProfileChanges validates a partial-update payload. Only supplied fields are
// checked, in the same order as NewProfile.
func ProfileChanges(changes map[string]any) string {
	if v, ok := changes["first_name"]; ok {
		s, _ := v.(string)
		if msg := Name("first_name", s); msg != "" {
			return msg
		}
	}
	if v, ok := changes["last_name"]; ok {
		s, _ := v.(string)
		if msg := Name("last_name", s); msg != "" {
			return msg
		}
	}
	if v, ok := changes["email"]; ok {
		s, _ := v.(string)
		if msg := Email(s); msg != "" {
			return msg
		}
	}
	return ""
}

// NewAssignment validates an assignment-creation payload. The body map is nil
// when the request carried no decodable JSON object at all.
func NewAssignment(body map[string]any) string {
	if len(body) == 0 {
		return "Missing Assignment Data"
	}
	if s, _ := body["mentor_id"].(string); s == "" {
		return "Missing mentor_id field"
	}
	if s, _ := body["mentee_id"].(string); s == "" {
		return "Missing mentee_id field"
	}
	return ""
}

// NewAction validates an action-ticket creation payload.
func NewAction(submittedBy, subjectID, issue string) string {
	if submittedBy == "" {
		return "submitted_by is required"
	}
	if subjectID == "" {
		return "subject_id is required"
	}
	if issue == "" {
		return "issue is required"
	}
	return ""
}
