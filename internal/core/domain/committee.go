package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrCommitteeNotFound = errors.New("committee not found")
var ErrLetterNotFound = errors.New("no formation letter found")
var ErrFileMissing = errors.New("file not found on server")
var ErrInvalidMemberInput = errors.New("invalid member input")
var ErrMissingFields = errors.New("missing required committee fields")

// MemberNotFoundError reports which employee ID failed to resolve during
// member assignment. It matches ErrUserNotFound under errors.Is so callers
// can treat it as a plain not-found.
type MemberNotFoundError struct {
	EmployeeID string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("user with employee ID %s not found", e.EmployeeID)
}

func (e *MemberNotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}

// MemberRef is one element of the raw members payload submitted with a
// create request. Clients send either a bare employee-id string ("E100") or
// an object carrying an employeeId field; both decode into the same ref.
type MemberRef struct {
	EmployeeID string
}

func (m *MemberRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		m.EmployeeID = id
		return nil
	}

	var obj struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	m.EmployeeID = obj.EmployeeID
	return nil
}

// ParseMemberRefs decodes the members form field. An empty payload yields an
// empty list; a single bare object or string is coerced to a one-element
// list. Any payload that is not a list of strings/objects fails with
// ErrInvalidMemberInput.
func ParseMemberRefs(raw string) ([]MemberRef, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	var refs []MemberRef
	if err := json.Unmarshal([]byte(trimmed), &refs); err == nil {
		return refs, nil
	}

	var single MemberRef
	if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
		return nil, fmt.Errorf("%w: malformed members payload", ErrInvalidMemberInput)
	}
	return []MemberRef{single}, nil
}

// MemberSnapshot is a point-in-time copy of a user's identity fields,
// embedded into the committee record so it stays historically accurate even
// if the underlying user changes later.
type MemberSnapshot struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	EmployeeID  string `json:"employeeId"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

// FormationLetter holds the metadata of an uploaded formation document. The
// bytes themselves live in the file store.
type FormationLetter struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

// CreatorSummary is the read-side view of the user who created a committee.
type CreatorSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
}

// Committee is a persisted record of a formed group. Once created it is
// immutable: no update or delete operations exist.
type Committee struct {
	ID                          string           `json:"id"`
	Name                        string           `json:"name"`
	Purpose                     string           `json:"purpose"`
	FormationDate               time.Time        `json:"formationDate"`
	SpecificationSubmissionDate time.Time        `json:"specificationSubmissionDate"`
	ReviewDate                  time.Time        `json:"reviewDate"`
	Schedule                    string           `json:"schedule,omitempty"`
	Members                     []MemberSnapshot `json:"members"`
	FormationLetter             *FormationLetter `json:"formationLetter,omitempty"`
	CreatedBy                   string           `json:"-"`
	Creator                     *CreatorSummary  `json:"createdBy,omitempty"`
	CreatedAt                   time.Time        `json:"createdAt"`
}
