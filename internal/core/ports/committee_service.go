package ports

import (
	"context"
	"io"
	"time"

	"github.com/procurex/committee-service/internal/core/domain"
)

// LetterUpload carries an incoming formation-letter file from the transport
// layer. Reader streams the uploaded bytes; metadata comes from the
// multipart part headers.
type LetterUpload struct {
	Reader       io.Reader
	OriginalName string
	MimeType     string
	Size         int64
}

// CreateCommitteeInput carries all data needed to create a committee.
type CreateCommitteeInput struct {
	Name                        string
	Purpose                     string
	FormationDate               time.Time
	SpecificationSubmissionDate time.Time
	ReviewDate                  time.Time
	Schedule                    string
	// RawMembers is the members form field exactly as submitted: a JSON
	// array of employee-id strings and/or objects with an employeeId field.
	RawMembers string
	// CreatedBy is the authenticated caller's user ID.
	CreatedBy string
	Letter    *LetterUpload
	// Notify triggers the member notification fan-out after a successful
	// create. Never implied; the client must opt in.
	Notify bool
}

// LetterDownload is what the transport layer needs to stream a stored
// formation letter back to the client.
type LetterDownload struct {
	Path         string
	OriginalName string
	MimeType     string
}

// CommitteeService defines the use-case operations for committees.
type CommitteeService interface {
	Create(ctx context.Context, input CreateCommitteeInput) (*domain.Committee, error)
	List(ctx context.Context) ([]*domain.Committee, error)
	Get(ctx context.Context, id string) (*domain.Committee, error)
	// Download resolves the stored letter for a committee. Missing committee,
	// missing letter metadata, and a file gone from storage all fail with a
	// not-found class error.
	Download(ctx context.Context, id string) (*LetterDownload, error)
}
