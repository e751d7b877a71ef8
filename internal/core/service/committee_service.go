package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/procurex/committee-service/internal/api/metrics"
	"github.com/procurex/committee-service/internal/core/domain"
	"github.com/procurex/committee-service/internal/core/ports"
)

// CommitteeService implements committee creation and retrieval.
type CommitteeService struct {
	committees ports.CommitteeRepository
	users      ports.UserRepository
	files      ports.FileStore
	notifier   *Notifier
	logger     zerolog.Logger
}

func NewCommitteeService(committees ports.CommitteeRepository, users ports.UserRepository, files ports.FileStore, notifier *Notifier, logger zerolog.Logger) *CommitteeService {
	return &CommitteeService{
		committees: committees,
		users:      users,
		files:      files,
		notifier:   notifier,
		logger:     logger,
	}
}

// Create resolves the raw member list, stores the optional formation letter
// and persists the committee. Persistence failure after the letter was
// written triggers a best-effort delete of the orphaned file. Notification
// delivery runs after the record is committed and can never fail the create.
func (s *CommitteeService) Create(ctx context.Context, input ports.CreateCommitteeInput) (*domain.Committee, error) {
	if input.Name == "" || input.Purpose == "" ||
		input.FormationDate.IsZero() || input.SpecificationSubmissionDate.IsZero() || input.ReviewDate.IsZero() {
		return nil, domain.ErrMissingFields
	}

	members, err := s.resolveMembers(ctx, input.RawMembers)
	if err != nil {
		return nil, err
	}

	committee := &domain.Committee{
		Name:                        input.Name,
		Purpose:                     input.Purpose,
		FormationDate:               input.FormationDate,
		SpecificationSubmissionDate: input.SpecificationSubmissionDate,
		ReviewDate:                  input.ReviewDate,
		Schedule:                    input.Schedule,
		Members:                     members,
		CreatedBy:                   input.CreatedBy,
		CreatedAt:                   time.Now().UTC(),
	}

	var stored *ports.StoredFile
	if input.Letter != nil {
		stored, err = s.files.Save(ctx, input.Letter.Reader, input.Letter.OriginalName)
		if err != nil {
			return nil, fmt.Errorf("store formation letter: %w", err)
		}
		metrics.FormationLettersStoredTotal.Inc()

		committee.FormationLetter = &domain.FormationLetter{
			Filename:     stored.Filename,
			Path:         stored.Path,
			OriginalName: input.Letter.OriginalName,
			MimeType:     input.Letter.MimeType,
			Size:         input.Letter.Size,
		}
	}

	id, err := s.committees.Insert(ctx, committee)
	if err != nil {
		s.rollbackLetter(stored)
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create committee")
		return nil, err
	}

	created, err := s.committees.FindByID(ctx, id)
	if err != nil {
		// The record is committed at this point; surface the fetch error
		// without touching the stored letter.
		return nil, err
	}

	metrics.CommitteesCreatedTotal.WithLabelValues(strconv.FormatBool(input.Notify)).Inc()
	s.logger.Info().
		Str("committee_id", created.ID).
		Int("members", len(created.Members)).
		Bool("has_letter", created.FormationLetter != nil).
		Msg("committee created")

	if input.Notify {
		s.notifier.Notify(ctx, created)
	}

	return created, nil
}

func (s *CommitteeService) List(ctx context.Context) ([]*domain.Committee, error) {
	return s.committees.List(ctx)
}

func (s *CommitteeService) Get(ctx context.Context, id string) (*domain.Committee, error) {
	return s.committees.FindByID(ctx, id)
}

// Download locates the stored formation letter for a committee. The three
// distinct failure causes (no committee, no letter metadata, file gone from
// storage) all surface as not-found class errors.
func (s *CommitteeService) Download(ctx context.Context, id string) (*ports.LetterDownload, error) {
	committee, err := s.committees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if committee.FormationLetter == nil {
		return nil, domain.ErrLetterNotFound
	}

	path, err := s.files.Path(committee.FormationLetter.Filename)
	if err != nil {
		return nil, err
	}

	return &ports.LetterDownload{
		Path:         path,
		OriginalName: committee.FormationLetter.OriginalName,
		MimeType:     committee.FormationLetter.MimeType,
	}, nil
}

// resolveMembers normalizes the raw members payload into snapshots of real
// users. Validation is all-or-nothing: every extracted ID is checked before
// the first directory lookup. Lookups run in input order and short-circuit
// on the first missing employee ID.
func (s *CommitteeService) resolveMembers(ctx context.Context, raw string) ([]domain.MemberSnapshot, error) {
	refs, err := domain.ParseMemberRefs(raw)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, nil
	}

	for _, ref := range refs {
		if strings.TrimSpace(ref.EmployeeID) == "" {
			return nil, fmt.Errorf("%w: all member IDs must be non-empty strings", domain.ErrInvalidMemberInput)
		}
	}

	snapshots := make([]domain.MemberSnapshot, 0, len(refs))
	for _, ref := range refs {
		user, err := s.users.FindByEmployeeID(ctx, ref.EmployeeID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, &domain.MemberNotFoundError{EmployeeID: ref.EmployeeID}
			}
			return nil, err
		}

		snapshots = append(snapshots, domain.MemberSnapshot{
			Name:        user.Name,
			Role:        user.Role,
			Email:       user.Email,
			EmployeeID:  user.EmployeeID,
			Department:  user.Department,
			Designation: user.Designation,
		})
	}

	return snapshots, nil
}

// rollbackLetter removes a letter stored for a create that later failed.
// Deletion failure is logged, never escalated.
func (s *CommitteeService) rollbackLetter(stored *ports.StoredFile) {
	if stored == nil {
		return
	}
	if err := s.files.Remove(stored.Filename); err != nil {
		s.logger.Error().Err(err).Str("filename", stored.Filename).Msg("failed to delete orphaned formation letter")
		return
	}
	metrics.FormationLetterOrphansRemovedTotal.Inc()
	s.logger.Warn().Str("filename", stored.Filename).Msg("orphaned formation letter removed")
}
