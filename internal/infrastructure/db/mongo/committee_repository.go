package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/procurex/committee-service/internal/core/domain"
)

const collectionCommittees = "committees"

type CommitteeRepository struct {
	col *mongo.Collection
}

func NewCommitteeRepository(db *mongo.Database) *CommitteeRepository {
	return &CommitteeRepository{col: db.Collection(collectionCommittees)}
}

type memberDoc struct {
	Name        string `bson:"name"`
	Role        string `bson:"role"`
	Email       string `bson:"email"`
	EmployeeID  string `bson:"employee_id"`
	Department  string `bson:"department"`
	Designation string `bson:"designation"`
}

type letterDoc struct {
	Filename     string `bson:"filename"`
	Path         string `bson:"path"`
	OriginalName string `bson:"original_name"`
	MimeType     string `bson:"mime_type"`
	Size         int64  `bson:"size"`
}

type committeeDoc struct {
	ID                          primitive.ObjectID `bson:"_id,omitempty"`
	Name                        string             `bson:"name"`
	Purpose                     string             `bson:"purpose"`
	FormationDate               time.Time          `bson:"formation_date"`
	SpecificationSubmissionDate time.Time          `bson:"specification_submission_date"`
	ReviewDate                  time.Time          `bson:"review_date"`
	Schedule                    string             `bson:"schedule,omitempty"`
	Members                     []memberDoc        `bson:"members"`
	FormationLetter             *letterDoc         `bson:"formation_letter,omitempty"`
	CreatedBy                   primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt                   time.Time          `bson:"created_at"`
	// Creator is populated by the $lookup stage on reads, never stored.
	Creator []userDoc `bson:"creator,omitempty"`
}

func (d *committeeDoc) toDomain() *domain.Committee {
	members := make([]domain.MemberSnapshot, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, domain.MemberSnapshot{
			Name:        m.Name,
			Role:        m.Role,
			Email:       m.Email,
			EmployeeID:  m.EmployeeID,
			Department:  m.Department,
			Designation: m.Designation,
		})
	}

	committee := &domain.Committee{
		ID:                          d.ID.Hex(),
		Name:                        d.Name,
		Purpose:                     d.Purpose,
		FormationDate:               d.FormationDate,
		SpecificationSubmissionDate: d.SpecificationSubmissionDate,
		ReviewDate:                  d.ReviewDate,
		Schedule:                    d.Schedule,
		Members:                     members,
		CreatedAt:                   d.CreatedAt,
	}
	if !d.CreatedBy.IsZero() {
		committee.CreatedBy = d.CreatedBy.Hex()
	}
	if d.FormationLetter != nil {
		committee.FormationLetter = &domain.FormationLetter{
			Filename:     d.FormationLetter.Filename,
			Path:         d.FormationLetter.Path,
			OriginalName: d.FormationLetter.OriginalName,
			MimeType:     d.FormationLetter.MimeType,
			Size:         d.FormationLetter.Size,
		}
	}
	if len(d.Creator) > 0 {
		creator := d.Creator[0]
		committee.Creator = &domain.CreatorSummary{
			ID:         creator.ID.Hex(),
			Name:       creator.Name,
			Email:      creator.Email,
			Role:       creator.Role,
			EmployeeID: creator.EmployeeID,
		}
	}
	return committee
}

func (r *CommitteeRepository) Insert(ctx context.Context, committee *domain.Committee) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := committeeDoc{
		Name:                        committee.Name,
		Purpose:                     committee.Purpose,
		FormationDate:               committee.FormationDate,
		SpecificationSubmissionDate: committee.SpecificationSubmissionDate,
		ReviewDate:                  committee.ReviewDate,
		Schedule:                    committee.Schedule,
		Members:                     make([]memberDoc, 0, len(committee.Members)),
		CreatedAt:                   committee.CreatedAt,
	}
	for _, m := range committee.Members {
		doc.Members = append(doc.Members, memberDoc{
			Name:        m.Name,
			Role:        m.Role,
			Email:       m.Email,
			EmployeeID:  m.EmployeeID,
			Department:  m.Department,
			Designation: m.Designation,
		})
	}
	if committee.FormationLetter != nil {
		doc.FormationLetter = &letterDoc{
			Filename:     committee.FormationLetter.Filename,
			Path:         committee.FormationLetter.Path,
			OriginalName: committee.FormationLetter.OriginalName,
			MimeType:     committee.FormationLetter.MimeType,
			Size:         committee.FormationLetter.Size,
		}
	}
	if oid, err := primitive.ObjectIDFromHex(committee.CreatedBy); err == nil {
		doc.CreatedBy = oid
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert committee: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert committee: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *CommitteeRepository) FindByID(ctx context.Context, id string) (*domain.Committee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommitteeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": oid}}},
		creatorLookupStage(),
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find committee: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("find committee: %w", err)
		}
		return nil, domain.ErrCommitteeNotFound
	}

	var doc committeeDoc
	if err := cursor.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode committee: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns all committees newest-first with creator summaries joined in.
func (r *CommitteeRepository) List(ctx context.Context) ([]*domain.Committee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		creatorLookupStage(),
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list committees: %w", err)
	}
	defer cursor.Close(ctx)

	committees := make([]*domain.Committee, 0)
	for cursor.Next(ctx) {
		var doc committeeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode committee: %w", err)
		}
		committees = append(committees, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list committees: %w", err)
	}
	return committees, nil
}

// EnsureIndexes creates the index backing the newest-first listing.
func (r *CommitteeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}

func creatorLookupStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         collectionUsers,
		"localField":   "created_by",
		"foreignField": "_id",
		"as":           "creator",
	}}}
}
