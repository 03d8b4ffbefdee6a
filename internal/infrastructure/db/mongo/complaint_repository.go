package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wunif/site-api/internal/core/domain"
)

const complaintsCollection = "complaints_suggestions"

type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

type complaintDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Kind      string             `bson:"kind"`
	Message   string             `bson:"message"`
	Response  string             `bson:"response"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d complaintDoc) toDomain() *domain.ComplaintSuggestion {
	return &domain.ComplaintSuggestion{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Kind:      d.Kind,
		Message:   d.Message,
		Response:  d.Response,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, cs *domain.ComplaintSuggestion) (*domain.ComplaintSuggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := complaintDoc{
		ID:        primitive.NewObjectID(),
		Name:      cs.Name,
		Email:     cs.Email,
		Kind:      cs.Kind,
		Message:   cs.Message,
		Response:  cs.Response,
		Status:    cs.Status,
		CreatedAt: cs.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.ComplaintSuggestion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc complaintDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ComplaintRepository) FindAll(ctx context.Context) ([]*domain.ComplaintSuggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.ComplaintSuggestion, 0)
	for cur.Next(ctx) {
		var doc complaintDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode complaint: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, cur.Err()
}

func (r *ComplaintRepository) SetResponse(ctx context.Context, id, response, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"response": response, "status": status}},
	)
	if err != nil {
		return fmt.Errorf("set complaint response: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrComplaintNotFound
	}
	return nil
}

func (r *ComplaintRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete complaint: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrComplaintNotFound
	}
	return nil
}
