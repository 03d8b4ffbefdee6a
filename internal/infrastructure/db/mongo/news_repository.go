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

const newsCollection = "news_posts"

type NewsRepository struct {
	coll *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{coll: db.Collection(newsCollection)}
}

type newsDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	Author     string             `bson:"author"`
	FontFamily string             `bson:"font_family"`
	ImageURL   string             `bson:"image_url"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d newsDoc) toDomain() *domain.NewsPost {
	return &domain.NewsPost{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		Content:    d.Content,
		Author:     d.Author,
		FontFamily: d.FontFamily,
		ImageURL:   d.ImageURL,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *NewsRepository) Create(ctx context.Context, post *domain.NewsPost) (*domain.NewsPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := newsDoc{
		ID:         primitive.NewObjectID(),
		Title:      post.Title,
		Content:    post.Content,
		Author:     post.Author,
		FontFamily: post.FontFamily,
		ImageURL:   post.ImageURL,
		CreatedAt:  post.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert news post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*domain.NewsPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNewsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc newsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *NewsRepository) FindAll(ctx context.Context) ([]*domain.NewsPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list news posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := make([]*domain.NewsPost, 0)
	for cur.Next(ctx) {
		var doc newsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode news post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	return posts, cur.Err()
}

func (r *NewsRepository) Update(ctx context.Context, post *domain.NewsPost) error {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return domain.ErrNewsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":       post.Title,
		"content":     post.Content,
		"font_family": post.FontFamily,
		"image_url":   post.ImageURL,
	}})
	if err != nil {
		return fmt.Errorf("update news post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNewsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete news post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

// EnsureIndexes creates the created_at sort index.
func (r *NewsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
