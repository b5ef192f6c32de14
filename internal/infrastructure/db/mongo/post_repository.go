package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

const postCollection = "posts"

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection(postCollection)}
}

// Author name and handle are denormalized into each post document so listing
// never fans out into per-row user lookups.
type mongoPost struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID     string             `bson:"author_id"`
	AuthorName   string             `bson:"author_name,omitempty"`
	AuthorHandle string             `bson:"author_handle,omitempty"`
	Content      string             `bson:"content"`
	ImageURL     string             `bson:"image_url,omitempty"`
	Likes        int                `bson:"likes"`
	CreatedAt    int64              `bson:"created_at"`
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc := mongoPost{
		AuthorID:     post.AuthorID,
		AuthorName:   post.AuthorName,
		AuthorHandle: post.AuthorHandle,
		Content:      post.Content,
		ImageURL:     post.ImageURL,
		Likes:        post.Likes,
		CreatedAt:    post.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPostRepository) List(ctx context.Context, page, limit int) ([]*domain.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := make([]*domain.Post, 0, limit)
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *MongoPostRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func (mp *mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:           mp.ID.Hex(),
		AuthorID:     mp.AuthorID,
		AuthorName:   mp.AuthorName,
		AuthorHandle: mp.AuthorHandle,
		Content:      mp.Content,
		ImageURL:     mp.ImageURL,
		Likes:        mp.Likes,
		CreatedAt:    unixToTime(mp.CreatedAt),
	}
}
