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

const groupCollection = "groups"

type MongoGroupRepository struct {
	coll *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) *MongoGroupRepository {
	return &MongoGroupRepository{coll: db.Collection(groupCollection)}
}

type mongoGroup struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	MemberIDs   []string           `bson:"member_ids"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *MongoGroupRepository) Create(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	doc := mongoGroup{
		Name:        group.Name,
		Description: group.Description,
		OwnerID:     group.OwnerID,
		MemberIDs:   group.MemberIDs,
		CreatedAt:   group.CreatedAt.Unix(),
	}
	if doc.MemberIDs == nil {
		doc.MemberIDs = []string{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}

	created := *group
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	created.MemberCount = len(doc.MemberIDs)
	return &created, nil
}

func (r *MongoGroupRepository) FindByID(ctx context.Context, id string) (*domain.Group, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGroupNotFound
	}

	var mg mongoGroup
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *MongoGroupRepository) List(ctx context.Context, page, limit int) ([]*domain.Group, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer cur.Close(ctx)

	groups := make([]*domain.Group, 0, limit)
	for cur.Next(ctx) {
		var mg mongoGroup
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode group: %w", err)
		}
		groups = append(groups, mg.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// AddMember is an atomic $addToSet: joining twice is a no-op, and concurrent
// joins never clobber each other's membership writes.
func (r *MongoGroupRepository) AddMember(ctx context.Context, groupID, userID string) error {
	return r.updateMembers(ctx, groupID, bson.M{"$addToSet": bson.M{"member_ids": userID}})
}

func (r *MongoGroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	return r.updateMembers(ctx, groupID, bson.M{"$pull": bson.M{"member_ids": userID}})
}

func (r *MongoGroupRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return n, nil
}

func (r *MongoGroupRepository) updateMembers(ctx context.Context, groupID string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(groupID)
	if err != nil {
		return domain.ErrGroupNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update group members: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func (mg *mongoGroup) toDomain() *domain.Group {
	return &domain.Group{
		ID:          mg.ID.Hex(),
		Name:        mg.Name,
		Description: mg.Description,
		OwnerID:     mg.OwnerID,
		MemberIDs:   mg.MemberIDs,
		MemberCount: len(mg.MemberIDs),
		CreatedAt:   unixToTime(mg.CreatedAt),
	}
}
