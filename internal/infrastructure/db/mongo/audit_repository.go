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

const auditCollection = "audit_log"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ActorID   string             `bson:"actor_id"`
	Action    string             `bson:"action"`
	TargetID  string             `bson:"target_id,omitempty"`
	Detail    string             `bson:"detail,omitempty"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := mongoAuditEntry{
		ActorID:   entry.ActorID,
		Action:    entry.Action,
		TargetID:  entry.TargetID,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent audit entries: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]*domain.AuditEntry, 0, limit)
	for cur.Next(ctx) {
		var ma mongoAuditEntry
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditEntry{
			ID:        ma.ID.Hex(),
			ActorID:   ma.ActorID,
			Action:    ma.Action,
			TargetID:  ma.TargetID,
			Detail:    ma.Detail,
			CreatedAt: unixToTime(ma.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("recent audit entries: %w", err)
	}
	return entries, nil
}
