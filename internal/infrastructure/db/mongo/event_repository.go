package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

const eventCollection = "events"

type MongoEventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{coll: db.Collection(eventCollection)}
}

type mongoEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Location    string             `bson:"location,omitempty"`
	OrganizerID string             `bson:"organizer_id"`
	StartsAt    int64              `bson:"starts_at"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *MongoEventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	doc := mongoEvent{
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		OrganizerID: event.OrganizerID,
		StartsAt:    event.StartsAt.Unix(),
		CreatedAt:   event.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *event
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoEventRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "starts_at", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"starts_at": bson.M{"$gte": from.Unix()}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	events := make([]*domain.Event, 0, limit)
	for cur.Next(ctx) {
		var me mongoEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *MongoEventRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (me *mongoEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:          me.ID.Hex(),
		Title:       me.Title,
		Description: me.Description,
		Location:    me.Location,
		OrganizerID: me.OrganizerID,
		StartsAt:    unixToTime(me.StartsAt),
		CreatedAt:   unixToTime(me.CreatedAt),
	}
}
