package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	llmModels "studybot/internal/domain/models/llm"
	llmRepo "studybot/internal/domain/repositories/llm"
)

// RepositoryConfig holds the settings needed to reach the history collection
type RepositoryConfig struct {
	URL        string
	Database   string
	Collection string
	Logger     *slog.Logger
}

// MongoTurnRepository implements the HistoryStore interface on a MongoDB collection.
// One document per turn: {_id, user_id, role, message, timestamp}.
type MongoTurnRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger
}

// turnDocument is the stored shape of a turn.
// _id is kept as interface{} so collections written by older clients
// (auto-generated ObjectIDs) can still be read.
type turnDocument struct {
	ID        interface{} `bson:"_id"`
	UserID    string      `bson:"user_id"`
	Role      string      `bson:"role"`
	Message   string      `bson:"message"`
	Timestamp time.Time   `bson:"timestamp"`
}

// NewTurnRepository connects to MongoDB, verifies the connection and ensures
// the (user_id, timestamp) index exists.
func NewTurnRepository(ctx context.Context, config *RepositoryConfig) (llmRepo.HistoryStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URL))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	collection := client.Database(config.Database).Collection(config.Collection)

	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create history index: %w", err)
	}

	return &MongoTurnRepository{
		client:     client,
		collection: collection,
		logger:     config.Logger,
	}, nil
}

// InsertTurn appends a turn document
func (r *MongoTurnRepository) InsertTurn(ctx context.Context, turn *llmModels.ChatTurn) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(turn)); err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// FindHistory retrieves all turns for a user, oldest first
func (r *MongoTurnRepository) FindHistory(ctx context.Context, userID string) ([]llmModels.ChatTurn, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	return r.find(ctx, userID, opts)
}

// FindRecent retrieves the latest limit turns for a user, oldest first
func (r *MongoTurnRepository) FindRecent(ctx context.Context, userID string, limit int) ([]llmModels.ChatTurn, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	turns, err := r.find(ctx, userID, opts)
	if err != nil {
		return nil, err
	}
	slices.Reverse(turns)
	return turns, nil
}

func (r *MongoTurnRepository) find(ctx context.Context, userID string, opts *options.FindOptions) ([]llmModels.ChatTurn, error) {
	cursor, err := r.collection.Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find turns: %w", err)
	}

	var docs []turnDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode turns: %w", err)
	}

	turns := make([]llmModels.ChatTurn, 0, len(docs))
	for i := range docs {
		turns = append(turns, fromDocument(&docs[i]))
	}
	return turns, nil
}

// Ping verifies the primary is reachable
func (r *MongoTurnRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (r *MongoTurnRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func toDocument(turn *llmModels.ChatTurn) *turnDocument {
	return &turnDocument{
		ID:        turn.ID,
		UserID:    turn.UserID,
		Role:      turn.Role,
		Message:   turn.Message,
		Timestamp: turn.Timestamp,
	}
}

func fromDocument(doc *turnDocument) llmModels.ChatTurn {
	var id string
	switch v := doc.ID.(type) {
	case string:
		id = v
	case primitive.ObjectID:
		id = v.Hex()
	case nil:
	default:
		id = fmt.Sprint(v)
	}

	return llmModels.ChatTurn{
		ID:        id,
		UserID:    doc.UserID,
		Role:      doc.Role,
		Message:   doc.Message,
		Timestamp: doc.Timestamp.UTC(),
	}
}
