package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

// CollectionName is the MongoDB collection holding todos.
const CollectionName = "todos"

type mongoTodo struct {
	ID        primitive.ObjectID `bson:"_id"`
	Task      string             `bson:"task"`
	Completed bool               `bson:"completed"`
}

func (m mongoTodo) toDomain() *domain.Todo {
	return domain.Rehydrate(m.ID.Hex(), m.Task, m.Completed)
}

// MongoTodoRepository stores todos in a MongoDB collection keyed by ObjectID.
type MongoTodoRepository struct {
	coll *mongo.Collection
}

// NewMongoTodoRepository creates a repository over the given collection.
func NewMongoTodoRepository(coll *mongo.Collection) *MongoTodoRepository {
	return &MongoTodoRepository{coll: coll}
}

// Insert stores the todo under a new ObjectID.
func (r *MongoTodoRepository) Insert(ctx context.Context, t *domain.Todo) error {
	doc := mongoTodo{
		ID:        primitive.NewObjectID(),
		Task:      t.Task(),
		Completed: t.Completed(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return t.AssignID(doc.ID.Hex())
}

// List returns todos in ascending _id order, which is insertion order for
// ObjectIDs minted by this process.
func (r *MongoTodoRepository) List(ctx context.Context, offset, limit int) ([]*domain.Todo, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoTodo
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos := make([]*domain.Todo, 0, len(docs))
	for _, doc := range docs {
		todos = append(todos, doc.toDomain())
	}
	return todos, nil
}

// Count returns the number of documents in the collection.
func (r *MongoTodoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return n, nil
}

// SetCompleted uses findOneAndUpdate and returns the document after the update.
func (r *MongoTodoRepository) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoTodo
	err = r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "completed", Value: completed}}}},
		opts,
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes the document with the given id.
func (r *MongoTodoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Ping checks the primary of the collection's client.
func (r *MongoTodoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
