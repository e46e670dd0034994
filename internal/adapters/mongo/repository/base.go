package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/rafaelleal24/catalog/internal/adapters/mongo/document"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

type errorMessages struct {
	notFound  string
	conflict  string
	invalidID string
}

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
	messages   errorMessages
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName, entityName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		collection: db.Collection(collectionName),
		messages: errorMessages{
			notFound:  entityName + " not found",
			conflict:  "duplicate key error",
			invalidID: "Invalid " + strings.ToLower(entityName) + " ID format",
		},
	}
}

func (r *BaseRepository[T]) objectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, r.parseError(err)
	}
	return objectID, nil
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string, projection bson.D) (*T, error) {
	objectID, err := r.objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var entity T
	err = r.collection.FindOne(ctx, bson.M{document.FieldID: objectID}, opts).Decode(&entity)
	if err != nil {
		return nil, r.parseError(err)
	}

	return &entity, nil
}

func (r *BaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {

	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, r.parseError(err)
	}
	defer cursor.Close(ctx)

	var entities []T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, r.parseError(err)
	}

	return entities, nil
}

// FindPage runs the page query and the total count for the same filter concurrently.
func (r *BaseRepository[T]) FindPage(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, int64, error) {
	var (
		entities []T
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entities, err = r.Find(gctx, filter, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = r.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *BaseRepository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, r.parseError(err)
	}
	return total, nil
}

func (r *BaseRepository[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, r.parseError(err)
	}
	return count > 0, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) (primitive.ObjectID, error) {

	result, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		return primitive.NilObjectID, r.parseError(err)
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

// Update sets the given fields and returns the document as stored afterwards.
func (r *BaseRepository[T]) Update(ctx context.Context, id string, update bson.M) (*T, error) {
	objectID, err := r.objectID(id)
	if err != nil {
		return nil, err
	}

	var entity T
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{document.FieldID: objectID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&entity)
	if err != nil {
		return nil, r.parseError(err)
	}

	return &entity, nil
}

// Replace overwrites the whole document. Fields missing from entity are dropped.
func (r *BaseRepository[T]) Replace(ctx context.Context, id string, entity *T) (*T, error) {
	objectID, err := r.objectID(id)
	if err != nil {
		return nil, err
	}

	var replaced T
	err = r.collection.FindOneAndReplace(
		ctx,
		bson.M{document.FieldID: objectID},
		entity,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&replaced)
	if err != nil {
		return nil, r.parseError(err)
	}

	return &replaced, nil
}

// DeleteByID removes the document and returns it as it was before removal.
func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	objectID, err := r.objectID(id)
	if err != nil {
		return nil, err
	}

	var entity T
	err = r.collection.FindOneAndDelete(ctx, bson.M{document.FieldID: objectID}).Decode(&entity)
	if err != nil {
		return nil, r.parseError(err)
	}

	return &entity, nil
}

func (r *BaseRepository[T]) parseError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError(r.messages.notFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError(r.messages.conflict)
	}
	if isInvalidObjectIDError(err) {
		return serviceerrors.NewInvalidRequestError(r.messages.invalidID)
	}
	return err
}

func isInvalidObjectIDError(err error) bool {
	return err != nil && (errors.Is(err, primitive.ErrInvalidHex) || strings.Contains(err.Error(), "not a valid ObjectID"))
}

// storedField maps a wire field name onto its stored name.
func storedField(field string) string {
	if field == "id" {
		return document.FieldID
	}
	return field
}

func projectionOf(projection domain.Projection) bson.D {
	if projection.IsEmpty() {
		return nil
	}

	fields := bson.D{}
	seen := map[string]bool{}
	for _, field := range projection {
		key := storedField(field)
		if seen[key] {
			continue
		}
		seen[key] = true
		fields = append(fields, bson.E{Key: key, Value: 1})
	}
	return fields
}

// sortOf adds _id as a tie-breaker so pages stay stable when the sort key repeats.
func sortOf(sort domain.Sort) bson.D {
	field := storedField(sort.Field)
	order := bson.D{{Key: field, Value: int(sort.Direction)}}
	if field != document.FieldID {
		order = append(order, bson.E{Key: document.FieldID, Value: int(sort.Direction)})
	}
	return order
}

func pageOptions(sort domain.Sort, page domain.Page, projection domain.Projection) *options.FindOptions {
	opts := options.Find().
		SetSort(sortOf(sort)).
		SetSkip(page.Skip()).
		SetLimit(page.Limit())
	if fields := projectionOf(projection); fields != nil {
		opts.SetProjection(fields)
	}
	return opts
}

func containsInsensitive(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}
