package coursestore

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// courseDocument keeps commit order, since display order follows it.
type courseDocument struct {
	Position      int `bson:"position"`
	models.Course `bson:",inline"`
}

type mongoStore struct {
	Collection *mongo.Collection
}

func NewMongoStore(db *mongo.Client, dbName, collection string) contracts.CourseStore {
	return &mongoStore{
		Collection: db.Database(dbName).Collection(collection),
	}
}

func newMongoStoreFromCollection(collection *mongo.Collection) *mongoStore {
	return &mongoStore{Collection: collection}
}

func (s *mongoStore) Load(ctx context.Context) ([]models.Course, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := s.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var documents []courseDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	courses := make([]models.Course, 0, len(documents))
	for _, doc := range documents {
		courses = append(courses, doc.Course)
	}
	return courses, nil
}

// Save replaces the collection contents with courses.
func (s *mongoStore) Save(ctx context.Context, courses []models.Course) error {
	if _, err := s.Collection.DeleteMany(ctx, bson.M{}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if len(courses) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(courses))
	for i, c := range courses {
		documents = append(documents, courseDocument{Position: i, Course: c})
	}
	if _, err := s.Collection.InsertMany(ctx, documents); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
