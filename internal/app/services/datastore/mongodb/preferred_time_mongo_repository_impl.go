package mongodb

import (
	"context"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PreferredTimeMongoRepository struct {
	Collection *mongo.Collection
}

func NewPreferredTimeMongoRepository(db *mongo.Client, dbName string) contracts.PreferredTimeDataClient {
	return &PreferredTimeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPreferredTimes),
	}
}

func (r *PreferredTimeMongoRepository) FindPreferredTimesByMeetingID(ctx context.Context, meetingID string) ([]models.PreferredTimeRange, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"meetingId": meetingID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var ranges []models.PreferredTimeRange
	if err := cursor.All(ctx, &ranges); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return ranges, nil
}

func (r *PreferredTimeMongoRepository) CreatePreferredTimes(ctx context.Context, ranges []models.PreferredTimeRange) ([]models.PreferredTimeRange, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	docs := make([]interface{}, 0, len(ranges))
	for i := range ranges {
		docs = append(docs, ranges[i])
	}
	if _, err := r.Collection.InsertMany(ctx, docs); err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return ranges, nil
}
