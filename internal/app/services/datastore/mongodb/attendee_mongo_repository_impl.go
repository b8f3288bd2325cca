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

type AttendeeMongoRepository struct {
	Collection *mongo.Collection
}

func NewAttendeeMongoRepository(db *mongo.Client, dbName string) contracts.AttendeeDataClient {
	return &AttendeeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAttendees),
	}
}

func (r *AttendeeMongoRepository) FindAttendeesByMeetingID(ctx context.Context, meetingID string) ([]models.Attendee, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"meetingId": meetingID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var attendees []models.Attendee
	if err := cursor.All(ctx, &attendees); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return attendees, nil
}

func (r *AttendeeMongoRepository) CreateAttendees(ctx context.Context, attendees []models.Attendee) ([]models.Attendee, error) {
	if len(attendees) == 0 {
		return nil, nil
	}
	docs := make([]interface{}, 0, len(attendees))
	for i := range attendees {
		docs = append(docs, attendees[i])
	}
	if _, err := r.Collection.InsertMany(ctx, docs); err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return attendees, nil
}
