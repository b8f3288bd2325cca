package mongodb

import (
	"context"
	"time"

	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/app/models"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MeetingAssistMongoRepository backs the meeting-assist data contract with a
// local MongoDB for self-hosted deployments. Documents are keyed by the
// service-assigned id field rather than Mongo object ids, matching what the
// remote data-store hands out.
type MeetingAssistMongoRepository struct {
	Collection *mongo.Collection
}

func NewMeetingAssistMongoRepository(db *mongo.Client, dbName string) contracts.MeetingAssistDataClient {
	return &MeetingAssistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMeetingAssists),
	}
}

func (r *MeetingAssistMongoRepository) FindMeetingAssistByID(ctx context.Context, meetingID string) (*models.MeetingAssist, error) {
	var meeting models.MeetingAssist
	err := r.Collection.FindOne(ctx, bson.M{"id": meetingID}).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, exceptions.ErrMeetingAssistNotFound(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &meeting, nil
}

func (r *MeetingAssistMongoRepository) FindMeetingAssistsByOriginalID(ctx context.Context, originalMeetingID string) ([]models.MeetingAssist, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"originalMeetingId": originalMeetingID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var meetings []models.MeetingAssist
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return meetings, nil
}

func (r *MeetingAssistMongoRepository) FindMeetingAssistsByUserID(ctx context.Context, userID string) ([]models.MeetingAssist, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var meetings []models.MeetingAssist
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return meetings, nil
}

func (r *MeetingAssistMongoRepository) FindActiveRecurringTemplates(ctx context.Context, until time.Time) ([]models.MeetingAssist, error) {
	filter := bson.M{
		"cancelled":         false,
		"frequency":         bson.M{"$exists": true},
		"until":             bson.M{"$gte": until.UTC()},
		"originalMeetingId": bson.M{"$in": []interface{}{nil, ""}},
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var meetings []models.MeetingAssist
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return meetings, nil
}

func (r *MeetingAssistMongoRepository) CreateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error) {
	filter := bson.M{"id": meeting.ID}
	update := bson.M{"$set": meeting}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return meeting, nil
}

func (r *MeetingAssistMongoRepository) CreateMeetingAssists(ctx context.Context, meetings []models.MeetingAssist) ([]models.MeetingAssist, error) {
	if len(meetings) == 0 {
		return nil, nil
	}
	docs := make([]interface{}, 0, len(meetings))
	for i := range meetings {
		docs = append(docs, meetings[i])
	}
	_, err := r.Collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return meetings, nil
}

func (r *MeetingAssistMongoRepository) UpdateMeetingAssist(ctx context.Context, meeting *models.MeetingAssist) (*models.MeetingAssist, error) {
	filter := bson.M{"id": meeting.ID}
	update := bson.M{"$set": meeting}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return nil, exceptions.ErrMeetingAssistNotFound(nil)
	}
	return meeting, nil
}
