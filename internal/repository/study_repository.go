package repository

import (
	"context"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StudyRepository struct {
	Col *mongo.Collection
}

func NewStudyRepository(db *mongo.Database) *StudyRepository {
	return &StudyRepository{Col: db.Collection("study_sessions")}
}

func (r *StudyRepository) Create(ctx context.Context, session *models.StudySession) error {
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}
	return nil
}

// StudyTimeByTopic sums study minutes per topic for one user.
func (r *StudyRepository) StudyTimeByTopic(ctx context.Context, userID string) ([]models.StudyTime, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$topic",
			"total_minutes": bson.M{"$sum": "$duration_minutes"},
		}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var times []models.StudyTime
	if err := cur.All(ctx, &times); err != nil {
		return nil, err
	}
	return times, nil
}

// StudiedTopics lists the distinct topics a user has logged time on.
func (r *StudyRepository) StudiedTopics(ctx context.Context, userID string) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "topic", bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			topics = append(topics, s)
		}
	}
	return topics, nil
}
