package repository

import (
	"context"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("quiz_results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.QuizResult) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"completion_time": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.QuizResult
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// TopicPerformance averages score/max_score per topic for one user.
func (r *ResultRepository) TopicPerformance(ctx context.Context, userID string) ([]models.TopicPerformance, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id": "$topic",
			"percentage": bson.M{"$avg": bson.M{"$multiply": []any{
				bson.M{"$divide": []string{"$score", "$max_score"}}, 100,
			}}},
			"attempts": bson.M{"$sum": 1},
		}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var performance []models.TopicPerformance
	if err := cur.All(ctx, &performance); err != nil {
		return nil, err
	}
	return performance, nil
}
