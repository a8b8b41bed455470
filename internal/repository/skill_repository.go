package repository

import (
	"context"
	"time"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SkillRepository struct {
	Col *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{Col: db.Collection("skills")}
}

// Upsert writes a proficiency level keyed by (user_id, skill_name).
// Idempotent: repeating the same write leaves the same row.
func (r *SkillRepository) Upsert(ctx context.Context, userID, skillName string, level int) error {
	filter := bson.M{"user_id": userID, "skill_name": skillName}
	update := bson.M{"$set": bson.M{
		"user_id":           userID,
		"skill_name":        skillName,
		"proficiency_level": level,
		"last_updated":      time.Now(),
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *SkillRepository) FindByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var skills []models.Skill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// SkillNamesByLevel lists skill names filtered by a proficiency bound.
// minLevel <= 0 means no lower bound, maxLevel <= 0 means no upper bound.
func (r *SkillRepository) SkillNamesByLevel(ctx context.Context, userID string, minLevel, maxLevel int) ([]string, error) {
	filter := bson.M{"user_id": userID}
	levelFilter := bson.M{}
	if minLevel > 0 {
		levelFilter["$gte"] = minLevel
	}
	if maxLevel > 0 {
		levelFilter["$lte"] = maxLevel
	}
	if len(levelFilter) > 0 {
		filter["proficiency_level"] = levelFilter
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var skills []models.Skill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.SkillName)
	}
	return names, nil
}
