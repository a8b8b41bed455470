package models

import "time"

// Skill is an upserted (user, skill_name) proficiency record on a 1-5 scale.
type Skill struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	SkillName        string    `bson:"skill_name" json:"skill_name"`
	ProficiencyLevel int       `bson:"proficiency_level" json:"proficiency_level"`
	LastUpdated      time.Time `bson:"last_updated" json:"last_updated"`
}
