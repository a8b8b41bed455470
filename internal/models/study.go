package models

import "time"

// StudySession records time spent studying a topic.
type StudySession struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	Topic           string    `bson:"topic" json:"topic"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	SessionDate     time.Time `bson:"session_date" json:"session_date"`
}

// StudyTime aggregates study minutes per topic.
type StudyTime struct {
	Topic        string `bson:"_id" json:"topic"`
	TotalMinutes int    `bson:"total_minutes" json:"total_minutes"`
}
