package models

import "time"

// QuizResult is one completed quiz: score out of max_score for a topic.
type QuizResult struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	Topic          string    `bson:"topic" json:"topic"`
	Score          float64   `bson:"score" json:"score"`
	MaxScore       int       `bson:"max_score" json:"max_score"`
	CompletionTime time.Time `bson:"completion_time" json:"completion_time"`
}

// TopicPerformance aggregates quiz results per topic for dashboards and the
// skills analyzer.
type TopicPerformance struct {
	Topic      string  `bson:"_id" json:"topic"`
	Percentage float64 `bson:"percentage" json:"percentage"`
	Attempts   int     `bson:"attempts" json:"attempts"`
}
