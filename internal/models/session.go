package models

import "time"

// Session status values.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// SubmittedAnswer logs one submission: which question and which option was
// chosen.
type SubmittedAnswer struct {
	QuestionIndex int  `bson:"question_index" json:"question_index"`
	ChosenIndex   int  `bson:"chosen_index" json:"chosen_index"`
	IsCorrect     bool `bson:"is_correct" json:"is_correct"`
}

// QuizSession holds a quiz in delivery: an ordered question set, a cursor,
// a running score and the submission log. The cursor only ever advances.
type QuizSession struct {
	ID         string            `bson:"_id,omitempty" json:"id"`
	UserID     string            `bson:"user_id" json:"user_id"`
	Topic      string            `bson:"topic" json:"topic"`
	Difficulty string            `bson:"difficulty" json:"difficulty"`
	Questions  []Question        `bson:"questions" json:"questions"`
	Cursor     int               `bson:"cursor" json:"cursor"`
	Score      int               `bson:"score" json:"score"`
	Answers    []SubmittedAnswer `bson:"answers" json:"answers"`
	Status     string            `bson:"status" json:"status"`
	StartTime  time.Time         `bson:"start_time" json:"start_time"`
	EndTime    time.Time         `bson:"end_time,omitempty" json:"end_time,omitempty"`
}
