package quiz

import (
	"fmt"
	"time"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

// ErrSessionComplete is returned when a submission arrives after the cursor
// already reached the end of the question set.
var ErrSessionComplete = fmt.Errorf("quiz session already complete")

// NewSession starts a delivery session over a generated question set.
func NewSession(userID, topic, difficulty string, questions []models.Question) *models.QuizSession {
	return &models.QuizSession{
		UserID:     userID,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
		Status:     models.SessionActive,
		StartTime:  time.Now(),
	}
}

// CurrentQuestion returns the question under the cursor.
func CurrentQuestion(s *models.QuizSession) (*models.Question, error) {
	if s.Cursor >= len(s.Questions) {
		return nil, ErrSessionComplete
	}
	return &s.Questions[s.Cursor], nil
}

// Submit evaluates the chosen option for the current question, logs the
// submission, bumps the score on a correct answer and advances the cursor by
// exactly one. The cursor never decrements, never skips and never exceeds
// the question count. When the last question is answered the session flips
// to completed.
func Submit(s *models.QuizSession, chosenIndex int) (Evaluation, error) {
	if s.Status == models.SessionCompleted || s.Cursor >= len(s.Questions) {
		return Evaluation{}, ErrSessionComplete
	}

	question := &s.Questions[s.Cursor]
	eval := EvaluateAnswer(question, chosenIndex)

	if eval.IsCorrect {
		s.Score++
	}
	s.Answers = append(s.Answers, models.SubmittedAnswer{
		QuestionIndex: s.Cursor,
		ChosenIndex:   chosenIndex,
		IsCorrect:     eval.IsCorrect,
	})
	s.Cursor++

	if s.Cursor >= len(s.Questions) {
		s.Status = models.SessionCompleted
		s.EndTime = time.Now()
	}
	return eval, nil
}

// ProficiencyLevel maps a quiz score to the 1-5 scale: each 20-percentage-
// point band raises the level by one, floor-rounded, clamped to [1, 5].
func ProficiencyLevel(score, maxScore int) int {
	if maxScore <= 0 {
		return 1
	}
	level := int(float64(score)/float64(maxScore)*100)/20 + 1
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}
