package service

import (
	"context"
	"log"

	"github.com/HAS1ELB/INTELLIPATH/internal/event"
	"github.com/HAS1ELB/INTELLIPATH/internal/models"
	"github.com/HAS1ELB/INTELLIPATH/internal/quiz"

	"go.mongodb.org/mongo-driver/bson"
)

// SessionStore persists quiz sessions in delivery.
type SessionStore interface {
	FindByID(ctx context.Context, id string) (*models.QuizSession, error)
	Create(ctx context.Context, session *models.QuizSession) error
	Update(ctx context.Context, id string, update bson.M) error
}

// ProgressRecorder receives the side effects of a completed session.
type ProgressRecorder interface {
	RecordQuizResult(ctx context.Context, userID, topic string, score float64, maxScore int) error
	UpdateSkill(ctx context.Context, userID, skillName string, level int) error
}

// SessionService drives structured quiz sessions: generation, sequential
// question delivery and the terminal progress write.
type SessionService struct {
	Repo      SessionStore
	generator *quiz.Generator
	progress  ProgressRecorder
	publisher *event.EventPublisher
}

func NewSessionService(
	repo SessionStore,
	generator *quiz.Generator,
	progress ProgressRecorder,
	publisher *event.EventPublisher,
) *SessionService {
	return &SessionService{
		Repo:      repo,
		generator: generator,
		progress:  progress,
		publisher: publisher,
	}
}

// StartSession generates a question set and persists a fresh session.
// The stored question count may be lower than requested when the generator
// under-delivers.
func (s *SessionService) StartSession(ctx context.Context, userID, topic, difficulty string, numQuestions int) (*models.QuizSession, error) {
	questions, err := s.generator.GenerateQuiz(ctx, topic, difficulty, numQuestions)
	if err != nil {
		return nil, err
	}

	session := quiz.NewSession(userID, topic, difficulty, questions)
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(event.QuizStarted, map[string]any{
			"session_id": session.ID,
			"user_id":    userID,
			"topic":      topic,
			"questions":  len(questions),
		}); err != nil {
			log.Printf("failed to publish quiz start: %v", err)
		}
	}
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*models.QuizSession, error) {
	return s.Repo.FindByID(ctx, id)
}

// CurrentQuestion returns the question under the session cursor.
func (s *SessionService) CurrentQuestion(ctx context.Context, sessionID string) (*models.Question, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return quiz.CurrentQuestion(session)
}

// SubmitAnswer evaluates one submission and persists the advanced session.
// On the terminal submission the quiz result is recorded and the topic
// skill level is derived from the score. The two writes are independent;
// a crash in between is acceptable because skill levels are recomputed
// from quiz history on the next completion.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID string, chosenIndex int) (*quiz.Evaluation, *models.QuizSession, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	eval, err := quiz.Submit(session, chosenIndex)
	if err != nil {
		return nil, nil, err
	}

	update := bson.M{
		"cursor":  session.Cursor,
		"score":   session.Score,
		"answers": session.Answers,
		"status":  session.Status,
	}
	if session.Status == models.SessionCompleted {
		update["end_time"] = session.EndTime
	}
	if err := s.Repo.Update(ctx, sessionID, update); err != nil {
		return nil, nil, err
	}

	if session.Status == models.SessionCompleted {
		s.completeSession(ctx, session)
	}
	return &eval, session, nil
}

func (s *SessionService) completeSession(ctx context.Context, session *models.QuizSession) {
	maxScore := len(session.Questions)
	if err := s.progress.RecordQuizResult(ctx, session.UserID, session.Topic, float64(session.Score), maxScore); err != nil {
		log.Printf("failed to record quiz result for session %s: %v", session.ID, err)
	}

	level := quiz.ProficiencyLevel(session.Score, maxScore)
	if err := s.progress.UpdateSkill(ctx, session.UserID, session.Topic, level); err != nil {
		log.Printf("failed to update skill for session %s: %v", session.ID, err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(event.QuizCompleted, map[string]any{
			"session_id": session.ID,
			"user_id":    session.UserID,
			"topic":      session.Topic,
			"score":      session.Score,
			"max_score":  maxScore,
			"level":      level,
		}); err != nil {
			log.Printf("failed to publish quiz completion: %v", err)
		}
	}
}
