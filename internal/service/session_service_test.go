package service

import (
	"context"
	"testing"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"
	"github.com/HAS1ELB/INTELLIPATH/internal/quiz"

	"go.mongodb.org/mongo-driver/bson"
)

type stubSessionStore struct {
	session *models.QuizSession
	updates []bson.M
}

func (s *stubSessionStore) FindByID(_ context.Context, _ string) (*models.QuizSession, error) {
	return s.session, nil
}

func (s *stubSessionStore) Create(_ context.Context, session *models.QuizSession) error {
	session.ID = "session-1"
	s.session = session
	return nil
}

func (s *stubSessionStore) Update(_ context.Context, _ string, update bson.M) error {
	s.updates = append(s.updates, update)
	return nil
}

type recordedResult struct {
	userID   string
	topic    string
	score    float64
	maxScore int
}

type recordedSkill struct {
	userID string
	skill  string
	level  int
}

type stubProgressRecorder struct {
	results []recordedResult
	skills  []recordedSkill
}

func (s *stubProgressRecorder) RecordQuizResult(_ context.Context, userID, topic string, score float64, maxScore int) error {
	s.results = append(s.results, recordedResult{userID, topic, score, maxScore})
	return nil
}

func (s *stubProgressRecorder) UpdateSkill(_ context.Context, userID, skillName string, level int) error {
	s.skills = append(s.skills, recordedSkill{userID, skillName, level})
	return nil
}

func newStoredSession(n int) *models.QuizSession {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Question:      "Q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
			Explanation:   "E",
		}
	}
	return &models.QuizSession{
		ID:        "session-1",
		UserID:    "user-1",
		Topic:     "Go",
		Questions: questions,
		Status:    models.SessionActive,
	}
}

func TestStartSessionPersistsGeneratedQuestions(t *testing.T) {
	questionJSON := `{"question": "Q?", "options": ["a","b","c","d"], "correct_answer": 0, "explanation": "E"}`
	model := &stubModel{responses: []string{questionJSON}}
	store := &stubSessionStore{}
	svc := NewSessionService(store, quiz.NewGenerator(model), &stubProgressRecorder{}, nil)

	session, err := svc.StartSession(context.Background(), "user-1", "Go", "easy", 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.session != session {
		t.Error("Session was not persisted")
	}
	if len(session.Questions) != 2 {
		t.Errorf("Expected 2 questions, got %d", len(session.Questions))
	}
	if session.Status != models.SessionActive {
		t.Errorf("Expected active status, got %q", session.Status)
	}
}

func TestSubmitAnswerMidSessionRecordsNothing(t *testing.T) {
	store := &stubSessionStore{session: newStoredSession(2)}
	recorder := &stubProgressRecorder{}
	svc := NewSessionService(store, quiz.NewGenerator(&stubModel{}), recorder, nil)

	eval, session, err := svc.SubmitAnswer(context.Background(), "session-1", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !eval.IsCorrect {
		t.Error("Expected a correct evaluation")
	}
	if session.Status != models.SessionActive {
		t.Errorf("Session must stay active mid-quiz, got %q", session.Status)
	}
	if len(recorder.results) != 0 || len(recorder.skills) != 0 {
		t.Errorf("No progress writes before the terminal submission, got %d results, %d skills",
			len(recorder.results), len(recorder.skills))
	}
	if len(store.updates) != 1 {
		t.Fatalf("Expected 1 persisted update, got %d", len(store.updates))
	}
	if _, ok := store.updates[0]["end_time"]; ok {
		t.Error("end_time must not be written before completion")
	}
}

func TestSubmitAnswerTerminalRecordsResultAndSkill(t *testing.T) {
	store := &stubSessionStore{session: newStoredSession(2)}
	recorder := &stubProgressRecorder{}
	svc := NewSessionService(store, quiz.NewGenerator(&stubModel{}), recorder, nil)

	if _, _, err := svc.SubmitAnswer(context.Background(), "session-1", 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Last question answered wrong: final score 1 of 2.
	_, session, err := svc.SubmitAnswer(context.Background(), "session-1", 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if session.Status != models.SessionCompleted {
		t.Fatalf("Expected completed status, got %q", session.Status)
	}

	if len(recorder.results) != 1 {
		t.Fatalf("Expected exactly 1 recorded result, got %d", len(recorder.results))
	}
	result := recorder.results[0]
	if result.userID != "user-1" || result.topic != "Go" || result.score != 1 || result.maxScore != 2 {
		t.Errorf("Unexpected recorded result: %+v", result)
	}

	if len(recorder.skills) != 1 {
		t.Fatalf("Expected exactly 1 skill upsert, got %d", len(recorder.skills))
	}
	skill := recorder.skills[0]
	if skill.userID != "user-1" || skill.skill != "Go" {
		t.Errorf("Unexpected skill upsert: %+v", skill)
	}
	if expected := quiz.ProficiencyLevel(1, 2); skill.level != expected {
		t.Errorf("Skill level = %d, want %d", skill.level, expected)
	}

	terminal := store.updates[len(store.updates)-1]
	if terminal["status"] != models.SessionCompleted {
		t.Errorf("Terminal update must persist the completed status, got %v", terminal["status"])
	}
	if _, ok := terminal["end_time"]; !ok {
		t.Error("Terminal update must persist end_time")
	}
}

func TestSubmitAnswerAfterCompletionRecordsNothingMore(t *testing.T) {
	session := newStoredSession(1)
	store := &stubSessionStore{session: session}
	recorder := &stubProgressRecorder{}
	svc := NewSessionService(store, quiz.NewGenerator(&stubModel{}), recorder, nil)

	if _, _, err := svc.SubmitAnswer(context.Background(), "session-1", 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, _, err := svc.SubmitAnswer(context.Background(), "session-1", 0); err != quiz.ErrSessionComplete {
		t.Fatalf("Expected ErrSessionComplete, got %v", err)
	}
	if len(recorder.results) != 1 || len(recorder.skills) != 1 {
		t.Errorf("Completion side effects must fire exactly once, got %d results, %d skills",
			len(recorder.results), len(recorder.skills))
	}
}
