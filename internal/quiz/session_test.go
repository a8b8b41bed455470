package quiz

import (
	"testing"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

func testQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Question:      "Q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Explanation:   "E",
		}
	}
	return questions
}

func TestSubmitAllCorrect(t *testing.T) {
	session := NewSession("user-1", "topic", "easy", testQuestions(4))

	for i := 0; i < 4; i++ {
		eval, err := Submit(session, i%4)
		if err != nil {
			t.Fatalf("Submit %d: unexpected error: %v", i, err)
		}
		if !eval.IsCorrect {
			t.Errorf("Submit %d: expected correct", i)
		}
		if session.Cursor != i+1 {
			t.Errorf("Submit %d: cursor = %d, want %d", i, session.Cursor, i+1)
		}
	}

	if session.Score != 4 {
		t.Errorf("Expected score 4, got %d", session.Score)
	}
	if session.Status != models.SessionCompleted {
		t.Errorf("Expected completed status, got %q", session.Status)
	}
	if len(session.Answers) != 4 {
		t.Errorf("Expected 4 logged answers, got %d", len(session.Answers))
	}
}

func TestSubmitAllWrong(t *testing.T) {
	session := NewSession("user-1", "topic", "easy", testQuestions(3))

	for i := 0; i < 3; i++ {
		chosen := (i + 1) % 4 // always off by one
		if _, err := Submit(session, chosen); err != nil {
			t.Fatalf("Submit %d: unexpected error: %v", i, err)
		}
	}
	if session.Score != 0 {
		t.Errorf("Expected score 0, got %d", session.Score)
	}
}

func TestSubmitAfterCompletion(t *testing.T) {
	session := NewSession("user-1", "topic", "easy", testQuestions(1))

	if _, err := Submit(session, 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := Submit(session, 0); err != ErrSessionComplete {
		t.Errorf("Expected ErrSessionComplete, got %v", err)
	}
	if session.Cursor != 1 {
		t.Errorf("Cursor must never exceed the question count, got %d", session.Cursor)
	}
}

func TestCurrentQuestion(t *testing.T) {
	session := NewSession("user-1", "topic", "easy", testQuestions(2))

	q, err := CurrentQuestion(session)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.CorrectAnswer != 0 {
		t.Errorf("Expected first question, got correct_answer=%d", q.CorrectAnswer)
	}

	Submit(session, 0)
	Submit(session, 0)
	if _, err := CurrentQuestion(session); err != ErrSessionComplete {
		t.Errorf("Expected ErrSessionComplete on finished session, got %v", err)
	}
}

func TestProficiencyLevel(t *testing.T) {
	testCases := []struct {
		score, max, expected int
	}{
		{5, 5, 5},   // 100%
		{0, 5, 1},   // 0%
		{1, 2, 3},   // 50% -> floor(50/20)+1 = 3
		{4, 5, 5},   // 80% -> floor(80/20)+1 = 5
		{2, 5, 3},   // 40%
		{3, 5, 4},   // 60%
		{1, 5, 2},   // 20%
		{1, 10, 1},  // 10%
		{0, 0, 1},   // degenerate max
		{10, 10, 5}, // clamp upper bound
	}

	for _, tc := range testCases {
		if got := ProficiencyLevel(tc.score, tc.max); got != tc.expected {
			t.Errorf("ProficiencyLevel(%d, %d) = %d, want %d", tc.score, tc.max, got, tc.expected)
		}
	}
}
