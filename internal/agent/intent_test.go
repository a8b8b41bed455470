package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
)

type stubModel struct {
	responses []string
	calls     int
	err       error
}

func (s *stubModel) Invoke(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	resp := ""
	if s.calls < len(s.responses) {
		resp = s.responses[s.calls]
	} else if len(s.responses) > 0 {
		resp = s.responses[len(s.responses)-1]
	}
	s.calls++
	return resp, nil
}

func TestNormalizeIntent(t *testing.T) {
	testCases := []struct {
		label    string
		expected Intent
	}{
		{"course_question", IntentQuestion},
		{"The user is asking a QUESTION about loops", IntentQuestion},
		{"quiz_request", IntentQuiz},
		{"2. demande_quiz", IntentQuiz},
		{"course_recommendation", IntentRecommendation},
		{"recherche_recommandation", IntentRecommendation},
		{"progress_review", IntentProgress},
		{"analyse_progression", IntentProgress},
		{"general_conversation", IntentGeneral},
		{"", IntentGeneral},
		{"no idea what this is", IntentGeneral},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			if got := NormalizeIntent(tc.label); got != tc.expected {
				t.Errorf("NormalizeIntent(%q) = %q, want %q", tc.label, got, tc.expected)
			}
		})
	}
}

func TestClassifyFallsBackToGeneral(t *testing.T) {
	model := &stubModel{responses: []string{"complete gibberish"}}
	classifier := NewIntentClassifier(model)

	intent, err := classifier.Classify(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if intent != IntentGeneral {
		t.Errorf("Expected general intent, got %q", intent)
	}
}

func TestClassifyPropagatesModelFailure(t *testing.T) {
	model := &stubModel{err: fmt.Errorf("connection refused")}
	classifier := NewIntentClassifier(model)

	if _, err := classifier.Classify(context.Background(), "hello"); err == nil {
		t.Error("Expected an error when the model call fails")
	}
}
