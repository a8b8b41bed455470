package service

import (
	"context"
	"testing"

	"github.com/HAS1ELB/INTELLIPATH/internal/agent"
	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
	"github.com/HAS1ELB/INTELLIPATH/internal/quiz"
	"github.com/HAS1ELB/INTELLIPATH/internal/syllabus"
)

type stubModel struct {
	responses []string
	calls     int
}

func (s *stubModel) Invoke(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	resp := ""
	if s.calls < len(s.responses) {
		resp = s.responses[s.calls]
	} else if len(s.responses) > 0 {
		resp = s.responses[len(s.responses)-1]
	}
	s.calls++
	return resp, nil
}

func newTestChatService(model llm.LanguageModel) *ChatService {
	tutor := agent.NewTutorAgent(model, quiz.NewGenerator(model))
	return NewChatService(tutor, syllabus.NewGenerator(model), nil)
}

func TestStartTopicSeedsConversation(t *testing.T) {
	model := &stubModel{responses: []string{"Module 1: Basics\nModule 2: Advanced"}}
	svc := newTestChatService(model)

	text, err := svc.StartTopic(context.Background(), "user-1", "Go")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text == "" {
		t.Fatal("Expected a syllabus")
	}

	state := svc.Snapshot("user-1")
	if state.CurrentTopic != "Go" {
		t.Errorf("Expected topic Go, got %q", state.CurrentTopic)
	}
	if state.CurrentSyllabus != text {
		t.Error("Syllabus not stored on the conversation state")
	}
}

func TestHandleTurnKeepsStateAcrossTurns(t *testing.T) {
	model := &stubModel{responses: []string{
		"Outline",             // syllabus
		"course_question",     // turn 1 intent
		"Detailed answer.",    // turn 1 answer
		"analyse_progression", // turn 2 intent
	}}
	svc := newTestChatService(model)

	if _, err := svc.StartTopic(context.Background(), "user-1", "Go"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.HandleTurn(context.Background(), "user-1", "what is a goroutine?"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	response, err := svc.HandleTurn(context.Background(), "user-1", "show my progress")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if response == "" {
		t.Fatal("Expected a response")
	}

	state := svc.Snapshot("user-1")
	if len(state.StepsCompleted) != 2 {
		t.Errorf("Expected 2 completed steps across turns, got %v", state.StepsCompleted)
	}
}

func TestSnapshotIsDetachedFromLiveState(t *testing.T) {
	model := &stubModel{responses: []string{
		"Outline",
		"course_question",
		"First answer.",
		"analyse_progression",
	}}
	svc := newTestChatService(model)

	if _, err := svc.StartTopic(context.Background(), "user-1", "Go"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.HandleTurn(context.Background(), "user-1", "what is a channel?"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	snap := svc.Snapshot("user-1")

	// A later turn rewrites the live Context map and appends to the step
	// log; the snapshot taken before it must not move.
	if _, err := svc.HandleTurn(context.Background(), "user-1", "show my progress"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if snap.Context["detected_intent"] != "question" {
		t.Errorf("Snapshot intent changed under a concurrent turn: %v", snap.Context["detected_intent"])
	}
	if len(snap.StepsCompleted) != 1 {
		t.Errorf("Snapshot step log changed under a concurrent turn: %v", snap.StepsCompleted)
	}

	// And mutating the snapshot must not leak back.
	snap.Context["detected_intent"] = "tampered"
	if svc.Snapshot("user-1").Context["detected_intent"] == "tampered" {
		t.Error("Writes to a snapshot must not reach the live state")
	}
}

func TestConversationsAreIsolatedPerUser(t *testing.T) {
	model := &stubModel{responses: []string{"Outline"}}
	svc := newTestChatService(model)

	if _, err := svc.StartTopic(context.Background(), "user-a", "Rust"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	other := svc.Snapshot("user-b")
	if other.CurrentTopic != "" {
		t.Errorf("user-b must not see user-a's topic, got %q", other.CurrentTopic)
	}
}

func TestResetQuizStateOnConversation(t *testing.T) {
	questionJSON := `{"question": "Q?", "options": ["a","b","c","d"], "correct_answer": 0, "explanation": "E"}`
	model := &stubModel{responses: []string{"Outline", "demande_quiz", questionJSON}}
	svc := newTestChatService(model)

	if _, err := svc.StartTopic(context.Background(), "user-1", "Go"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.HandleTurn(context.Background(), "user-1", "quiz me"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !svc.Snapshot("user-1").QuizInProgress {
		t.Fatal("Expected quiz_in_progress after a quiz turn")
	}
	svc.ResetQuizState("user-1")
	if svc.Snapshot("user-1").QuizInProgress {
		t.Error("Expected quiz_in_progress cleared after reset")
	}
}
