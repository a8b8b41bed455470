package service

import (
	"context"
	"log"
	"sync"

	"github.com/HAS1ELB/INTELLIPATH/internal/agent"
	"github.com/HAS1ELB/INTELLIPATH/internal/event"
	"github.com/HAS1ELB/INTELLIPATH/internal/syllabus"
)

// conversation pairs a state with its own lock so turns for one user are
// serialized without blocking other users during a slow model call.
type conversation struct {
	mu    sync.Mutex
	state *agent.State
}

// ChatService holds one agent State per user and serializes turns on it.
// One state instance per active session key, no cross-session sharing.
type ChatService struct {
	agent     *agent.TutorAgent
	syllabi   *syllabus.Generator
	publisher *event.EventPublisher

	mu            sync.Mutex
	conversations map[string]*conversation
}

func NewChatService(tutor *agent.TutorAgent, syllabi *syllabus.Generator, publisher *event.EventPublisher) *ChatService {
	return &ChatService{
		agent:         tutor,
		syllabi:       syllabi,
		publisher:     publisher,
		conversations: make(map[string]*conversation),
	}
}

func (s *ChatService) conversation(userID string) *conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[userID]
	if !ok {
		c = &conversation{state: agent.NewState(userID)}
		s.conversations[userID] = c
	}
	return c
}

// HandleTurn runs one conversation turn to completion and returns the
// response text. Business conditions never error; only a failed model call
// propagates.
func (s *ChatService) HandleTurn(ctx context.Context, userID, input string) (string, error) {
	c := s.conversation(userID)
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := s.agent.Step(ctx, c.state, input); err != nil {
		return "", err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(event.ChatTurnCompleted, map[string]any{
			"user_id": userID,
			"intent":  c.state.Context["detected_intent"],
		}); err != nil {
			log.Printf("failed to publish chat turn: %v", err)
		}
	}
	return c.state.Response, nil
}

// StartTopic generates a syllabus for a topic and seeds the user's
// conversation state with it.
func (s *ChatService) StartTopic(ctx context.Context, userID, topic string) (string, error) {
	text, err := s.syllabi.Generate(ctx, topic)
	if err != nil {
		return "", err
	}

	c := s.conversation(userID)
	c.mu.Lock()
	c.state.CurrentTopic = topic
	c.state.CurrentSyllabus = text
	c.mu.Unlock()

	if s.publisher != nil {
		if err := s.publisher.Publish(event.SyllabusCreated, map[string]any{
			"user_id": userID,
			"topic":   topic,
		}); err != nil {
			log.Printf("failed to publish syllabus creation: %v", err)
		}
	}
	return text, nil
}

// ResetQuizState clears the quiz marker on the user's conversation state.
func (s *ChatService) ResetQuizState(userID string) {
	c := s.conversation(userID)
	c.mu.Lock()
	c.state.ResetQuizState()
	c.mu.Unlock()
}

// Snapshot returns a copy of the user's conversation state for inspection.
// The Context map and step log are copied too, so the caller can read the
// snapshot while a concurrent turn mutates the live state.
func (s *ChatService) Snapshot(userID string) agent.State {
	c := s.conversation(userID)
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := *c.state
	snap.Context = make(map[string]any, len(c.state.Context))
	for k, v := range c.state.Context {
		snap.Context[k] = v
	}
	snap.StepsCompleted = append([]string(nil), c.state.StepsCompleted...)
	return snap
}
