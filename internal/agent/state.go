package agent

// Intent is the classified purpose of a user utterance, one of a fixed
// closed set.
type Intent string

const (
	IntentQuestion       Intent = "question"
	IntentQuiz           Intent = "quiz"
	IntentRecommendation Intent = "recommendation"
	IntentProgress       Intent = "progress"
	IntentGeneral        Intent = "general"
)

// State is the per-conversation mutable state. One instance per active
// session; callers must serialize access, the agent never locks.
type State struct {
	UserInput       string         `json:"user_input"`
	Context         map[string]any `json:"context"`
	CurrentSyllabus string         `json:"current_syllabus,omitempty"`
	CurrentTopic    string         `json:"current_topic,omitempty"`
	StepsCompleted  []string       `json:"steps_completed"`
	QuizInProgress  bool           `json:"quiz_in_progress"`
	UserID          string         `json:"user_id"`
	Response        string         `json:"response,omitempty"`
}

// NewState creates a fresh conversation state for a user.
func NewState(userID string) *State {
	return &State{
		UserID:  userID,
		Context: make(map[string]any),
	}
}

// ResetQuizState clears the quiz-in-progress marker. The agent itself never
// clears it after a quiz turn, so the policy of when a quiz counts as over
// is left to the caller.
func (s *State) ResetQuizState() {
	s.QuizInProgress = false
}
