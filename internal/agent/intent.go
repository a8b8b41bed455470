package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
)

const intentPromptTemplate = `Analyze the following user input and determine its main intention:

Input: %s

Reply with exactly one of the following categories:
1. course_question - the user asks a question about the course content
2. quiz_request - the user wants to take a quiz
3. course_recommendation - the user asks for course recommendations
4. progress_review - the user wants to see their progress
5. general_conversation - general conversation with no specific intention`

// IntentClassifier labels an utterance with one of the five intents by
// prompting the language model and normalizing whatever comes back.
type IntentClassifier struct {
	model llm.LanguageModel
}

func NewIntentClassifier(model llm.LanguageModel) *IntentClassifier {
	return &IntentClassifier{model: model}
}

// Classify returns the intent for an utterance. The model's output is never
// schema-validated: an unrecognizable label falls back to IntentGeneral.
// Only a failed model call is an error.
func (c *IntentClassifier) Classify(ctx context.Context, utterance string) (Intent, error) {
	raw, err := c.model.Invoke(ctx, fmt.Sprintf(intentPromptTemplate, utterance), llm.WithTemperature(0.1))
	if err != nil {
		return IntentGeneral, fmt.Errorf("intent classification failed: %w", err)
	}
	return NormalizeIntent(raw), nil
}

// NormalizeIntent maps a free-text label to an Intent by case-insensitive
// substring match. Both French and English spellings are accepted since the
// model answers in either. Anything unmatched is general.
func NormalizeIntent(label string) Intent {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "question"):
		return IntentQuestion
	case strings.Contains(l, "quiz"):
		return IntentQuiz
	case strings.Contains(l, "recommandation"), strings.Contains(l, "recommendation"):
		return IntentRecommendation
	case strings.Contains(l, "progression"), strings.Contains(l, "progress"):
		return IntentProgress
	default:
		return IntentGeneral
	}
}
