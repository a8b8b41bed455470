// Package quiz generates, delivers and scores multiple-choice quizzes.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

const questionPromptTemplate = `Generate one quiz question on the topic "%s" with difficulty "%s".
The question must have exactly 4 answer options and a single correct answer.
Also provide a detailed explanation of the correct answer.

Reply with JSON only, in exactly this shape:
{
  "question": "the question text",
  "options": ["option 1", "option 2", "option 3", "option 4"],
  "correct_answer": 0,
  "explanation": "why the correct answer is right"
}
The "correct_answer" field is the zero-based index of the right option.`

// Generator produces validated question sets from the language model with a
// bounded retry budget against malformed output.
type Generator struct {
	model llm.LanguageModel
}

func NewGenerator(model llm.LanguageModel) *Generator {
	return &Generator{model: model}
}

// GenerateQuiz returns between 1 and numQuestions validated questions. Each
// attempt asks the model for one question; malformed or invalid output
// consumes an attempt and is retried, up to numQuestions*3 attempts total.
// If no attempt ever validates, a single fixed placeholder question is
// returned so the result is never empty. Callers must tolerate fewer
// questions than requested.
func (g *Generator) GenerateQuiz(ctx context.Context, topic, difficulty string, numQuestions int) ([]models.Question, error) {
	if numQuestions < 1 {
		numQuestions = 1
	}

	questions := make([]models.Question, 0, numQuestions)
	maxAttempts := numQuestions * 3

	for attempt := 0; attempt < maxAttempts && len(questions) < numQuestions; attempt++ {
		raw, err := g.model.Invoke(ctx, fmt.Sprintf(questionPromptTemplate, topic, difficulty), llm.WithTemperature(0.7))
		if err != nil {
			return nil, fmt.Errorf("quiz generation failed: %w", err)
		}

		q, err := parseQuestion(raw)
		if err != nil {
			log.Printf("discarding generated question (attempt %d/%d): %v", attempt+1, maxAttempts, err)
			continue
		}
		questions = append(questions, *q)
	}

	if len(questions) == 0 {
		log.Printf("no valid question generated for topic %q, using fallback", topic)
		questions = append(questions, fallbackQuestion(topic))
	}
	return questions, nil
}

// parseQuestion extracts the first {...} block from the raw response and
// validates it. The model tends to wrap its JSON in prose, so the braces are
// located by hand before unmarshalling.
func parseQuestion(raw string) (*models.Question, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var q models.Question
	if err := json.Unmarshal([]byte(raw[start:end+1]), &q); err != nil {
		return nil, fmt.Errorf("invalid question JSON: %w", err)
	}
	if q.Explanation == "" {
		return nil, fmt.Errorf("missing explanation")
	}
	if !q.IsValid() {
		return nil, fmt.Errorf("question failed validation: %d options, correct_answer %d", len(q.Options), q.CorrectAnswer)
	}
	return &q, nil
}

func fallbackQuestion(topic string) models.Question {
	return models.Question{
		Question:      fmt.Sprintf("Example question on %s?", topic),
		Options:       []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectAnswer: 0,
		Explanation:   "The generator could not produce a question for this topic.",
	}
}

// Evaluation is the outcome of checking one submitted answer.
type Evaluation struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}

// EvaluateAnswer checks a chosen option index against the question. Pure
// function: the explanation is always part of the feedback, prefixed with
// the revealed correct option when the answer is wrong.
func EvaluateAnswer(q *models.Question, chosenIndex int) Evaluation {
	if chosenIndex == q.CorrectAnswer {
		return Evaluation{IsCorrect: true, Feedback: q.Explanation}
	}
	return Evaluation{
		IsCorrect: false,
		Feedback:  fmt.Sprintf("The correct answer was: %s. %s", q.Options[q.CorrectAnswer], q.Explanation),
	}
}
