package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
	"github.com/HAS1ELB/INTELLIPATH/internal/models"
	"github.com/HAS1ELB/INTELLIPATH/internal/quiz"
)

// Handler names, also the entries of the steps_completed log.
const (
	StepAnswerQuestion   = "answer_question"
	StepGenerateQuiz     = "generate_quiz"
	StepRecommendCourses = "recommend_courses"
	StepShowProgress     = "show_progress"
	StepGeneralResponse  = "general_response"
)

// Guard messages returned when a handler's required context is missing.
const (
	MsgNoSyllabus = "I don't have a syllabus loaded yet. Please pick a study topic first."
	MsgNoTopic    = "I don't have a topic to build a quiz from. Please pick a study topic first."
)

// TutorAgent routes each user turn through intent classification to one of
// five handlers. One turn runs to completion before the next; the agent
// holds no state of its own, everything lives in State.
type TutorAgent struct {
	model      llm.LanguageModel
	classifier *IntentClassifier
	quizzes    *quiz.Generator
}

func NewTutorAgent(model llm.LanguageModel, quizzes *quiz.Generator) *TutorAgent {
	return &TutorAgent{
		model:      model,
		classifier: NewIntentClassifier(model),
		quizzes:    quizzes,
	}
}

// Route maps an intent to a handler name. Pure and total: anything
// unrecognized lands on the general handler.
func Route(intent Intent) string {
	switch intent {
	case IntentQuestion:
		return StepAnswerQuestion
	case IntentQuiz:
		return StepGenerateQuiz
	case IntentRecommendation:
		return StepRecommendCourses
	case IntentProgress:
		return StepShowProgress
	default:
		return StepGeneralResponse
	}
}

// Step processes one user turn: classify, route, run the handler. After a
// successful turn state.Response is always set. Only a failed model call is
// returned as an error; business conditions (missing topic, odd intent)
// resolve to guidance text instead.
func (a *TutorAgent) Step(ctx context.Context, state *State, userInput string) error {
	state.UserInput = userInput

	intent, err := a.classifier.Classify(ctx, userInput)
	if err != nil {
		return err
	}
	if state.Context == nil {
		state.Context = make(map[string]any)
	}
	state.Context["detected_intent"] = string(intent)

	switch Route(intent) {
	case StepAnswerQuestion:
		return a.answerQuestion(ctx, state)
	case StepGenerateQuiz:
		return a.generateQuiz(ctx, state)
	case StepRecommendCourses:
		return a.recommendCourses(ctx, state)
	case StepShowProgress:
		return a.showProgress(state)
	default:
		return a.generalResponse(ctx, state)
	}
}

func (a *TutorAgent) answerQuestion(ctx context.Context, state *State) error {
	if state.CurrentSyllabus == "" {
		state.Response = MsgNoSyllabus
		return nil
	}

	prompt := fmt.Sprintf(`As an instructor agent, answer the following question based on the course syllabus:

Syllabus: %s

Question: %s

Provide a detailed, educational answer.`, state.CurrentSyllabus, state.UserInput)

	answer, err := a.model.Invoke(ctx, prompt, llm.WithTemperature(0.5))
	if err != nil {
		return err
	}
	state.Response = answer
	state.StepsCompleted = append(state.StepsCompleted, StepAnswerQuestion)
	return nil
}

func (a *TutorAgent) generateQuiz(ctx context.Context, state *State) error {
	if state.CurrentTopic == "" {
		state.Response = MsgNoTopic
		return nil
	}

	questions, err := a.quizzes.GenerateQuiz(ctx, state.CurrentTopic, "medium", 3)
	if err != nil {
		return err
	}

	state.Response = renderQuizText(state.CurrentTopic, questions)
	state.QuizInProgress = true
	state.StepsCompleted = append(state.StepsCompleted, StepGenerateQuiz)
	return nil
}

func (a *TutorAgent) recommendCourses(ctx context.Context, state *State) error {
	interestsPrompt := fmt.Sprintf(`Identify the topics of interest mentioned in this user input:

%s

Return only a comma-separated list of topics. If no specific topic is mentioned, reply "general".`, state.UserInput)

	interests, err := a.model.Invoke(ctx, interestsPrompt, llm.WithTemperature(0.5))
	if err != nil {
		return err
	}

	recommendPrompt := fmt.Sprintf(`Recommend 3 courses or learning resources on the following topics: %s

For each recommendation include:
1. The course title
2. A short description (30-50 words)
3. Why this course would be useful
4. The difficulty level

Format the recommendations in a clear, inviting way.`, strings.TrimSpace(interests))

	recommendations, err := a.model.Invoke(ctx, recommendPrompt, llm.WithTemperature(0.5))
	if err != nil {
		return err
	}
	state.Response = recommendations
	state.StepsCompleted = append(state.StepsCompleted, StepRecommendCourses)
	return nil
}

// showProgress summarizes only the in-memory turn log. Persistent progress
// data lives in the progress service and is surfaced through its own routes.
func (a *TutorAgent) showProgress(state *State) error {
	topic := state.CurrentTopic
	if topic == "" {
		topic = "No topic studied yet"
	}
	steps := "No steps completed"
	if len(state.StepsCompleted) > 0 {
		steps = strings.Join(state.StepsCompleted, ", ")
	}
	quizDone := "No"
	for _, s := range state.StepsCompleted {
		if s == StepGenerateQuiz {
			quizDone = "Yes"
			break
		}
	}

	state.Response = fmt.Sprintf(`# Progress summary for %s

## Topics studied
- %s

## Completed activities
- Steps completed: %s
- Quizzes taken: %s

## Recommendations
Keep exploring the current topic or try a new quiz to check your knowledge!`,
		state.UserID, topic, steps, quizDone)

	state.StepsCompleted = append(state.StepsCompleted, StepShowProgress)
	return nil
}

func (a *TutorAgent) generalResponse(ctx context.Context, state *State) error {
	contextLine := "No specific topic"
	if state.CurrentTopic != "" {
		contextLine = "Current topic: " + state.CurrentTopic
	}

	prompt := fmt.Sprintf(`As the IntelliPath instructor agent, respond to this user input:

Context: %s
User input: %s

Be engaging, informative and encouraging. If the user seems to be looking for a specific feature, guide them towards the right commands.`,
		contextLine, state.UserInput)

	response, err := a.model.Invoke(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		return err
	}
	state.Response = response
	return nil
}

func renderQuizText(topic string, questions []models.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mini-quiz on %s:\n", topic)
	letters := []string{"A", "B", "C", "D"}
	for i, q := range questions {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "   %s. %s\n", letters[j], opt)
		}
		fmt.Fprintf(&b, "   Answer: %s. %s\n", letters[q.CorrectAnswer], q.Explanation)
	}
	return b.String()
}
