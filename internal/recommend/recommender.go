// Package recommend suggests courses from the built-in catalog or via the
// language model.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

// ProfileSource assembles a user's learning profile from stored data.
type ProfileSource interface {
	GetUserProfile(ctx context.Context, userID string) (models.UserProfile, error)
}

type Recommender struct {
	model    llm.LanguageModel
	profiles ProfileSource
}

func NewRecommender(model llm.LanguageModel, profiles ProfileSource) *Recommender {
	return &Recommender{model: model, profiles: profiles}
}

// Recommend produces up to 5 course suggestions. When useLLM is false the
// built-in catalog is scored offline; otherwise the model is prompted with
// the profile and its JSON is parsed, with a single placeholder entry as the
// fallback when the format is not respected.
func (r *Recommender) Recommend(ctx context.Context, userID, interests, careerGoal string, useLLM bool) ([]models.Course, error) {
	profile, err := r.profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !useLLM {
		return RecommendFromCatalog(profile, interests, careerGoal), nil
	}

	prompt := fmt.Sprintf(`As an educational recommendation agent, suggest 5 courses or learning resources
for a user with the following profile:

Strengths: %s
Weaknesses: %s
Topics already studied: %s
Stated interests: %s
Career goal: %s

For each recommended course provide:
1. The course title
2. A short description
3. The skills it helps develop
4. Its difficulty level (beginner, intermediate, advanced)
5. The reason for this recommendation based on the user profile

Format the answer as a JSON list of objects with the keys "title",
"description", "skills", "level", "reason".`,
		orUnspecified(strings.Join(profile.Strengths, ", ")),
		orUnspecified(strings.Join(profile.Weaknesses, ", ")),
		orUnspecified(strings.Join(profile.StudiedTopics, ", ")),
		orUnspecified(interests),
		orUnspecified(careerGoal))

	raw, err := r.model.Invoke(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, err
	}

	var courses []models.Course
	if jsonErr := json.Unmarshal([]byte(extractArray(raw)), &courses); jsonErr != nil {
		return []models.Course{{
			Title:       "Formatting error",
			Description: "Could not process the recommendations.",
			Reason:      "Technical error",
		}}, nil
	}
	return courses, nil
}

// extractArray trims prose around the first JSON array in the text.
func extractArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
