// Package skills analyzes quiz history into strengths, weaknesses and
// career skill gaps.
package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

// Topics at or above StrengthThreshold percent count as strengths, below
// WeaknessThreshold as weaknesses.
const (
	StrengthThreshold = 75.0
	WeaknessThreshold = 50.0
)

// PerformanceSource provides per-topic quiz aggregates.
type PerformanceSource interface {
	TopicPerformance(ctx context.Context, userID string) ([]models.TopicPerformance, error)
}

// SkillSource provides the user's recorded skills.
type SkillSource interface {
	FindByUser(ctx context.Context, userID string) ([]models.Skill, error)
}

type Analyzer struct {
	model       llm.LanguageModel
	performance PerformanceSource
	skills      SkillSource
}

func NewAnalyzer(model llm.LanguageModel, performance PerformanceSource, skills SkillSource) *Analyzer {
	return &Analyzer{model: model, performance: performance, skills: skills}
}

// PerformanceAnalysis summarizes quiz history.
type PerformanceAnalysis struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Analysis   string   `json:"analysis"`
}

// AnalyzeQuizPerformance classifies topics into strengths and weaknesses and
// asks the model for an improvement narrative.
func (a *Analyzer) AnalyzeQuizPerformance(ctx context.Context, userID string) (*PerformanceAnalysis, error) {
	performance, err := a.performance.TopicPerformance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(performance) == 0 {
		return &PerformanceAnalysis{
			Strengths:  []string{},
			Weaknesses: []string{},
			Analysis:   "Not enough data to analyze performance.",
		}, nil
	}

	var strengths, weaknesses []string
	var table strings.Builder
	for _, p := range performance {
		fmt.Fprintf(&table, "%s: %.1f%% over %d attempts\n", p.Topic, p.Percentage, p.Attempts)
		if p.Percentage >= StrengthThreshold {
			strengths = append(strengths, p.Topic)
		} else if p.Percentage < WeaknessThreshold {
			weaknesses = append(weaknesses, p.Topic)
		}
	}

	prompt := fmt.Sprintf(`Analyze the following quiz performance and provide improvement recommendations:

%s
Strengths: %s
Weaknesses: %s

Provide:
1. An overall performance analysis
2. Specific recommendations to improve the weak areas
3. Suggestions for building on the strengths`,
		table.String(), listOrNone(strengths), listOrNone(weaknesses))

	analysis, err := a.model.Invoke(ctx, prompt, llm.WithTemperature(0.2))
	if err != nil {
		return nil, err
	}

	return &PerformanceAnalysis{
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Analysis:   analysis,
	}, nil
}

// GapAnalysis is the result of comparing current skills against a target
// career.
type GapAnalysis struct {
	RequiredSkills []string `json:"required_skills"`
	ExistingSkills []string `json:"existing_skills"`
	MissingSkills  []string `json:"missing_skills"`
	LearningPath   string   `json:"learning_path"`
}

// SkillGapAnalysis asks the model which skills a target career requires and
// which are missing. The model's JSON is parsed leniently: on a parse
// failure the result is rebuilt from what is known locally rather than
// surfaced as an error.
func (a *Analyzer) SkillGapAnalysis(ctx context.Context, userID, targetCareer string) (*GapAnalysis, error) {
	skills, err := a.skills.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	currentSkills := make([]string, 0, len(skills))
	for _, s := range skills {
		currentSkills = append(currentSkills, s.SkillName)
	}

	if targetCareer == "" {
		return &GapAnalysis{
			ExistingSkills: currentSkills,
			MissingSkills:  []string{},
			LearningPath:   "Please specify a career goal for a full analysis.",
		}, nil
	}

	prompt := fmt.Sprintf(`For someone who wants to become %s, identify:

1. The essential skills required for this career
2. The skills the user already has: %s
3. The missing skills they should acquire
4. A suggested learning path to acquire the missing skills

Format your answer as JSON with the keys: "required_skills", "existing_skills", "missing_skills", "learning_path"`,
		targetCareer, listOrNone(currentSkills))

	raw, err := a.model.Invoke(ctx, prompt, llm.WithTemperature(0.2))
	if err != nil {
		return nil, err
	}

	gap := &GapAnalysis{}
	if jsonErr := json.Unmarshal([]byte(extractObject(raw)), gap); jsonErr != nil {
		return &GapAnalysis{
			RequiredSkills: []string{},
			ExistingSkills: currentSkills,
			MissingSkills:  []string{},
			LearningPath:   "Could not generate a learning path automatically.",
		}, nil
	}
	return gap, nil
}

// extractObject trims prose around the first JSON object in the text.
func extractObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None identified"
	}
	return strings.Join(items, ", ")
}
