// Package syllabus generates course outlines that seed the tutoring agent.
package syllabus

import (
	"context"
	"fmt"

	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
)

type Generator struct {
	model llm.LanguageModel
}

func NewGenerator(model llm.LanguageModel) *Generator {
	return &Generator{model: model}
}

// Generate produces a course syllabus for a topic. The text is kept as-is;
// it is consumed verbatim as context by the question-answering handler.
func (g *Generator) Generate(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(`Generate a course syllabus to teach the topic: %s

Structure the syllabus as a progression of modules, from fundamentals to
advanced material. For each module give a title and a short list of the
concepts covered. Finish with suggested exercises and further reading.`, topic)

	text, err := g.model.Invoke(ctx, prompt, llm.WithTemperature(0.5))
	if err != nil {
		return "", fmt.Errorf("syllabus generation failed: %w", err)
	}
	return text, nil
}
