package recommend

import (
	"strings"
	"testing"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

func TestRecommendFromCatalogWithoutInterests(t *testing.T) {
	courses := RecommendFromCatalog(models.UserProfile{}, "", "")
	if len(courses) != 5 {
		t.Fatalf("Expected a sample of 5 courses, got %d", len(courses))
	}
	seen := map[string]bool{}
	for _, c := range courses {
		if seen[c.Title] {
			t.Errorf("Duplicate course in sample: %q", c.Title)
		}
		seen[c.Title] = true
	}
}

func TestRecommendFromCatalogMatchesInterests(t *testing.T) {
	courses := RecommendFromCatalog(models.UserProfile{}, "python", "")
	if len(courses) != 5 {
		t.Fatalf("Expected 5 courses, got %d", len(courses))
	}
	// Python courses should outrank unrelated ones.
	if !strings.Contains(strings.ToLower(courses[0].Title), "python") {
		t.Errorf("Expected a Python course first, got %q", courses[0].Title)
	}
}

func TestRecommendFromCatalogPrioritizesWeaknesses(t *testing.T) {
	profile := models.UserProfile{Weaknesses: []string{"Cryptography"}}
	courses := RecommendFromCatalog(profile, "anything", "")

	// Weakness matches score +3, above any interest match.
	if courses[0].Title != "Cybersecurity: Protecting Your Applications" {
		t.Errorf("Expected the security course first, got %q", courses[0].Title)
	}
}

func TestRecommendFromCatalogPenalizesStudiedTopics(t *testing.T) {
	// "javascript" matches both the frontend and the React courses (+2
	// each); the stable sort would keep the frontend course first, but
	// having already studied it costs a point and React takes the lead.
	fresh := RecommendFromCatalog(models.UserProfile{}, "javascript", "")
	if fresh[0].Title != "Frontend Web Development" {
		t.Fatalf("Expected frontend course first without history, got %q", fresh[0].Title)
	}

	profile := models.UserProfile{StudiedTopics: []string{"Frontend"}}
	studied := RecommendFromCatalog(profile, "javascript", "")
	if studied[0].Title != "React: Building Modern Web Applications" {
		t.Errorf("Expected the React course first after studying frontend, got %q", studied[0].Title)
	}
}

func TestSplitKeywords(t *testing.T) {
	keywords := splitKeywords(" Machine Learning , python,  ,SQL ")
	expected := []string{"machine learning", "python", "sql"}
	if len(keywords) != len(expected) {
		t.Fatalf("Expected %d keywords, got %d: %v", len(expected), len(keywords), keywords)
	}
	for i := range expected {
		if keywords[i] != expected[i] {
			t.Errorf("keyword %d = %q, want %q", i, keywords[i], expected[i])
		}
	}
}
