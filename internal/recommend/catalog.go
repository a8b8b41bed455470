package recommend

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

// DefaultCatalog is the built-in course list used by the offline
// recommender when no LLM is wanted.
var DefaultCatalog = []models.Course{
	{
		Title:       "Introduction to Python Programming",
		Description: "A complete beginner course covering the fundamentals of programming in Python.",
		Skills:      []string{"Python programming", "Basic algorithms", "Data structures"},
		Level:       "beginner",
		Reason:      "An excellent starting point for programming beginners.",
	},
	{
		Title:       "Data Science with Python",
		Description: "Learn to analyze data with pandas, NumPy and matplotlib.",
		Skills:      []string{"Data analysis", "Data visualization", "Python for data science"},
		Level:       "intermediate",
		Reason:      "Perfect for anyone wanting to specialize in data analysis.",
	},
	{
		Title:       "Machine Learning Fundamentals",
		Description: "An introduction to the concepts and algorithms of machine learning.",
		Skills:      []string{"Machine learning", "Supervised algorithms", "Model evaluation"},
		Level:       "intermediate",
		Reason:      "Ideal for understanding how ML algorithms work.",
	},
	{
		Title:       "Deep Learning with TensorFlow",
		Description: "Build and train deep neural networks for a range of applications.",
		Skills:      []string{"Deep learning", "TensorFlow", "Neural networks"},
		Level:       "advanced",
		Reason:      "For learners who want to master advanced AI techniques.",
	},
	{
		Title:       "Frontend Web Development",
		Description: "Learn HTML, CSS and JavaScript to build interactive websites.",
		Skills:      []string{"HTML/CSS", "JavaScript", "Responsive design"},
		Level:       "beginner",
		Reason:      "A great introduction to frontend web development.",
	},
	{
		Title:       "React: Building Modern Web Applications",
		Description: "Develop dynamic web applications with React and its ecosystem.",
		Skills:      []string{"React", "Modern JavaScript", "State management"},
		Level:       "intermediate",
		Reason:      "For web developers who want to master a modern framework.",
	},
	{
		Title:       "DevOps and CI/CD",
		Description: "Automate deployment and continuous integration for applications.",
		Skills:      []string{"Docker", "CI/CD", "GitHub Actions"},
		Level:       "advanced",
		Reason:      "For developers who want to automate the application lifecycle.",
	},
	{
		Title:       "Cybersecurity: Protecting Your Applications",
		Description: "Understand vulnerabilities and protect applications against attacks.",
		Skills:      []string{"Web security", "Cryptography", "Vulnerability analysis"},
		Level:       "intermediate",
		Reason:      "Essential for any developer aware of security concerns.",
	},
	{
		Title:       "SQL and NoSQL Databases",
		Description: "Master the different database families and their use cases.",
		Skills:      []string{"SQL", "MongoDB", "Data modeling"},
		Level:       "intermediate",
		Reason:      "Fundamental for storing and managing data effectively.",
	},
	{
		Title:       "Artificial Intelligence for Business",
		Description: "Practical applications of AI across different industries.",
		Skills:      []string{"Applied AI", "Case studies", "AI ethics"},
		Level:       "intermediate",
		Reason:      "Ideal for understanding the business value of AI.",
	},
}

type scoredCourse struct {
	course models.Course
	score  int
}

// RecommendFromCatalog scores the catalog against the user's profile and
// stated interests. Courses closing a weakness rank highest, then interest
// and career matches; topics already studied are pushed down. Without any
// interests a random sample is returned instead.
func RecommendFromCatalog(profile models.UserProfile, interests, careerGoal string) []models.Course {
	if interests == "" {
		return sampleCourses(DefaultCatalog, 5)
	}

	interestKeywords := splitKeywords(interests)
	var careerKeywords []string
	if careerGoal != "" {
		careerKeywords = []string{strings.ToLower(careerGoal)}
	}

	scored := make([]scoredCourse, 0, len(DefaultCatalog))
	for _, course := range DefaultCatalog {
		score := 0

		for _, weakness := range profile.Weaknesses {
			if matchesSkill(course, strings.ToLower(weakness)) {
				score += 3
			}
		}
		for _, interest := range interestKeywords {
			if matchesCourse(course, interest) {
				score += 2
			}
		}
		for _, career := range careerKeywords {
			if matchesCourse(course, career) {
				score += 2
			}
		}
		for _, topic := range profile.StudiedTopics {
			if strings.Contains(strings.ToLower(course.Title), strings.ToLower(topic)) {
				score--
			}
		}

		scored = append(scored, scoredCourse{course: course, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := 5
	if len(scored) < n {
		n = len(scored)
	}
	top := make([]models.Course, 0, n)
	for _, sc := range scored[:n] {
		top = append(top, sc.course)
	}
	return top
}

func matchesCourse(course models.Course, keyword string) bool {
	if strings.Contains(strings.ToLower(course.Title), keyword) ||
		strings.Contains(strings.ToLower(course.Description), keyword) {
		return true
	}
	return matchesSkill(course, keyword)
}

func matchesSkill(course models.Course, keyword string) bool {
	for _, skill := range course.Skills {
		if strings.Contains(strings.ToLower(skill), keyword) {
			return true
		}
	}
	return false
}

func splitKeywords(csv string) []string {
	parts := strings.Split(csv, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.ToLower(strings.TrimSpace(p)); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func sampleCourses(catalog []models.Course, n int) []models.Course {
	if n > len(catalog) {
		n = len(catalog)
	}
	perm := rand.Perm(len(catalog))
	sample := make([]models.Course, 0, n)
	for _, idx := range perm[:n] {
		sample = append(sample, catalog[idx])
	}
	return sample
}
