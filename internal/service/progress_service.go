package service

import (
	"context"
	"log"
	"time"

	"github.com/HAS1ELB/INTELLIPATH/internal/event"
	"github.com/HAS1ELB/INTELLIPATH/internal/models"
	"github.com/HAS1ELB/INTELLIPATH/internal/repository"
)

// Skill levels at or above strongSkillLevel count as strengths in the user
// profile, at or below weakSkillLevel as weaknesses.
const (
	strongSkillLevel = 4
	weakSkillLevel   = 2
)

// ProgressService persists quiz results, study time and skill levels, and
// assembles the profile the recommender consumes.
type ProgressService struct {
	ResultRepo *repository.ResultRepository
	StudyRepo  *repository.StudyRepository
	SkillRepo  *repository.SkillRepository
	publisher  *event.EventPublisher
}

func NewProgressService(
	resultRepo *repository.ResultRepository,
	studyRepo *repository.StudyRepository,
	skillRepo *repository.SkillRepository,
	publisher *event.EventPublisher,
) *ProgressService {
	return &ProgressService{
		ResultRepo: resultRepo,
		StudyRepo:  studyRepo,
		SkillRepo:  skillRepo,
		publisher:  publisher,
	}
}

// RecordQuizResult stores one completed quiz. Fire-and-forget from the
// caller's perspective: called once per completed session.
func (s *ProgressService) RecordQuizResult(ctx context.Context, userID, topic string, score float64, maxScore int) error {
	result := &models.QuizResult{
		UserID:         userID,
		Topic:          topic,
		Score:          score,
		MaxScore:       maxScore,
		CompletionTime: time.Now(),
	}
	return s.ResultRepo.Create(ctx, result)
}

func (s *ProgressService) RecordStudySession(ctx context.Context, userID, topic string, durationMinutes int) error {
	session := &models.StudySession{
		UserID:          userID,
		Topic:           topic,
		DurationMinutes: durationMinutes,
		SessionDate:     time.Now(),
	}
	return s.StudyRepo.Create(ctx, session)
}

// UpdateSkill upserts a proficiency level keyed by (user, skill).
func (s *ProgressService) UpdateSkill(ctx context.Context, userID, skillName string, level int) error {
	if err := s.SkillRepo.Upsert(ctx, userID, skillName, level); err != nil {
		return err
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(event.SkillUpdated, map[string]any{
			"user_id": userID,
			"skill":   skillName,
			"level":   level,
		}); err != nil {
			log.Printf("failed to publish skill update: %v", err)
		}
	}
	return nil
}

// GetUserProfile derives strengths, weaknesses and studied topics from the
// stores. Skill levels are recomputed from quiz history on every quiz
// completion, so the cached levels here are safe to read directly.
func (s *ProgressService) GetUserProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	strengths, err := s.SkillRepo.SkillNamesByLevel(ctx, userID, strongSkillLevel, 0)
	if err != nil {
		return models.UserProfile{}, err
	}
	weaknesses, err := s.SkillRepo.SkillNamesByLevel(ctx, userID, 0, weakSkillLevel)
	if err != nil {
		return models.UserProfile{}, err
	}
	topics, err := s.StudyRepo.StudiedTopics(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	return models.UserProfile{
		Strengths:     strengths,
		Weaknesses:    weaknesses,
		StudiedTopics: topics,
	}, nil
}

// Dashboard is the aggregate data the UI charts.
type Dashboard struct {
	QuizPerformance []models.TopicPerformance `json:"quiz_performance"`
	StudyTime       []models.StudyTime        `json:"study_time"`
	Skills          []models.Skill            `json:"skills"`
}

func (s *ProgressService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	performance, err := s.ResultRepo.TopicPerformance(ctx, userID)
	if err != nil {
		return nil, err
	}
	studyTime, err := s.StudyRepo.StudyTimeByTopic(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills, err := s.SkillRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		QuizPerformance: performance,
		StudyTime:       studyTime,
		Skills:          skills,
	}, nil
}
