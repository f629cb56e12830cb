package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type questionService struct {
	repo ports.QuestionRepository
}

func NewQuestionService(repo ports.QuestionRepository) ports.QuestionService {
	return &questionService{
		repo: repo,
	}
}

func (s *questionService) Create(ctx context.Context, input ports.CreateQuestionInput, now time.Time) (*domain.Question, error) {
	if strings.TrimSpace(input.QuestionText) == "" {
		return nil, domain.ErrInvalidQuestion
	}

	pubDate := input.PubDate
	if pubDate.IsZero() {
		pubDate = now
	}

	question := &domain.Question{
		QuestionText: input.QuestionText,
		PubDate:      pubDate,
	}

	for _, text := range input.Choices {
		if strings.TrimSpace(text) == "" {
			continue
		}
		question.Choices = append(question.Choices, domain.Choice{ChoiceText: text})
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

func (s *questionService) LatestQuestions(ctx context.Context, now time.Time, limit int) ([]*domain.Question, error) {
	questions, err := s.repo.ListVisible(ctx, now, limit)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*domain.Question{}
	}
	return questions, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string, now time.Time) (*domain.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	return s.repo.GetVisible(ctx, questionID, now)
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	return s.repo.Delete(ctx, questionID)
}
