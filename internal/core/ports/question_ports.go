package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
)

type QuestionRepository interface {
	// Create inserts the question and its choices, filling in the ids the
	// store assigns.
	Create(ctx context.Context, question *domain.Question) error
	// ListVisible returns questions with pub_date <= now ordered by
	// pub_date then id, both descending. limit <= 0 means no limit.
	ListVisible(ctx context.Context, now time.Time, limit int) ([]*domain.Question, error)
	// GetVisible returns domain.ErrQuestionNotFound when the question does
	// not exist or is not yet published at now.
	GetVisible(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChoiceRepository interface {
	IncrementVotes(ctx context.Context, questionID, choiceID uuid.UUID) error
}

type CreateQuestionInput struct {
	QuestionText string
	PubDate      time.Time
	Choices      []string
}

type QuestionService interface {
	Create(ctx context.Context, input CreateQuestionInput, now time.Time) (*domain.Question, error)
	LatestQuestions(ctx context.Context, now time.Time, limit int) ([]*domain.Question, error)
	GetQuestion(ctx context.Context, id string, now time.Time) (*domain.Question, error)
	Delete(ctx context.Context, id string) error
}

type VoteService interface {
	Vote(ctx context.Context, questionID, choiceID string, now time.Time) (*domain.Question, error)
}

type ResultsService interface {
	Results(ctx context.Context, questionID string, now time.Time) (*domain.QuestionResults, error)
}

// Clock returns the current instant. Handlers take one so that every
// visibility decision is made against an explicit now.
type Clock func() time.Time
