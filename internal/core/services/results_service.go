package services

import (
	"context"
	"time"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type resultsService struct {
	questions ports.QuestionService
}

func NewResultsService(questions ports.QuestionService) ports.ResultsService {
	return &resultsService{
		questions: questions,
	}
}

func (s *resultsService) Results(ctx context.Context, questionID string, now time.Time) (*domain.QuestionResults, error) {
	question, err := s.questions.GetQuestion(ctx, questionID, now)
	if err != nil {
		return nil, err
	}

	return Summarize(question), nil
}

// Summarize computes per-choice vote shares for question, keeping the
// order of its choices.
func Summarize(question *domain.Question) *domain.QuestionResults {
	results := &domain.QuestionResults{
		Question: question,
		Choices:  make([]domain.ChoiceStats, 0, len(question.Choices)),
	}

	for _, c := range question.Choices {
		results.TotalVotes += c.Votes
	}

	for _, c := range question.Choices {
		percentage := 0.0
		if results.TotalVotes > 0 {
			percentage = (float64(c.Votes) / float64(results.TotalVotes)) * 100
		}
		results.Choices = append(results.Choices, domain.ChoiceStats{
			Choice:     c,
			VoteCount:  c.Votes,
			Percentage: percentage,
		})
	}

	return results
}
