package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type voteService struct {
	questionRepo ports.QuestionRepository
	choiceRepo   ports.ChoiceRepository
}

func NewVoteService(questionRepo ports.QuestionRepository, choiceRepo ports.ChoiceRepository) ports.VoteService {
	return &voteService{
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
	}
}

// Vote records one vote for choiceID and returns the question as it was
// before the vote. Votes are only accepted on questions visible at now.
func (s *voteService) Vote(ctx context.Context, questionID, choiceID string, now time.Time) (*domain.Question, error) {
	qID, err := uuid.Parse(questionID)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	question, err := s.questionRepo.GetVisible(ctx, qID, now)
	if err != nil {
		return nil, err
	}

	cID, err := uuid.Parse(choiceID)
	if err != nil {
		return question, domain.ErrChoiceNotSelected
	}
	if _, ok := question.Choice(cID); !ok {
		return question, domain.ErrChoiceNotSelected
	}

	if err := s.choiceRepo.IncrementVotes(ctx, qID, cID); err != nil {
		return question, err
	}

	return question, nil
}
