package memory

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

var (
	_ ports.QuestionRepository = (*QuestionRepository)(nil)
	_ ports.ChoiceRepository   = (*QuestionRepository)(nil)
)

// QuestionRepository is an in-memory question and choice store. It is
// used when no database is configured and in handler tests.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]*domain.Question
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{questions: map[uuid.UUID]*domain.Question{}}
}

func (r *QuestionRepository) Create(_ context.Context, question *domain.Question) error {
	if question == nil {
		return errors.New("question is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	question.ID = uuid.New()
	for i := range question.Choices {
		question.Choices[i].ID = uuid.New()
		question.Choices[i].QuestionID = question.ID
	}
	r.questions[question.ID] = cloneQuestion(question)
	return nil
}

func (r *QuestionRepository) ListVisible(_ context.Context, now time.Time, limit int) ([]*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if !q.IsVisible(now) {
			continue
		}
		clone := cloneQuestion(q)
		clone.Choices = nil
		list = append(list, clone)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].PubDate.Equal(list[j].PubDate) {
			return list[i].PubDate.After(list[j].PubDate)
		}
		// Same ordering postgres applies to uuid columns.
		return bytes.Compare(list[i].ID[:], list[j].ID[:]) > 0
	})

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *QuestionRepository) GetVisible(_ context.Context, id uuid.UUID, now time.Time) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.questions[id]
	if !ok || !q.IsVisible(now) {
		return nil, domain.ErrQuestionNotFound
	}
	return cloneQuestion(q), nil
}

// Delete removes the question together with its choices.
func (r *QuestionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *QuestionRepository) IncrementVotes(_ context.Context, questionID, choiceID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.questions[questionID]
	if !ok {
		return domain.ErrQuestionNotFound
	}
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			q.Choices[i].Votes++
			return nil
		}
	}
	return domain.ErrChoiceNotSelected
}

func cloneQuestion(q *domain.Question) *domain.Question {
	clone := *q
	if q.Choices != nil {
		clone.Choices = make([]domain.Choice, len(q.Choices))
		copy(clone.Choices, q.Choices)
	}
	return &clone
}
