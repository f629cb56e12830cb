package memory

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository is an in-memory project store.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]*domain.Project
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: map[uuid.UUID]*domain.Project{}}
}

func (r *ProjectRepository) Create(_ context.Context, project *domain.Project) error {
	if project == nil {
		return errors.New("project is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	project.ID = uuid.New()
	project.Choices = nil
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *ProjectRepository) List(_ context.Context) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		clone := *p
		clone.Choices = nil
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PubDate.Equal(list[j].PubDate) {
			return list[i].PubDate.After(list[j].PubDate)
		}
		return bytes.Compare(list[i].ID[:], list[j].ID[:]) > 0
	})
	return list, nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	clone.Choices = append([]domain.ProjectChoice(nil), p.Choices...)
	return &clone, nil
}

func (r *ProjectRepository) AddChoice(_ context.Context, choice *domain.ProjectChoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[choice.ProjectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	choice.ID = uuid.New()
	p.Choices = append(p.Choices, *choice)
	return nil
}

func (r *ProjectRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}
