package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	List(ctx context.Context) ([]*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	AddChoice(ctx context.Context, choice *domain.ProjectChoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateProjectInput struct {
	ProjectTitle       string
	ProjectDescription string
	PubDate            time.Time
}

type AddProjectChoiceInput struct {
	ProjectID            string
	CommenterName        string
	CommenterDescription string
}

type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput, now time.Time) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	AddChoice(ctx context.Context, input AddProjectChoiceInput) (*domain.ProjectChoice, error)
	Delete(ctx context.Context, id string) error
}
