package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type projectService struct {
	repo ports.ProjectRepository
}

func NewProjectService(repo ports.ProjectRepository) ports.ProjectService {
	return &projectService{
		repo: repo,
	}
}

func (s *projectService) Create(ctx context.Context, input ports.CreateProjectInput, now time.Time) (*domain.Project, error) {
	if strings.TrimSpace(input.ProjectTitle) == "" {
		return nil, fmt.Errorf("%w: project_title is required", domain.ErrInvalidProject)
	}
	if utf8.RuneCountInString(input.ProjectTitle) > domain.MaxProjectTitleLength {
		return nil, fmt.Errorf("%w: project_title is longer than %d characters", domain.ErrInvalidProject, domain.MaxProjectTitleLength)
	}
	if utf8.RuneCountInString(input.ProjectDescription) > domain.MaxProjectDescriptionLength {
		return nil, fmt.Errorf("%w: project_description is longer than %d characters", domain.ErrInvalidProject, domain.MaxProjectDescriptionLength)
	}

	pubDate := input.PubDate
	if pubDate.IsZero() {
		pubDate = now
	}

	project := &domain.Project{
		ProjectTitle:       input.ProjectTitle,
		ProjectDescription: input.ProjectDescription,
		PubDate:            pubDate,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	return s.repo.GetByID(ctx, projectID)
}

func (s *projectService) AddChoice(ctx context.Context, input ports.AddProjectChoiceInput) (*domain.ProjectChoice, error) {
	projectID, err := uuid.Parse(input.ProjectID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	if strings.TrimSpace(input.CommenterName) == "" {
		return nil, fmt.Errorf("%w: commenter_name is required", domain.ErrInvalidProjectChoice)
	}
	if utf8.RuneCountInString(input.CommenterName) > domain.MaxCommenterNameLength {
		return nil, fmt.Errorf("%w: commenter_name is longer than %d characters", domain.ErrInvalidProjectChoice, domain.MaxCommenterNameLength)
	}
	if utf8.RuneCountInString(input.CommenterDescription) > domain.MaxCommenterDescriptionLength {
		return nil, fmt.Errorf("%w: commenter_description is longer than %d characters", domain.ErrInvalidProjectChoice, domain.MaxCommenterDescriptionLength)
	}

	choice := &domain.ProjectChoice{
		ProjectID:            projectID,
		CommenterName:        input.CommenterName,
		CommenterDescription: input.CommenterDescription,
	}
	if err := s.repo.AddChoice(ctx, choice); err != nil {
		return nil, err
	}

	return choice, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	return s.repo.Delete(ctx, projectID)
}
