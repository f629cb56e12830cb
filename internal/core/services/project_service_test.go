package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]*domain.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uuid.UUID]*domain.Project{}}
}

func (f *fakeProjectRepo) Create(_ context.Context, p *domain.Project) error {
	p.ID = uuid.New()
	copy := *p
	f.projects[p.ID] = &copy
	return nil
}

func (f *fakeProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	copy := *p
	return &copy, nil
}

func (f *fakeProjectRepo) AddChoice(_ context.Context, c *domain.ProjectChoice) error {
	p, ok := f.projects[c.ProjectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	c.ID = uuid.New()
	p.Choices = append(p.Choices, *c)
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

func TestProjectServiceCreate(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{ProjectTitle: "Garden", ProjectDescription: "Community garden"}, now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.True(t, p.PubDate.Equal(now))
	assert.Equal(t, "Garden", p.String())

	tests := []struct {
		name  string
		input ports.CreateProjectInput
	}{
		{"empty title", ports.CreateProjectInput{ProjectTitle: " "}},
		{"long title", ports.CreateProjectInput{ProjectTitle: strings.Repeat("a", domain.MaxProjectTitleLength+1)}},
		{"long description", ports.CreateProjectInput{ProjectTitle: "ok", ProjectDescription: strings.Repeat("a", domain.MaxProjectDescriptionLength+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input, now)
			assert.ErrorIs(t, err, domain.ErrInvalidProject)
		})
	}

	// Limits count characters, not bytes.
	_, err = svc.Create(context.Background(), ports.CreateProjectInput{ProjectTitle: strings.Repeat("é", domain.MaxProjectTitleLength)}, now)
	assert.NoError(t, err)
}

func TestProjectServiceChoices(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{ProjectTitle: "Garden"}, now)
	require.NoError(t, err)

	choice, err := svc.AddChoice(context.Background(), ports.AddProjectChoiceInput{
		ProjectID:            p.ID.String(),
		CommenterName:        "ana",
		CommenterDescription: "I can bring tools",
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, choice.ProjectID)

	_, err = svc.AddChoice(context.Background(), ports.AddProjectChoiceInput{ProjectID: p.ID.String()})
	assert.ErrorIs(t, err, domain.ErrInvalidProjectChoice)

	_, err = svc.AddChoice(context.Background(), ports.AddProjectChoiceInput{
		ProjectID:     p.ID.String(),
		CommenterName: strings.Repeat("n", domain.MaxCommenterNameLength+1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProjectChoice)

	_, err = svc.AddChoice(context.Background(), ports.AddProjectChoiceInput{ProjectID: "bogus", CommenterName: "ana"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	got, err := svc.GetProject(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Len(t, got.Choices, 1)

	projects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)

	require.NoError(t, svc.Delete(context.Background(), p.ID.String()))
	_, err = svc.GetProject(context.Background(), p.ID.String())
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
