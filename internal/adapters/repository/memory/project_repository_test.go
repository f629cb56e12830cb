package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
)

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	older := &domain.Project{ProjectTitle: "Older", PubDate: now.AddDate(0, 0, -3)}
	newer := &domain.Project{ProjectTitle: "Newer", PubDate: now.AddDate(0, 0, -1)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	assert.NotEqual(t, uuid.Nil, older.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].ProjectTitle)
	assert.Equal(t, "Older", list[1].ProjectTitle)

	choice := &domain.ProjectChoice{ProjectID: older.ID, CommenterName: "ana", CommenterDescription: "looks good"}
	require.NoError(t, repo.AddChoice(ctx, choice))
	assert.NotEqual(t, uuid.Nil, choice.ID)

	got, err := repo.GetByID(ctx, older.ID)
	require.NoError(t, err)
	require.Len(t, got.Choices, 1)
	assert.Equal(t, "ana", got.Choices[0].CommenterName)

	err = repo.AddChoice(ctx, &domain.ProjectChoice{ProjectID: uuid.New(), CommenterName: "x"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	require.NoError(t, repo.Delete(ctx, older.ID))
	_, err = repo.GetByID(ctx, older.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), domain.ErrProjectNotFound)
}
