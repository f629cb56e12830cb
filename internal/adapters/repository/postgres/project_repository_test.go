package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
)

func TestProjectRepository(t *testing.T) {
	db, gdb := setupGorm(t)
	ctx := context.Background()
	repo := NewProjectRepository(gdb)

	older := &domain.Project{ProjectTitle: "Older", ProjectDescription: "first", PubDate: now.AddDate(0, 0, -3)}
	newer := &domain.Project{ProjectTitle: "Newer", PubDate: now.AddDate(0, 0, -1)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	assert.NotEqual(t, uuid.Nil, older.ID)
	assert.NotEqual(t, older.ID, newer.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].ProjectTitle)
	assert.Equal(t, "Older", list[1].ProjectTitle)

	first := &domain.ProjectChoice{ProjectID: older.ID, CommenterName: "ana", CommenterDescription: "looks good"}
	second := &domain.ProjectChoice{ProjectID: older.ID, CommenterName: "bo"}
	require.NoError(t, repo.AddChoice(ctx, first))
	require.NoError(t, repo.AddChoice(ctx, second))
	assert.NotEqual(t, uuid.Nil, first.ID)

	got, err := repo.GetByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ProjectDescription)
	require.Len(t, got.Choices, 2)
	assert.Equal(t, "ana", got.Choices[0].CommenterName)
	assert.Equal(t, "bo", got.Choices[1].CommenterName)

	err = repo.AddChoice(ctx, &domain.ProjectChoice{ProjectID: uuid.New(), CommenterName: "x"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	require.NoError(t, repo.Delete(ctx, older.ID))
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM project_choices WHERE project_id = $1`, older.ID).Scan(&count))
	assert.Zero(t, count)
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), domain.ErrProjectNotFound)
}

func TestMigrationContent(t *testing.T) {
	name, content, err := MigrationContent("create_polls.up")
	require.NoError(t, err)
	assert.Equal(t, "000001_create_polls.up.sql", name)
	assert.Contains(t, string(content), "ON DELETE CASCADE")

	_, _, err = MigrationContent("does_not_exist")
	assert.Error(t, err)
}
