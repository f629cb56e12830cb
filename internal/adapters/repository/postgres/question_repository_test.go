package postgres

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

// Whole seconds, so values compare equal after a round trip through postgres.
var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func createQuestion(t *testing.T, repo ports.QuestionRepository, text string, days int, choices ...string) *domain.Question {
	t.Helper()

	q := &domain.Question{QuestionText: text, PubDate: now.AddDate(0, 0, days)}
	for _, c := range choices {
		q.Choices = append(q.Choices, domain.Choice{ChoiceText: c})
	}
	require.NoError(t, repo.Create(context.Background(), q))
	return q
}

func TestQuestionRepository(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)

	t.Run("no questions", func(t *testing.T) {
		list, err := repo.ListVisible(ctx, now, 0)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	future := createQuestion(t, repo, "Future question", 30)
	past2 := createQuestion(t, repo, "Past question2", -30, "A", "B")
	past1 := createQuestion(t, repo, "Past question1", -2)

	t.Run("create assigns ids", func(t *testing.T) {
		assert.NotEqual(t, uuid.Nil, past2.ID)
		for _, c := range past2.Choices {
			assert.NotEqual(t, uuid.Nil, c.ID)
			assert.Equal(t, past2.ID, c.QuestionID)
			assert.Zero(t, c.Votes)
		}
	})

	t.Run("list excludes future and orders newest first", func(t *testing.T) {
		list, err := repo.ListVisible(ctx, now, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, past1.ID, list[0].ID)
		assert.Equal(t, past2.ID, list[1].ID)
		assert.True(t, past1.PubDate.Equal(list[0].PubDate))
	})

	t.Run("list honours limit", func(t *testing.T) {
		list, err := repo.ListVisible(ctx, now, 1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, past1.ID, list[0].ID)
	})

	t.Run("future question becomes visible once now passes it", func(t *testing.T) {
		list, err := repo.ListVisible(ctx, future.PubDate, 0)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, future.ID, list[0].ID)
	})

	t.Run("detail", func(t *testing.T) {
		got, err := repo.GetVisible(ctx, past2.ID, now)
		require.NoError(t, err)
		assert.Equal(t, "Past question2", got.QuestionText)
		require.Len(t, got.Choices, 2)
		assert.Equal(t, "A", got.Choices[0].ChoiceText)
		assert.Equal(t, "B", got.Choices[1].ChoiceText)

		_, err = repo.GetVisible(ctx, future.ID, now)
		assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

		_, err = repo.GetVisible(ctx, uuid.New(), now)
		assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	})
}

func TestQuestionRepository_TieBreakByIDDescending(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)

	createQuestion(t, repo, "A", -1)
	createQuestion(t, repo, "B", -1)
	createQuestion(t, repo, "C", -1)

	list, err := repo.ListVisible(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)

	var ids []string
	require.NoError(t, queryStrings(db, `SELECT id::text FROM questions ORDER BY id DESC`, &ids))
	for i, q := range list {
		assert.Equal(t, ids[i], q.ID.String())
	}
}

func queryStrings(db *sql.DB, query string, out *[]string) error {
	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return err
		}
		*out = append(*out, s)
	}
	return rows.Err()
}

func TestQuestionRepository_DeleteCascadesToChoices(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)

	q := createQuestion(t, repo, "Doomed", -1, "A", "B")

	require.NoError(t, repo.Delete(ctx, q.ID))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM choices WHERE question_id = $1`, q.ID).Scan(&count))
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Delete(ctx, q.ID), domain.ErrQuestionNotFound)
}

func TestChoiceRepository_IncrementVotes(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	questions := NewQuestionRepository(db)
	choices := NewChoiceRepository(db)

	q := createQuestion(t, questions, "Pick one", -1, "A", "B")
	other := createQuestion(t, questions, "Other", -1, "C")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, choices.IncrementVotes(ctx, q.ID, q.Choices[0].ID))
		}()
	}
	wg.Wait()

	got, err := questions.GetVisible(ctx, q.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.Choices[0].Votes)
	assert.Zero(t, got.Choices[1].Votes)

	err = choices.IncrementVotes(ctx, q.ID, other.Choices[0].ID)
	assert.ErrorIs(t, err, domain.ErrChoiceNotSelected)
}
