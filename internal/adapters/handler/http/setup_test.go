package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/mysite/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
	"github.com/vncsmyrnk/mysite/internal/core/services"
	"github.com/vncsmyrnk/mysite/internal/logging"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type testApp struct {
	handler   http.Handler
	questions ports.QuestionService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	questionRepo := memory.NewQuestionRepository()
	projectRepo := memory.NewProjectRepository()
	clock := func() time.Time { return now }
	log := logging.Discard()

	questionSvc := services.NewQuestionService(questionRepo)
	voteSvc := services.NewVoteService(questionRepo, questionRepo)
	resultsSvc := services.NewResultsService(questionSvc)
	projectSvc := services.NewProjectService(projectRepo)

	site := NewSiteHandler(questionSvc, voteSvc, resultsSvc, clock, log)
	questionHandler := NewQuestionHandler(questionSvc, voteSvc, resultsSvc, clock, log)
	projectHandler := NewProjectHandler(projectSvc, clock, log)

	return &testApp{
		handler:   NewHandler(site, questionHandler, projectHandler, log),
		questions: questionSvc,
	}
}

// createQuestion publishes a question days away from now. Negative days are
// in the past.
func (app *testApp) createQuestion(t *testing.T, text string, days int, choices ...string) *domain.Question {
	t.Helper()

	q, err := app.questions.Create(context.Background(), ports.CreateQuestionInput{
		QuestionText: text,
		PubDate:      now.AddDate(0, 0, days),
		Choices:      choices,
	}, now)
	require.NoError(t, err)
	return q
}
