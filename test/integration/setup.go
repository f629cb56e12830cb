package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/mysite/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/mysite/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/mysite/internal/core/services"
	"github.com/vncsmyrnk/mysite/internal/logging"
)

// now is the instant the server under test believes it is. Questions are
// published relative to it.
var now = time.Now().UTC().Truncate(time.Second)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := repo.Connect(ctx, dbURL)
	require.NoError(t, err)

	err = repo.ApplyMigrations(ctx, db)
	require.NoError(t, err)

	log := logging.Discard()
	gdb, err := repo.OpenGorm(db, log)
	require.NoError(t, err)

	questionRepo := repo.NewQuestionRepository(db)
	choiceRepo := repo.NewChoiceRepository(db)
	projectRepo := repo.NewProjectRepository(gdb)

	questionSvc := services.NewQuestionService(questionRepo)
	voteSvc := services.NewVoteService(questionRepo, choiceRepo)
	resultsSvc := services.NewResultsService(questionSvc)
	projectSvc := services.NewProjectService(projectRepo)

	clock := func() time.Time { return now }
	router := handler.NewHandler(
		handler.NewSiteHandler(questionSvc, voteSvc, resultsSvc, clock, log),
		handler.NewQuestionHandler(questionSvc, voteSvc, resultsSvc, clock, log),
		handler.NewProjectHandler(projectSvc, clock, log),
		log,
	)
	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
