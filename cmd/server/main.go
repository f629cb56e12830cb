package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vncsmyrnk/mysite/internal/adapters/handler/http"
	"github.com/vncsmyrnk/mysite/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/mysite/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/mysite/internal/config"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
	"github.com/vncsmyrnk/mysite/internal/core/services"
	"github.com/vncsmyrnk/mysite/internal/logging"
)

// @title        mysite API
// @version      1.0
// @description  Polls and projects.
// @BasePath     /
func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatal(err)
	}
	if !cfg.EnvFileLoaded {
		log.Debug("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open repositories")
	}
	defer closeRepos()

	questionSvc := services.NewQuestionService(repos.questions)
	voteSvc := services.NewVoteService(repos.questions, repos.choices)
	resultsSvc := services.NewResultsService(questionSvc)
	projectSvc := services.NewProjectService(repos.projects)

	clock := ports.Clock(time.Now)
	handler := http.NewHandler(
		http.NewSiteHandler(questionSvc, voteSvc, resultsSvc, clock, log),
		http.NewQuestionHandler(questionSvc, voteSvc, resultsSvc, clock, log),
		http.NewProjectHandler(projectSvc, clock, log),
		log,
	)
	server := &stdhttp.Server{Addr: cfg.Addr(), Handler: handler}

	go func() {
		log.WithField("addr", server.Addr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("shutdown failed")
	}
}

type repositories struct {
	questions ports.QuestionRepository
	choices   ports.ChoiceRepository
	projects  ports.ProjectRepository
}

// openRepositories connects to postgres when a database is configured and
// falls back to the in-memory store otherwise.
func openRepositories(ctx context.Context, cfg config.Config, log *logrus.Logger) (repositories, func(), error) {
	dsn := cfg.DatabaseURL()
	if dsn == "" {
		log.Warn("no database configured, using in-memory store")
		questions := memory.NewQuestionRepository()
		return repositories{
			questions: questions,
			choices:   questions,
			projects:  memory.NewProjectRepository(),
		}, func() {}, nil
	}

	db, err := postgres.Connect(ctx, dsn)
	if err != nil {
		return repositories{}, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}

	if cfg.MigrateOnStart {
		if err := postgres.ApplyMigrations(ctx, db); err != nil {
			closeDB()
			return repositories{}, nil, err
		}
		log.Info("migrations applied")
	}

	gdb, err := postgres.OpenGorm(db, log)
	if err != nil {
		closeDB()
		return repositories{}, nil, err
	}

	return newPostgresRepositories(db, gdb), closeDB, nil
}

func newPostgresRepositories(db *sql.DB, gdb *gorm.DB) repositories {
	return repositories{
		questions: postgres.NewQuestionRepository(db),
		choices:   postgres.NewChoiceRepository(db),
		projects:  postgres.NewProjectRepository(gdb),
	}
}
