package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vncsmyrnk/mysite/docs"
)

func NewHandler(site *SiteHandler, questionHandler *QuestionHandler, projectHandler *ProjectHandler, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(newRequestLogger(log))
	r.Use(middleware.Recoverer)

	r.NotFound(site.NotFound)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/polls", func(r chi.Router) {
		r.Get("/", site.Index)
		r.Get("/{id}/", site.Detail)
		r.Get("/{id}/results/", site.Results)
		r.Post("/{id}/vote/", site.Vote)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.ListQuestions)
			r.Post("/", questionHandler.CreateQuestion)
			r.Get("/{id}", questionHandler.GetQuestion)
			r.Delete("/{id}", questionHandler.DeleteQuestion)
			r.Post("/{id}/votes", questionHandler.Vote)
			r.Get("/{id}/results", questionHandler.GetResults)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.ListProjects)
			r.Post("/", projectHandler.CreateProject)
			r.Get("/{id}", projectHandler.GetProject)
			r.Delete("/{id}", projectHandler.DeleteProject)
			r.Post("/{id}/choices", projectHandler.AddChoice)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
