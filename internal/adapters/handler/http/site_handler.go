package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

//go:embed templates/*.html
var templateFiles embed.FS

var templates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// SiteHandler serves the HTML polls pages.
type SiteHandler struct {
	questions ports.QuestionService
	votes     ports.VoteService
	results   ports.ResultsService
	now       ports.Clock
	log       logrus.FieldLogger
}

func NewSiteHandler(questions ports.QuestionService, votes ports.VoteService, results ports.ResultsService, now ports.Clock, log logrus.FieldLogger) *SiteHandler {
	return &SiteHandler{
		questions: questions,
		votes:     votes,
		results:   results,
		now:       now,
		log:       log,
	}
}

// Index lists every question published at or before now. An empty list is
// a normal page, never an error.
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	questions, err := h.questions.LatestQuestions(r.Context(), now, 0)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "index.html", map[string]any{
		"title":                "Polls",
		"now":                  now,
		"latest_question_list": questions,
	})
}

func (h *SiteHandler) Detail(w http.ResponseWriter, r *http.Request) {
	question, err := h.questions.GetQuestion(r.Context(), chi.URLParam(r, "id"), h.now())
	if err != nil {
		h.lookupError(w, r, err)
		return
	}

	h.renderDetail(w, r, question, "")
}

func (h *SiteHandler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.results.Results(r.Context(), chi.URLParam(r, "id"), h.now())
	if err != nil {
		h.lookupError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "results.html", map[string]any{
		"title":   results.Question.QuestionText,
		"results": results,
	})
}

// Vote records the selected choice and redirects to the results page. A
// missing or foreign choice re-renders the detail page with a message.
func (h *SiteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	question, err := h.votes.Vote(r.Context(), id, r.PostFormValue("choice"), h.now())
	if err != nil {
		if errors.Is(err, domain.ErrChoiceNotSelected) && question != nil {
			h.renderDetail(w, r, question, "You didn't select a choice.")
			return
		}
		h.lookupError(w, r, err)
		return
	}

	http.Redirect(w, r, "/polls/"+question.ID.String()+"/results/", http.StatusSeeOther)
}

func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "404.html", map[string]any{"title": "Not Found"})
}

func (h *SiteHandler) renderDetail(w http.ResponseWriter, r *http.Request, question *domain.Question, errorMessage string) {
	h.render(w, r, http.StatusOK, "detail.html", map[string]any{
		"title":         question.QuestionText,
		"question":      question,
		"error_message": errorMessage,
	})
}

func (h *SiteHandler) lookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrQuestionNotFound) {
		h.log.WithField("path", r.URL.Path).Debug("question not visible")
		h.NotFound(w, r)
		return
	}
	h.serverError(w, r, err)
}

func (h *SiteHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *SiteHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
