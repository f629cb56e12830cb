package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type QuestionHandler struct {
	questions ports.QuestionService
	votes     ports.VoteService
	results   ports.ResultsService
	now       ports.Clock
	log       logrus.FieldLogger
}

func NewQuestionHandler(questions ports.QuestionService, votes ports.VoteService, results ports.ResultsService, now ports.Clock, log logrus.FieldLogger) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		votes:     votes,
		results:   results,
		now:       now,
		log:       log,
	}
}

type questionResponse struct {
	ID                   uuid.UUID       `json:"id"`
	QuestionText         string          `json:"question_text"`
	PubDate              time.Time       `json:"pub_date"`
	WasPublishedRecently bool            `json:"was_published_recently"`
	Choices              []domain.Choice `json:"choices,omitempty"`
}

type questionListResponse struct {
	LatestQuestionList []questionResponse `json:"latest_question_list"`
}

type createQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
	Choices      []string   `json:"choices"`
}

type voteRequest struct {
	ChoiceID string `json:"choice_id"`
}

func toQuestionResponse(q *domain.Question, now time.Time) questionResponse {
	return questionResponse{
		ID:                   q.ID,
		QuestionText:         q.QuestionText,
		PubDate:              q.PubDate,
		WasPublishedRecently: q.WasPublishedRecently(now),
		Choices:              q.Choices,
	}
}

// ListQuestions godoc
// @Summary      Lists published questions
// @Description  Returns questions published at or before now, most recent first.
// @Tags         questions
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of questions"
// @Success      200    {object}  questionListResponse
// @Failure      400    {object}  errorResponse
// @Router       /api/questions [get]
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, h.log, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	now := h.now()
	questions, err := h.questions.LatestQuestions(r.Context(), now, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := questionListResponse{LatestQuestionList: make([]questionResponse, 0, len(questions))}
	for _, q := range questions {
		resp.LatestQuestionList = append(resp.LatestQuestionList, toQuestionResponse(q, now))
	}
	writeJSON(w, h.log, http.StatusOK, resp)
}

// GetQuestion godoc
// @Summary      Gets a published question
// @Description  Returns the question with its choices. Unpublished questions are reported as not found.
// @Tags         questions
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  questionResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/questions/{id} [get]
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	question, err := h.questions.GetQuestion(r.Context(), chi.URLParam(r, "id"), now)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, toQuestionResponse(question, now))
}

// CreateQuestion godoc
// @Summary      Creates a question
// @Description  pub_date defaults to now. Choices with empty text are skipped.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        question  body      createQuestionRequest  true  "Question"
// @Success      201       {object}  questionResponse
// @Failure      400       {object}  errorResponse
// @Router       /api/questions [post]
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreateQuestionInput{
		QuestionText: req.QuestionText,
		Choices:      req.Choices,
	}
	if req.PubDate != nil {
		input.PubDate = *req.PubDate
	}

	now := h.now()
	question, err := h.questions.Create(r.Context(), input, now)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.WithField("question_id", question.ID).Info("question created")
	writeJSON(w, h.log, http.StatusCreated, toQuestionResponse(question, now))
}

// DeleteQuestion godoc
// @Summary      Deletes a question
// @Description  Removes the question and all of its choices.
// @Tags         questions
// @Param        id   path  string  true  "Question ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.questions.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.WithField("question_id", id).Info("question deleted")
	w.WriteHeader(http.StatusNoContent)
}

// Vote godoc
// @Summary      Votes on a choice
// @Description  Adds one vote to the choice and returns the updated results.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Question ID"
// @Param        vote  body      voteRequest  true  "Choice"
// @Success      200   {object}  domain.QuestionResults
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/questions/{id}/votes [post]
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	now := h.now()
	if _, err := h.votes.Vote(r.Context(), id, req.ChoiceID, now); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	results, err := h.results.Results(r.Context(), id, now)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, results)
}

// GetResults godoc
// @Summary      Gets voting results
// @Tags         questions
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  domain.QuestionResults
// @Failure      404  {object}  errorResponse
// @Router       /api/questions/{id}/results [get]
func (h *QuestionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.results.Results(r.Context(), chi.URLParam(r, "id"), h.now())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, results)
}
