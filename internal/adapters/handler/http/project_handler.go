package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/mysite/internal/core/ports"
)

type ProjectHandler struct {
	service ports.ProjectService
	now     ports.Clock
	log     logrus.FieldLogger
}

func NewProjectHandler(service ports.ProjectService, now ports.Clock, log logrus.FieldLogger) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		now:     now,
		log:     log,
	}
}

type createProjectRequest struct {
	ProjectTitle       string     `json:"project_title"`
	ProjectDescription string     `json:"project_description"`
	PubDate            *time.Time `json:"pub_date,omitempty"`
}

type addProjectChoiceRequest struct {
	CommenterName        string `json:"commenter_name"`
	CommenterDescription string `json:"commenter_description"`
}

// ListProjects godoc
// @Summary      Lists projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /api/projects [get]
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, projects)
}

// CreateProject godoc
// @Summary      Creates a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      createProjectRequest  true  "Project"
// @Success      201      {object}  domain.Project
// @Failure      400      {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreateProjectInput{
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
	}
	if req.PubDate != nil {
		input.PubDate = *req.PubDate
	}

	project, err := h.service.Create(r.Context(), input, h.now())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.WithField("project_id", project.ID).Info("project created")
	writeJSON(w, h.log, http.StatusCreated, project)
}

// GetProject godoc
// @Summary      Gets a project with its choices
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, project)
}

// AddChoice godoc
// @Summary      Adds a choice to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id      path      string                   true  "Project ID"
// @Param        choice  body      addProjectChoiceRequest  true  "Choice"
// @Success      201     {object}  domain.ProjectChoice
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/projects/{id}/choices [post]
func (h *ProjectHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	var req addProjectChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	choice, err := h.service.AddChoice(r.Context(), ports.AddProjectChoiceInput{
		ProjectID:            chi.URLParam(r, "id"),
		CommenterName:        req.CommenterName,
		CommenterDescription: req.CommenterDescription,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusCreated, choice)
}

// DeleteProject godoc
// @Summary      Deletes a project and its choices
// @Tags         projects
// @Param        id   path  string  true  "Project ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
