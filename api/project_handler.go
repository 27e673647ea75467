package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project with at least one technology
// @Tags Projects
// @Accept json
// @Produce json
// @Param input body CreateProjectInput true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /rpc/createProject [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateProjectInput
		if err := decodeInput(r, &input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}

		if err := requireNonEmpty("title", input.Title); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := requireNonEmpty("description", input.Description); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if len(input.Technologies) == 0 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("technologies", "at least one technology is required"))
			return
		}
		for field, link := range map[string]*string{
			"demo_link":   input.DemoLink,
			"github_link": input.GithubLink,
			"image_url":   input.ImageURL,
		} {
			if link != nil && !validHTTPURL(*link) {
				h.responder.WriteError(w, errs.NewInvalidFieldError(field, "must be a valid URL"))
				return
			}
		}

		project := models.Project{
			Title:        input.Title,
			Description:  input.Description,
			Technologies: datatypes.JSONSlice[string](input.Technologies),
			DemoLink:     input.DemoLink,
			GithubLink:   input.GithubLink,
			ImageURL:     input.ImageURL,
			Featured:     input.Featured,
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// getProjects retrieves all projects, featured first, newest first within each group
// @Summary Get all projects
// @Description Retrieves all projects ordered by featured flag then creation time
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /rpc/getProjects [get]
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getProjectByID retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a project by id; a missing id yields a null body, not an error
// @Tags Projects
// @Produce json
// @Success 200 {object} models.Project "Project, or null when absent"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /rpc/getProjectById [post]
func (h projectHandler) getProjectByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := decodeIDInput(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		// Absence is a representable outcome: a null body, never a 404
		h.responder.WriteJSON(w, project)
	}
}

// updateProject applies a partial update to a project
// @Summary Update project
// @Description Patches only the supplied fields; omitted fields keep their stored values
// @Tags Projects
// @Accept json
// @Produce json
// @Param input body UpdateProjectInput true "Partial project data"
// @Success 200 {object} models.Project "Updated project, or null when absent"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /rpc/updateProject [post]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input UpdateProjectInput
		if err := decodeInput(r, &input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}
		if input.ID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		if err := requirePresentNonEmpty("title", input.Title); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := requirePresentNonEmpty("description", input.Description); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if input.Technologies.Present && (input.Technologies.Value == nil || len(*input.Technologies.Value) == 0) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("technologies", "at least one technology is required"))
			return
		}
		if input.Featured.Present && input.Featured.Value == nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("featured", "must be a boolean"))
			return
		}
		for field, link := range map[string]Optional[string]{
			"demo_link":   input.DemoLink,
			"github_link": input.GithubLink,
			"image_url":   input.ImageURL,
		} {
			if err := requireNullableURL(field, link); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		fields := make(map[string]any)
		if input.Title.Present {
			fields["title"] = *input.Title.Value
		}
		if input.Description.Present {
			fields["description"] = *input.Description.Value
		}
		if input.Technologies.Present {
			fields["technologies"] = datatypes.JSONSlice[string](*input.Technologies.Value)
		}
		if input.DemoLink.Present {
			fields["demo_link"] = nullableValue(input.DemoLink)
		}
		if input.GithubLink.Present {
			fields["github_link"] = nullableValue(input.GithubLink)
		}
		if input.ImageURL.Present {
			fields["image_url"] = nullableValue(input.ImageURL)
		}
		if input.Featured.Present {
			fields["featured"] = *input.Featured.Value
		}

		project, err := h.projectRepo.UpdateFields(input.ID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project; responds true when a record was removed, false otherwise
// @Tags Projects
// @Produce json
// @Success 200 {boolean} bool "Whether a record was removed"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /rpc/deleteProject [post]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := decodeIDInput(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existed, err := h.projectRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, existed)
	}
}

// nullableValue converts an Optional into a column value for a partial
// update map: nil writes NULL, anything else writes the string.
func nullableValue(opt Optional[string]) any {
	if opt.Value == nil {
		return nil
	}
	return *opt.Value
}
