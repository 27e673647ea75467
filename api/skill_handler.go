package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// createSkill creates a new skill
// @Summary Create skill
// @Description Creates a skill with a proficiency level between 1 and 5
// @Tags Skills
// @Accept json
// @Produce json
// @Param input body CreateSkillInput true "Skill data"
// @Success 201 {object} models.Skill "Created skill"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid skill data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating skill"
// @Router /rpc/createSkill [post]
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateSkillInput
		if err := decodeInput(r, &input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, err)
			return
		}

		if err := requireNonEmpty("name", input.Name); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := requireNonEmpty("category", input.Category); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if input.ProficiencyLevel < 1 || input.ProficiencyLevel > 5 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("proficiency_level", "must be between 1 and 5"))
			return
		}

		skill := models.Skill{
			Name:             input.Name,
			Category:         input.Category,
			ProficiencyLevel: input.ProficiencyLevel,
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create skill", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// getSkills retrieves all skills grouped for display
// @Summary Get all skills
// @Description Retrieves all skills ordered by category, strongest first within each
// @Tags Skills
// @Produce json
// @Success 200 {array} models.Skill "List of skills"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching skills"
// @Router /rpc/getSkills [get]
func (h skillHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		if skills == nil {
			skills = []*models.Skill{}
		}
		h.responder.WriteJSON(w, skills)
	}
}

// updateSkill applies a partial update to a skill
// @Summary Update skill
// @Description Patches only the supplied fields; an id-only payload is a no-op returning the stored skill
// @Tags Skills
// @Accept json
// @Produce json
// @Param input body UpdateSkillInput true "Partial skill data"
// @Success 200 {object} models.Skill "Updated skill, or null when absent"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid skill data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating skill"
// @Router /rpc/updateSkill [post]
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input UpdateSkillInput
		if err := decodeInput(r, &input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, err)
			return
		}
		if input.ID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		if err := requirePresentNonEmpty("name", input.Name); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := requirePresentNonEmpty("category", input.Category); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if input.ProficiencyLevel.Present {
			level := input.ProficiencyLevel.Value
			if level == nil || *level < 1 || *level > 5 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("proficiency_level", "must be between 1 and 5"))
				return
			}
		}

		fields := make(map[string]any)
		if input.Name.Present {
			fields["name"] = *input.Name.Value
		}
		if input.Category.Present {
			fields["category"] = *input.Category.Value
		}
		if input.ProficiencyLevel.Present {
			fields["proficiency_level"] = *input.ProficiencyLevel.Value
		}

		skill, err := h.skillRepo.UpdateFields(input.ID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update skill", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill deletes a skill by ID
// @Summary Delete skill
// @Description Deletes a skill; responds true when a record was removed, false otherwise
// @Tags Skills
// @Produce json
// @Success 200 {boolean} bool "Whether a record was removed"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting skill"
// @Router /rpc/deleteSkill [post]
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := decodeIDInput(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existed, err := h.skillRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete skill", "skill", err))
			return
		}

		h.responder.WriteJSON(w, existed)
	}
}
