package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile retrieves the canonical profile record
// @Summary Get profile
// @Description Retrieves the profile record; an empty store yields a null body
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile "Profile, or null when none exists"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching profile"
// @Router /rpc/getProfile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.First()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile upserts the canonical profile record
// @Summary Update profile
// @Description Patches the profile, creating it with placeholder defaults when none exists
// @Tags Profile
// @Accept json
// @Produce json
// @Param input body UpdateProfileInput true "Partial profile data"
// @Success 200 {object} models.Profile "The upserted profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid profile data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating profile"
// @Router /rpc/updateProfile [post]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input UpdateProfileInput
		if err := decodeInput(r, &input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, err)
			return
		}

		// name, title, bio and email are required columns: they may be
		// omitted, but never nulled or blanked.
		for field, opt := range map[string]Optional[string]{
			"name":  input.Name,
			"title": input.Title,
			"bio":   input.Bio,
			"email": input.Email,
		} {
			if err := requirePresentNonEmpty(field, opt); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}
		if input.Email.Present && !validEmailAddress(*input.Email.Value) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}
		for field, opt := range map[string]Optional[string]{
			"linkedin_url": input.LinkedinURL,
			"github_url":   input.GithubURL,
			"twitter_url":  input.TwitterURL,
			"website_url":  input.WebsiteURL,
			"avatar_url":   input.AvatarURL,
			"resume_url":   input.ResumeURL,
		} {
			if err := requireNullableURL(field, opt); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		fields := make(map[string]any)
		for column, opt := range map[string]Optional[string]{
			"name":         input.Name,
			"title":        input.Title,
			"bio":          input.Bio,
			"email":        input.Email,
			"location":     input.Location,
			"phone":        input.Phone,
			"linkedin_url": input.LinkedinURL,
			"github_url":   input.GithubURL,
			"twitter_url":  input.TwitterURL,
			"website_url":  input.WebsiteURL,
			"avatar_url":   input.AvatarURL,
			"resume_url":   input.ResumeURL,
		} {
			if opt.Present {
				fields[column] = nullableValue(opt)
			}
		}

		profile, err := h.profileRepo.Upsert(fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}
