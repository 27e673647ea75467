package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier *services.ContactNotifier, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler:        newProjectHandler(database.ProjectRepo()),
		skillHandler:          newSkillHandler(database.SkillRepo()),
		contactMessageHandler: newContactMessageHandler(database.ContactMessageRepo(), notifier),
		profileHandler:        newProfileHandler(database.ProfileRepo()),
		healthHandler:         newHealthHandler(startupTime),
	}
}
