package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog/log"
)

// setupRPCRoutes exposes every operation on a single /rpc/{operation}
// endpoint, multiplexed by operation name. Mutations go over POST; read
// operations also answer plain GET requests.
func setupRPCRoutes(r chi.Router, handlers *routeHandlers) {
	operations := map[string]http.HandlerFunc{
		"healthcheck": handlers.healthHandler.healthcheck(),

		// Project operations
		"createProject":  handlers.projectHandler.createProject(),
		"getProjects":    handlers.projectHandler.getProjects(),
		"getProjectById": handlers.projectHandler.getProjectByID(),
		"updateProject":  handlers.projectHandler.updateProject(),
		"deleteProject":  handlers.projectHandler.deleteProject(),

		// Skill operations
		"createSkill": handlers.skillHandler.createSkill(),
		"getSkills":   handlers.skillHandler.getSkills(),
		"updateSkill": handlers.skillHandler.updateSkill(),
		"deleteSkill": handlers.skillHandler.deleteSkill(),

		// Contact message operations
		"createContactMessage": handlers.contactMessageHandler.createContactMessage(),
		"getContactMessages":   handlers.contactMessageHandler.getContactMessages(),

		// Profile operations
		"getProfile":    handlers.profileHandler.getProfile(),
		"updateProfile": handlers.profileHandler.updateProfile(),
	}

	responder := NewResponder(log.With().Str("handlerName", "rpcDispatch").Logger())
	dispatch := func(w http.ResponseWriter, r *http.Request) {
		operation := chi.URLParam(r, "operation")
		handler, ok := operations[operation]
		if !ok {
			responder.WriteError(w, errs.NewNotFoundError("unknown operation: "+operation))
			return
		}
		handler(w, r)
	}

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Get("/rpc/{operation}", dispatch)
		r.Post("/rpc/{operation}", dispatch)
	})
}
