package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactMessageHandler struct {
	responder          Responder
	logger             zerolog.Logger
	contactMessageRepo *database.ContactMessageRepo
	notifier           *services.ContactNotifier
}

func newContactMessageHandler(contactMessageRepo *database.ContactMessageRepo, notifier *services.ContactNotifier) contactMessageHandler {
	logger := log.With().Str("handlerName", "contactMessageHandler").Logger()

	return contactMessageHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		contactMessageRepo: contactMessageRepo,
		notifier:           notifier,
	}
}

// createContactMessage records a contact form submission
// @Summary Create contact message
// @Description Stores a contact form submission; messages are permanent once submitted
// @Tags Contact
// @Accept json
// @Produce json
// @Param input body CreateContactMessageInput true "Contact message data"
// @Success 201 {object} models.ContactMessage "Created contact message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid contact message data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating contact message"
// @Router /rpc/createContactMessage [post]
func (h contactMessageHandler) createContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateContactMessageInput
		if err := decodeInput(r, &input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact message request body")
			h.responder.WriteError(w, err)
			return
		}

		if err := requireNonEmpty("name", input.Name); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := requireNonEmpty("email", input.Email); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !validEmailAddress(input.Email) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}
		if err := requireNonEmpty("subject", input.Subject); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := requireNonEmpty("message", input.Message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := models.ContactMessage{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Message: input.Message,
		}

		if err := h.contactMessageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact message", "contact message", err))
			return
		}

		// The message is already committed; a notification failure is logged
		// and never surfaced to the caller.
		if h.notifier != nil {
			if err := h.notifier.Notify(&message); err != nil {
				h.logger.Error().Err(err).Uint("messageID", message.ID).Msg("Failed to send contact notification")
			}
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

// getContactMessages retrieves all contact messages, newest first
// @Summary Get all contact messages
// @Description Retrieves the full append-only log of contact messages, newest first
// @Tags Contact
// @Produce json
// @Success 200 {array} models.ContactMessage "List of contact messages"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching contact messages"
// @Router /rpc/getContactMessages [get]
func (h contactMessageHandler) getContactMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactMessageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact messages", "contact messages", err))
			return
		}

		if messages == nil {
			messages = []*models.ContactMessage{}
		}
		h.responder.WriteJSON(w, messages)
	}
}
