package handlers

import (
	"net/http"

	"github.com/galacticos-fc/clubsite/services"
)

type ContactHandler struct {
	emailService *services.EmailService
}

func NewContactHandler(emailService *services.EmailService) *ContactHandler {
	return &ContactHandler{emailService: emailService}
}

func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var msg services.ContactMessage
	if err := readJSON(w, r, &msg); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.emailService.SendContactMessage(msg); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "your message has been sent"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
