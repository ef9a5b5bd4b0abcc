package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khaledev/inkwell/database"
	"github.com/khaledev/inkwell/errs"
	"github.com/khaledev/inkwell/models"
)

type contactHandler struct {
	renderer    Renderer
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
}

func newContactHandler(messageRepo *database.MessageRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		renderer:    NewRenderer(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

func (h contactHandler) contactPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, http.StatusOK, "contact", &pageData{Title: "Contact"})
	}
}

// submitContact records a visitor message. No account needed.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.FormValue("name"))
		email := strings.TrimSpace(r.FormValue("email"))
		phone := strings.TrimSpace(r.FormValue("phone"))
		body := strings.TrimSpace(r.FormValue("message"))

		if name == "" || email == "" || body == "" {
			h.renderer.Render(w, r, http.StatusBadRequest, "contact", &pageData{
				Title:     "Contact",
				FormError: "Name, email and message are all required.",
				Form:      map[string]string{"name": name, "email": email, "phone": phone, "message": body},
			})
			return
		}

		message := &models.Message{
			Name:  name,
			Email: email,
			Body:  body,
		}
		if phone != "" {
			message.Phone = &phone
		}

		if err := h.messageRepo.Add(message); err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("create", "message", err))
			return
		}

		setFlash(w, "Your message has been sent successfully!")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
	}
}

// adminMessages lists every contact message, newest first.
func (h contactHandler) adminMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("find", "messages", err))
			return
		}

		h.renderer.Render(w, r, http.StatusOK, "messages", &pageData{
			Title:    "Messages",
			Messages: messages,
		})
	}
}
