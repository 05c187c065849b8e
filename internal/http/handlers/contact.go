package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"funsomex-web/internal/funsomex"
	"funsomex-web/internal/middleware"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactPage serves the contact view with the foundation's address data.
func (a *App) ContactPage(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.view(r))
}

// SubmitContact files a public contact message. Validation happens before any
// request leaves the gateway.
func (a *App) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "solicitud inválida")
		return
	}
	for field, v := range map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	} {
		if strings.TrimSpace(v) == "" {
			a.error(w, http.StatusBadRequest, "bad_request", "el campo "+field+" es obligatorio")
			return
		}
	}

	msg, err := a.API.SubmitContact(r.Context(), funsomex.ContactCreate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		a.apiError(w, r, err)
		return
	}

	a.Logger.Info().
		Str("contact_id", msg.ID).
		Str("country", middleware.CountryFromContext(r.Context())).
		Msg("contact message submitted")
	a.json(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Mensaje enviado. Te contactaremos pronto.",
		"id":      msg.ID,
	})
}
