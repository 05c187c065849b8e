package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"funsomex-web/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a collaborator token and stores it in
// the session cookie. The token itself never reaches page JavaScript.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "solicitud inválida")
		return
	}
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "correo y contraseña son obligatorios")
		return
	}

	token, err := a.API.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "Credenciales inválidas")
			return
		}
		a.apiError(w, r, err)
		return
	}

	a.Sessions.Set(w, token)
	a.Logger.Info().Str("email", req.Email).Msg("admin login")
	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"redirect": "/admin",
	})
}

// Logout destroys the session unconditionally.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	a.Sessions.Clear(w)
	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"redirect": "/login",
	})
}

// LoginPage serves the login view. An already-valid session skips straight to
// the admin console.
func (a *App) LoginPage(w http.ResponseWriter, r *http.Request) {
	if token := a.Sessions.Token(r); token != "" {
		if err := a.API.VerifyToken(r.Context(), token); err == nil {
			http.Redirect(w, r, "/admin", http.StatusFound)
			return
		}
	}
	a.json(w, http.StatusOK, map[string]any{"page": "login"})
}
