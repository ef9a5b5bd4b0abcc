package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khaledev/inkwell/auth"
	"github.com/khaledev/inkwell/database"
	"github.com/khaledev/inkwell/errs"
	"github.com/khaledev/inkwell/models"
)

type authHandler struct {
	renderer Renderer
	logger   zerolog.Logger
	userRepo *database.UserRepo
	sessions *auth.SessionManager
}

func newAuthHandler(userRepo *database.UserRepo, sessions *auth.SessionManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		renderer: NewRenderer(logger),
		logger:   logger,
		userRepo: userRepo,
		sessions: sessions,
	}
}

func (h authHandler) registerPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, http.StatusOK, "register", &pageData{Title: "Register"})
	}
}

// register creates a new account and logs it straight in. The first account
// ever created becomes the administrator. The unique index on email is the
// real duplicate guard; the lookup before the insert only makes the common
// case friendlier.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.FormValue("name"))
		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")

		if name == "" || email == "" || password == "" {
			h.renderer.Render(w, r, http.StatusBadRequest, "register", &pageData{
				Title:     "Register",
				FormError: "Name, email and password are all required.",
				Form:      map[string]string{"name": name, "email": email},
			})
			return
		}

		existing, err := h.userRepo.FindByEmail(email)
		if err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			setFlash(w, "You've already signed up with that email, log in instead!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			h.renderer.RenderError(w, r, errs.NewInternalErrorWithCause("could not hash password", err))
			return
		}

		// UserRepo.Add promotes the row that wins ID 1 to administrator
		user := &models.User{
			Email:        email,
			Name:         name,
			PasswordHash: hash,
		}

		if err := h.userRepo.Add(user); err != nil {
			appErr := errs.NewDatabaseError("create", "user", err)
			if errs.IsConflict(appErr) {
				// lost the race to a simultaneous registration
				setFlash(w, "You've already signed up with that email, log in instead!")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			h.renderer.RenderError(w, r, appErr)
			return
		}

		h.logger.Info().Uint("userID", user.ID).Bool("admin", user.IsAdmin).Msg("registered new user")
		h.establishSession(w, r, user)
	}
}

func (h authHandler) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, http.StatusOK, "login", &pageData{Title: "Log In"})
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")

		user, err := h.userRepo.FindByEmail(email)
		if err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			setFlash(w, "That email does not exist, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if !auth.VerifyPassword(password, user.PasswordHash) {
			setFlash(w, "Password incorrect, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		h.establishSession(w, r, user)
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h authHandler) establishSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		h.renderer.RenderError(w, r, errs.NewInternalErrorWithCause("could not create session", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
