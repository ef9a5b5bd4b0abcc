package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khaledev/inkwell/auth"
	"github.com/khaledev/inkwell/database"
	"github.com/khaledev/inkwell/errs"
)

type sessionMiddleware struct {
	sessions *auth.SessionManager
	userRepo *database.UserRepo
	renderer Renderer
}

func newSessionMiddleware(sessions *auth.SessionManager, userRepo *database.UserRepo) sessionMiddleware {
	logger := log.With().Str("handlerName", "sessionMiddleware").Logger()
	return sessionMiddleware{
		sessions: sessions,
		userRepo: userRepo,
		renderer: NewRenderer(logger),
	}
}

// loadUser resolves the session cookie to a user and stores it in the request
// context. Missing, invalid, or stale cookies leave the request anonymous.
func (m sessionMiddleware) loadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.sessions.Parse(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.userRepo.FindByID(userID)
		if err != nil {
			// a store failure is not an anonymous visitor
			m.renderer.RenderError(w, r, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUser(r.Context(), user)))
	})
}

// requireAdmin rejects anonymous and non-admin sessions with a 403 page and
// no side effects. It must run after loadUser.
func (m sessionMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := ctxUser(r.Context())
		if user == nil || !user.IsAdmin {
			m.renderer.RenderError(w, r, errs.NewForbiddenError("you are not allowed to do that"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// recoverPanics converts handler panics into 500s and logs the stack.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// requestLogging logs every request with a level keyed to the status code.
func requestLogging(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
