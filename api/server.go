package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/khaledev/inkwell/auth"
	"github.com/khaledev/inkwell/config"
	"github.com/khaledev/inkwell/database"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(recoverPanics)
	if config.GetBool(router.config, "HTTP_LOGGING", true) {
		chiRouter.Use(requestLogging)
	}

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", ""), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	sessions := auth.NewSessionManager(
		sessionSecret(router.config),
		time.Duration(config.GetInt(router.config, "SESSION_TTL_HOURS", 168))*time.Hour,
	)

	handlers := initializeHandlers(database, sessions)
	sessionMW := newSessionMiddleware(sessions, database.UserRepo())

	setupRoutes(chiRouter, handlers, sessionMW)

	return chiRouter
}

// sessionSecret returns the configured signing key, or a random one when none
// is set. A random key means sessions do not survive a restart.
func sessionSecret(c map[string]string) string {
	if secret := config.GetString(c, "SESSION_SECRET", ""); secret != "" {
		return secret
	}

	log.Warn().Msg("SESSION_SECRET not set, using a random key; sessions will not survive restarts")
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("unable to generate session secret: %v", err))
	}
	return hex.EncodeToString(buf)
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
