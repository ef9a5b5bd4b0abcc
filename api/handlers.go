package api

import (
	"github.com/khaledev/inkwell/auth"
	"github.com/khaledev/inkwell/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	postHandler    postHandler
	contactHandler contactHandler
	pagesHandler   pagesHandler
}

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(database database.Database, sessions *auth.SessionManager) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(database.UserRepo(), sessions),
		postHandler:    newPostHandler(database.PostRepo(), database.CommentRepo()),
		contactHandler: newContactHandler(database.MessageRepo()),
		pagesHandler:   newPagesHandler(),
	}
}
