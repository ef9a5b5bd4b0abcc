package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the full HTTP surface. Session loading runs on every
// route; the admin group additionally gates on the role flag.
func setupRoutes(r chi.Router, handlers *routeHandlers, sessions sessionMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(sessions.loadUser)

		// Public pages
		r.Get("/", handlers.postHandler.home())
		r.Get("/about", handlers.pagesHandler.about())
		r.Get("/how-it-works", handlers.pagesHandler.howItWorks())

		// Accounts and sessions
		r.Get("/register", handlers.authHandler.registerPage())
		r.Post("/register", handlers.authHandler.register())
		r.Get("/login", handlers.authHandler.loginPage())
		r.Post("/login", handlers.authHandler.login())
		r.Get("/logout", handlers.authHandler.logout())

		// Posts and comments (commenting checks identity itself so it can
		// redirect anonymous visitors to the login page)
		r.Get("/post/{postID}", handlers.postHandler.showPost())
		r.Post("/post/{postID}", handlers.postHandler.createComment())

		// Contact form
		r.Get("/contact", handlers.contactHandler.contactPage())
		r.Post("/contact", handlers.contactHandler.submitContact())

		// Admin-only surface
		r.Group(func(r chi.Router) {
			r.Use(sessions.requireAdmin)

			r.Get("/new-post", handlers.postHandler.newPostPage())
			r.Post("/new-post", handlers.postHandler.createPost())
			r.Get("/edit-post/{postID}", handlers.postHandler.editPostPage())
			r.Post("/edit-post/{postID}", handlers.postHandler.updatePost())
			r.Get("/delete/{postID}", handlers.postHandler.deletePost())
			r.Get("/admin/messages", handlers.contactHandler.adminMessages())
		})
	})
}
