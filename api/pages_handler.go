package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type pagesHandler struct {
	renderer Renderer
}

func newPagesHandler() pagesHandler {
	logger := log.With().Str("handlerName", "pagesHandler").Logger()
	return pagesHandler{renderer: NewRenderer(logger)}
}

func (h pagesHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, http.StatusOK, "about", &pageData{Title: "About"})
	}
}

func (h pagesHandler) howItWorks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, http.StatusOK, "how_it_works", &pageData{Title: "How It Works"})
	}
}
