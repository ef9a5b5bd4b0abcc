package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/khaledev/inkwell/errs"
	"github.com/khaledev/inkwell/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	// post bodies come from the editor as markup and are rendered verbatim
	"safeHTML": func(s string) template.HTML {
		return template.HTML(s)
	},
}

// pageData is the view model handed to every template.
type pageData struct {
	Title       string
	CurrentUser *models.User
	Flash       string
	FormError   string
	Form        map[string]string
	Post        *models.BlogPost
	Posts       []*models.BlogPost
	Messages    []*models.Message
	IsEdit      bool
	ErrorText   string
}

// Renderer executes embedded HTML templates and maps application errors to
// error pages.
type Renderer struct {
	logger    zerolog.Logger
	templates *template.Template
}

func NewRenderer(logger zerolog.Logger) Renderer {
	templates := template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"),
	)
	return Renderer{logger: logger, templates: templates}
}

// Render executes the named page template into a buffer first, so a template
// failure becomes a clean 500 instead of a half-written page.
func (r Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, data *pageData) {
	if data == nil {
		data = &pageData{}
	}
	if data.CurrentUser == nil {
		data.CurrentUser = ctxUser(req.Context())
	}
	if data.Flash == "" {
		data.Flash = popFlash(w, req)
	}

	buf := new(bytes.Buffer)
	if err := r.templates.ExecuteTemplate(buf, page, data); err != nil {
		r.logger.Error().Err(err).Str("template", page).Msg("error executing template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// RenderError renders the shared error page with the status carried by the
// error, logging anything outside the application taxonomy.
func (r Renderer) RenderError(w http.ResponseWriter, req *http.Request, err error) {
	status := errs.StatusOf(err)
	text := "Something went wrong on our side."

	var appErr *errs.AppErr
	if errors.As(err, &appErr) {
		text = appErr.Message()
		if appErr.Cause != nil {
			r.logger.Error().Str("cause", appErr.GetFullError()).Msg("request failed")
		}
	} else {
		r.logger.Error().Err(err).Msg("unexpected error")
	}

	r.Render(w, req, status, "error", &pageData{
		Title:     http.StatusText(status),
		ErrorText: text,
	})
}
