package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khaledev/inkwell/database"
	"github.com/khaledev/inkwell/errs"
	"github.com/khaledev/inkwell/models"
)

// dateFormat is how publication dates are displayed and, deliberately, how
// they are stored.
const dateFormat = "January 2, 2006"

type postHandler struct {
	renderer    Renderer
	logger      zerolog.Logger
	postRepo    *database.PostRepo
	commentRepo *database.CommentRepo
}

func newPostHandler(postRepo *database.PostRepo, commentRepo *database.CommentRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		renderer:    NewRenderer(logger),
		logger:      logger,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// home lists every post on the front page.
func (h postHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll()
		if err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("find", "blog posts", err))
			return
		}

		h.renderer.Render(w, r, http.StatusOK, "index", &pageData{
			Title: "All Posts",
			Posts: posts,
		})
	}
}

// showPost renders one post with its comments.
func (h postHandler) showPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.resolvePost(w, r)
		if !ok {
			return
		}

		h.renderer.Render(w, r, http.StatusOK, "post", &pageData{
			Title: post.Title,
			Post:  post,
		})
	}
}

// createComment attaches one comment to a post for the authenticated user.
// Anonymous submissions are redirected to the login page with zero writes.
func (h postHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.resolvePost(w, r)
		if !ok {
			return
		}

		user := ctxUser(r.Context())
		if user == nil {
			setFlash(w, "You need to login or register to comment.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		text := strings.TrimSpace(r.FormValue("comment"))
		if text == "" {
			h.renderer.Render(w, r, http.StatusBadRequest, "post", &pageData{
				Title:     post.Title,
				Post:      post,
				FormError: "A comment cannot be empty.",
			})
			return
		}

		comment := &models.Comment{
			Text:     text,
			AuthorID: user.ID,
			PostID:   post.ID,
		}
		if err := h.commentRepo.Add(comment); err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("create", "comment", err))
			return
		}

		http.Redirect(w, r, "/post/"+strconv.FormatUint(uint64(post.ID), 10), http.StatusSeeOther)
	}
}

func (h postHandler) newPostPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, http.StatusOK, "make_post", &pageData{
			Title: "New Post",
			Form:  map[string]string{},
		})
	}
}

// createPost publishes a new post authored by the admin. Titles are unique:
// the lookup is advisory and the database index settles any race.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, formErr := readPostForm(r)
		if formErr != "" {
			h.renderer.Render(w, r, http.StatusBadRequest, "make_post", &pageData{
				Title:     "New Post",
				FormError: formErr,
				Form:      form,
			})
			return
		}

		existing, err := h.postRepo.FindByTitle(form["title"])
		if err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("find", "blog post", err))
			return
		}
		if existing != nil {
			setFlash(w, "A post with that title already exists.")
			http.Redirect(w, r, "/new-post", http.StatusSeeOther)
			return
		}

		user := ctxUser(r.Context())
		post := &models.BlogPost{
			AuthorID: user.ID,
			Title:    form["title"],
			Subtitle: form["subtitle"],
			Date:     time.Now().Format(dateFormat),
			Body:     form["body"],
			ImgURL:   form["img_url"],
		}
		if projectURL := form["project_url"]; projectURL != "" {
			post.ProjectURL = &projectURL
		}

		if err := h.postRepo.Add(post); err != nil {
			appErr := errs.NewDatabaseError("create", "blog post", err)
			if errs.IsConflict(appErr) {
				setFlash(w, "A post with that title already exists.")
				http.Redirect(w, r, "/new-post", http.StatusSeeOther)
				return
			}
			h.renderer.RenderError(w, r, appErr)
			return
		}

		h.logger.Info().Uint("postID", post.ID).Str("title", post.Title).Msg("published post")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h postHandler) editPostPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.resolvePost(w, r)
		if !ok {
			return
		}

		form := map[string]string{
			"title":    post.Title,
			"subtitle": post.Subtitle,
			"body":     post.Body,
			"img_url":  post.ImgURL,
		}
		if post.ProjectURL != nil {
			form["project_url"] = *post.ProjectURL
		}

		h.renderer.Render(w, r, http.StatusOK, "make_post", &pageData{
			Title:  "Edit Post",
			IsEdit: true,
			Post:   post,
			Form:   form,
		})
	}
}

// updatePost rewrites every field of an existing post. The editor becomes the
// post's author, matching the create flow.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.resolvePost(w, r)
		if !ok {
			return
		}

		form, formErr := readPostForm(r)
		if formErr != "" {
			h.renderer.Render(w, r, http.StatusBadRequest, "make_post", &pageData{
				Title:     "Edit Post",
				IsEdit:    true,
				Post:      post,
				FormError: formErr,
				Form:      form,
			})
			return
		}

		user := ctxUser(r.Context())
		post.Title = form["title"]
		post.Subtitle = form["subtitle"]
		post.Body = form["body"]
		post.ImgURL = form["img_url"]
		post.AuthorID = user.ID
		// drop the preloaded associations so Save only touches the post row
		post.Author = nil
		post.Comments = nil
		if projectURL := form["project_url"]; projectURL != "" {
			post.ProjectURL = &projectURL
		} else {
			post.ProjectURL = nil
		}

		if err := h.postRepo.Update(post); err != nil {
			appErr := errs.NewDatabaseError("update", "blog post", err)
			if errs.IsConflict(appErr) {
				setFlash(w, "A post with that title already exists.")
				http.Redirect(w, r, "/edit-post/"+strconv.FormatUint(uint64(post.ID), 10), http.StatusSeeOther)
				return
			}
			h.renderer.RenderError(w, r, appErr)
			return
		}

		http.Redirect(w, r, "/post/"+strconv.FormatUint(uint64(post.ID), 10), http.StatusSeeOther)
	}
}

// deletePost removes a post and its comments.
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.resolvePost(w, r)
		if !ok {
			return
		}

		if err := h.postRepo.Delete(post.ID); err != nil {
			h.renderer.RenderError(w, r, errs.NewDatabaseError("delete", "blog post", err))
			return
		}

		h.logger.Info().Uint("postID", post.ID).Str("title", post.Title).Msg("deleted post")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// resolvePost loads the post named by the {postID} URL parameter, rendering a
// 404 page and returning ok=false when it cannot.
func (h postHandler) resolvePost(w http.ResponseWriter, r *http.Request) (*models.BlogPost, bool) {
	idStr := chi.URLParam(r, "postID")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		h.renderer.RenderError(w, r, errs.NewNotFound("post"))
		return nil, false
	}

	post, err := h.postRepo.FindByID(uint(id))
	if err != nil {
		h.renderer.RenderError(w, r, errs.NewDatabaseError("find", "blog post", err))
		return nil, false
	}
	if post == nil {
		h.renderer.RenderError(w, r, errs.NewNotFound("post"))
		return nil, false
	}
	return post, true
}

// readPostForm pulls the post fields out of the request and reports the first
// validation problem as a user-facing message.
func readPostForm(r *http.Request) (map[string]string, string) {
	form := map[string]string{
		"title":       strings.TrimSpace(r.FormValue("title")),
		"subtitle":    strings.TrimSpace(r.FormValue("subtitle")),
		"body":        strings.TrimSpace(r.FormValue("body")),
		"img_url":     strings.TrimSpace(r.FormValue("img_url")),
		"project_url": strings.TrimSpace(r.FormValue("project_url")),
	}

	switch {
	case form["title"] == "":
		return form, "Title is required."
	case form["subtitle"] == "":
		return form, "Subtitle is required."
	case form["body"] == "":
		return form, "Body is required."
	case form["img_url"] == "":
		return form, "An image URL is required."
	}
	return form, ""
}
