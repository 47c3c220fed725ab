package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/galacticos-fc/clubsite/middleware"
	"github.com/galacticos-fc/clubsite/services"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// ListPublished is the public news feed; ?limit= caps it for the home page.
func (h *NewsHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			badRequestResponse(w, r, errors.New("invalid limit parameter"))
			return
		}
		limit = parsed
	}

	articles, err := h.newsService.ListPublishedArticles(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"articles": articles}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "articleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	article, err := h.newsService.GetPublishedArticle(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"article": article}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListAll is the admin view: drafts included.
func (h *NewsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	articles, err := h.newsService.ListAllArticles(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"articles": articles}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "articleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	article, err := h.newsService.GetArticleByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"article": article}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	authorID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.ArticleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	article, err := h.newsService.CreateArticle(r.Context(), authorID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"article": article}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "articleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ArticleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	article, err := h.newsService.UpdateArticle(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"article": article}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NewsHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "articleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.newsService.DeleteArticle(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NewsHandler) UploadFeaturedImage(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "articleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		badRequestResponse(w, r, errors.New("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		badRequestResponse(w, r, errors.New("image file is required"))
		return
	}
	defer file.Close()

	article, err := h.newsService.UploadFeaturedImage(r.Context(), id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"article": article}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
