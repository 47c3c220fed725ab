package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/galacticos-fc/clubsite/services"
)

type GalleryHandler struct {
	galleryService services.GalleryService
}

func NewGalleryHandler(galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func (h *GalleryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	galleryType := r.URL.Query().Get("type")
	featuredOnly := r.URL.Query().Get("featured") == "true"

	items, err := h.galleryService.ListItems(r.Context(), galleryType, featuredOnly)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"items": items}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateItem takes a multipart form: the image file plus item fields. The
// match_id field is optional and links match-day photos to their fixture.
func (h *GalleryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
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

	input := services.GalleryItemInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		GalleryType: r.FormValue("gallery_type"),
		IsFeatured:  r.FormValue("is_featured") == "true",
	}
	if raw := r.FormValue("match_id"); raw != "" {
		matchID, err := strconv.Atoi(raw)
		if err != nil || matchID <= 0 {
			badRequestResponse(w, r, errors.New("invalid match_id field"))
			return
		}
		input.MatchID = &matchID
	}

	item, err := h.galleryService.CreateItem(r.Context(), input, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"item": item}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GalleryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GalleryItemInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.galleryService.UpdateItem(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"item": item}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GalleryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.galleryService.DeleteItem(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
