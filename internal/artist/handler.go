package artist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kathavichar/api/internal/response"
)

// Handler holds HTTP handlers for artist registry endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new artist Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type addArtistRequest struct {
	Name   string `json:"name"   example:"A. R. Rahman"`
	ImgURL string `json:"imgurl" example:"https://katha-images.sfo3.cdn.digitaloceanspaces.com/a-r-rahman/1712_cover.jpg"`
}

type addArtistResponse struct {
	Message string  `json:"message"`
	Artist  *Artist `json:"artist"`
}

type listArtistsResponse struct {
	Artists []Artist `json:"artists"`
}

type artistImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Add godoc
//
//	@Summary		Add artist
//	@Description	Registers an artist with their cover image URL. Rejects duplicates by exact name match.
//	@Tags			artists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addArtistRequest	true	"Artist details"
//	@Success		201		{object}	addArtistResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/add-artist [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.ImgURL == "" {
		response.BadRequest(w, "name and imgurl are required")
		return
	}

	a, err := h.svc.Create(r.Context(), req.Name, req.ImgURL)
	if errors.Is(err, ErrAlreadyExists) {
		response.BadRequest(w, "artist already exists")
		return
	}
	if err != nil {
		response.Upstream(w, err)
		return
	}

	response.Created(w, addArtistResponse{
		Message: "Artist added successfully",
		Artist:  a,
	})
}

// List godoc
//
//	@Summary		List artists
//	@Description	Returns all registered artists.
//	@Tags			artists
//	@Produce		json
//	@Success		200	{object}	listArtistsResponse
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/artists [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.svc.List(r.Context())
	if err != nil {
		response.Upstream(w, err)
		return
	}
	response.OK(w, listArtistsResponse{Artists: artists})
}

// Image godoc
//
//	@Summary		Get artist image
//	@Description	Looks up the stored cover image URL for an artist name.
//	@Tags			artists
//	@Produce		json
//	@Param			artistName	path		string	true	"Artist name"
//	@Success		200			{object}	artistImageResponse
//	@Failure		404			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/artist-image/{artistName} [get]
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "artistName")

	imgURL, err := h.svc.ImageURL(r.Context(), name)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "artist not found")
			return
		}
		response.Upstream(w, err)
		return
	}

	response.OK(w, artistImageResponse{ImageURL: imgURL})
}
