package song

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kathavichar/api/internal/artist"
	"github.com/kathavichar/api/internal/response"
)

// Handler holds HTTP handlers for song registry endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new song Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type addSongRequest struct {
	Title    string `json:"title"    example:"Jai Ho"`
	AudioURL string `json:"audiourl" example:"https://katha-audios.sfo3.cdn.digitaloceanspaces.com/a-r-rahman/1712_jai-ho.mp3"`
	ImgURL   string `json:"imgurl"   example:"https://katha-images.sfo3.cdn.digitaloceanspaces.com/a-r-rahman/1712_cover.jpg"`
	ArtistID int64  `json:"artistId" example:"1"`
}

type addSongResponse struct {
	Message string `json:"message"`
	Song    *Song  `json:"song"`
}

type listSongsResponse struct {
	Songs []Song `json:"songs"`
}

// Add godoc
//
//	@Summary		Add song
//	@Description	Registers a song under an existing artist. The artist must already be in the registry.
//	@Tags			songs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addSongRequest	true	"Song details"
//	@Success		201		{object}	addSongResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/add-song [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" || req.AudioURL == "" || req.ImgURL == "" || req.ArtistID == 0 {
		response.BadRequest(w, "title, audiourl, imgurl, and artistId are required")
		return
	}

	s, err := h.svc.Create(r.Context(), req.Title, req.AudioURL, req.ImgURL, req.ArtistID)
	if errors.Is(err, artist.ErrNotFound) {
		response.BadRequest(w, "artist not found")
		return
	}
	if err != nil {
		response.Upstream(w, err)
		return
	}

	response.Created(w, addSongResponse{
		Message: "Song added successfully",
		Song:    s,
	})
}

// ListByArtist godoc
//
//	@Summary		List songs by artist
//	@Description	Returns all songs registered under the given artist id.
//	@Tags			songs
//	@Produce		json
//	@Param			artistId	path		int	true	"Artist id"
//	@Success		200			{object}	listSongsResponse
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/songs/{artistId} [get]
func (h *Handler) ListByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "artistId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "artistId must be an integer")
		return
	}

	songs, err := h.svc.ListByArtist(r.Context(), artistID)
	if err != nil {
		response.Upstream(w, err)
		return
	}

	response.OK(w, listSongsResponse{Songs: songs})
}
