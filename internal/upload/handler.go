package upload

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/kathavichar/api/internal/response"
)

// maxRequestBytes caps the whole multipart body: two files at the per-file
// limit plus form overhead.
const maxRequestBytes = 2*maxFileBytes + 1<<20

// Handler holds the HTTP handler for the upload endpoint.
type Handler struct {
	svc *Service
}

// NewHandler creates a new upload Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// uploadResponse is the success body for POST /upload.
type uploadResponse struct {
	Message   string `json:"message"`
	Artist    string `json:"artist"`
	AudioURL  string `json:"audioUrl,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ImageNote string `json:"imageNote,omitempty"`
}

// Upload godoc
//
//	@Summary		Upload artist media
//	@Description	Accepts up to one audio file and one image file for an artist. Audio always uploads; the image is skipped with a note if the artist already has one. Returns CDN URLs for each stored object.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			artist	formData	string	true	"Artist name (free-form; sanitized into the object-store namespace)"
//	@Param			audio	formData	file	false	"Audio file (mp3, wav, ogg, m4a; max 10MB)"
//	@Param			image	formData	file	false	"Cover image (jpg, jpeg, png; max 10MB)"
//	@Success		200		{object}	uploadResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseMultipartForm(maxRequestBytes); err != nil {
		response.BadRequest(w, "invalid multipart form: "+err.Error())
		return
	}

	artist := r.FormValue("artist")
	if artist == "" {
		artist = r.FormValue("artistName")
	}

	audio, closeAudio, err := formFile(r, "audio", "audio_file")
	if err != nil {
		response.BadRequest(w, "malformed audio file part")
		return
	}
	defer closeAudio()

	image, closeImage, err := formFile(r, "image", "image_file")
	if err != nil {
		response.BadRequest(w, "malformed image file part")
		return
	}
	defer closeImage()

	result, err := h.svc.Process(r.Context(), Request{
		Artist: artist,
		Audio:  audio,
		Image:  image,
	})
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		response.BadRequest(w, vErr.Message)
		return
	}
	if err != nil {
		response.Upstream(w, err)
		return
	}

	response.OK(w, uploadResponse{
		Message:   "Files processed successfully",
		Artist:    result.Artist,
		AudioURL:  result.AudioURL,
		ImageURL:  result.ImageURL,
		ImageNote: result.ImageNote,
	})
}

// formFile fetches the first present file part among the given field names.
// A missing part is not an error; the caller decides whether files are
// required.
func formFile(r *http.Request, names ...string) (*FilePart, func(), error) {
	for _, name := range names {
		f, fh, err := r.FormFile(name)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, func() {}, err
		}
		return &FilePart{
			Name:        fh.Filename,
			ContentType: partContentType(fh),
			Size:        fh.Size,
			Reader:      f,
		}, func() { _ = f.Close() }, nil
	}
	return nil, func() {}, nil
}

func partContentType(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}
