// Package upload implements the media ingestion pipeline: multipart
// validation, artist-namespace placement, one-image-per-artist probing, and
// object-store writes with deterministic key naming.
package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/kathavichar/api/internal/storage"
)

// maxFileBytes is the per-file size limit for uploads.
const maxFileBytes = 10_000_000

// defaultImageContentType is used when an image part arrives without a
// declared content type.
const defaultImageContentType = "image/jpeg"

// imageNoteSkipped annotates a result whose image upload was down-scoped
// because the artist already has one.
const imageNoteSkipped = "Image upload skipped: only one image allowed per artist"

var imageExtensions = []string{"jpg", "jpeg", "png"}

var audioMIMETypes = map[string]bool{
	"audio/mpeg":  true,
	"audio/mp3":   true,
	"audio/wav":   true,
	"audio/x-wav": true,
	"audio/ogg":   true,
	"audio/mp4":   true,
	"audio/x-m4a": true,
}

var imageMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidationCode identifies why an upload request was rejected.
type ValidationCode string

const (
	CodeMissingArtist   ValidationCode = "missing_artist"
	CodeNoFilesProvided ValidationCode = "no_files_provided"
	CodeUnsupportedFile ValidationCode = "unsupported_file"
)

// ValidationError reports malformed client input. It maps to HTTP 400 and
// is always returned before any object-store call is made.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ProbePolicy decides what the existing-image prober does when the listing
// call itself fails.
type ProbePolicy int

const (
	// AssumeAbsent treats a failed listing as "no image exists". Image
	// dedup is best-effort; an unreachable listing must not block uploads.
	AssumeAbsent ProbePolicy = iota
	// FailClosed surfaces the listing error and rejects the upload.
	FailClosed
)

// Options parameterizes the behavior axes that varied across deployments.
type Options struct {
	// AudioExtensions is the allowed audio extension set, lowercase,
	// without dots.
	AudioExtensions []string
	// SanitizeArtist controls whether the artist name is sanitized before
	// use as the object-store namespace.
	SanitizeArtist bool
	// OnProbeError is the existing-image prober's failure policy.
	OnProbeError ProbePolicy
}

// DefaultOptions returns the current production behavior.
func DefaultOptions() Options {
	return Options{
		AudioExtensions: []string{"mp3", "wav", "ogg", "m4a"},
		SanitizeArtist:  true,
		OnProbeError:    AssumeAbsent,
	}
}

// FilePart is one file from the multipart request.
type FilePart struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Request is a validated-on-entry upload request: an artist plus up to one
// audio file and one image file.
type Request struct {
	Artist string
	Audio  *FilePart
	Image  *FilePart
}

// Result reports where the files landed. URLs are CDN URLs; ImageNote is
// set instead of ImageURL when the image upload was skipped.
type Result struct {
	Artist    string
	AudioURL  string
	ImageURL  string
	ImageNote string
}

// Service routes validated uploads into per-artist object-store paths.
// Bucket names are fixed at construction; the service holds no mutable
// state and is safe for concurrent use.
type Service struct {
	store   storage.ObjectStore
	buckets storage.BucketSet
	opts    Options
}

// NewService creates an upload Service writing to the given buckets.
func NewService(store storage.ObjectStore, buckets storage.BucketSet, opts Options) *Service {
	return &Service{store: store, buckets: buckets, opts: opts}
}

// Process validates req, decides placement, and writes to the object store.
//
// The two writes are independent puts with no rollback: if the image write
// fails after the audio write committed, the audio object remains and the
// caller sees an error.
func (s *Service) Process(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Artist) == "" {
		return nil, &ValidationError{CodeMissingArtist, "Artist name is required"}
	}
	if req.Audio == nil && req.Image == nil {
		return nil, &ValidationError{CodeNoFilesProvided, "At least one file (audio or image) is required"}
	}
	if req.Audio != nil {
		if err := validateFile(req.Audio, s.opts.AudioExtensions, audioMIMETypes, false); err != nil {
			return nil, err
		}
	}
	if req.Image != nil {
		// A blank image content type is tolerated here because the put
		// falls back to defaultImageContentType.
		if err := validateFile(req.Image, imageExtensions, imageMIMETypes, true); err != nil {
			return nil, err
		}
	}

	namespace := req.Artist
	if s.opts.SanitizeArtist {
		namespace = SanitizeArtistName(req.Artist)
	}

	res := &Result{Artist: namespace}

	// The probe must resolve before the image write decision; it runs
	// before any write so a FailClosed rejection leaves no objects behind.
	imageExists := false
	if req.Image != nil {
		exists, err := s.hasExistingImage(ctx, namespace)
		if err != nil {
			return nil, fmt.Errorf("probe existing image for %q: %w", namespace, err)
		}
		imageExists = exists
	}

	if req.Audio != nil {
		key := objectKey(namespace, req.Audio.Name)
		if err := s.store.Upload(ctx, s.buckets.Audio, key, req.Audio.Reader, req.Audio.Size, req.Audio.ContentType); err != nil {
			return nil, fmt.Errorf("upload audio: %w", err)
		}
		res.AudioURL = s.store.PublicURL(s.buckets.Audio, key)
	}

	if req.Image != nil {
		if imageExists {
			res.ImageNote = imageNoteSkipped
			return res, nil
		}
		contentType := req.Image.ContentType
		if contentType == "" {
			contentType = defaultImageContentType
		}
		key := objectKey(namespace, req.Image.Name)
		if err := s.store.Upload(ctx, s.buckets.Image, key, req.Image.Reader, req.Image.Size, contentType); err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		res.ImageURL = s.store.PublicURL(s.buckets.Image, key)
	}

	return res, nil
}

// hasExistingImage lists the artist's namespace in the image bucket and
// reports whether any image object already exists there.
func (s *Service) hasExistingImage(ctx context.Context, namespace string) (bool, error) {
	keys, err := s.store.ListKeys(ctx, s.buckets.Image, namespace+"/")
	if err != nil {
		if s.opts.OnProbeError == AssumeAbsent {
			log.Printf("upload: image probe for %q failed, assuming absent: %v", namespace, err)
			return false, nil
		}
		return false, err
	}
	for _, k := range keys {
		if isImageKey(k) {
			return true, nil
		}
	}
	return false, nil
}

// objectKey builds "{namespace}/{epochMillis}_{sanitizedName}". The
// millisecond timestamp keeps concurrent uploads to one artist from
// colliding; no additional collision check is performed.
func objectKey(namespace, originalName string) string {
	return fmt.Sprintf("%s/%d_%s", namespace, time.Now().UnixMilli(), SanitizeFileName(originalName))
}

func isImageKey(key string) bool {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// validateFile checks extension, declared size, and MIME type against the
// allow-lists for the file's slot. allowBlankMIME lets a part with no
// declared content type through for slots that apply a fixed default.
func validateFile(f *FilePart, exts []string, mimes map[string]bool, allowBlankMIME bool) error {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(f.Name)), ".")
	if !contains(exts, ext) {
		return &ValidationError{CodeUnsupportedFile, fmt.Sprintf("unsupported file extension %q", ext)}
	}
	if f.Size > maxFileBytes {
		return &ValidationError{CodeUnsupportedFile, fmt.Sprintf("file %q exceeds the %d byte limit", f.Name, maxFileBytes)}
	}
	if f.ContentType == "" && allowBlankMIME {
		return nil
	}
	if !mimes[strings.ToLower(f.ContentType)] {
		return &ValidationError{CodeUnsupportedFile, fmt.Sprintf("unsupported content type %q", f.ContentType)}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
