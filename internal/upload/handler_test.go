package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

type formPart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func buildMultipart(t *testing.T, artist string, parts []formPart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	if artist != "" {
		require.NoError(t, mw.WriteField("artist", artist))
	}
	for _, p := range parts {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition",
			`form-data; name="`+p.field+`"; filename="`+p.filename+`"`)
		hdr.Set("Content-Type", p.contentType)
		fw, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = fw.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func doUpload(t *testing.T, store *fakeStore, artist string, parts []formPart) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	body, contentType := buildMultipart(t, artist, parts)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	NewHandler(newTestService(store)).Upload(w, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestUploadHandlerAudioEndToEnd(t *testing.T) {
	store := &fakeStore{}
	w, body := doUpload(t, store, "A. R. Rahman!", []formPart{
		{field: "audio", filename: "Song One.mp3", contentType: "audio/mpeg", data: []byte("mp3 bytes")},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Files processed successfully", body["message"])
	require.Equal(t, "a-r-rahman", body["artist"])

	audioURL, _ := body["audioUrl"].(string)
	require.Regexp(t, regexp.MustCompile(`/a-r-rahman/\d+_song-one\.mp3$`), audioURL)

	_, hasImage := body["imageUrl"]
	require.False(t, hasImage)
}

func TestUploadHandlerRejectsGif(t *testing.T) {
	store := &fakeStore{}
	w, body := doUpload(t, store, "Some Artist", []formPart{
		{field: "image", filename: "cover.gif", contentType: "image/gif", data: []byte("gif")},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, body, "error")
	require.Empty(t, store.putCalls())
}

func TestUploadHandlerMissingArtist(t *testing.T) {
	store := &fakeStore{}
	w, body := doUpload(t, store, "", []formPart{
		{field: "audio", filename: "song.mp3", contentType: "audio/mpeg", data: []byte("x")},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, body, "error")
}

func TestUploadHandlerNoFiles(t *testing.T) {
	store := &fakeStore{}
	w, body := doUpload(t, store, "Some Artist", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, body, "error")
}

func TestUploadHandlerAlternateFieldNames(t *testing.T) {
	store := &fakeStore{}
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("artistName", "Some Artist"))

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="audio_file"; filename="song.mp3"`)
	hdr.Set("Content-Type", "audio/mpeg")
	fw, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = fw.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	NewHandler(newTestService(store)).Upload(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.putCalls(), 1)
}

func TestUploadHandlerImageSkipNote(t *testing.T) {
	store := &fakeStore{
		existing: map[string][]string{
			testBuckets.Image: {"some-artist/1700000000000_old.jpg"},
		},
	}
	w, body := doUpload(t, store, "Some Artist", []formPart{
		{field: "audio", filename: "song.mp3", contentType: "audio/mpeg", data: []byte("x")},
		{field: "image", filename: "cover.png", contentType: "image/png", data: []byte("y")},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, imageNoteSkipped, body["imageNote"])
	require.NotEmpty(t, body["audioUrl"])

	_, hasImage := body["imageUrl"]
	require.False(t, hasImage)
}

func TestUploadHandlerUpstreamFailure(t *testing.T) {
	store := &fakeStore{failBucket: testBuckets.Audio}
	w, body := doUpload(t, store, "Some Artist", []formPart{
		{field: "audio", filename: "song.mp3", contentType: "audio/mpeg", data: []byte("x")},
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, body["error"], "upload audio")
}
