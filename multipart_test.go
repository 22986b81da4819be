package oai

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/casualjim/oai/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formPart struct {
	name     string
	filename string
	content  string
}

func decodeForm(t *testing.T, contentType string, body io.Reader) []formPart {
	t.Helper()

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	var parts []formPart
	mr := multipart.NewReader(body, params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		content, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, formPart{name: p.FormName(), filename: p.FileName(), content: string(content)})
	}
	return parts
}

func TestTranscriptionFormHasExactlyTwoParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake mpeg bytes"), 0o600))

	form := NewTranscription("whisper-1", path).form()
	contentType, body, err := form.encode()
	require.NoError(t, err)

	parts := decodeForm(t, contentType, body)
	require.Len(t, parts, 2)
	assert.Equal(t, formPart{name: "model", content: "whisper-1"}, parts[0])
	assert.Equal(t, formPart{name: "file", filename: "audio.mp3", content: "fake mpeg bytes"}, parts[1])
}

func TestFormOptionalTextParts(t *testing.T) {
	form := NewForm().Text("model", "whisper-1")
	TextOpt(form, "temperature", param.Some(0.2))
	TextOpt(form, "language", param.None[string]())

	contentType, body, err := form.encode()
	require.NoError(t, err)

	parts := decodeForm(t, contentType, body)
	require.Len(t, parts, 2)
	assert.Equal(t, "model", parts[0].name)
	assert.Equal(t, formPart{name: "temperature", content: "0.2"}, parts[1])
}

func TestImageEditFormPartOrder(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "photo.png")
	maskPath := filepath.Join(dir, "mask.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png-image"), 0o600))
	require.NoError(t, os.WriteFile(maskPath, []byte("png-mask"), 0o600))

	req := NewImageEdit("dall-e-2", imagePath, maskPath, "add a hat").WithSize("512x512")
	contentType, body, err := req.form().encode()
	require.NoError(t, err)

	parts := decodeForm(t, contentType, body)
	require.Len(t, parts, 5)
	assert.Equal(t, "model", parts[0].name)
	assert.Equal(t, formPart{name: "image", filename: "photo.png", content: "png-image"}, parts[1])
	assert.Equal(t, formPart{name: "mask", filename: "mask.png", content: "png-mask"}, parts[2])
	assert.Equal(t, formPart{name: "prompt", content: "add a hat"}, parts[3])
	assert.Equal(t, formPart{name: "size", content: "512x512"}, parts[4])
}

func TestMissingUploadFileFailsBeforeAnyRequest(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL))
	_, err := c.Audio().Transcribe(context.Background(), NewTranscription("whisper-1", filepath.Join(t.TempDir(), "nope.mp3")))
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrLocalIO, apiErr.Kind)
	assert.True(t, os.IsNotExist(apiErr.Unwrap()))
	assert.Zero(t, hits, "no partial multipart submission may happen")
}

func TestFormErrIsSticky(t *testing.T) {
	form := NewForm().File("file", "/definitely/not/there.mp3", "audio/mpeg").Text("model", "whisper-1")

	require.Error(t, form.Err())

	var apiErr *Error
	require.ErrorAs(t, form.Err(), &apiErr)
	assert.Equal(t, ErrLocalIO, apiErr.Kind)
}
