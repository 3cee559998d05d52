package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"plantify/internal/config"
	"plantify/internal/database"
	"plantify/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubDescriber is a describe.Generator for tests.
type stubDescriber struct {
	description string
	err         error
}

func (s *stubDescriber) Describe(_ context.Context, _ []byte, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.description, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret-0123456789abcdef0123456789",
		Port:           "8420",
		Env:            "test",
		StorageDir:     "/tmp/plantify-test",
		StorageBaseURL: "http://localhost:8420/storage",
	}
}

func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	store := storage.NewDiskStore(t.TempDir(), "http://localhost:8420/storage")

	s := NewServerWithDeps(testConfig(), db, nil, store, &stubDescriber{description: "A thriving Monstera deliciosa."})

	app := fiber.New(fiber.Config{BodyLimit: 8 << 20})
	s.SetupRoutes(app)
	return s, app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// multipartUpload builds a multipart post creation request.
func multipartUpload(t *testing.T, plantName, description, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, w.WriteField("plant_name", plantName))
	require.NoError(t, w.WriteField("description", description))
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func createPostRequest(t *testing.T, app *fiber.App, token, plantName, description, filename, contentType string, content []byte) *http.Response {
	t.Helper()

	body, formContentType := multipartUpload(t, plantName, description, filename, contentType, content)
	req, err := http.NewRequest(http.MethodPost, "/api/posts", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

var errDescriberDown = errors.New("model unavailable")
