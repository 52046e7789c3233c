// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webform

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-analyzer/internal/analyze"
	"github.com/pdiddy/resume-analyzer/internal/docload"
	"github.com/pdiddy/resume-analyzer/pkg/types"
)

const (
	sampleResume = "Jane Doe\nContact: jane@example.com, 555-123-4567. Skills: Python, SQL."
	sampleJob    = "Required skills: Python, SQL, Docker."
)

// fakeTagger keeps the tests offline.
type fakeTagger struct{}

func (fakeTagger) TagPersons(ctx context.Context, text string) ([]string, error) {
	return []string{"Jane Doe"}, nil
}

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.Serve.UploadDir = filepath.Join(t.TempDir(), "uploads")

	pipeline, err := analyze.New(docload.NewLoader(), fakeTagger{}, cfg.Analyzer)
	require.NoError(t, err)

	return New(pipeline, cfg.Serve, t.TempDir())
}

// multipartRequest builds a POST /analyze request with a resume file and
// form fields.
func multipartRequest(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if filename != "" {
		part, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleForm(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "job_description")
}

func TestHandleAnalyze_JSON(t *testing.T) {
	app := testApp(t)
	req := multipartRequest(t, "jane.txt", sampleResume, map[string]string{
		"job_description": sampleJob,
		"format":          "json",
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result types.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "jane.txt", result.Source)
	assert.Equal(t, "Jane Doe", result.Candidate)
	assert.Equal(t, "jane@example.com", result.Contact.Email)
	assert.Equal(t, []string{"docker"}, result.MissingKeywords)
	assert.Greater(t, result.Similarity, 0.0)
}

func TestHandleAnalyze_HTML(t *testing.T) {
	app := testApp(t)
	req := multipartRequest(t, "jane.txt", sampleResume, map[string]string{
		"job_description": sampleJob,
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Jane Doe")
	assert.Contains(t, string(body), "Similarity Score:")
}

func TestHandleAnalyze_MissingInputs(t *testing.T) {
	app := testApp(t)

	// No job description.
	req := multipartRequest(t, "jane.txt", sampleResume, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// No resume file.
	req = multipartRequest(t, "", "", map[string]string{"job_description": sampleJob})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_UnsupportedFormat(t *testing.T) {
	app := testApp(t)
	req := multipartRequest(t, "jane.png", "binary", map[string]string{
		"job_description": sampleJob,
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
