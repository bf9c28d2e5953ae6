package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/backend/pkg/resume"
)

// memRepo is an in-memory resume.Repository for handler tests.
type memRepo struct {
	mu      sync.Mutex
	docs    map[uuid.UUID]resume.Document
	uploads []resume.UploadMeta
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[uuid.UUID]resume.Document{}}
}

func (r *memRepo) Create(_ context.Context, d resume.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[d.ID] = d
	return nil
}

func (r *memRepo) Get(_ context.Context, ownerID, id uuid.UUID) (resume.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.OwnerID != ownerID {
		return resume.Document{}, pgx.ErrNoRows
	}
	return d, nil
}

func (r *memRepo) List(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []resume.Document
	for _, d := range r.docs {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memRepo) Update(_ context.Context, d resume.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.docs[d.ID]
	if !ok || prev.OwnerID != d.OwnerID {
		return pgx.ErrNoRows
	}
	r.docs[d.ID] = d
	return nil
}

func (r *memRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.OwnerID != ownerID {
		return pgx.ErrNoRows
	}
	delete(r.docs, id)
	return nil
}

func (r *memRepo) SaveUpload(_ context.Context, m resume.UploadMeta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads = append(r.uploads, m)
	return nil
}

func (r *memRepo) ListAll(_ context.Context, limit, offset int) ([]resume.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []resume.Document
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out, nil
}

func (r *memRepo) GetAny(_ context.Context, id uuid.UUID) (resume.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok {
		return resume.Document{}, pgx.ErrNoRows
	}
	return d, nil
}

type stubRenderer struct {
	pdf []byte
	err error
}

func (s *stubRenderer) RenderHTMLToPDF(_ context.Context, _ string) ([]byte, error) {
	return s.pdf, s.err
}

var testUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// newResumeApp wires the handler behind a stand-in auth middleware that
// injects a fixed caller, the way the JWT middleware does in production.
func newResumeApp(repo *memRepo, renderer *stubRenderer, admin bool) *fiber.App {
	app := fiber.New()
	h := NewResumesHandler(repo, renderer, 15)
	grp := app.Group("/api/v1/resumes", func(c *fiber.Ctx) error {
		c.Locals("userId", testUserID.String())
		c.Locals("isAdmin", admin)
		return c.Next()
	})
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Post("/import", h.Import)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/pdf", h.RenderPDF)
	return app
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeDocument(t *testing.T, resp *http.Response) resume.Document {
	t.Helper()
	defer resp.Body.Close()
	var doc resume.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return doc
}

func validRecordJSON() json.RawMessage {
	return json.RawMessage(`{
		"name":"Jane Doe","role":"Engineer","phone":"+1 (555) 123-4567",
		"email":"jane@example.com","location":"Austin, TX"
	}`)
}

func TestCreateResume(t *testing.T) {
	repo := newMemRepo()
	app := newResumeApp(repo, &stubRenderer{}, false)

	body := jsonBody(t, fiber.Map{"record": validRecordJSON()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	doc := decodeDocument(t, resp)
	assert.Equal(t, "Jane Doe", doc.Title)
	assert.Equal(t, "Jane Doe", doc.Record.Name)
	assert.Equal(t, testUserID, doc.OwnerID)
	assert.Len(t, repo.docs, 1)
}

func TestCreateResumeRejectsInvalidRecord(t *testing.T) {
	app := newResumeApp(newMemRepo(), &stubRenderer{}, false)

	body := jsonBody(t, fiber.Map{"record": json.RawMessage(`{"role":"Engineer"}`)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateResumeRequiresRecord(t *testing.T) {
	app := newResumeApp(newMemRepo(), &stubRenderer{}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/", bytes.NewReader([]byte(`{"title":"x"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetResumeNotFound(t *testing.T) {
	app := newResumeApp(newMemRepo(), &stubRenderer{}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetResumeHidesOtherOwners(t *testing.T) {
	repo := newMemRepo()
	other := resume.Document{ID: uuid.New(), OwnerID: uuid.New(), Title: "theirs", Record: resume.NewRecord()}
	require.NoError(t, repo.Create(context.Background(), other))

	app := newResumeApp(repo, &stubRenderer{}, false)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+other.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Admins can read any document.
	adminApp := newResumeApp(repo, &stubRenderer{}, true)
	resp, err = adminApp.Test(httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+other.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateResume(t *testing.T) {
	repo := newMemRepo()
	doc := resume.Document{ID: uuid.New(), OwnerID: testUserID, Title: "old", Record: resume.NewRecord()}
	require.NoError(t, repo.Create(context.Background(), doc))

	app := newResumeApp(repo, &stubRenderer{}, false)
	body := jsonBody(t, fiber.Map{"title": "new title", "record": validRecordJSON()})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/"+doc.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeDocument(t, resp)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "Jane Doe", updated.Record.Name)
}

func TestDeleteResume(t *testing.T) {
	repo := newMemRepo()
	doc := resume.Document{ID: uuid.New(), OwnerID: testUserID, Record: resume.NewRecord()}
	require.NoError(t, repo.Create(context.Background(), doc))

	app := newResumeApp(repo, &stubRenderer{}, false)
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/"+doc.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, repo.docs)
}

func multipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportResumeFromText(t *testing.T) {
	repo := newMemRepo()
	app := newResumeApp(repo, &stubRenderer{}, false)

	text := "Jane Doe\nSoftware Engineer\njane@example.com\nSKILLS\nGo, Docker"
	body, contentType := multipartFile(t, "file", "resume.txt", []byte(text))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	doc := decodeDocument(t, resp)
	assert.Equal(t, "Jane Doe", doc.Record.Name)
	assert.Equal(t, "jane@example.com", doc.Record.Email)
	assert.Equal(t, []string{"Go", "Docker"}, doc.Record.Skills)

	require.Len(t, repo.uploads, 1)
	assert.Equal(t, "resume.txt", repo.uploads[0].Filename)
	assert.Equal(t, "text/plain", repo.uploads[0].MimeType)
}

func TestImportResumeUnsupportedFormat(t *testing.T) {
	app := newResumeApp(newMemRepo(), &stubRenderer{}, false)

	body, contentType := multipartFile(t, "file", "resume.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImportResumeEmptyFile(t *testing.T) {
	app := newResumeApp(newMemRepo(), &stubRenderer{}, false)

	body, contentType := multipartFile(t, "file", "resume.txt", []byte("   \n\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRenderPDF(t *testing.T) {
	repo := newMemRepo()
	doc := resume.Document{ID: uuid.New(), OwnerID: testUserID, Record: resume.NewRecord()}
	require.NoError(t, repo.Create(context.Background(), doc))

	app := newResumeApp(repo, &stubRenderer{pdf: []byte("%PDF-1.4 fake")}, false)
	url := fmt.Sprintf("/api/v1/resumes/%s/pdf", doc.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, []byte("%PDF-1.4 fake"), b)
}
