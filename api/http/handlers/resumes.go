package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/resumeforge/backend/api/http/presenter"
	"github.com/resumeforge/backend/pkg/parse"
	"github.com/resumeforge/backend/pkg/render"
	"github.com/resumeforge/backend/pkg/resume"
)

type ResumesHandler struct {
	repo     resume.Repository
	renderer render.Renderer
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumesHandler(repo resume.Repository, renderer render.Renderer, maxUploadMB int) *ResumesHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 15
	}
	return &ResumesHandler{
		repo:     repo,
		renderer: renderer,
		maxBytes: int64(maxUploadMB) << 20,
	}
}

type resumeRequest struct {
	Title  string          `json:"title"`
	Record json.RawMessage `json:"record"`
}

// Create stores a new resume document submitted by the editor.
// @Summary Create resume
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   input body resumeRequest true "resume payload"
// @Security BearerAuth
// @Success 201 {object} resume.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [post]
func (h *ResumesHandler) Create(c *fiber.Ctx) error {
	var req resumeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.Record) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "record is required")
	}
	if err := resume.ValidateJSON(req.Record); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	rec := resume.NewRecord()
	if err := json.Unmarshal(req.Record, &rec); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid record payload")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = rec.Name
	}
	doc := resume.Document{
		ID:      uuid.New(),
		OwnerID: ownerID(c),
		Title:   title,
		Record:  rec,
	}
	if err := h.repo.Create(c.Context(), doc); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save resume")
	}
	saved, err := h.repo.GetAny(c.Context(), doc.ID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load saved resume")
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

// List returns the caller's resumes (admins see everything).
// @Summary List resumes
// @Tags    resumes
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} resume.Document
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	var (
		docs []resume.Document
		err  error
	)
	if isAdmin(c) {
		docs, err = h.repo.ListAll(c.Context(), limit, offset)
	} else {
		docs, err = h.repo.List(c.Context(), ownerID(c), limit, offset)
	}
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	if docs == nil {
		docs = []resume.Document{}
	}
	return presenter.JSON(c, http.StatusOK, docs)
}

// Get returns a single resume document.
// @Summary Get resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 200 {object} resume.Document
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	doc, err := h.getForCaller(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	return presenter.JSON(c, http.StatusOK, doc)
}

// Update replaces the stored record of a resume document.
// @Summary Update resume
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   id    path string        true "resume id"
// @Param   input body resumeRequest true "resume payload"
// @Security BearerAuth
// @Success 200 {object} resume.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [put]
func (h *ResumesHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	var req resumeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.Record) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "record is required")
	}
	if err := resume.ValidateJSON(req.Record); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	rec := resume.NewRecord()
	if err := json.Unmarshal(req.Record, &rec); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid record payload")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = rec.Name
	}
	doc := resume.Document{ID: id, OwnerID: ownerID(c), Title: title, Record: rec}
	if err := h.repo.Update(c.Context(), doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update resume")
	}
	saved, err := h.repo.Get(c.Context(), ownerID(c), id)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load saved resume")
	}
	return presenter.JSON(c, http.StatusOK, saved)
}

// Delete removes a resume document.
// @Summary Delete resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	if err := h.repo.Delete(c.Context(), ownerID(c), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete resume")
	}
	return c.SendStatus(http.StatusNoContent)
}

// Import accepts an uploaded resume file (PDF/DOC/DOCX/TXT), parses it into
// the structured schema and stores the result as a new document.
// @Summary Import resume from file
// @Tags    resumes
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (pdf, doc, docx or txt)"
// @Security BearerAuth
// @Success 201 {object} resume.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes/import [post]
func (h *ResumesHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, doc, docx or txt)")
	}
	media, ok := mediaTypeForFilename(fh.Filename)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf, doc, docx and txt are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	rec, err := parse.ParseResumeContent(data, media)
	if err != nil {
		var extErr *parse.ExtractionError
		switch {
		case errors.As(err, &extErr):
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", extErr))
		case errors.Is(err, parse.ErrEmptyContent):
			return presenter.Error(c, http.StatusBadRequest, "empty resume content")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to parse resume")
		}
	}

	doc := resume.Document{
		ID:      uuid.New(),
		OwnerID: ownerID(c),
		Title:   rec.Name,
		Record:  rec,
	}
	if err := h.repo.Create(c.Context(), doc); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save resume")
	}
	if err := h.repo.SaveUpload(c.Context(), resume.UploadMeta{
		ResumeID: doc.ID,
		Filename: fh.Filename,
		MimeType: string(media),
		Size:     fh.Size,
	}); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save upload metadata")
	}
	saved, err := h.repo.GetAny(c.Context(), doc.ID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load saved resume")
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

// RenderPDF renders the stored resume through the headless browser and
// streams the PDF back.
// @Summary Render resume to PDF
// @Tags    resumes
// @Produce application/pdf
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/pdf [post]
func (h *ResumesHandler) RenderPDF(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	doc, err := h.getForCaller(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	html, err := render.HTML(doc.Record)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render resume")
	}
	pdfBytes, err := h.renderer.RenderHTMLToPDF(c.Context(), html)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("failed to render PDF: %v", err))
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, doc.ID))
	return c.Send(pdfBytes)
}

func (h *ResumesHandler) getForCaller(c *fiber.Ctx, id uuid.UUID) (resume.Document, error) {
	if isAdmin(c) {
		return h.repo.GetAny(c.Context(), id)
	}
	return h.repo.Get(c.Context(), ownerID(c), id)
}

func mediaTypeForFilename(filename string) (parse.MediaType, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return parse.MediaPDF, true
	case ".doc":
		return parse.MediaWord, true
	case ".docx":
		return parse.MediaDocx, true
	case ".txt":
		return parse.MediaPlainText, true
	}
	return "", false
}

func ownerID(c *fiber.Ctx) uuid.UUID {
	s, _ := c.Locals("userId").(string)
	id, _ := uuid.Parse(s)
	return id
}

func isAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals("isAdmin").(bool)
	return v
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
