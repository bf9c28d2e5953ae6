package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeforge/backend/api/http/presenter"
	"github.com/resumeforge/backend/pkg/enhance"
)

type EnhanceHandler struct {
	svc       enhance.UseCase
	modelName string
}

func NewEnhanceHandler(svc enhance.UseCase, modelName string) *EnhanceHandler {
	return &EnhanceHandler{svc: svc, modelName: modelName}
}

type enhanceRequest struct {
	Section string `json:"section"`
	Text    string `json:"text"`
	Style   string `json:"style"`
}

// Enhance rewrites a resume section through the language model.
// @Summary Enhance section text
// @Tags    enhance
// @Accept  json
// @Produce json
// @Param   input body enhanceRequest true "section text and style"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /enhance [post]
func (h *EnhanceHandler) Enhance(c *fiber.Ctx) error {
	var req enhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Text) == "" {
		return presenter.Error(c, http.StatusBadRequest, "text is required")
	}
	result, err := h.svc.Enhance(c.Context(), req.Section, req.Text, enhance.Style(req.Style))
	if err != nil {
		return presenter.Error(c, http.StatusBadGateway, "enhancement failed")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"model":     h.modelName,
		"text":      result.Text,
		"charsUsed": result.CharsUsed,
		"excerpted": result.Excerpted,
	})
}
