package handler

import (
	"errors"

	"job-matcher/internal/delivery/http/dto"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/pkg/response"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	extraction usecase.SkillExtractionUsecase
	gap        usecase.SkillRecommendationUsecase
}

func NewSkillHandler(extraction usecase.SkillExtractionUsecase, gap usecase.SkillRecommendationUsecase) *SkillHandler {
	return &SkillHandler{extraction: extraction, gap: gap}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Post("/extract", h.Extract)
	grp.Post("/recommendations", h.Recommend)
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req dto.ExtractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	skills, err := h.extraction.ExtractSkills(c.Context(), req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Missing resume text", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ExtractSkillsResponse{Skills: skills})
}

func (h *SkillHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	skills, err := h.gap.RecommendSkills(c.Context(), req.Skills, req.Count())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Missing skills", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommendSkillsResponse{RecommendedSkills: skills})
}
