package handler

import (
	"errors"

	"job-matcher/internal/delivery/http/dto"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/pkg/response"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CertificationHandler struct {
	uc usecase.CertificationUsecase
}

func NewCertificationHandler(uc usecase.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

func (h *CertificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/certifications", h.Find)
}

func (h *CertificationHandler) Find(c fiber.Ctx) error {
	specialization := c.Query("specialization")

	courses, err := h.uc.FindCertifications(c.Context(), specialization)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Missing specialization", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CertificationResponsesFrom(courses))
}
