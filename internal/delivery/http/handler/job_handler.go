package handler

import (
	"errors"

	"job-matcher/internal/delivery/http/dto"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/pkg/response"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	recommendation usecase.JobRecommendationUsecase
	links          usecase.JobLinksUsecase
	search         usecase.JobSearchUsecase
}

func NewJobHandler(recommendation usecase.JobRecommendationUsecase, links usecase.JobLinksUsecase, search usecase.JobSearchUsecase) *JobHandler {
	return &JobHandler{recommendation: recommendation, links: links, search: search}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Post("/recommendations", h.Recommend)
	grp.Post("/links", h.Links)
	grp.Post("/search", h.Search)
}

func (h *JobHandler) Recommend(c fiber.Ctx) error {
	var req dto.JobRecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	ranked, err := h.recommendation.RecommendJobs(c.Context(), req.Skills)
	if err != nil {
		return mapUsecaseError(err, "Missing skills")
	}

	out := make([]dto.JobListingResponse, 0, len(ranked))
	for _, l := range ranked {
		out = append(out, dto.JobListingResponseFrom(l))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) Links(c fiber.Ctx) error {
	var req dto.JobLinksRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Jobs must be a list of ids", nil, err)
	}

	links, err := h.links.Links(c.Context(), req.Jobs)
	if err != nil {
		return mapUsecaseError(err, "Missing job ids")
	}

	out := make([]dto.JobLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, dto.JobLinkResponse{JobProvider: l.JobProvider, URL: l.URL})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) Search(c fiber.Ctx) error {
	var req dto.JobSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	results, err := h.search.Search(c.Context(), req.Skills, req.Location, req.Page)
	if err != nil {
		return mapUsecaseError(err, "Missing skills")
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobSearchResponse{Results: results})
}

func mapUsecaseError(err error, invalidMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, invalidMsg, nil, err)
	case errors.Is(err, usecase.ErrUpstream):
		return middleware.NewAppError(fiber.StatusBadGateway, response.MessageBadGateway, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
