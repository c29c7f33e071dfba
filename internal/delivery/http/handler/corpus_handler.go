package handler

import (
	"context"
	"log"
	"time"

	"job-matcher/internal/delivery/http/dto"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/ingest"
	"job-matcher/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const refreshTimeout = 10 * time.Minute

type CorpusHandler struct {
	ingest *ingest.Service
	logger *log.Logger
}

func NewCorpusHandler(svc *ingest.Service, logger *log.Logger) *CorpusHandler {
	return &CorpusHandler{ingest: svc, logger: logger}
}

func (h *CorpusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/corpus/refresh", h.Refresh)
}

// Refresh kicks off an asynchronous corpus rebuild and answers immediately.
// Progress is reported over the corpus websocket, not this response.
func (h *CorpusHandler) Refresh(c fiber.Ctx) error {
	if h.ingest == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Corpus refresh not configured", nil, nil)
	}

	var req dto.CorpusRefreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	go func(query, location string) {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if _, err := h.ingest.Refresh(ctx, query, location); err != nil && h.logger != nil {
			h.logger.Printf("[Corpus] refresh failed | query=%q error=%v", query, err)
		}
	}(req.Query, req.Location)

	return response.Success(c, fiber.StatusAccepted, "Refresh started", dto.CorpusRefreshResponse{
		Status: "accepted",
		Query:  req.Query,
	})
}
