package v1

import (
	"job-matcher/internal/delivery/http/handler"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers collects everything mounted under /api/v1. Corpus and WS are
// optional; nil entries simply leave their routes unregistered.
type Handlers struct {
	Skill         *handler.SkillHandler
	Job           *handler.JobHandler
	Certification *handler.CertificationHandler
	Corpus        *handler.CorpusHandler
	WS            *ws.Handler
	Auth          *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Skill != nil {
		h.Skill.RegisterRoutes(r)
	}
	if h.Job != nil {
		h.Job.RegisterRoutes(r)
	}
	if h.Certification != nil {
		h.Certification.RegisterRoutes(r)
	}

	if h.Corpus != nil {
		grp := r
		if h.Auth != nil {
			grp = r.Group("", h.Auth.Middleware())
		}
		h.Corpus.RegisterRoutes(grp)
	}

	if h.WS != nil {
		r.Get("/ws/corpus", h.WS.HandleCorpusWS)
	}
}
