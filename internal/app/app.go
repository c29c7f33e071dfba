package app

import (
	"fmt"
	"strings"

	"job-matcher/internal/delivery/http/handler"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/delivery/http/routes"
	v1 "job-matcher/internal/delivery/http/routes/v1"
	"job-matcher/internal/pkg/jwt"
	"job-matcher/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{AppName: container.Config.App.AppName})

	errMw := middleware.NewErrorMiddleware(container.Logger)
	accessMw := middleware.NewAccessLogMiddleware(container.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	var authMw *middleware.AuthMiddleware
	if container.Config.Auth.AccessSecret != "" {
		authMw = middleware.NewAuthMiddleware(jwt.NewHMACService(container.Config.Auth.AccessSecret))
	}

	registry := routes.NewRegistry(v1.Handlers{
		Skill:         handler.NewSkillHandler(container.SkillExtraction, container.SkillRecommendation),
		Job:           handler.NewJobHandler(container.JobRecommendation, container.JobLinks, container.JobSearch),
		Certification: handler.NewCertificationHandler(container.Certification),
		Corpus:        handler.NewCorpusHandler(container.Ingest, container.Logger),
		WS:            ws.NewHandler(container.Hub, container.Logger),
		Auth:          authMw,
	})
	registry.Register(f)

	return &App{Fiber: f, Container: container}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
