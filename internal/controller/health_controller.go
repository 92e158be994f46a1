package controller

import (
	"context"
	"time"

	"roofing-site-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

type HealthController struct {
	database Pinger
}

func NewHealthController(database Pinger) *HealthController {
	return &HealthController{database: database}
}

func (c *HealthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *HealthController) Health(ctx *fiber.Ctx) error {
	status := map[string]string{"status": "ok", "database": "ok"}
	if c.database != nil {
		pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()
		if err := c.database(pingCtx); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.BaseResponse[map[string]string]{
				Success: false,
				Code:    fiber.StatusServiceUnavailable,
				Message: "Service degraded",
				Data:    status,
			})
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Service healthy", status))
}
