// FILE: internal/controller/auth_controller.go
package controller

import (
	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	LoginAdmin(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	limiter fiber.Handler
}

func NewAuthController(service service.IAuthService, limiter fiber.Handler) IAuthController {
	return &authController{service: service, limiter: orPassthrough(limiter)}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.limiter, c.Register)
	h.Post("/login", c.limiter, c.Login)

	r.Post("/admin/login", c.limiter, c.LoginAdmin)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Registration successful", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) LoginAdmin(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.LoginAdmin(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin login successful", res))
}
