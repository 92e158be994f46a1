package controller

import (
	"errors"

	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps service sentinel errors onto HTTP status codes.
func respondError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		code = fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		code = fiber.StatusForbidden
	case errors.Is(err, service.ErrAssistantUnavailable):
		code = fiber.StatusBadGateway
	}
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}

func parseID(ctx *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(param))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+param)
	}
	return id, nil
}

// bindBody parses and validates a JSON body into req.
func bindBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return serverutils.ValidateRequest(req)
}

func bindQuery(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.QueryParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	return serverutils.ValidateRequest(req)
}

// currentUser reads the authenticated id; the guard middleware guarantees it is set.
func currentUser(ctx *fiber.Ctx) uuid.UUID {
	id, _ := serverutils.CurrentUserID(ctx)
	return id
}

func passthrough(ctx *fiber.Ctx) error { return ctx.Next() }

func orPassthrough(h fiber.Handler) fiber.Handler {
	if h == nil {
		return passthrough
	}
	return h
}
