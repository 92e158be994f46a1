// FILE: internal/controller/function_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IFunctionController exposes the housekeeping endpoints that used to run as
// standalone functions. They answer with flat {success, message} bodies.
type IFunctionController interface {
	RegisterRoutes(r fiber.Router)
	DeleteUser(ctx *fiber.Ctx) error
	PatchSchema(ctx *fiber.Ctx) error
}

type functionController struct {
	account   service.IAccountService
	schema    service.ISchemaService
	jwtSecret string
}

func NewFunctionController(account service.IAccountService, schema service.ISchemaService, jwtSecret string) IFunctionController {
	return &functionController{
		account:   account,
		schema:    schema,
		jwtSecret: jwtSecret,
	}
}

func (c *functionController) RegisterRoutes(r fiber.Router) {
	jwt := serverutils.JwtMiddleware(c.jwtSecret)

	// method is checked before auth so any other verb gets 405
	r.All("/functions/delete-user", allowMethod(fiber.MethodDelete), jwt, serverutils.AdminOnly, c.DeleteUser)
	r.All("/functions/patch-schema", allowMethod(fiber.MethodPost), jwt, serverutils.AdminOnly, c.PatchSchema)
}

func allowMethod(method string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Method() != method {
			ctx.Set(fiber.HeaderAllow, method)
			return ctx.Status(fiber.StatusMethodNotAllowed).JSON(dto.DeleteUserResponse{
				Success: false,
				Message: "Method not allowed",
				Error:   "use " + method,
			})
		}
		return ctx.Next()
	}
}

// userIdFrom reads userId or user_id from the query string, then from a JSON body.
func userIdFrom(ctx *fiber.Ctx) (string, error) {
	for _, key := range []string{"userId", "user_id"} {
		if v := strings.TrimSpace(ctx.Query(key)); v != "" {
			return v, nil
		}
	}

	body := ctx.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", nil
	}
	var req dto.DeleteUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", err
	}
	if req.UserId != "" {
		return strings.TrimSpace(req.UserId), nil
	}
	return strings.TrimSpace(req.UserIdSnake), nil
}

func (c *functionController) DeleteUser(ctx *fiber.Ctx) error {
	raw, err := userIdFrom(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.DeleteUserResponse{
			Success: false,
			Message: "Invalid JSON body",
			Error:   err.Error(),
		})
	}
	if raw == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.DeleteUserResponse{
			Success: false,
			Message: "userId is required",
		})
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.DeleteUserResponse{
			Success: false,
			Message: "userId must be a valid UUID",
			UserId:  raw,
		})
	}

	steps, err := c.account.DeleteUser(ctx.UserContext(), userId, currentUser(ctx))
	if err != nil {
		res := dto.DeleteUserResponse{
			Success: false,
			Message: "Failed to delete user",
			UserId:  userId.String(),
			Steps:   steps,
			Error:   err.Error(),
		}
		var stepErr *service.StepError
		if errors.As(err, &stepErr) {
			res.Step = stepErr.Step
			res.Error = stepErr.Err.Error()
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(res)
	}

	return ctx.JSON(dto.DeleteUserResponse{
		Success: true,
		Message: "User deleted successfully",
		UserId:  userId.String(),
		Steps:   steps,
	})
}

func (c *functionController) PatchSchema(ctx *fiber.Ctx) error {
	added, err := c.schema.Patch(ctx.UserContext(), currentUser(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.PatchSchemaResponse{
			Success: false,
			Message: "Schema patch failed",
			Error:   err.Error(),
		})
	}

	message := "Schema already up to date"
	if len(added) > 0 {
		message = "Schema patched successfully"
	}
	return ctx.JSON(dto.PatchSchemaResponse{
		Success: true,
		Message: message,
		Added:   added,
	})
}
