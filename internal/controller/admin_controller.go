// FILE: internal/controller/admin_controller.go
package controller

import (
	"errors"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboardStats(ctx *fiber.Ctx) error

	// Users
	GetAllUsers(ctx *fiber.Ctx) error
	GetUserDetail(ctx *fiber.Ctx) error
	UpdateUserRole(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error

	// Logs
	GetAdminLogs(ctx *fiber.Ctx) error
	GetSystemLogs(ctx *fiber.Ctx) error
	GetSystemLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service   service.IAdminService
	jwtSecret string
}

func NewAdminController(service service.IAdminService, jwtSecret string) IAdminController {
	return &adminController{
		service:   service,
		jwtSecret: jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	guard := []fiber.Handler{serverutils.JwtMiddleware(c.jwtSecret), serverutils.AdminOnly}

	r.Get("/admin/dashboard", append(guard, c.GetDashboardStats)...)

	users := r.Group("/admin/users", guard...)
	users.Get("/", c.GetAllUsers)
	users.Get("/:id", c.GetUserDetail)
	users.Put("/:id/role", c.UpdateUserRole)
	users.Delete("/:id", c.DeleteUser)

	r.Get("/admin/logs", append(guard, c.GetAdminLogs)...)

	sys := r.Group("/admin/system-logs", guard...)
	sys.Get("/", c.GetSystemLogs)
	sys.Get("/:id", c.GetSystemLogDetail)
}

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	stats, err := c.service.DashboardStats(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", stats))
}

func (c *adminController) GetAllUsers(ctx *fiber.Ctx) error {
	var req dto.ListUsersRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	users, err := c.service.ListUsers(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User list", users))
}

func (c *adminController) GetUserDetail(ctx *fiber.Ctx) error {
	userId, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	user, err := c.service.GetUser(ctx.UserContext(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User detail", user))
}

func (c *adminController) UpdateUserRole(ctx *fiber.Ctx) error {
	userId, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateRoleRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	user, err := c.service.UpdateRole(ctx.UserContext(), currentUser(ctx), userId, req.Role)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User role updated", user))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	userId, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	steps, err := c.service.DeleteUser(ctx.UserContext(), currentUser(ctx), userId)
	if err != nil {
		var stepErr *service.StepError
		if errors.As(err, &stepErr) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(dto.DeleteUserResponse{
				Success: false,
				Message: "User deletion failed",
				UserId:  userId.String(),
				Steps:   steps,
				Error:   stepErr.Err.Error(),
				Step:    stepErr.Step,
			})
		}
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User deleted", steps))
}

func (c *adminController) GetAdminLogs(ctx *fiber.Ctx) error {
	var req dto.ListAdminLogsRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	logs, err := c.service.ListAdminLogs(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin logs", logs))
}

func (c *adminController) GetSystemLogs(ctx *fiber.Ctx) error {
	var req dto.ListSystemLogsRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	logs, err := c.service.SystemLogs(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *adminController) GetSystemLogDetail(ctx *fiber.Ctx) error {
	entry, err := c.service.SystemLogDetail(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", entry))
}
