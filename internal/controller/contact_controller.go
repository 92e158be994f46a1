// FILE: internal/controller/contact_controller.go
package controller

import (
	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	SetContacted(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type contactController struct {
	service   service.IContactService
	jwtSecret string
	limiter   fiber.Handler
}

// NewContactController takes the limiter guarding the public form.
func NewContactController(service service.IContactService, jwtSecret string, limiter fiber.Handler) IContactController {
	return &contactController{
		service:   service,
		jwtSecret: jwtSecret,
		limiter:   orPassthrough(limiter),
	}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.limiter, c.Submit)

	h := r.Group("/admin/contacts", serverutils.JwtMiddleware(c.jwtSecret), serverutils.AdminOnly)
	h.Get("/", c.List)
	h.Put("/:id/contacted", c.SetContacted)
	h.Delete("/:id", c.Delete)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Thanks! We will be in touch shortly.", res))
}

func (c *contactController) List(ctx *fiber.Ctx) error {
	var req dto.ListContactsRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact submissions", res))
}

func (c *contactController) SetContacted(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.SetContactedRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.SetContacted(ctx.UserContext(), currentUser(ctx), id, *req.Contacted); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Contact status updated", nil))
}

func (c *contactController) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), currentUser(ctx), id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Contact deleted", nil))
}
