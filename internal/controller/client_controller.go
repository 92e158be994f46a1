// FILE: internal/controller/client_controller.go
package controller

import (
	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IClientController serves the signed-in homeowner's dashboard.
type IClientController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ListContacts(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
}

type clientController struct {
	profiles  service.IProfileService
	contacts  service.IContactService
	chats     service.IChatService
	jwtSecret string
}

func NewClientController(
	profiles service.IProfileService,
	contacts service.IContactService,
	chats service.IChatService,
	jwtSecret string,
) IClientController {
	return &clientController{
		profiles:  profiles,
		contacts:  contacts,
		chats:     chats,
		jwtSecret: jwtSecret,
	}
}

func (c *clientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/client", serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("/profile", c.GetProfile)
	h.Put("/profile", c.UpdateProfile)
	h.Get("/contacts", c.ListContacts)
	h.Get("/conversations", c.ListConversations)
}

func (c *clientController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.profiles.GetProfile(ctx.UserContext(), currentUser(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *clientController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.profiles.UpdateProfile(ctx.UserContext(), currentUser(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

// Submissions and chats are matched to the account through its email.
func (c *clientController) ListContacts(ctx *fiber.Ctx) error {
	profile, err := c.profiles.GetProfile(ctx.UserContext(), currentUser(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	res, err := c.contacts.ListForEmail(ctx.UserContext(), profile.Email)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Your contact requests", res))
}

func (c *clientController) ListConversations(ctx *fiber.Ctx) error {
	profile, err := c.profiles.GetProfile(ctx.UserContext(), currentUser(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	res, err := c.chats.ListForEmail(ctx.UserContext(), profile.Email)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Your conversations", res))
}
