// FILE: internal/controller/chat_controller.go
package controller

import (
	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)

	// Widget
	StartConversation(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
	UpdateContactDetails(ctx *fiber.Ctx) error

	// Admin
	ListConversations(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	SetContacted(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatController struct {
	service   service.IChatService
	jwtSecret string
	limiter   fiber.Handler
}

func NewChatController(service service.IChatService, jwtSecret string, limiter fiber.Handler) IChatController {
	return &chatController{
		service:   service,
		jwtSecret: jwtSecret,
		limiter:   orPassthrough(limiter),
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	w := r.Group("/chat/threads")
	w.Post("/", c.limiter, c.StartConversation)
	w.Post("/:threadId/messages", c.limiter, c.SendMessage)
	w.Get("/:threadId/messages", c.Transcript)
	w.Put("/:threadId/contact", c.UpdateContactDetails)

	h := r.Group("/admin/conversations", serverutils.JwtMiddleware(c.jwtSecret), serverutils.AdminOnly)
	h.Get("/", c.ListConversations)
	h.Get("/:id", c.GetConversation)
	h.Get("/:id/messages", c.GetMessages)
	h.Put("/:id/contacted", c.SetContacted)
	h.Delete("/:id", c.Delete)
}

func (c *chatController) StartConversation(ctx *fiber.Ctx) error {
	res, err := c.service.StartConversation(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Conversation started", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.UserContext(), ctx.Params("threadId"), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatController) Transcript(ctx *fiber.Ctx) error {
	res, err := c.service.Transcript(ctx.UserContext(), ctx.Params("threadId"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation transcript", res))
}

func (c *chatController) UpdateContactDetails(ctx *fiber.Ctx) error {
	var req dto.UpdateChatContactRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateContactDetails(ctx.UserContext(), ctx.Params("threadId"), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact details saved", res))
}

func (c *chatController) ListConversations(ctx *fiber.Ctx) error {
	var req dto.ListConversationsRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ListConversations(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversations", res))
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetConversation(ctx.UserContext(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation detail", res))
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetConversation(ctx.UserContext(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation messages", res.Messages))
}

func (c *chatController) SetContacted(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Conversation status updated", nil))
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), currentUser(ctx), id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Conversation deleted", nil))
}
