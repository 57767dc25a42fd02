package controller

import (
	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GetSessionMessages(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/session", c.CreateSession)
	h.Post("/message", c.SendMessage)
	h.Get("/session/:sessionId", c.GetSessionMessages)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSessionMessages(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.chatService.GetSessionMessages(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
