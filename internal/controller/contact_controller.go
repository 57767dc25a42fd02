package controller

import (
	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	SubmitContact(ctx *fiber.Ctx) error
}

type contactController struct {
	contactService service.IContactService
}

func NewContactController(contactService service.IContactService) IContactController {
	return &contactController{
		contactService: contactService,
	}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.SubmitContact)
}

func (c *contactController) SubmitContact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.contactService.SubmitContact(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
