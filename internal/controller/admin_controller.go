package controller

import (
	"os"
	"path/filepath"
	"strconv"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/pkg/serverutils"
	"hotel-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxPdfSize = 10 * 1024 * 1024

// storedPdfName keeps the knowledge base at a fixed path on disk so a new
// upload overwrites the previous file.
const storedPdfName = "hotel-info.pdf"

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	UploadPdf(ctx *fiber.Ctx) error
	GetPdfInfo(ctx *fiber.Ctx) error
	GetPdfContent(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	GetPopularQuestions(ctx *fiber.Ctx) error
	GetDailyStats(ctx *fiber.Ctx) error
	ListContacts(ctx *fiber.Ctx) error
	DeleteContact(ctx *fiber.Ctx) error
	BulkDeleteContacts(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	GetSessionDetail(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	BulkDeleteSessions(ctx *fiber.Ctx) error
	ExportSessions(ctx *fiber.Ctx) error
	ExportContacts(ctx *fiber.Ctx) error
	ExportMessages(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
	uploadDir    string
}

func NewAdminController(adminService service.IAdminService, uploadDir string) IAdminController {
	return &adminController{
		adminService: adminService,
		uploadDir:    uploadDir,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	h.Post("/upload-pdf", c.UploadPdf)
	h.Get("/pdf-info", c.GetPdfInfo)
	h.Get("/pdf-content", c.GetPdfContent)

	h.Get("/stats", c.GetStats)
	h.Get("/popular-questions", c.GetPopularQuestions)
	h.Get("/daily-stats", c.GetDailyStats)

	h.Get("/contacts", c.ListContacts)
	h.Delete("/contacts/:id", c.DeleteContact)
	h.Delete("/contacts", c.BulkDeleteContacts)

	h.Get("/sessions", c.ListSessions)
	h.Get("/sessions/:sessionId", c.GetSessionDetail)
	h.Delete("/sessions/:sessionId", c.DeleteSession)
	h.Delete("/sessions", c.BulkDeleteSessions)

	h.Get("/export/sessions", c.ExportSessions)
	h.Get("/export/contacts", c.ExportContacts)
	h.Get("/export/messages", c.ExportMessages)
}

func (c *adminController) UploadPdf(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("pdf")
	if err != nil {
		return serverutils.BadRequest("No PDF file uploaded")
	}
	if fileHeader.Size > maxPdfSize {
		return serverutils.BadRequest("PDF file exceeds the 10MB limit")
	}
	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		return serverutils.BadRequest("Only PDF files are allowed")
	}

	if err := os.MkdirAll(c.uploadDir, 0o755); err != nil {
		return err
	}
	filePath := filepath.Join(c.uploadDir, storedPdfName)
	if err := ctx.SaveFile(fileHeader, filePath); err != nil {
		return err
	}

	res, err := c.adminService.UploadPdf(ctx.Context(), fileHeader.Filename, filePath)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) GetPdfInfo(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetPdfInfo(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) GetPdfContent(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetPdfContent(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) GetStats(ctx *fiber.Ctx) error {
	return ctx.JSON(c.adminService.GetStats(ctx.Context()))
}

func (c *adminController) GetPopularQuestions(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

	res, err := c.adminService.GetPopularQuestions(ctx.Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) GetDailyStats(ctx *fiber.Ctx) error {
	days, _ := strconv.Atoi(ctx.Query("days", "30"))

	res, err := c.adminService.GetDailyStats(ctx.Context(), days)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) ListContacts(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.adminService.ListContacts(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) DeleteContact(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return serverutils.BadRequest("Invalid contact id")
	}

	res, err := c.adminService.DeleteContact(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) BulkDeleteContacts(ctx *fiber.Ctx) error {
	var req dto.BulkDeleteContactsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.adminService.BulkDeleteContacts(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) ListSessions(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.adminService.ListSessions(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) GetSessionDetail(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetSessionDetail(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) DeleteSession(ctx *fiber.Ctx) error {
	res, err := c.adminService.DeleteSession(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) BulkDeleteSessions(ctx *fiber.Ctx) error {
	var req dto.BulkDeleteSessionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.adminService.BulkDeleteSessions(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *adminController) ExportSessions(ctx *fiber.Ctx) error {
	csv, err := c.adminService.ExportSessionsCSV(ctx.Context())
	if err != nil {
		return err
	}
	return sendCSV(ctx, "sessions.csv", csv)
}

func (c *adminController) ExportContacts(ctx *fiber.Ctx) error {
	csv, err := c.adminService.ExportContactsCSV(ctx.Context())
	if err != nil {
		return err
	}
	return sendCSV(ctx, "contacts.csv", csv)
}

func (c *adminController) ExportMessages(ctx *fiber.Ctx) error {
	csv, err := c.adminService.ExportMessagesCSV(ctx.Context())
	if err != nil {
		return err
	}
	return sendCSV(ctx, "messages.csv", csv)
}

func sendCSV(ctx *fiber.Ctx, filename, body string) error {
	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return ctx.SendString(body)
}
