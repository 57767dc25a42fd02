package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/pkg/serverutils"
	"hotel-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdminService struct {
	uploads []string
}

var _ service.IAdminService = (*stubAdminService)(nil)

func (s *stubAdminService) UploadPdf(ctx context.Context, filename, filePath string) (*dto.UploadPdfResponse, error) {
	s.uploads = append(s.uploads, filename)
	return &dto.UploadPdfResponse{Success: true, Message: "PDF uploaded successfully", Filename: filename, PageCount: 1}, nil
}

func (s *stubAdminService) GetPdfInfo(ctx context.Context) (*dto.PdfInfoResponse, error) {
	return &dto.PdfInfoResponse{}, nil
}

func (s *stubAdminService) GetPdfContent(ctx context.Context) (*dto.PdfContentResponse, error) {
	return &dto.PdfContentResponse{}, nil
}

func (s *stubAdminService) GetStats(ctx context.Context) *dto.ChatStats {
	return dto.EmptyChatStats()
}

func (s *stubAdminService) GetPopularQuestions(ctx context.Context, limit int) (*dto.PopularQuestionsResponse, error) {
	return &dto.PopularQuestionsResponse{}, nil
}

func (s *stubAdminService) GetDailyStats(ctx context.Context, days int) (*dto.DailyStatsResponse, error) {
	return &dto.DailyStatsResponse{}, nil
}

func (s *stubAdminService) ListContacts(ctx context.Context, limit, offset int) (*dto.ListContactsResponse, error) {
	return &dto.ListContactsResponse{}, nil
}

func (s *stubAdminService) DeleteContact(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	return &dto.DeleteResponse{Success: true}, nil
}

func (s *stubAdminService) BulkDeleteContacts(ctx context.Context, req *dto.BulkDeleteContactsRequest) (*dto.DeleteResponse, error) {
	return &dto.DeleteResponse{Success: true}, nil
}

func (s *stubAdminService) ListSessions(ctx context.Context, limit, offset int) (*dto.ListSessionsResponse, error) {
	return &dto.ListSessionsResponse{}, nil
}

func (s *stubAdminService) GetSessionDetail(ctx context.Context, sessionId string) (*dto.SessionDetailResponse, error) {
	return &dto.SessionDetailResponse{}, nil
}

func (s *stubAdminService) DeleteSession(ctx context.Context, sessionId string) (*dto.DeleteResponse, error) {
	return &dto.DeleteResponse{Success: true}, nil
}

func (s *stubAdminService) BulkDeleteSessions(ctx context.Context, req *dto.BulkDeleteSessionsRequest) (*dto.DeleteResponse, error) {
	return &dto.DeleteResponse{Success: true}, nil
}

func (s *stubAdminService) ExportSessionsCSV(ctx context.Context) (string, error) {
	return "", nil
}

func (s *stubAdminService) ExportContactsCSV(ctx context.Context) (string, error) {
	return "", nil
}

func (s *stubAdminService) ExportMessagesCSV(ctx context.Context) (string, error) {
	return "", nil
}

// newUploadTestApp mirrors the server wiring that matters for uploads: the
// body limit sits above the PDF cap so the handler owns the size error.
func newUploadTestApp(t *testing.T, svc service.IAdminService) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{BodyLimit: 12 * 1024 * 1024})
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	NewAdminController(svc, t.TempDir()).RegisterRoutes(api)
	return app
}

// newPdfUploadRequest builds a multipart body with a single "pdf" part of
// the given size and part content type. Returns the body and the request
// Content-Type header value.
func newPdfUploadRequest(t *testing.T, size int, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="pdf"; filename="hotel.pdf"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadPdfOversizedReturns400Json(t *testing.T) {
	svc := &stubAdminService{}
	app := newUploadTestApp(t, svc)

	body, contentType := newPdfUploadRequest(t, maxPdfSize+1024, "application/pdf")
	req := httptest.NewRequest("POST", "/api/admin/upload-pdf", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, 400, res.StatusCode)

	var payload map[string]string
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "PDF file exceeds the 10MB limit", payload["error"])

	assert.Empty(t, svc.uploads, "oversized upload must not reach the service")
}

func TestUploadPdfRejectsNonPdfContentType(t *testing.T) {
	svc := &stubAdminService{}
	app := newUploadTestApp(t, svc)

	body, contentType := newPdfUploadRequest(t, 128, "text/plain")
	req := httptest.NewRequest("POST", "/api/admin/upload-pdf", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, 400, res.StatusCode)
	assert.Empty(t, svc.uploads)
}

func TestUploadPdfAcceptsFileUnderCap(t *testing.T) {
	svc := &stubAdminService{}
	app := newUploadTestApp(t, svc)

	body, contentType := newPdfUploadRequest(t, 2048, "application/pdf")
	req := httptest.NewRequest("POST", "/api/admin/upload-pdf", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, 200, res.StatusCode)
	require.Len(t, svc.uploads, 1)
	assert.Equal(t, "hotel.pdf", svc.uploads[0])
}
