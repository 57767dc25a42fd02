package bootstrap

import (
	"hotel-chatbot-be/internal/config"
	"hotel-chatbot-be/internal/controller"
	"hotel-chatbot-be/internal/handler"
	"hotel-chatbot-be/internal/pkg/logger"
	"hotel-chatbot-be/internal/pkg/mailer"
	"hotel-chatbot-be/internal/repository/unitofwork"
	"hotel-chatbot-be/internal/service"
	"hotel-chatbot-be/internal/websocket"
	"hotel-chatbot-be/pkg/answer/n8n"
	"hotel-chatbot-be/pkg/dashboard"
	"hotel-chatbot-be/pkg/pdfextract"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	ContactController controller.IContactController
	AdminController   controller.IAdminController

	// WebSockets
	DashboardHandler *handler.DashboardHandler
	WebSocketHub     *websocket.Hub

	// Background services (exposed for main.go to run)
	StatsBroadcasterService service.IStatsBroadcasterService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.ContactEmail,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// WebSocket hub
	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	// Domain components
	answerProvider := n8n.NewN8nProvider(cfg.Answer.WebhookURL, sysLogger)
	aggregator := dashboard.NewAggregator(sysLogger)
	extractor := pdfextract.NewTextExtractor()

	// Services
	statsPublisherService := service.NewStatsPublisherService(cfg.App.StatsTopic, pubSub)
	statsBroadcasterService := service.NewStatsBroadcasterService(pubSub, cfg.App.StatsTopic, wsHub, sysLogger)
	chatService := service.NewChatService(uowFactory, answerProvider, aggregator, statsPublisherService, sysLogger)
	contactService := service.NewContactService(uowFactory, emailService, sysLogger)
	adminService := service.NewAdminService(uowFactory, extractor, aggregator, sysLogger)

	return &Container{
		ChatController:    controller.NewChatController(chatService),
		ContactController: controller.NewContactController(contactService),
		AdminController:   controller.NewAdminController(adminService, cfg.Upload.Dir),

		DashboardHandler: handler.NewDashboardHandler(wsHub, sysLogger),
		WebSocketHub:     wsHub,

		StatsBroadcasterService: statsBroadcasterService,

		Logger: sysLogger,
	}
}
