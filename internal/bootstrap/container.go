package bootstrap

import (
	"context"
	"log"

	"viwahaa-be/internal/config"
	"viwahaa-be/internal/controller"
	"viwahaa-be/internal/handler"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/pkg/mailer"
	"viwahaa-be/internal/repository/implementation"
	"viwahaa-be/internal/repository/memory"
	"viwahaa-be/internal/repository/unitofwork"
	"viwahaa-be/internal/service"
	"viwahaa-be/internal/websocket"

	"viwahaa-be/pkg/events"
	pktNats "viwahaa-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	OAuthController    controller.IOAuthController
	ProfileController  controller.IProfileController
	MessageController  controller.IMessageController
	BookingController  controller.IBookingController
	InterestController controller.IInterestController
	AdminController    controller.IAdminController

	// WebSockets
	ChatHandler *handler.ChatHandler
	ChatHub     *websocket.Hub

	// Background workers started by main
	NotificationConsumer *service.NotificationConsumer

	// Shared infrastructure, exposed for shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// In-process event bus for interest notifications.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// NATS audit bus. The app runs fine without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
		natsPub = nil
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
		natsSub = nil
	}
	var auditBus events.Publisher
	if natsPub != nil {
		auditBus = natsPub
	}

	// Redis backs the hub's cross-instance relay.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Running single-instance", err)
		rdb = nil
	}

	// Chat hub with its own file logger so socket chatter stays out of the
	// main log.
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	presence := memory.NewPresenceRegistry()
	chatHub := websocket.NewHub(
		presence,
		implementation.NewMessageRepository(db),
		implementation.NewProfileRepository(db),
		rdb,
		chatLogger,
	)
	go chatHub.Run()

	// Services
	authService := service.NewAuthService(uowFactory, emailService, auditBus, cfg.App.JWTSecret, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, cfg.App.JWTSecret, cfg.OAuth, auditBus, sysLogger)
	profileService := service.NewProfileService(uowFactory)
	matchService := service.NewMatchService(uowFactory, sysLogger)
	chatService := service.NewChatService(uowFactory, presence)
	bookingService := service.NewBookingService(uowFactory, auditBus, sysLogger)
	interestService := service.NewInterestService(uowFactory, pubSub, cfg.App.InterestTopic, auditBus, sysLogger)
	adminService := service.NewAdminService(uowFactory, auditBus, sysLogger)

	// Durable audit sink: admin actions land in the system log.
	if natsSub != nil {
		go service.NewAuditTrail(natsSub, sysLogger).Start()
	}

	notificationConsumer := service.NewNotificationConsumer(pubSub, cfg.App.InterestTopic, emailService, cfg.SMTP.Email, sysLogger)

	chatHandler := handler.NewChatHandler(chatHub, cfg.App.JWTSecret, chatLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		OAuthController:    controller.NewOAuthController(oauthService),
		ProfileController:  controller.NewProfileController(profileService, matchService, cfg.App.JWTSecret),
		MessageController:  controller.NewMessageController(chatService, cfg.App.JWTSecret),
		BookingController:  controller.NewBookingController(bookingService, cfg.App.JWTSecret),
		InterestController: controller.NewInterestController(interestService, cfg.App.JWTSecret),
		AdminController:    controller.NewAdminController(adminService, profileService, cfg.App.JWTSecret),

		ChatHandler: chatHandler,
		ChatHub:     chatHub,

		NotificationConsumer: notificationConsumer,

		Logger: sysLogger,
	}
}
