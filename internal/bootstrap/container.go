package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"roofing-site-be/internal/config"
	"roofing-site-be/internal/controller"
	"roofing-site-be/internal/events"
	"roofing-site-be/internal/handler"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/pkg/mailer"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/repository/memory"
	"roofing-site-be/internal/repository/rediscache"
	"roofing-site-be/internal/repository/unitofwork"
	"roofing-site-be/internal/service"
	"roofing-site-be/internal/websocket"
	"roofing-site-be/pkg/chatbot"
	"roofing-site-be/pkg/llm/factory"
	pktNats "roofing-site-be/pkg/nats"
	"roofing-site-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController   *controller.HealthController
	AuthController     controller.IAuthController
	ContactController  controller.IContactController
	ChatController     controller.IChatController
	ClientController   controller.IClientController
	AdminController    controller.IAdminController
	FunctionController controller.IFunctionController

	// WebSockets
	LiveFeedHandler *handler.LiveFeedHandler
	WebSocketHub    *websocket.Hub

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger

	// 2. Event Bus (admin log pipeline)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	auditRecorder := service.NewAuditRecorder(pubSub, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, service.AuditTopic, uowFactory, sysLogger)

	// 3. Infrastructure
	// NATS is optional; without it domain events are dropped.
	var sink events.Sink
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sink = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}
	domainEvents := events.NewNatsPublisher(sink, sysLogger)

	// Redis backs the limiter, the thread cache and live-feed fan-out when configured.
	rdb := connectRedis(ctx, cfg.App.RedisURL)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	var threads store.ThreadCache
	if cfg.Cache.Driver == "redis" && rdb != nil {
		threads = rediscache.NewThreadCache(rdb, cfg.Cache.ThreadTTL, sysLogger)
		log.Printf("[INFO] Using thread cache: REDIS")
	} else {
		threads = memory.NewThreadCache(cfg.Cache.ThreadTTL)
		log.Printf("[INFO] Using thread cache: MEMORY")
	}

	feedLogger := logger.NewIsolatedLogger(liveFeedLogPath(cfg.App.LogFilePath))
	c.WebSocketHub = websocket.NewHub(rdb, feedLogger)

	emailService := newContactMailer(cfg)

	assistant, err := factory.NewAssistant(ctx, factory.Options{
		Provider:     cfg.Assistant.Provider,
		BaseURL:      cfg.Assistant.BaseURL,
		APIKey:       cfg.Assistant.APIKey,
		AssistantID:  cfg.Assistant.AssistantID,
		Model:        cfg.Assistant.Model,
		SystemPrompt: cfg.Assistant.SystemPrompt,
		PollInterval: cfg.Assistant.PollInterval,
		Timeout:      cfg.Assistant.Timeout,
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("initialize assistant: %w", err)
	}
	log.Printf("[INFO] Using assistant provider: %s", cfg.Assistant.Provider)

	// 4. Services
	contactService := service.NewContactService(uowFactory, domainEvents, emailService, c.WebSocketHub, auditRecorder, sysLogger)
	chatService := service.NewChatService(
		uowFactory,
		assistant,
		chatbot.NewEngine(chatbot.DefaultRules()),
		threads,
		domainEvents,
		c.WebSocketHub,
		auditRecorder,
		sysLogger,
		cfg.Assistant.Greeting,
	)
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, cfg.Auth.AccessTokenTTL, sysLogger)
	profileService := service.NewProfileService(uowFactory)
	accountService := service.NewAccountService(uowFactory, domainEvents, auditRecorder, sysLogger)
	schemaService := service.NewSchemaService(uowFactory, auditRecorder, sysLogger)
	adminService := service.NewAdminService(uowFactory, accountService, c.WebSocketHub, auditRecorder, sysLogger)

	// 5. Controllers
	secret := cfg.Auth.JwtSecret
	publicLimiter := serverutils.NewRateLimiter(rdb, cfg.App.RateLimitMax, cfg.App.RateLimitWindow)

	sqlDB, err := db.DB()
	if err != nil {
		c.Close()
		return nil, err
	}

	c.HealthController = controller.NewHealthController(sqlDB.PingContext)
	c.AuthController = controller.NewAuthController(authService, publicLimiter)
	c.ContactController = controller.NewContactController(contactService, secret, publicLimiter)
	c.ChatController = controller.NewChatController(chatService, secret, publicLimiter)
	c.ClientController = controller.NewClientController(profileService, contactService, chatService, secret)
	c.AdminController = controller.NewAdminController(adminService, secret)
	c.FunctionController = controller.NewFunctionController(accountService, schemaService, secret)
	c.LiveFeedHandler = handler.NewLiveFeedHandler(c.WebSocketHub, secret, feedLogger)

	return c, nil
}

// Start runs the background workers until ctx is cancelled.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.ConsumerService.Consume(ctx)
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}

// newContactMailer returns nil unless notification email is enabled and configured.
func newContactMailer(cfg *config.Config) mailer.IEmailService {
	if !cfg.SMTP.NotifyEnable || cfg.SMTP.Host == "" || cfg.SMTP.NotifyInbox == "" {
		return nil
	}
	return mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.NotifyInbox,
		cfg.App.ClientURL,
	)
}

func connectRedis(ctx context.Context, url string) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (falling back to in-process state)", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// liveFeedLogPath puts the socket log next to the main log file.
func liveFeedLogPath(mainLog string) string {
	if i := strings.LastIndex(mainLog, "/"); i >= 0 {
		return mainLog[:i+1] + "live_feed.log"
	}
	return "live_feed.log"
}
