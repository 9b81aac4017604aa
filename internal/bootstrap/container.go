package bootstrap

import (
	"context"
	"log"

	"idea-forge-be/internal/config"
	"idea-forge-be/internal/controller"
	"idea-forge-be/internal/handler"
	"idea-forge-be/internal/pkg/logger"
	"idea-forge-be/internal/pkg/mailer"
	"idea-forge-be/internal/repository/implementation"
	"idea-forge-be/internal/repository/memory"
	"idea-forge-be/internal/repository/unitofwork"
	"idea-forge-be/internal/service"
	"idea-forge-be/internal/websocket"
	"idea-forge-be/pkg/agent"
	"idea-forge-be/pkg/embedding"
	"idea-forge-be/pkg/llm/factory"

	pktNats "idea-forge-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	IdeaController         controller.IIdeaController
	ActionPlanController   controller.IActionPlanController
	ArchitectureController controller.IArchitectureController
	EditorController       controller.IEditorController
	PropagationController  controller.IPropagationController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
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
	)

	// In-process event bus for the embedding worker
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// LLM provider feeding both the generator and the section editor
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GoogleGeminiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	generator := agent.NewGenerator(llmProvider)
	editor := agent.NewEditor(llmProvider)
	assistant := agent.NewAssistant(llmProvider)

	// Session-scoped propagation state
	propagationRepo := memory.NewPropagationRepository()

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(pubSub, cfg.App.EmbedIdeaTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedIdeaTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)

	ideationService := service.NewIdeationService(uowFactory, generator, embeddingProvider, publisherService, sysLogger)
	actionPlanService := service.NewActionPlanService(uowFactory, generator, natsPub, sysLogger)
	architectureService := service.NewArchitectureService(uowFactory, generator, natsPub, sysLogger)

	editorService := service.NewEditorService(uowFactory, editor, propagationRepo, natsPub, sysLogger)
	chatService := service.NewChatService(uowFactory, assistant, sysLogger)
	propagationService := service.NewPropagationService(propagationRepo)

	// Notification domain
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, propagationService, wsHub, wsLogger)

	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		IdeaController:         controller.NewIdeaController(ideationService),
		ActionPlanController:   controller.NewActionPlanController(actionPlanService),
		ArchitectureController: controller.NewArchitectureController(architectureService),
		EditorController:       controller.NewEditorController(editorService, chatService),
		PropagationController:  controller.NewPropagationController(propagationService),

		ConsumerService: consumerService,
	}
}
