package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"

	"hri-companion-be/internal/config"
	"hri-companion-be/internal/controller"
	"hri-companion-be/internal/pkg/logger"
	"hri-companion-be/internal/repository/implementation"
	"hri-companion-be/internal/service"
	"hri-companion-be/pkg/events"
	"hri-companion-be/pkg/llm/factory"
	"hri-companion-be/pkg/sheets"
	"hri-companion-be/pkg/textgen"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ChildController   controller.IChildController
	SessionController controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(sheetsAPI sheets.API, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	eventPublisher := events.NewPublisher(pubSub, events.AuditTopic)

	// 3. Text Generation
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.OpenAIKeywordModel,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	keywordModel := cfg.Ai.OpenAIKeywordModel
	promptModel := cfg.Ai.OpenAIPromptModel
	if cfg.Ai.LLMProvider == "ollama" {
		keywordModel = cfg.Ai.OllamaModel
		promptModel = cfg.Ai.OllamaModel
	}
	generator := textgen.NewAdapter(llmProvider, keywordModel, promptModel)

	// 4. Repositories (one worksheet each)
	userRepo := implementation.NewUserRepository(sheetsAPI)
	childRepo := implementation.NewChildRepository(sheetsAPI)
	sessionRepo := implementation.NewSessionRepository(sheetsAPI)
	linkRepo := implementation.NewUserChildRepository(sheetsAPI)

	// Child profiles are immutable after creation, so cached entries only
	// expire to bound memory, never to refresh.
	childCache := cache.New(30*time.Minute, 10*time.Minute)

	// 5. Services
	authService := service.NewAuthService(userRepo, &cfg.JWT, eventPublisher, sysLogger)
	childService := service.NewChildService(childRepo, linkRepo, generator, childCache, eventPublisher, sysLogger)
	sessionService := service.NewSessionService(sessionRepo, childRepo, linkRepo, generator, eventPublisher, sysLogger)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	// 6. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService, &cfg.JWT),
		ChildController:   controller.NewChildController(childService, &cfg.JWT),
		SessionController: controller.NewSessionController(sessionService, &cfg.JWT),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
