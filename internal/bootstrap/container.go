package bootstrap

import (
	"papertrail-ai/internal/config"
	"papertrail-ai/internal/controller"
	"papertrail-ai/internal/mapper"
	"papertrail-ai/internal/pkg/logger"
	"papertrail-ai/internal/repository/memory"
	"papertrail-ai/internal/service"
	"papertrail-ai/internal/shell"
	"papertrail-ai/pkg/chatbot"
	"papertrail-ai/pkg/extractor"
	"papertrail-ai/pkg/llm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController
	PageController controller.IPageController

	Dispatcher *shell.Dispatcher
	Logger     logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	provider := chatbot.NewGeminiProvider(cfg.Ai.GeminiBaseURL, cfg.Keys.GoogleAPIKey, cfg.Ai.GeminiModel)
	ex := extractor.New(
		extractor.NewPDFReader(),
		extractor.NewTesseractRecognizer(cfg.Upload.OCRLanguages...),
		sysLogger,
	)

	return NewContainerWith(cfg, sysLogger, provider, ex)
}

// NewContainerWith wires the application around the given backends.
func NewContainerWith(cfg *config.Config, sysLogger logger.ILogger, provider llm.LLMProvider, ex shell.Extractor) *Container {
	// 1. Store & services
	sessionRepo := memory.NewSessionRepository()
	sessionService := service.NewChatSessionService(sessionRepo, sysLogger)
	answerService := service.NewAnswerService(provider, sysLogger)

	// 2. Shell
	dispatcher := shell.NewDispatcher(cfg.App.Title, sessionService, ex, answerService, sysLogger)

	// 3. Controllers
	chatMapper := mapper.NewChatMapper()

	return &Container{
		ChatController: controller.NewChatController(dispatcher, chatMapper),
		PageController: controller.NewPageController(dispatcher),
		Dispatcher:     dispatcher,
		Logger:         sysLogger,
	}
}
