package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"billy-chat/internal/api"
	"billy-chat/internal/api/handlers"
	"billy-chat/internal/repository"
	"billy-chat/internal/service"
	"billy-chat/internal/taxdate"
	"billy-chat/pkg/config"
	"billy-chat/pkg/logger"
	"billy-chat/pkg/postgres"

	"go.uber.org/zap"
)

// @title Billy Chat API
// @version 1.0
// @description Korean e-invoicing FAQ chatbot with knowledge-base matching and AI fallback

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Billy Chat service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)

	// Load the reference data once; the matching path never touches the
	// database afterwards.
	items, err := knowledgeRepo.ListItems(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}
	synonyms, err := knowledgeRepo.ListSynonyms(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load synonym table", zap.Error(err))
	}
	holidays, err := knowledgeRepo.ListHolidays(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load custom holidays", zap.Error(err))
	}
	taxdate.LoadCustomHolidays(holidays)

	appLogger.Info("Reference data loaded",
		zap.Int("items", len(items)),
		zap.Int("synonym_groups", len(synonyms)),
		zap.Int("custom_holidays", len(holidays)),
	)

	// Initialize services
	matchService := service.NewMatchService(
		items, synonyms, &cfg.Match, service.FallbackMessage(&cfg.Chat), appLogger,
	)

	var generator service.AnswerGenerator
	if cfg.AI.APIKey != "" {
		aiService, err := service.NewAIService(&cfg.AI, &cfg.Chat, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize AI service", zap.Error(err))
		}
		defer aiService.Close()
		generator = aiService
	} else {
		appLogger.Warn("GIGACHAT_API_KEY not set, unmatched questions get the static apology")
	}

	chatService := service.NewChatService(matchService, generator, &cfg.Chat, appLogger)
	faqService := service.NewFAQService(knowledgeRepo, appLogger)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	faqHandler := handlers.NewFAQHandler(faqService, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, faqHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
