package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"billy-chat/internal/models"
	"billy-chat/internal/repository"
	"billy-chat/pkg/config"
	"billy-chat/pkg/logger"
	"billy-chat/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const defaultDataFile = "cmd/seed/data/knowledge.json"

// seedFile mirrors the JSON reference files maintained by the content team.
type seedFile struct {
	Items []struct {
		Type              models.KnowledgeType   `json:"type"`
		Category          string                 `json:"category"`
		Title             string                 `json:"title"`
		Keywords          []string               `json:"keywords"`
		NegativeKeywords  []string               `json:"negative_keywords"`
		Priority          int                    `json:"priority"`
		DateTemplate      bool                   `json:"date_template"`
		Responses         map[models.Tone]string `json:"responses"`
		RelatedGuides     []models.RelatedGuide  `json:"related_guides"`
		FollowUpQuestions []string               `json:"follow_up_questions"`
		RelatedQuestions  []string               `json:"related_questions"`
	} `json:"items"`
	Synonyms map[string][]string `json:"synonyms"`
	Holidays []struct {
		Date string `json:"date"`
		Name string `json:"name"`
	} `json:"holidays"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := ensureSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	dataFile := defaultDataFile
	if len(os.Args) > 1 {
		dataFile = os.Args[1]
	}

	seed, err := loadSeedFile(dataFile)
	if err != nil {
		appLogger.Fatal("Failed to read seed file", zap.String("file", dataFile), zap.Error(err))
	}

	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)

	appLogger.Info("Seeding reference data", zap.String("file", dataFile))

	now := time.Now()
	for _, entry := range seed.Items {
		item := &models.KnowledgeItem{
			ID:                uuid.New(),
			Type:              entry.Type,
			Category:          entry.Category,
			Title:             entry.Title,
			Keywords:          entry.Keywords,
			NegativeKeywords:  entry.NegativeKeywords,
			Priority:          entry.Priority,
			DateTemplate:      entry.DateTemplate,
			Responses:         entry.Responses,
			RelatedGuides:     entry.RelatedGuides,
			FollowUpQuestions: entry.FollowUpQuestions,
			RelatedQuestions:  entry.RelatedQuestions,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := knowledgeRepo.CreateItem(ctx, item); err != nil {
			appLogger.Fatal("Failed to insert knowledge item",
				zap.String("title", entry.Title), zap.Error(err))
		}
		// Insertion order drives the matcher's tie-break, so keep the
		// created_at timestamps strictly increasing.
		now = now.Add(time.Millisecond)
	}

	for canonical, alternates := range seed.Synonyms {
		if err := knowledgeRepo.CreateSynonymGroup(ctx, canonical, alternates); err != nil {
			appLogger.Fatal("Failed to insert synonym group",
				zap.String("canonical", canonical), zap.Error(err))
		}
	}

	for _, holiday := range seed.Holidays {
		if err := knowledgeRepo.CreateHoliday(ctx, holiday.Date, holiday.Name); err != nil {
			appLogger.Fatal("Failed to insert holiday",
				zap.String("date", holiday.Date), zap.Error(err))
		}
	}

	appLogger.Info("Seeding completed",
		zap.Int("items", len(seed.Items)),
		zap.Int("synonym_groups", len(seed.Synonyms)),
		zap.Int("holidays", len(seed.Holidays)),
	)
}

func loadSeedFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func ensureSchema(ctx context.Context, db *pgxpool.Pool) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS knowledge_items (
			id UUID PRIMARY KEY,
			type TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL,
			keywords TEXT[] NOT NULL DEFAULT '{}',
			negative_keywords TEXT[] NOT NULL DEFAULT '{}',
			priority INT NOT NULL DEFAULT 1,
			date_template BOOLEAN NOT NULL DEFAULT FALSE,
			responses JSONB NOT NULL DEFAULT '{}',
			related_guides JSONB NOT NULL DEFAULT '[]',
			follow_up_questions TEXT[] NOT NULL DEFAULT '{}',
			related_questions TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS synonyms (
			canonical TEXT PRIMARY KEY,
			alternates TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS holidays (
			holiday_date DATE PRIMARY KEY,
			name TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
