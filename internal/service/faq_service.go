package service

import (
	"context"
	"fmt"

	"billy-chat/internal/models"
	"billy-chat/internal/repository"

	"go.uber.org/zap"
)

// FAQService serves the FAQ listing that the widget shows below the chat.
type FAQService struct {
	repo   *repository.KnowledgeRepository
	logger *zap.Logger
}

func NewFAQService(repo *repository.KnowledgeRepository, logger *zap.Logger) *FAQService {
	return &FAQService{
		repo:   repo,
		logger: logger,
	}
}

// ListFAQ returns the FAQ-tier knowledge items, optionally filtered by
// category, ordered by priority.
func (s *FAQService) ListFAQ(ctx context.Context, category string) ([]models.KnowledgeItem, error) {
	items, err := s.repo.ListItemsByType(ctx, models.KnowledgeTypeFAQ, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load FAQ items: %w", err)
	}

	s.logger.Debug("FAQ listed",
		zap.String("category", category),
		zap.Int("count", len(items)),
	)
	return items, nil
}
