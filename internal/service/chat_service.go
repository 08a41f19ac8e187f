package service

import (
	"context"
	"fmt"
	"strings"

	"billy-chat/internal/models"
	"billy-chat/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnswerGenerator is the generative fallback the chat service calls when
// the matcher reports no confident answer.
type AnswerGenerator interface {
	Answer(ctx context.Context, question string, tone models.Tone) (string, error)
}

// ChatService runs the full answer pipeline: match against the knowledge
// base, fall back to the AI when needed, and degrade to the static apology
// when the AI fails too. No step is fatal; every question gets an answer.
type ChatService struct {
	matcher  *MatchService
	ai       AnswerGenerator
	fallback string
	logger   *zap.Logger
}

func NewChatService(matcher *MatchService, ai AnswerGenerator, cfg *config.ChatConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		matcher:  matcher,
		ai:       ai,
		fallback: FallbackMessage(cfg),
		logger:   logger,
	}
}

// Ask answers one question. An empty tone is auto-detected from the
// question's speech level.
func (s *ChatService) Ask(ctx context.Context, query string, tone models.Tone) *models.ChatAnswer {
	if tone == "" {
		tone = DetectTone(query)
	}

	result := s.matcher.MatchQuery(query, tone)

	answer := &models.ChatAnswer{
		ID:                uuid.New(),
		Query:             query,
		Tone:              tone,
		Response:          result.Response,
		Source:            models.SourceKnowledge,
		Score:             result.Score,
		RelatedGuides:     result.RelatedGuides,
		FollowUpQuestions: result.FollowUpQuestions,
		RelatedQuestions:  result.RelatedQuestions,
	}
	if !result.RequiresAI {
		return answer
	}

	answer.Source = models.SourceFallback
	answer.Response = s.fallback

	if s.ai == nil {
		return answer
	}
	text, err := s.ai.Answer(ctx, query, tone)
	if err != nil {
		s.logger.Warn("AI fallback failed, using static apology",
			zap.String("query", query),
			zap.Error(err),
		)
		return answer
	}

	answer.Source = models.SourceAI
	answer.Response = text
	return answer
}

// FallbackMessage builds the configured apology, splicing in the support
// phone number when the message carries a %s slot.
func FallbackMessage(cfg *config.ChatConfig) string {
	if strings.Contains(cfg.FallbackMessage, "%s") {
		return fmt.Sprintf(cfg.FallbackMessage, cfg.SupportPhone)
	}
	return cfg.FallbackMessage
}
